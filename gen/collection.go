// SPDX-License-Identifier: MIT
// Package: judgegen/gen
//
// collection.go: fixed-size containers with independently drawn elements.
//
// Contract:
//   • Two modes per container: elements from a [lo, hi] range, or from a pool.
//   • No cross-element constraints: duplicates are expected.
//   • Negative sizes fail with ErrInvalidSize; empty pools with ErrEmptyPool.
//   • Matrices are filled row-major; order only affects which draws land where.
//
// Complexity: O(size) time and space for every constructor.

package gen

import "strings"

// Vector returns length values drawn independently from [lo, hi].
func Vector[T Number](length int, lo, hi T, opts ...Option) ([]T, error) {
	if err := validateSize(MethodVector, "length", length); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	out := make([]T, length)
	for i := range out {
		out[i] = draw(cfg.src, lo, hi)
	}

	return out, nil
}

// VectorFrom returns length values drawn independently from pool.
func VectorFrom[T any](length int, pool []T, opts ...Option) ([]T, error) {
	if err := validateSize(MethodVector, "length", length); err != nil {
		return nil, err
	}
	if err := validatePool(MethodVector, len(pool)); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	out := make([]T, length)
	for i := range out {
		out[i] = pool[cfg.src.IntN(len(pool))]
	}

	return out, nil
}

// Matrix returns a rows×cols matrix with elements drawn from [lo, hi].
func Matrix[T Number](rows, cols int, lo, hi T, opts ...Option) ([][]T, error) {
	if err := validateSize(MethodMatrix, "rows", rows); err != nil {
		return nil, err
	}
	if err := validateSize(MethodMatrix, "cols", cols); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	out := make([][]T, rows)
	for r := range out {
		row := make([]T, cols)
		for c := range row {
			row[c] = draw(cfg.src, lo, hi)
		}
		out[r] = row
	}

	return out, nil
}

// MatrixFrom returns a rows×cols matrix with elements drawn from pool.
func MatrixFrom[T any](rows, cols int, pool []T, opts ...Option) ([][]T, error) {
	if err := validateSize(MethodMatrix, "rows", rows); err != nil {
		return nil, err
	}
	if err := validateSize(MethodMatrix, "cols", cols); err != nil {
		return nil, err
	}
	if err := validatePool(MethodMatrix, len(pool)); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	out := make([][]T, rows)
	for r := range out {
		row := make([]T, cols)
		for c := range row {
			row[c] = pool[cfg.src.IntN(len(pool))]
		}
		out[r] = row
	}

	return out, nil
}

// String returns length characters drawn from the byte range [lo, hi].
func String(length int, lo, hi byte, opts ...Option) (string, error) {
	if err := validateSize(MethodString, "length", length); err != nil {
		return "", err
	}
	cfg := newConfig(opts...)

	buf := make([]byte, length)
	for i := range buf {
		buf[i] = draw(cfg.src, lo, hi)
	}

	return string(buf), nil
}

// StringFrom returns length characters drawn from the runes of pool.
func StringFrom(length int, pool string, opts ...Option) (string, error) {
	if err := validateSize(MethodString, "length", length); err != nil {
		return "", err
	}
	runes := []rune(pool)
	if err := validatePool(MethodString, len(runes)); err != nil {
		return "", err
	}
	cfg := newConfig(opts...)

	return randomRunes(cfg, length, runes), nil
}

// Grid returns a rows×cols character matrix drawn from the runes of pool,
// one string per row (e.g. pool "#." for maze-like boards).
func Grid(rows, cols int, pool string, opts ...Option) ([]string, error) {
	if err := validateSize(MethodGrid, "rows", rows); err != nil {
		return nil, err
	}
	if err := validateSize(MethodGrid, "cols", cols); err != nil {
		return nil, err
	}
	runes := []rune(pool)
	if err := validatePool(MethodGrid, len(runes)); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	out := make([]string, rows)
	for r := range out {
		out[r] = randomRunes(cfg, cols, runes)
	}

	return out, nil
}

func randomRunes(cfg config, length int, runes []rune) string {
	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		sb.WriteRune(runes[cfg.src.IntN(len(runes))])
	}
	return sb.String()
}
