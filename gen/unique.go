// SPDX-License-Identifier: MIT
// Package: judgegen/gen
//
// unique.go: n pairwise-distinct values from an integer range.
//
// Strategy (density threshold k, default 10):
//   • domain ≤ k·n  → shuffle-all: materialize [lo, hi], partial Fisher–Yates
//     for the first n slots. Always terminates, uniform over n-subsets,
//     O(domain) time and space (≤ min(k·n, MaxShuffleDomain)).
//   • otherwise     → rejection: draw uniformly from [lo, hi] into a set until
//     it holds n values. Each draw collides with probability < 1/k, so the
//     expected work is O(n); the loop is still capped by the attempt budget
//     and fails with ErrGenerationExhausted rather than spinning.
//
// Contract:
//   • n < 0 → ErrInvalidSize; n > hi-lo+1 → ErrRangeTooSmall.
//   • Reversed bounds are swapped.
//   • Output order is draw order; callers must not rely on it being sorted.

package gen

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// UniqueSample returns n distinct values from [lo, hi].
func UniqueSample[T constraints.Integer](n int, lo, hi T, opts ...Option) (UniqueSet[T], error) {
	if err := validateSize(MethodUniqueSample, "n", n); err != nil {
		return UniqueSet[T]{}, err
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	// span = domain-1; a span of MaxUint64 means a domain of 2^64 values.
	span := uint64(hi) - uint64(lo)
	if span != math.MaxUint64 && uint64(n) > span+1 {
		return UniqueSet[T]{}, fmt.Errorf("%s: n=%d > domain=%d for [%v,%v]: %w",
			MethodUniqueSample, n, span+1, lo, hi, ErrRangeTooSmall)
	}

	if n == 0 {
		return UniqueSet[T]{values: []T{}, strategy: StrategyShuffle}, nil
	}

	cfg := newConfig(opts...)
	strategy := StrategyRejection
	if span != math.MaxUint64 {
		strategy = selectStrategy(n, span+1, cfg.density)
	}

	var (
		values []T
		err    error
	)
	switch strategy {
	case StrategyShuffle:
		values = shuffleUnique(cfg, n, lo, int(span+1))
	default:
		values, err = rejectUnique(cfg, n, lo, hi)
		if err != nil {
			return UniqueSet[T]{}, err
		}
	}

	return UniqueSet[T]{values: values, strategy: strategy}, nil
}

// selectStrategy picks shuffle-all when domain ≤ threshold·n and the domain
// fits in MaxShuffleDomain. The product saturates instead of overflowing.
func selectStrategy(n int, domain uint64, threshold int) Strategy {
	if n <= 0 || domain > MaxShuffleDomain {
		return StrategyRejection
	}
	limit := uint64(n) * uint64(threshold)
	if limit/uint64(threshold) != uint64(n) {
		limit = math.MaxUint64
	}
	if domain <= limit {
		return StrategyShuffle
	}
	return StrategyRejection
}

// shuffleUnique materializes lo, lo+1, ..., lo+domain-1 and moves a uniform
// n-subset into the prefix with a partial Fisher–Yates pass.
func shuffleUnique[T constraints.Integer](cfg config, n int, lo T, domain int) []T {
	pool := make([]T, domain)
	base := uint64(lo)
	for i := range pool {
		pool[i] = T(base + uint64(i))
	}
	partialShuffle(cfg, pool, n)

	return pool[:n:n]
}

// partialShuffle leaves a uniformly random k-prefix in xs.
// Complexity: O(k) draws.
func partialShuffle[T any](cfg config, xs []T, k int) {
	for i := 0; i < k; i++ {
		j := i + cfg.src.IntN(len(xs)-i)
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// rejectUnique draws until n distinct values are collected or the budget of
// discarded draws is spent.
func rejectUnique[T constraints.Integer](cfg config, n int, lo, hi T) ([]T, error) {
	out := make([]T, 0, n)
	seen := make(map[T]struct{}, n)
	limit := cfg.budget(n)
	rejected := 0

	for len(out) < n {
		v := drawInt(cfg.src, lo, hi)
		if _, dup := seen[v]; dup {
			rejected++
			if rejected > limit {
				return nil, fmt.Errorf("%s: %d duplicate draws after %d/%d values: %w",
					MethodUniqueSample, rejected, len(out), n, ErrGenerationExhausted)
			}
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out, nil
}
