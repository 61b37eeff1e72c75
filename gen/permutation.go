// SPDX-License-Identifier: MIT
// Package: judgegen/gen
//
// permutation.go: uniformly random permutations of [start, start+n).

package gen

import "github.com/katalvlaran/judgegen/rng"

// Permute returns a uniformly random ordering of start, start+1, ..., start+n-1.
// Every one of the n! orderings is equally likely. n == 0 yields an empty
// permutation; n < 0 fails with ErrInvalidSize.
// Complexity: O(n) time and space.
func Permute(n, start int, opts ...Option) (Permutation, error) {
	if err := validateSize(MethodPermute, "n", n); err != nil {
		return Permutation{}, err
	}
	cfg := newConfig(opts...)

	return Permutation{start: start, values: permuteInts(cfg.src, n, start)}, nil
}

// permuteInts is the identity sequence followed by a Fisher–Yates shuffle.
func permuteInts(src *rng.Source, n, start int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = start + i
	}
	src.Shuffle(n, func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })

	return xs
}
