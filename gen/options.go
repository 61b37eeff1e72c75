// SPDX-License-Identifier: MIT
// Package: judgegen/gen
//
// options.go: functional options for the gen package.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: WithSeed or WithSource; otherwise the
//     process-wide engine is used.

package gen

import (
	"fmt"

	"github.com/katalvlaran/judgegen/rng"
)

// Option customizes a single generator call.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// WithSource draws from the given engine instead of rng.Default().
// Use one source per worker for independent concurrent streams.
// Panics on nil.
func WithSource(src *rng.Source) Option {
	if src == nil {
		panic("gen: WithSource(nil)")
	}
	return func(c *config) {
		c.src = src
	}
}

// WithSeed uses a fresh deterministic engine seeded with seed.
// Two calls with equal seeds and parameters yield identical results.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.src = rng.New(seed)
	}
}

// WithMaxAttempts caps how many draws a rejection loop may discard
// (UniqueSample sparse path, BinaryTree parent re-draws, SimpleGraph phase 2).
// Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("gen: WithMaxAttempts(%d): must be ≥ 1", n))
	}
	return func(c *config) {
		c.maxAttempts = n
	}
}

// WithDensityThreshold overrides the shuffle-all cutover ratio
// (DefaultDensityThreshold). Panics if k < 1.
func WithDensityThreshold(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("gen: WithDensityThreshold(%d): must be ≥ 1", k))
	}
	return func(c *config) {
		c.density = k
	}
}
