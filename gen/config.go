// SPDX-License-Identifier: MIT
// Package: judgegen/gen
//
// config.go: internal configuration and defaults.
//
// Design:
//   • config is the single source of truth for generator knobs.
//   • newConfig applies options in order (later overrides earlier).
//   • Each generator call resolves its own config; nothing persists between calls.
//
// Defaults:
//   • src         = rng.Default()            (process-wide, lazily seeded)
//   • maxAttempts = 0                         (derived per call, see budget)
//   • density     = DefaultDensityThreshold   (10)

package gen

import "github.com/katalvlaran/judgegen/rng"

// config aggregates all knobs used by generators.
// It is passed by VALUE to internal helpers (immutable to callers).
type config struct {
	// Random engine for every draw of one call.
	src *rng.Source
	// Cap on discarded draws of a rejection loop; 0 means derived from size.
	maxAttempts int
	// Domain/request ratio selecting shuffle-all over rejection sampling.
	density int
}

// newConfig constructs a config with defaults and applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newConfig(opts ...Option) config {
	cfg := config{
		density: DefaultDensityThreshold,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	// Resolve the engine last so WithSeed/WithSource can override it cheaply.
	if cfg.src == nil {
		cfg.src = rng.Default()
	}

	return cfg
}

// budget returns how many draws a rejection loop needing k accepted values
// may discard before giving up with ErrGenerationExhausted.
func (c config) budget(k int) int {
	if c.maxAttempts > 0 {
		return c.maxAttempts
	}
	return attemptFactor*k + attemptSlack
}
