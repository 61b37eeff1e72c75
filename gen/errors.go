// SPDX-License-Identifier: MIT
// Package: judgegen/gen
//
// errors.go: sentinel errors for the gen package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Generators attach context with "%s: ...: %w" (method name first).
//   • Generators never panic at runtime; panics are confined to option
//     constructors (WithX...) receiving meaningless values.
//   • A failed call returns no structure at all (nil / zero value).

package gen

import "errors"

// ErrUnsupportedType indicates a scalar kind outside {integer, float, char}
// was requested through the kind-tag layer (ParseKind).
var ErrUnsupportedType = errors.New("gen: unsupported scalar type")

// ErrEmptyPool indicates sampling from a zero-length candidate pool.
var ErrEmptyPool = errors.New("gen: empty pool")

// ErrRangeTooSmall indicates a unique-sample request larger than its domain.
var ErrRangeTooSmall = errors.New("gen: range too small for requested unique values")

// ErrInvalidSize indicates a negative length, row/column count or point count.
var ErrInvalidSize = errors.New("gen: invalid size")

// ErrInvalidVertexCount indicates a tree request with n <= 0.
var ErrInvalidVertexCount = errors.New("gen: invalid vertex count")

// ErrInvalidGraphParameters indicates a graph request with n < 0 or m < 0.
var ErrInvalidGraphParameters = errors.New("gen: invalid graph parameters")

// ErrTooManyEdges indicates m > n(n-1)/2 for a simple graph.
var ErrTooManyEdges = errors.New("gen: too many edges for a simple graph")

// ErrGenerationExhausted indicates a rejection loop used up its retry budget
// (see WithMaxAttempts). Retrying with another seed or a larger budget is safe.
var ErrGenerationExhausted = errors.New("gen: generation attempts exhausted")

// ErrNotPermutation indicates values handed to NewPermutation are not a
// bijection onto [start, start+n).
var ErrNotPermutation = errors.New("gen: values are not a permutation")

// ErrNotUnique indicates values handed to NewUniqueSet repeat or leave the range.
var ErrNotUnique = errors.New("gen: values are not unique within range")
