// SPDX-License-Identifier: MIT
// Package: judgegen/gen
//
// types.go: result types produced by the generators.
//
// Every result is built in full by one generator call and handed to the caller;
// there is no incremental mutation API. Named types wrap plain slices instead of
// extending them, and carry a validating constructor where an invariant exists.

package gen

import (
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"
)

// Number is the set of scalar types the samplers draw from.
// Characters are byte/rune, i.e. integer kinds.
type Number interface {
	constraints.Integer | constraints.Float
}

// Edge is a pair of vertex labels. Trees store the newly attached vertex in U
// and its attachment target (parent) in V.
type Edge struct {
	U int
	V int
}

// Key returns the edge with endpoints ordered (min, max), so (u,v) and (v,u)
// compare equal for undirected deduplication.
func (e Edge) Key() Edge {
	if e.U > e.V {
		return Edge{U: e.V, V: e.U}
	}
	return e
}

// WeightedGraph is an edge list over vertices 1..N with optional weights.
// Invariant: len(Weights) == len(Edges) when Weighted, otherwise Weights is empty.
// Edges are kept in insertion order, which is also the output order.
type WeightedGraph[W Number] struct {
	// N is the number of vertices; labels are 1..N.
	N int
	// Edges in insertion order.
	Edges []Edge
	// Weights[i] belongs to Edges[i]; empty unless Weighted.
	Weights []W
	// Weighted marks whether Weights is populated.
	Weighted bool
}

// EdgeCount returns len(g.Edges).
func (g *WeightedGraph[W]) EdgeCount() int {
	return len(g.Edges)
}

// Weight returns the weight of edge i and whether the graph is weighted.
func (g *WeightedGraph[W]) Weight(i int) (W, bool) {
	if !g.Weighted || i < 0 || i >= len(g.Weights) {
		var zero W
		return zero, false
	}
	return g.Weights[i], true
}

// Permutation is a bijection from positions [0, n) to values [start, start+n).
type Permutation struct {
	start  int
	values []int
}

// NewPermutation validates that values is a permutation of [start, start+len)
// and wraps a copy of it. Fails with ErrNotPermutation otherwise.
// Complexity: O(n) time and space.
func NewPermutation(values []int, start int) (Permutation, error) {
	seen := make([]bool, len(values))
	for i, v := range values {
		off := v - start
		if off < 0 || off >= len(values) || seen[off] {
			return Permutation{}, fmt.Errorf("%s: value %d at index %d outside [%d,%d) or repeated: %w",
				MethodPermute, v, i, start, start+len(values), ErrNotPermutation)
		}
		seen[off] = true
	}

	return Permutation{start: start, values: slices.Clone(values)}, nil
}

// Len returns n.
func (p Permutation) Len() int { return len(p.values) }

// Start returns the smallest value of the permuted range.
func (p Permutation) Start() int { return p.start }

// At returns the value at position i.
func (p Permutation) At(i int) int { return p.values[i] }

// Values returns a copy of the permuted sequence.
func (p Permutation) Values() []int { return slices.Clone(p.values) }

// Strategy names the sampling strategy chosen by the uniqueness engine.
type Strategy int

const (
	// StrategyShuffle materializes the domain and shuffles it.
	StrategyShuffle Strategy = iota + 1
	// StrategyRejection draws candidates until enough distinct ones are found.
	StrategyRejection
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case StrategyShuffle:
		return "shuffle"
	case StrategyRejection:
		return "rejection"
	default:
		return "none"
	}
}

// UniqueSet holds pairwise-distinct values drawn from one range.
// Element order is implementation-defined.
type UniqueSet[T constraints.Integer] struct {
	values   []T
	strategy Strategy
}

// NewUniqueSet validates that values are distinct and within [lo, hi]
// (bounds are swapped if reversed) and wraps a copy. Fails with ErrNotUnique.
func NewUniqueSet[T constraints.Integer](values []T, lo, hi T) (UniqueSet[T], error) {
	if lo > hi {
		lo, hi = hi, lo
	}
	seen := make(map[T]struct{}, len(values))
	for i, v := range values {
		if v < lo || v > hi {
			return UniqueSet[T]{}, fmt.Errorf("%s: value %v at index %d outside [%v,%v]: %w",
				MethodUniqueSample, v, i, lo, hi, ErrNotUnique)
		}
		if _, dup := seen[v]; dup {
			return UniqueSet[T]{}, fmt.Errorf("%s: value %v repeated at index %d: %w",
				MethodUniqueSample, v, i, ErrNotUnique)
		}
		seen[v] = struct{}{}
	}

	return UniqueSet[T]{values: slices.Clone(values)}, nil
}

// Len returns the number of values.
func (s UniqueSet[T]) Len() int { return len(s.values) }

// Values returns a copy of the values.
func (s UniqueSet[T]) Values() []T { return slices.Clone(s.values) }

// Strategy reports how the set was sampled; zero for NewUniqueSet.
func (s UniqueSet[T]) Strategy() Strategy { return s.strategy }

// Point is an integer 2D coordinate.
type Point struct {
	X int
	Y int
}

// PointSet is an ordered sequence of independently sampled points.
type PointSet []Point
