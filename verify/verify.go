// Package verify checks generated structures against their invariants.
//
// It is used by the gen tests and by the judgegen driver (--check) to refuse
// printing a structure that is not what it claims to be. Every check returns
// nil or an error wrapping one of the sentinels below; branch with errors.Is.
//
// Tree checks use a disjoint-set (union-find) forest: every edge must join two
// different components, and after all edges exactly one component remains.
package verify

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/judgegen/gen"
)

// Sentinel errors for structure verification.
var (
	// ErrEdgeCount indicates the number of edges differs from the expected one.
	ErrEdgeCount = errors.New("verify: wrong edge count")

	// ErrVertexRange indicates an edge endpoint outside 1..N.
	ErrVertexRange = errors.New("verify: vertex label out of range")

	// ErrSelfLoop indicates an edge (v,v).
	ErrSelfLoop = errors.New("verify: self-loop")

	// ErrDuplicateEdge indicates the same unordered pair appears twice.
	ErrDuplicateEdge = errors.New("verify: duplicate edge")

	// ErrCycle indicates an edge joining two vertices already connected.
	ErrCycle = errors.New("verify: cycle")

	// ErrDisconnected indicates more than one component remains.
	ErrDisconnected = errors.New("verify: disconnected")

	// ErrDegree indicates a vertex is the attachment target of too many edges.
	ErrDegree = errors.New("verify: attachment degree exceeded")

	// ErrWeights indicates the weights slice does not match the weighted flag.
	ErrWeights = errors.New("verify: weights mismatch")

	// ErrPermutation indicates a sequence is not a bijection onto its range.
	ErrPermutation = errors.New("verify: not a permutation")

	// ErrUnique indicates repeated values or values outside the range.
	ErrUnique = errors.New("verify: not unique within range")
)

// Tree checks that g has N-1 edges over labels 1..N forming one acyclic
// connected component.
// Complexity: O(N·α(N)) time, O(N) space.
func Tree[W gen.Number](g *gen.WeightedGraph[W]) error {
	if err := weights(g); err != nil {
		return err
	}
	if len(g.Edges) != g.N-1 {
		return fmt.Errorf("tree: %d edges for %d vertices: %w", len(g.Edges), g.N, ErrEdgeCount)
	}

	d := newDSU(g.N)
	for i, e := range g.Edges {
		if err := endpoints(g.N, i, e); err != nil {
			return err
		}
		if !d.union(e.U, e.V) {
			return fmt.Errorf("tree: edge %d (%d,%d) closes a cycle: %w", i, e.U, e.V, ErrCycle)
		}
	}
	if d.sets != 1 {
		return fmt.Errorf("tree: %d components: %w", d.sets, ErrDisconnected)
	}

	return nil
}

// BinaryTree checks Tree and that no vertex is the attachment target (V) of
// more than gen.MaxBinaryChildren edges.
func BinaryTree[W gen.Number](g *gen.WeightedGraph[W]) error {
	if err := Tree(g); err != nil {
		return err
	}
	counts := lo.CountValuesBy(g.Edges, func(e gen.Edge) int { return e.V })
	for v, c := range counts {
		if c > gen.MaxBinaryChildren {
			return fmt.Errorf("binary tree: vertex %d has %d children: %w", v, c, ErrDegree)
		}
	}

	return nil
}

// SimpleGraph checks that g has exactly m edges over 1..N with no self-loops
// and no duplicate unordered pairs.
func SimpleGraph[W gen.Number](g *gen.WeightedGraph[W], m int) error {
	if err := weights(g); err != nil {
		return err
	}
	if len(g.Edges) != m {
		return fmt.Errorf("graph: %d edges, want %d: %w", len(g.Edges), m, ErrEdgeCount)
	}

	seen := make(map[gen.Edge]int, len(g.Edges))
	for i, e := range g.Edges {
		if err := endpoints(g.N, i, e); err != nil {
			return err
		}
		if e.U == e.V {
			return fmt.Errorf("graph: edge %d (%d,%d): %w", i, e.U, e.V, ErrSelfLoop)
		}
		if j, dup := seen[e.Key()]; dup {
			return fmt.Errorf("graph: edges %d and %d join %d and %d: %w", j, i, e.U, e.V, ErrDuplicateEdge)
		}
		seen[e.Key()] = i
	}

	return nil
}

// Connected reports whether the edges of g join all N vertices.
func Connected[W gen.Number](g *gen.WeightedGraph[W]) bool {
	if g.N <= 1 {
		return true
	}
	d := newDSU(g.N)
	for _, e := range g.Edges {
		if e.U < 1 || e.U > g.N || e.V < 1 || e.V > g.N {
			return false
		}
		d.union(e.U, e.V)
	}
	return d.sets == 1
}

// Permutation checks that values sorted equal start, start+1, ..., start+n-1.
func Permutation(values []int, start int) error {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	for i, v := range sorted {
		if v != start+i {
			return fmt.Errorf("permutation: sorted[%d]=%d, want %d: %w", i, v, start+i, ErrPermutation)
		}
	}

	return nil
}

// Unique checks that values are pairwise distinct and inside [lower, upper].
func Unique[T constraints.Integer](values []T, lower, upper T) error {
	if lower > upper {
		lower, upper = upper, lower
	}
	if distinct := len(lo.Uniq(values)); distinct != len(values) {
		return fmt.Errorf("unique: %d values, %d distinct: %w", len(values), distinct, ErrUnique)
	}
	for i, v := range values {
		if v < lower || v > upper {
			return fmt.Errorf("unique: value %v at %d outside [%v,%v]: %w", v, i, lower, upper, ErrUnique)
		}
	}

	return nil
}

func weights[W gen.Number](g *gen.WeightedGraph[W]) error {
	if g.Weighted && len(g.Weights) != len(g.Edges) {
		return fmt.Errorf("%d weights for %d edges: %w", len(g.Weights), len(g.Edges), ErrWeights)
	}
	if !g.Weighted && len(g.Weights) != 0 {
		return fmt.Errorf("unweighted graph carries %d weights: %w", len(g.Weights), ErrWeights)
	}
	return nil
}

func endpoints(n, i int, e gen.Edge) error {
	if e.U < 1 || e.U > n || e.V < 1 || e.V > n {
		return fmt.Errorf("edge %d (%d,%d) outside 1..%d: %w", i, e.U, e.V, n, ErrVertexRange)
	}
	return nil
}
