// SPDX-License-Identifier: MIT
// Package: judgegen/gen
//
// graph.go: random simple graphs with exactly m edges.
//
// Canonical model:
//   • Phase 1 (backbone): recursive attachment over a shuffled 1..n, stopping as
//     soon as m edges exist. Biases small-m graphs toward connectivity; for
//     m ≥ n-1 the backbone is a spanning tree.
//   • Phase 2 (fill): the remaining need = m - |backbone| edges come from the
//     free pairs (pairs not yet used). When free ≤ density·need and
//     free ≤ MaxShuffleDomain the free pairs are enumerated and a uniform
//     need-subset is taken (complement sampling);
//     otherwise uniform vertex pairs are drawn and self-loops or present pairs
//     are rejected, capped by the attempt budget.
//
// Contract:
//   • n < 0 or m < 0 → ErrInvalidGraphParameters.
//   • m > n(n-1)/2   → ErrTooManyEdges.
//   • No self-loops; (u,v) and (v,u) never both appear.
//   • Edges are emitted in insertion order: backbone first, then fill.
//   • Weighted variant draws one weight per final edge from [lo, hi].
//
// Complexity:
//   • Backbone O(n). Fill: O(n²) worst case only in the dense regime, where
//     m is itself Θ(n²); O(need) expected in the sparse regime.

package gen

import "fmt"

// SimpleGraph returns an unweighted simple graph on 1..n with exactly m edges.
func SimpleGraph(n, m int, opts ...Option) (*WeightedGraph[int64], error) {
	return buildGraph[int64](n, m, nil, opts)
}

// WeightedSimpleGraph is SimpleGraph with one weight per edge from [lo, hi].
func WeightedSimpleGraph[W Number](n, m int, lo, hi W, opts ...Option) (*WeightedGraph[W], error) {
	return buildGraph(n, m, &weightRange[W]{lo: lo, hi: hi}, opts)
}

func buildGraph[W Number](n, m int, wr *weightRange[W], opts []Option) (*WeightedGraph[W], error) {
	if n < 0 || m < 0 {
		return nil, fmt.Errorf("%s: n=%d, m=%d must be ≥ 0: %w",
			MethodSimpleGraph, n, m, ErrInvalidGraphParameters)
	}
	if limit := maxSimpleEdges(n); uint64(m) > limit {
		return nil, fmt.Errorf("%s: m=%d > n(n-1)/2=%d for n=%d: %w",
			MethodSimpleGraph, m, limit, n, ErrTooManyEdges)
	}
	cfg := newConfig(opts...)

	edges, err := simpleEdges(cfg, n, m)
	if err != nil {
		return nil, err
	}

	g := &WeightedGraph[W]{N: n, Edges: edges}
	applyWeights(cfg, g, wr)

	return g, nil
}

// edgeSet tracks normalized keys alongside the ordered edge slice.
type edgeSet struct {
	edges []Edge
	seen  map[Edge]struct{}
}

func newEdgeSet(capacity int) *edgeSet {
	return &edgeSet{
		edges: make([]Edge, 0, capacity),
		seen:  make(map[Edge]struct{}, capacity),
	}
}

// add appends e unless it is a self-loop or already present.
func (s *edgeSet) add(e Edge) bool {
	if e.U == e.V {
		return false
	}
	k := e.Key()
	if _, dup := s.seen[k]; dup {
		return false
	}
	s.seen[k] = struct{}{}
	s.edges = append(s.edges, e)
	return true
}

func (s *edgeSet) has(e Edge) bool {
	_, ok := s.seen[e.Key()]
	return ok
}

func simpleEdges(cfg config, n, m int) ([]Edge, error) {
	set := newEdgeSet(m)

	// Phase 1: backbone.
	perm := permuteInts(cfg.src, n, FirstVertexLabel)
	for i := 1; i < n && len(set.edges) < m; i++ {
		set.add(Edge{U: perm[i], V: perm[cfg.src.IntN(i)]})
	}

	need := m - len(set.edges)
	if need == 0 {
		return set.edges, nil
	}

	// Phase 2: fill from the free pairs.
	free := maxSimpleEdges(n) - uint64(len(set.edges))
	if selectStrategy(need, free, cfg.density) == StrategyShuffle {
		fillFromComplement(cfg, set, n, need)
		return set.edges, nil
	}
	if err := fillByRejection(cfg, set, n, need); err != nil {
		return nil, err
	}

	return set.edges, nil
}

// fillFromComplement enumerates every unused pair a<b and appends a uniform
// need-subset of them. Terminates regardless of density.
func fillFromComplement(cfg config, set *edgeSet, n, need int) {
	candidates := make([]Edge, 0, int(maxSimpleEdges(n))-len(set.edges))
	for a := FirstVertexLabel; a <= n; a++ {
		for b := a + 1; b <= n; b++ {
			if e := (Edge{U: a, V: b}); !set.has(e) {
				candidates = append(candidates, e)
			}
		}
	}
	partialShuffle(cfg, candidates, need)
	for _, e := range candidates[:need] {
		set.add(e)
	}
}

// fillByRejection draws ordered pairs (u,v), u≠v, which is uniform over
// unordered pairs, and keeps new ones until need edges were added.
func fillByRejection(cfg config, set *edgeSet, n, need int) error {
	limit := cfg.budget(need)
	rejected := 0
	for added := 0; added < need; {
		u := FirstVertexLabel + cfg.src.IntN(n)
		v := FirstVertexLabel + cfg.src.IntN(n)
		if set.add(Edge{U: u, V: v}) {
			added++
			continue
		}
		rejected++
		if rejected > limit {
			return fmt.Errorf("%s: %d rejected pairs with %d/%d fill edges placed: %w",
				MethodSimpleGraph, rejected, added, need, ErrGenerationExhausted)
		}
	}

	return nil
}
