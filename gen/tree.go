// SPDX-License-Identifier: MIT
// Package: judgegen/gen
//
// tree.go: random recursive trees and binary trees.
//
// Canonical model:
//   • Shuffle the labels 1..n. For i = 1..n-1 attach perm[i] to perm[p] with p
//     drawn uniformly from [0, i). Each vertex gets exactly one parent among
//     strictly earlier vertices, so the result is connected and acyclic by
//     construction; no cycle checks are needed.
//   • Binary variant: a draw landing on a vertex that already has
//     MaxBinaryChildren children is rejected and re-drawn, which is uniform over
//     the eligible vertices. The latest placed vertex has no children yet, and
//     in any binary tree at least half of the placed vertices have room, so
//     each draw succeeds with probability ≥ 1/2. The loop is
//     still capped by the attempt budget (ErrGenerationExhausted).
//
// Contract:
//   • n ≤ 0 → ErrInvalidVertexCount.
//   • Edge{U: child, V: parent}, emitted in attachment order.
//   • Weighted variants draw one weight per edge from [lo, hi] after topology.
//
// Complexity: O(n) expected time, O(n) space.

package gen

import "fmt"

// Tree returns an unweighted random tree on vertices 1..n.
func Tree(n int, opts ...Option) (*WeightedGraph[int64], error) {
	return buildTree[int64](MethodTree, n, false, nil, opts)
}

// WeightedTree returns a random tree on 1..n with weights drawn from [lo, hi].
func WeightedTree[W Number](n int, lo, hi W, opts ...Option) (*WeightedGraph[W], error) {
	return buildTree(MethodTree, n, false, &weightRange[W]{lo: lo, hi: hi}, opts)
}

// BinaryTree returns an unweighted random tree on 1..n in which no vertex is
// the attachment target of more than two edges.
func BinaryTree(n int, opts ...Option) (*WeightedGraph[int64], error) {
	return buildTree[int64](MethodBinaryTree, n, true, nil, opts)
}

// WeightedBinaryTree is BinaryTree with weights drawn from [lo, hi].
func WeightedBinaryTree[W Number](n int, lo, hi W, opts ...Option) (*WeightedGraph[W], error) {
	return buildTree(MethodBinaryTree, n, true, &weightRange[W]{lo: lo, hi: hi}, opts)
}

// weightRange carries the optional weight bounds of a weighted variant.
type weightRange[W Number] struct {
	lo, hi W
}

func buildTree[W Number](method string, n int, binary bool, wr *weightRange[W], opts []Option) (*WeightedGraph[W], error) {
	if err := validateVertices(method, n); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	edges, err := attachTree(cfg, method, n, binary)
	if err != nil {
		return nil, err
	}

	g := &WeightedGraph[W]{N: n, Edges: edges}
	applyWeights(cfg, g, wr)

	return g, nil
}

// attachTree runs the recursive-attachment construction.
func attachTree(cfg config, method string, n int, binary bool) ([]Edge, error) {
	perm := permuteInts(cfg.src, n, FirstVertexLabel)
	edges := make([]Edge, 0, n-1)

	var (
		children []int // by position in perm; only for the binary variant
		limit    int
		rejected int
	)
	if binary {
		children = make([]int, n)
		limit = cfg.budget(n)
	}

	for i := 1; i < n; i++ {
		p := cfg.src.IntN(i)
		if binary {
			for children[p] >= MaxBinaryChildren {
				rejected++
				if rejected > limit {
					return nil, fmt.Errorf("%s: %d parent re-draws at vertex %d/%d: %w",
						method, rejected, i, n, ErrGenerationExhausted)
				}
				p = cfg.src.IntN(i)
			}
			children[p]++
		}
		edges = append(edges, Edge{U: perm[i], V: perm[p]})
	}

	return edges, nil
}

// applyWeights draws one weight per edge when wr is set.
func applyWeights[W Number](cfg config, g *WeightedGraph[W], wr *weightRange[W]) {
	if wr == nil {
		return
	}
	g.Weights = make([]W, len(g.Edges))
	for i := range g.Weights {
		g.Weights[i] = draw(cfg.src, wr.lo, wr.hi)
	}
	g.Weighted = true
}
