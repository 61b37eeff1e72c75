package gen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/judgegen/gen"
	"github.com/katalvlaran/judgegen/verify"
)

// TestTree_Structure runs the union-find tree check over many sizes and seeds.
func TestTree_Structure(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 3, 10, 257} {
		for seed := uint64(0); seed < 10; seed++ {
			g, err := gen.Tree(n, gen.WithSeed(seed))
			require.NoError(t, err)
			assert.Equal(t, n, g.N)
			assert.Equal(t, n-1, g.EdgeCount())
			assert.False(t, g.Weighted)
			assert.Empty(t, g.Weights)
			require.NoError(t, verify.Tree(g), "n=%d seed=%d", n, seed)
		}
	}
}

// TestTree_ParentPrecedesChild checks the recursive-attachment order: every
// edge's parent (V) was placed before its child (U).
func TestTree_ParentPrecedesChild(t *testing.T) {
	t.Parallel()

	g, err := gen.Tree(100, gen.WithSeed(77))
	require.NoError(t, err)

	placed := map[int]bool{}
	for i, e := range g.Edges {
		if i == 0 {
			placed[e.V] = true
		}
		assert.True(t, placed[e.V], "parent %d of %d not yet placed", e.V, e.U)
		assert.False(t, placed[e.U], "child %d already placed", e.U)
		placed[e.U] = true
	}
}

// TestWeightedTree checks weight count, range and the weighted flag.
func TestWeightedTree(t *testing.T) {
	t.Parallel()

	g, err := gen.WeightedTree(50, 100, 1, gen.WithSeed(4))
	require.NoError(t, err)
	require.NoError(t, verify.Tree(g))
	require.True(t, g.Weighted)
	require.Len(t, g.Weights, g.EdgeCount())
	for i := range g.Edges {
		w, ok := g.Weight(i)
		require.True(t, ok)
		assert.True(t, w >= 1 && w <= 100)
	}

	single, err := gen.WeightedTree(1, 0.0, 1.0)
	require.NoError(t, err)
	assert.True(t, single.Weighted)
	assert.Empty(t, single.Edges)
	assert.Empty(t, single.Weights)
}

// TestBinaryTree_Degree checks the tree invariants plus at most two children.
func TestBinaryTree_Degree(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 3, 4, 64, 1000} {
		for seed := uint64(0); seed < 5; seed++ {
			g, err := gen.BinaryTree(n, gen.WithSeed(seed))
			require.NoError(t, err)
			require.NoError(t, verify.BinaryTree(g), "n=%d seed=%d", n, seed)
		}
	}

	w, err := gen.WeightedBinaryTree[int64](30, -5, 5, gen.WithSeed(8))
	require.NoError(t, err)
	require.NoError(t, verify.BinaryTree(w))
	assert.Len(t, w.Weights, 29)
}

// TestBinaryTree_Exhausted forces parent re-draws past a budget of one.
// With 200 vertices a sizeable share of placed vertices is full at every
// step, so dozens of re-draws happen per build.
func TestBinaryTree_Exhausted(t *testing.T) {
	t.Parallel()

	failed := false
	for seed := uint64(0); seed < 20 && !failed; seed++ {
		_, err := gen.BinaryTree(200, gen.WithSeed(seed), gen.WithMaxAttempts(1))
		if err != nil {
			require.ErrorIs(t, err, gen.ErrGenerationExhausted)
			failed = true
		}
	}
	assert.True(t, failed, "a budget of one re-draw must be exceeded for n=200")
}

// TestTree_Errors covers InvalidVertexCount for every tree generator.
func TestTree_Errors(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, -3} {
		_, err := gen.Tree(n)
		assert.ErrorIs(t, err, gen.ErrInvalidVertexCount)
		_, err = gen.WeightedTree(n, 1, 2)
		assert.ErrorIs(t, err, gen.ErrInvalidVertexCount)
		_, err = gen.BinaryTree(n)
		assert.ErrorIs(t, err, gen.ErrInvalidVertexCount)
		_, err = gen.WeightedBinaryTree(n, 1.0, 2.0)
		assert.ErrorIs(t, err, gen.ErrInvalidVertexCount)
	}
}
