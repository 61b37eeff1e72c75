package gen_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/judgegen/gen"
	"github.com/katalvlaran/judgegen/verify"
)

// TestSimpleGraph_Table covers sparse, dense, backbone-only and degenerate sizes.
func TestSimpleGraph_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n, m int
	}{
		{"empty", 0, 0},
		{"single_vertex", 1, 0},
		{"partial_backbone", 10, 4},
		{"spanning_tree", 10, 9},
		{"sparse_fill", 1000, 3000},
		{"dense_fill", 30, 400},
		{"complete_K5", 5, 10},
		{"complete_K40", 40, 780},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			for seed := uint64(0); seed < 5; seed++ {
				g, err := gen.SimpleGraph(tc.n, tc.m, gen.WithSeed(seed))
				require.NoError(t, err)
				assert.Equal(t, tc.n, g.N)
				require.NoError(t, verify.SimpleGraph(g, tc.m), "seed=%d", seed)
			}
		})
	}
}

// TestSimpleGraph_BackboneConnects checks that m ≥ n-1 yields a connected
// graph, since the backbone is then a full spanning tree.
func TestSimpleGraph_BackboneConnects(t *testing.T) {
	t.Parallel()

	for seed := uint64(0); seed < 10; seed++ {
		g, err := gen.SimpleGraph(50, 60, gen.WithSeed(seed))
		require.NoError(t, err)
		assert.True(t, verify.Connected(g))

		// The first n-1 edges alone form a tree.
		backbone := &gen.WeightedGraph[int64]{N: g.N, Edges: g.Edges[:g.N-1]}
		require.NoError(t, verify.Tree(backbone))
	}
}

// TestSimpleGraph_Complete checks Graph(5,10) is K5 and Graph(5,11) fails.
func TestSimpleGraph_Complete(t *testing.T) {
	t.Parallel()

	g, err := gen.SimpleGraph(5, 10, gen.WithSeed(1))
	require.NoError(t, err)
	require.NoError(t, verify.SimpleGraph(g, 10))
	keys := map[gen.Edge]bool{}
	for _, e := range g.Edges {
		keys[e.Key()] = true
	}
	for a := 1; a <= 5; a++ {
		for b := a + 1; b <= 5; b++ {
			assert.True(t, keys[gen.Edge{U: a, V: b}], "missing %d-%d", a, b)
		}
	}

	_, err = gen.SimpleGraph(5, 11)
	assert.ErrorIs(t, err, gen.ErrTooManyEdges)
	_, err = gen.SimpleGraph(1, 1)
	assert.ErrorIs(t, err, gen.ErrTooManyEdges)
}

// TestSimpleGraph_Errors covers InvalidGraphParameters and exhaustion.
func TestSimpleGraph_Errors(t *testing.T) {
	t.Parallel()

	_, err := gen.SimpleGraph(-1, 0)
	assert.ErrorIs(t, err, gen.ErrInvalidGraphParameters)
	_, err = gen.SimpleGraph(3, -1)
	assert.ErrorIs(t, err, gen.ErrInvalidGraphParameters)
	_, err = gen.WeightedSimpleGraph(-1, -1, 1, 2)
	assert.ErrorIs(t, err, gen.ErrInvalidGraphParameters)

	// Sparse fill with a budget of one discarded pair: 2000 fill edges on 100
	// vertices (4950 pairs) collide far more often than once.
	_, err = gen.SimpleGraph(100, 2000, gen.WithSeed(2), gen.WithDensityThreshold(1), gen.WithMaxAttempts(1))
	assert.ErrorIs(t, err, gen.ErrGenerationExhausted)
}

// TestWeightedSimpleGraph checks weights are parallel to edges.
func TestWeightedSimpleGraph(t *testing.T) {
	t.Parallel()

	g, err := gen.WeightedSimpleGraph(20, 50, 1.0, 2.0, gen.WithSeed(6))
	require.NoError(t, err)
	require.NoError(t, verify.SimpleGraph(g, 50))
	require.Len(t, g.Weights, 50)
	for _, w := range g.Weights {
		assert.True(t, w >= 1.0 && w <= 2.0)
	}
}

// TestSimpleGraph_Deterministic checks equal seeds give identical edge orders.
func TestSimpleGraph_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := gen.SimpleGraph(60, 300, gen.WithSeed(99))
	require.NoError(t, err)
	b, err := gen.SimpleGraph(60, 300, gen.WithSeed(99))
	require.NoError(t, err)
	assert.Equal(t, a.Edges, b.Edges)
}

// TestSimpleGraph_HugeThreshold checks that the fill never enumerates more
// than MaxShuffleDomain free pairs, whatever the density threshold.
func TestSimpleGraph_HugeThreshold(t *testing.T) {
	t.Parallel()

	const n = 20_000 // ~2·10^8 pairs
	g, err := gen.SimpleGraph(n, n+5, gen.WithSeed(3), gen.WithDensityThreshold(math.MaxInt))
	require.NoError(t, err)
	require.NoError(t, verify.SimpleGraph(g, n+5))
}
