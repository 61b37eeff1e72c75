package gen_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/judgegen/gen"
	"github.com/katalvlaran/judgegen/verify"
)

// TestPermute_Bijection checks sorted output equals the identity range for
// several sizes and starts.
func TestPermute_Bijection(t *testing.T) {
	t.Parallel()

	for _, start := range []int{-5, 0, 1, 100} {
		for _, n := range []int{0, 1, 2, 17, 500} {
			p, err := gen.Permute(n, start, gen.WithSeed(uint64(n*31+start)))
			require.NoError(t, err)
			assert.Equal(t, n, p.Len())
			assert.Equal(t, start, p.Start())
			require.NoError(t, verify.Permutation(p.Values(), start), "n=%d start=%d", n, start)
		}
	}
}

// TestPermute_AllOrderings checks all 3! orderings of {1,2,3} appear with
// comparable frequency.
func TestPermute_AllOrderings(t *testing.T) {
	t.Parallel()

	counts := map[string]int{}
	const rounds = 6000
	for i := 0; i < rounds; i++ {
		p, err := gen.Permute(3, 1, gen.WithSeed(uint64(i)))
		require.NoError(t, err)
		counts[fmt.Sprint(p.Values())]++
	}
	require.Len(t, counts, 6)
	for k, c := range counts {
		assert.InDelta(t, 1000, c, 200, "ordering %s", k)
	}
}

// TestPermute_Errors covers InvalidSize.
func TestPermute_Errors(t *testing.T) {
	t.Parallel()

	_, err := gen.Permute(-1, 1)
	assert.ErrorIs(t, err, gen.ErrInvalidSize)
}

// TestNewPermutation validates the wrapping constructor and copy semantics.
func TestNewPermutation(t *testing.T) {
	t.Parallel()

	src := []int{2, 0, 1}
	p, err := gen.NewPermutation(src, 0)
	require.NoError(t, err)
	src[0] = 99
	assert.Equal(t, 2, p.At(0), "NewPermutation must copy its input")

	vals := p.Values()
	vals[1] = 42
	assert.Equal(t, 0, p.At(1), "Values must return a copy")

	for _, bad := range [][]int{{1, 1}, {0, 2}, {-1, 0}} {
		_, err := gen.NewPermutation(bad, 0)
		assert.ErrorIs(t, err, gen.ErrNotPermutation, "%v", bad)
	}
}
