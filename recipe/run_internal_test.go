package recipe

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/judgegen/gen"
	"github.com/katalvlaran/judgegen/judgefmt"
)

// TestStep_FailureWritesNothing runs steps whose range cannot be resolved and
// checks that no header line is written ahead of the failure.
func TestStep_FailureWritesNothing(t *testing.T) {
	t.Parallel()

	bad := &Range{Lo: Float(0.5), Hi: Int(3)}
	for _, s := range []Step{
		{Kind: KindVector, N: 4, Range: bad, Header: true},
		{Kind: KindMatrix, N: 2, M: 2, Range: bad, Header: true},
		{Kind: KindUnique, N: 1, Range: bad, Header: true},
	} {
		var buf bytes.Buffer
		out := judgefmt.NewWriter(&buf)
		err := s.run(out, false, []gen.Option{gen.WithSeed(1)})
		require.ErrorIs(t, err, ErrInvalidRecipe, s.Kind)
		require.NoError(t, out.Flush())
		assert.Zero(t, buf.Len(), s.Kind)
	}
}
