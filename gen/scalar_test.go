package gen_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/judgegen/gen"
	"github.com/katalvlaran/judgegen/rng"
)

// TestValue_Bounds draws many values per type and checks they stay in range.
func TestValue_Bounds(t *testing.T) {
	t.Parallel()

	src := rng.New(1)
	for i := 0; i < 2000; i++ {
		v := gen.Value(-3, 5, gen.WithSource(src))
		assert.GreaterOrEqual(t, v, -3)
		assert.LessOrEqual(t, v, 5)

		u := gen.Value[uint8](250, 255, gen.WithSource(src))
		assert.GreaterOrEqual(t, u, uint8(250))

		f := gen.Value(0.5, 1.5, gen.WithSource(src))
		assert.GreaterOrEqual(t, f, 0.5)
		assert.LessOrEqual(t, f, 1.5)

		c := gen.Value[byte]('a', 'z', gen.WithSource(src))
		assert.True(t, c >= 'a' && c <= 'z', "char %q out of range", c)
	}
}

// TestValue_ReversedBounds verifies Value(7,3) behaves like Value(3,7):
// same seed, same draw.
func TestValue_ReversedBounds(t *testing.T) {
	t.Parallel()

	for seed := uint64(0); seed < 50; seed++ {
		a := gen.Value(7, 3, gen.WithSeed(seed))
		b := gen.Value(3, 7, gen.WithSeed(seed))
		assert.Equal(t, b, a, "seed %d", seed)
		assert.True(t, a >= 3 && a <= 7)
	}
}

// TestValue_Coverage checks that every value of a small range is reachable.
func TestValue_Coverage(t *testing.T) {
	t.Parallel()

	src := rng.New(5)
	hits := map[int]int{}
	for i := 0; i < 5000; i++ {
		hits[gen.Value(1, 6, gen.WithSource(src))]++
	}
	for v := 1; v <= 6; v++ {
		assert.Greater(t, hits[v], 600, "value %d underrepresented", v)
	}
}

// TestValue_FullWidth exercises ranges whose span overflows a signed type.
func TestValue_FullWidth(t *testing.T) {
	t.Parallel()

	src := rng.New(9)
	for i := 0; i < 100; i++ {
		_ = gen.Value[int64](math.MinInt64, math.MaxInt64, gen.WithSource(src))
		v := gen.Value[int8](-128, 127, gen.WithSource(src))
		assert.True(t, v >= -128 && v <= 127)
	}
	assert.Equal(t, int64(42), gen.Value[int64](42, 42))
	assert.Equal(t, 2.5, gen.Value(2.5, 2.5))
	f := gen.Value(-math.MaxFloat64, math.MaxFloat64, gen.WithSource(src))
	assert.False(t, math.IsInf(f, 0) || math.IsNaN(f))
}

// TestKindOf checks the compile-time kind tag per instantiation.
func TestKindOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, gen.KindInteger, gen.KindOf[int]())
	assert.Equal(t, gen.KindInteger, gen.KindOf[uint64]())
	assert.Equal(t, gen.KindInteger, gen.KindOf[byte]())
	assert.Equal(t, gen.KindFloat, gen.KindOf[float32]())
	assert.Equal(t, gen.KindFloat, gen.KindOf[float64]())
}

// TestParseKind covers accepted names and the UnsupportedType failure.
func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want gen.Kind
		err  error
	}{
		{"int", gen.KindInteger, nil},
		{" Integer ", gen.KindInteger, nil},
		{"double", gen.KindFloat, nil},
		{"char", gen.KindChar, nil},
		{"complex", 0, gen.ErrUnsupportedType},
		{"", 0, gen.ErrUnsupportedType},
	}
	for _, tc := range tests {
		got, err := gen.ParseKind(tc.in)
		if tc.err != nil {
			assert.True(t, errors.Is(err, tc.err), "ParseKind(%q): got %v", tc.in, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
		assert.NotEmpty(t, got.String())
	}
}

// TestPick covers pool sampling and the EmptyPool failure for every pool form.
func TestPick(t *testing.T) {
	t.Parallel()

	pool := []string{"x", "y", "z"}
	for i := 0; i < 100; i++ {
		v, err := gen.Pick(pool, gen.WithSeed(uint64(i)))
		require.NoError(t, err)
		assert.Contains(t, pool, v)
	}

	b, err := gen.PickByte("ab")
	require.NoError(t, err)
	assert.Contains(t, []byte("ab"), b)

	r, err := gen.PickRune("αβ")
	require.NoError(t, err)
	assert.Contains(t, []rune("αβ"), r)

	_, err = gen.Pick([]int{})
	assert.ErrorIs(t, err, gen.ErrEmptyPool)
	_, err = gen.PickByte("")
	assert.ErrorIs(t, err, gen.ErrEmptyPool)
	_, err = gen.PickRune("")
	assert.ErrorIs(t, err, gen.ErrEmptyPool)
}
