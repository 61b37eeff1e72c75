package judgefmt_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/judgegen/gen"
	"github.com/katalvlaran/judgegen/judgefmt"
)

// TestWriter_Layouts checks every judge layout against a literal snapshot.
func TestWriter_Layouts(t *testing.T) {
	t.Parallel()

	perm, err := gen.NewPermutation([]int{3, 1, 2}, 1)
	require.NoError(t, err)
	set, err := gen.NewUniqueSet([]int{9, 4}, 1, 10)
	require.NoError(t, err)

	var buf bytes.Buffer
	w := judgefmt.NewWriter(&buf)
	w.Line(5, 7)
	judgefmt.Values(w, []int{1, 2, 3})
	judgefmt.Matrix(w, [][]int{{1, 2}, {3, 4}}, "")
	judgefmt.Matrix(w, [][]string{{"a", "b"}}, ",")
	w.Rows([]string{"#.", ".#"})
	w.Permutation(perm)
	judgefmt.UniqueSet(w, set)
	w.Points(gen.PointSet{{X: 1, Y: -2}, {X: 0, Y: 0}})
	w.Text("abc")
	require.NoError(t, w.Flush())

	want := "5 7\n" +
		"1 2 3\n" +
		"1 2\n3 4\n" +
		"a,b\n" +
		"#.\n.#\n" +
		"3 1 2\n" +
		"9 4\n" +
		"1 -2\n0 0\n" +
		"abc\n"
	assert.Equal(t, want, buf.String())
}

// TestWriter_Graph covers weighted and unweighted edge lines in insertion order.
func TestWriter_Graph(t *testing.T) {
	t.Parallel()

	edges := []gen.Edge{{U: 2, V: 1}, {U: 3, V: 1}}
	plain := &gen.WeightedGraph[int64]{N: 3, Edges: edges}
	weighted := &gen.WeightedGraph[float64]{N: 3, Edges: edges, Weights: []float64{1.5, 7}, Weighted: true}

	var buf bytes.Buffer
	w := judgefmt.NewWriter(&buf)
	judgefmt.Graph(w, plain)
	judgefmt.Graph(w, weighted)
	require.NoError(t, w.Flush())

	assert.Equal(t, "2 1\n3 1\n2 1 1.5\n3 1 7\n", buf.String())
}

// TestWriter_SeededSnapshot pins the output of a seeded tree: same seed, same text.
func TestWriter_SeededSnapshot(t *testing.T) {
	t.Parallel()

	render := func() string {
		g, err := gen.WeightedTree(6, 1, 9, gen.WithSeed(2024))
		require.NoError(t, err)
		var buf bytes.Buffer
		w := judgefmt.NewWriter(&buf)
		judgefmt.Graph(w, g)
		require.NoError(t, w.Flush())
		return buf.String()
	}

	first := render()
	assert.Equal(t, first, render())
	assert.Equal(t, 5, bytes.Count([]byte(first), []byte("\n")))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

// TestWriter_StickyError verifies the first error is kept and reported.
func TestWriter_StickyError(t *testing.T) {
	t.Parallel()

	w := judgefmt.NewWriter(failingWriter{})
	w.Text("x")
	err := w.Flush()
	require.Error(t, err)
	w.Text("y")
	assert.Equal(t, err, w.Err())
	assert.Equal(t, err, w.Flush())
}
