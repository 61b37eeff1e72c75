// Package judgefmt serializes generated structures into the plain-text layouts
// judges read:
//
//	vectors, permutations, unique sets  one space-separated line
//	matrices                            one line per row
//	character grids                     one string per line
//	trees and graphs                    one "u v" or "u v w" line per edge
//	point sets                          one "x y" line per point
//
// Output order is exactly the structure's internal order, so snapshot tests
// over a seeded generator are stable.
//
// Writer is sticky on errors: after the first failed write every call is a
// no-op and Flush/Err report that error.
package judgefmt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/judgegen/gen"
)

// Writer buffers judge text for an underlying io.Writer.
type Writer struct {
	bw  *bufio.Writer
	err error
}

// NewWriter wraps w. Call Flush when done.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// Line writes fields separated by single spaces and a trailing newline.
func (w *Writer) Line(fields ...any) {
	w.writeLine(join(fields, " "))
}

// Text writes s followed by a newline.
func (w *Writer) Text(s string) {
	w.writeLine(s)
}

// Rows writes one string per line (character grids).
func (w *Writer) Rows(rows []string) {
	for _, r := range rows {
		w.writeLine(r)
	}
}

// Permutation writes p on one line.
func (w *Writer) Permutation(p gen.Permutation) {
	Values(w, p.Values())
}

// Points writes one "x y" line per point.
func (w *Writer) Points(ps gen.PointSet) {
	for _, p := range ps {
		w.writeLine(fmt.Sprintf("%d %d", p.X, p.Y))
	}
}

// Flush writes any buffered data and returns the first error seen.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.bw.Flush()
	return w.err
}

// Err returns the first error seen, if any.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) writeLine(s string) {
	if w.err != nil {
		return
	}
	if _, err := w.bw.WriteString(s); err != nil {
		w.err = err
		return
	}
	w.err = w.bw.WriteByte('\n')
}

// Values writes xs on one space-separated line.
func Values[T any](w *Writer, xs []T) {
	w.writeLine(join(xs, " "))
}

// Matrix writes one line per row, elements joined by sep (" " if empty).
func Matrix[T any](w *Writer, m [][]T, sep string) {
	if sep == "" {
		sep = " "
	}
	for _, row := range m {
		w.writeLine(join(row, sep))
	}
}

// UniqueSet writes the values of s on one line.
func UniqueSet[T constraints.Integer](w *Writer, s gen.UniqueSet[T]) {
	Values(w, s.Values())
}

// Graph writes one "u v" line per edge, with " w" appended when weighted.
func Graph[W gen.Number](w *Writer, g *gen.WeightedGraph[W]) {
	for i, e := range g.Edges {
		if wt, ok := g.Weight(i); ok {
			w.writeLine(fmt.Sprintf("%d %d %v", e.U, e.V, wt))
			continue
		}
		w.writeLine(fmt.Sprintf("%d %d", e.U, e.V))
	}
}

func join[T any](xs []T, sep string) string {
	return strings.Join(lo.Map(xs, func(x T, _ int) string { return fmt.Sprint(x) }), sep)
}
