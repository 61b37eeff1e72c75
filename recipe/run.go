package recipe

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/judgegen/gen"
	"github.com/katalvlaran/judgegen/judgefmt"
	"github.com/katalvlaran/judgegen/rng"
	"github.com/katalvlaran/judgegen/verify"
)

var log = logrus.WithField("module", "recipe")

// Run validates r and writes every step to w in order. With check set, trees,
// graphs, permutations and unique sets are verified before they are printed.
// Run stops at the first failing step.
//
// Each step draws from its own stream derived from the recipe seed, so
// resizing one step leaves the output of the others unchanged.
func (r *Recipe) Run(w io.Writer, check bool) error {
	if err := r.Validate(); err != nil {
		return err
	}

	src := rng.Default()
	if r.Seed != nil {
		src = rng.New(*r.Seed)
		log.WithField("seed", *r.Seed).Debug("seeded source")
	}

	out := judgefmt.NewWriter(w)
	for i, s := range r.Steps {
		entry := log.WithFields(logrus.Fields{"step": i, "kind": s.Kind})
		opts := []gen.Option{gen.WithSource(src.Derive(uint64(i)))}
		if err := s.run(out, check, opts); err != nil {
			entry.WithError(err).Error("step failed")
			return fmt.Errorf("recipe: step %d (%s): %w", i, s.Kind, err)
		}
		entry.Debug("step written")
	}

	return out.Flush()
}

func (s Step) run(out *judgefmt.Writer, check bool, opts []gen.Option) error {
	kind, err := s.scalarKind()
	if err != nil {
		return err
	}

	switch s.Kind {
	case KindValue:
		return s.runValue(out, kind, opts)
	case KindVector:
		return s.runVector(out, kind, opts)
	case KindMatrix:
		return s.runMatrix(out, kind, opts)
	case KindString:
		str, err := gen.StringFrom(s.N, s.pool(), opts...)
		if err != nil {
			return err
		}
		s.header(out, s.N)
		out.Text(str)
	case KindGrid:
		rows, err := gen.Grid(s.N, s.M, s.pool(), opts...)
		if err != nil {
			return err
		}
		s.header(out, s.N, s.M)
		out.Rows(rows)
	case KindPermutation:
		p, err := gen.Permute(s.N, s.start(), opts...)
		if err != nil {
			return err
		}
		if check {
			if err := verify.Permutation(p.Values(), p.Start()); err != nil {
				return err
			}
		}
		s.header(out, s.N)
		out.Permutation(p)
	case KindUnique:
		lo, hi, err := s.Range.Ints()
		if err != nil {
			return err
		}
		set, err := gen.UniqueSample(s.N, lo, hi, opts...)
		if err != nil {
			return err
		}
		if check {
			if err := verify.Unique(set.Values(), lo, hi); err != nil {
				return err
			}
		}
		log.WithField("strategy", set.Strategy()).Trace("unique sample")
		s.header(out, s.N)
		judgefmt.UniqueSet(out, set)
	case KindTree, KindBinaryTree, KindGraph:
		if kind == gen.KindFloat {
			return runGraph[float64](s, out, check, opts)
		}
		return runGraph[int64](s, out, check, opts)
	case KindPoints:
		lo, hi, err := s.Range.Ints()
		if err != nil {
			return err
		}
		ps, err := gen.Points(s.N, int(lo), int(hi), opts...)
		if err != nil {
			return err
		}
		s.header(out, s.N)
		out.Points(ps)
	default:
		return fmt.Errorf("unknown kind %q: %w", s.Kind, ErrInvalidRecipe)
	}

	return out.Err()
}

func (s Step) runValue(out *judgefmt.Writer, kind gen.Kind, opts []gen.Option) error {
	switch kind {
	case gen.KindChar:
		r, err := gen.PickRune(s.pool(), opts...)
		if err != nil {
			return err
		}
		out.Line(string(r))
	case gen.KindFloat:
		lo, hi := s.Range.Floats()
		out.Line(gen.Value(lo, hi, opts...))
	default:
		lo, hi, err := s.Range.Ints()
		if err != nil {
			return err
		}
		out.Line(gen.Value(lo, hi, opts...))
	}
	return out.Err()
}

func (s Step) runVector(out *judgefmt.Writer, kind gen.Kind, opts []gen.Option) error {
	switch kind {
	case gen.KindChar:
		str, err := gen.StringFrom(s.N, s.pool(), opts...)
		if err != nil {
			return err
		}
		s.header(out, s.N)
		out.Text(str)
	case gen.KindFloat:
		lo, hi := s.Range.Floats()
		xs, err := gen.Vector(s.N, lo, hi, opts...)
		if err != nil {
			return err
		}
		s.header(out, s.N)
		judgefmt.Values(out, xs)
	default:
		lo, hi, err := s.Range.Ints()
		if err != nil {
			return err
		}
		xs, err := gen.Vector(s.N, lo, hi, opts...)
		if err != nil {
			return err
		}
		s.header(out, s.N)
		judgefmt.Values(out, xs)
	}
	return out.Err()
}

func (s Step) runMatrix(out *judgefmt.Writer, kind gen.Kind, opts []gen.Option) error {
	switch kind {
	case gen.KindChar:
		rows, err := gen.Grid(s.N, s.M, s.pool(), opts...)
		if err != nil {
			return err
		}
		s.header(out, s.N, s.M)
		out.Rows(rows)
	case gen.KindFloat:
		lo, hi := s.Range.Floats()
		m, err := gen.Matrix(s.N, s.M, lo, hi, opts...)
		if err != nil {
			return err
		}
		s.header(out, s.N, s.M)
		judgefmt.Matrix(out, m, " ")
	default:
		lo, hi, err := s.Range.Ints()
		if err != nil {
			return err
		}
		m, err := gen.Matrix(s.N, s.M, lo, hi, opts...)
		if err != nil {
			return err
		}
		s.header(out, s.N, s.M)
		judgefmt.Matrix(out, m, " ")
	}
	return out.Err()
}

// runGraph builds a tree, binary tree or graph with weights of type W when
// the step has a weight range.
func runGraph[W gen.Number](s Step, out *judgefmt.Writer, check bool, opts []gen.Option) error {
	g, err := buildGraph[W](s, opts)
	if err != nil {
		return err
	}
	if check {
		switch s.Kind {
		case KindTree:
			err = verify.Tree(g)
		case KindBinaryTree:
			err = verify.BinaryTree(g)
		default:
			err = verify.SimpleGraph(g, s.M)
		}
		if err != nil {
			return err
		}
	}

	if s.Kind == KindGraph {
		s.header(out, g.N, g.EdgeCount())
	} else {
		s.header(out, g.N)
	}
	judgefmt.Graph(out, g)
	return out.Err()
}

func buildGraph[W gen.Number](s Step, opts []gen.Option) (*gen.WeightedGraph[W], error) {
	if s.Weights == nil {
		// Unweighted results carry no weights, so W only names the type.
		var g *gen.WeightedGraph[int64]
		var err error
		switch s.Kind {
		case KindTree:
			g, err = gen.Tree(s.N, opts...)
		case KindBinaryTree:
			g, err = gen.BinaryTree(s.N, opts...)
		default:
			g, err = gen.SimpleGraph(s.N, s.M, opts...)
		}
		if err != nil {
			return nil, err
		}
		return &gen.WeightedGraph[W]{N: g.N, Edges: g.Edges}, nil
	}

	lo, hi, err := weightBounds[W](*s.Weights)
	if err != nil {
		return nil, err
	}
	switch s.Kind {
	case KindTree:
		return gen.WeightedTree(s.N, lo, hi, opts...)
	case KindBinaryTree:
		return gen.WeightedBinaryTree(s.N, lo, hi, opts...)
	default:
		return gen.WeightedSimpleGraph(s.N, s.M, lo, hi, opts...)
	}
}

// weightBounds converts r to W, exactly for integer W.
func weightBounds[W gen.Number](r Range) (W, W, error) {
	if gen.KindOf[W]() == gen.KindFloat {
		lo, hi := r.Floats()
		return W(lo), W(hi), nil
	}
	lo, hi, err := r.Ints()
	if err != nil {
		return 0, 0, err
	}
	return W(lo), W(hi), nil
}

// header writes the size line when the step asks for one.
func (s Step) header(out *judgefmt.Writer, sizes ...int) {
	if !s.Header {
		return
	}
	fields := make([]any, len(sizes))
	for i, n := range sizes {
		fields[i] = n
	}
	out.Line(fields...)
}
