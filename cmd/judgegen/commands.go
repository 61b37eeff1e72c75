package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/judgegen/recipe"
)

func (d *driver) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <recipe.yaml>...",
		Short: "run recipe files in order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				rec, err := recipe.LoadFile(path)
				if err != nil {
					return err
				}
				log.WithField("recipe", path).Debug("loaded")
				if err := d.execute(cmd, rec); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// weightFlags registers optional weight bounds; weights are emitted only when
// --weighted is set.
type weightFlags struct {
	weighted bool
	float    bool
	lo, hi   float64
}

func (w *weightFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&w.weighted, "weighted", false, "append a weight to every edge")
	cmd.Flags().BoolVar(&w.float, "float", false, "use real-valued weights")
	cmd.Flags().Float64Var(&w.lo, "wlo", 1, "lowest weight")
	cmd.Flags().Float64Var(&w.hi, "whi", 1e9, "highest weight")
}

func (w *weightFlags) apply(step *recipe.Step) {
	if !w.weighted {
		return
	}
	step.Weights = &recipe.Range{Lo: recipe.Float(w.lo), Hi: recipe.Float(w.hi)}
	if w.float {
		step.Type = "float"
	}
}

func (d *driver) treeCmd() *cobra.Command {
	var (
		n      int
		binary bool
		header bool
		wf     weightFlags
	)
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "print a random tree on vertices 1..n",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			step := recipe.Step{Kind: recipe.KindTree, N: n, Header: header}
			if binary {
				step.Kind = recipe.KindBinaryTree
			}
			wf.apply(&step)
			return d.single(cmd, step)
		},
	}
	cmd.Flags().IntVarP(&n, "vertices", "n", 10, "vertex count")
	cmd.Flags().BoolVar(&binary, "binary", false, "limit every vertex to two children")
	cmd.Flags().BoolVar(&header, "header", false, "print n first")
	wf.register(cmd)

	return cmd
}

func (d *driver) graphCmd() *cobra.Command {
	var (
		n, m   int
		header bool
		wf     weightFlags
	)
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "print a random simple graph with n vertices and m edges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			step := recipe.Step{Kind: recipe.KindGraph, N: n, M: m, Header: header}
			wf.apply(&step)
			return d.single(cmd, step)
		},
	}
	cmd.Flags().IntVarP(&n, "vertices", "n", 10, "vertex count")
	cmd.Flags().IntVarP(&m, "edges", "m", 15, "edge count")
	cmd.Flags().BoolVar(&header, "header", false, "print n m first")
	wf.register(cmd)

	return cmd
}

func (d *driver) permCmd() *cobra.Command {
	var (
		n, start int
		header   bool
	)
	cmd := &cobra.Command{
		Use:   "perm",
		Short: "print a random permutation of start..start+n-1",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return d.single(cmd, recipe.Step{Kind: recipe.KindPermutation, N: n, Start: &start, Header: header})
		},
	}
	cmd.Flags().IntVarP(&n, "length", "n", 10, "length")
	cmd.Flags().IntVar(&start, "start", 1, "smallest value")
	cmd.Flags().BoolVar(&header, "header", false, "print n first")

	return cmd
}

func (d *driver) uniqueCmd() *cobra.Command {
	var (
		n      int
		lo, hi int64
		header bool
	)
	cmd := &cobra.Command{
		Use:   "unique",
		Short: "print n distinct integers from [lo, hi]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return d.single(cmd, recipe.Step{
				Kind:   recipe.KindUnique,
				N:      n,
				Range:  &recipe.Range{Lo: recipe.Int(lo), Hi: recipe.Int(hi)},
				Header: header,
			})
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 10, "count")
	cmd.Flags().Int64Var(&lo, "lo", 1, "lower bound")
	cmd.Flags().Int64Var(&hi, "hi", 1_000_000_000, "upper bound")
	cmd.Flags().BoolVar(&header, "header", false, "print n first")

	return cmd
}

func (d *driver) pointsCmd() *cobra.Command {
	var (
		n      int
		lo, hi int64
		header bool
	)
	cmd := &cobra.Command{
		Use:   "points",
		Short: "print n lattice points with both coordinates in [lo, hi]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return d.single(cmd, recipe.Step{
				Kind:   recipe.KindPoints,
				N:      n,
				Range:  &recipe.Range{Lo: recipe.Int(lo), Hi: recipe.Int(hi)},
				Header: header,
			})
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 10, "count")
	cmd.Flags().Int64Var(&lo, "lo", -1000, "lower bound")
	cmd.Flags().Int64Var(&hi, "hi", 1000, "upper bound")
	cmd.Flags().BoolVar(&header, "header", false, "print n first")

	return cmd
}
