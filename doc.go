// Package judgegen generates randomized, structurally valid test data for
// programming-contest judges: scalars, vectors, matrices, strings, character
// grids, permutations, unique samples, trees, binary trees, simple graphs and
// point sets.
//
// 🚀 What is judgegen?
//
//	A small generator library plus a CLI around it:
//		• Scalars & collections: uniform values over any integer or float type
//		• Sequences: permutations of start..start+n-1, unique samples
//		• Structures: random recursive trees, binary trees, connected-backbone graphs
//		• Geometry: lattice point sets
//		• Output: judge text layouts, verified structures, YAML recipes
//
// ✨ Guarantees
//
//   - Trees have n-1 edges and form one component over labels 1..n
//   - Graphs never contain self-loops or duplicate unordered pairs
//   - Every rejection loop is bounded and fails with gen.ErrGenerationExhausted
//   - Equal seeds give identical output
//
// Under the hood:
//
//	rng/          seeded or process-wide random source, safe for concurrent use
//	gen/          the generators, functional options and sentinel errors
//	verify/       union-find and set checks for generated structures
//	judgefmt/     plain-text judge layouts over io.Writer
//	recipe/       YAML descriptions of whole test files
//	cmd/judgegen/ the command-line driver
//
// Quick example:
//
//	g, err := gen.Tree(5, gen.WithSeed(42))
//	if err != nil { ... }
//	w := judgefmt.NewWriter(os.Stdout)
//	judgefmt.Graph(w, g) // four "child parent" lines
//	_ = w.Flush()
//
//	go install github.com/katalvlaran/judgegen/cmd/judgegen@latest
package judgegen
