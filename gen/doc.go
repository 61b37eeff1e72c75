// Package gen produces randomized, structurally valid test data for judged
// programs: scalars, vectors, matrices, strings, unique sets, permutations,
// trees, binary trees, simple graphs and point sets.
//
// The package offers the following key components:
//
//   - Scalar samplers:
//     – Value:            uniform over [lo, hi] for any integer or float type.
//     – Pick, PickByte, PickRune: uniform element of a non-empty pool.
//     – Kind, KindOf, ParseKind: closed scalar kind tag.
//   - Collections (independent draws, duplicates allowed):
//     – Vector, VectorFrom, Matrix, MatrixFrom, String, StringFrom, Grid.
//   - Uniqueness engine:
//     – UniqueSample:     n distinct values; shuffle-all when the domain is at
//     most DefaultDensityThreshold·n, rejection sampling otherwise.
//   - Permutations:
//     – Permute, NewPermutation.
//   - Structures (vertex labels 1..n, edges in insertion order):
//     – Tree, WeightedTree:             random recursive trees.
//     – BinaryTree, WeightedBinaryTree: at most two children per vertex.
//     – SimpleGraph, WeightedSimpleGraph: exactly m edges, no loops/duplicates.
//   - Geometry:
//     – Points, PointsIn.
//
// Randomness:
//
// Every call draws from rng.Default() unless WithSeed or WithSource is given.
// The default engine is seeded once per process and serializes concurrent use.
//
// Guarantees:
//
//   - All-or-nothing: a failed call returns no structure.
//   - Sentinel errors (ErrInvalidSize, ErrTooManyEdges, ...) wrapped with the
//     method name; branch with errors.Is.
//   - Rejection loops are bounded (WithMaxAttempts) and fail with
//     ErrGenerationExhausted instead of spinning.
//   - Same seed, same parameters ⇒ same result.
package gen
