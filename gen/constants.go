// Package gen defines shared constants used by the generators, keeping error
// prefixes, minimum sizes and retry defaults consistent across files.
package gen

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the generator name for context.
//-----------------------------------------------------------------------------

const (
	// MethodPick is the canonical name for Pick/PickByte/PickRune.
	MethodPick = "Pick"
	// MethodParseKind is the canonical name for ParseKind.
	MethodParseKind = "ParseKind"
	// MethodVector is the canonical name for Vector/VectorFrom.
	MethodVector = "Vector"
	// MethodMatrix is the canonical name for Matrix/MatrixFrom.
	MethodMatrix = "Matrix"
	// MethodString is the canonical name for String/StringFrom.
	MethodString = "String"
	// MethodGrid is the canonical name for Grid.
	MethodGrid = "Grid"
	// MethodUniqueSample is the canonical name for UniqueSample.
	MethodUniqueSample = "UniqueSample"
	// MethodPermute is the canonical name for Permute/NewPermutation.
	MethodPermute = "Permute"
	// MethodTree is the canonical name for Tree/WeightedTree.
	MethodTree = "Tree"
	// MethodBinaryTree is the canonical name for BinaryTree/WeightedBinaryTree.
	MethodBinaryTree = "BinaryTree"
	// MethodSimpleGraph is the canonical name for SimpleGraph/WeightedSimpleGraph.
	MethodSimpleGraph = "SimpleGraph"
	// MethodPoints is the canonical name for Points/PointsIn.
	MethodPoints = "Points"
)

//-----------------------------------------------------------------------------
// Structural limits
//-----------------------------------------------------------------------------

// MinTreeVertices is the smallest vertex count accepted by tree generators.
const MinTreeVertices = 1

// MaxBinaryChildren is the attachment capacity of a binary-tree vertex.
const MaxBinaryChildren = 2

// FirstVertexLabel is the label of the first vertex; structures use 1..n.
const FirstVertexLabel = 1

//-----------------------------------------------------------------------------
// Sampling defaults
//-----------------------------------------------------------------------------

// DefaultDensityThreshold is the domain/request ratio at or below which the
// uniqueness engine materializes and shuffles the whole domain.
const DefaultDensityThreshold = 10

// MaxShuffleDomain caps how many candidates the shuffle-all path materializes
// (unique values or free vertex pairs). Larger domains always use rejection,
// whatever the density threshold.
const MaxShuffleDomain = 1 << 24

// Rejection budget when WithMaxAttempts is not set: a loop that needs k
// accepted draws may discard up to attemptFactor*k + attemptSlack draws.
const (
	attemptFactor = 32
	attemptSlack  = 64
)
