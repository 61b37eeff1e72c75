// Package recipe describes a judge test file as a YAML list of generation
// steps and runs it through gen and judgefmt.
//
//	seed: 42
//	steps:
//	  - kind: tree
//	    n: 5
//	    weights: {lo: 1, hi: 100}
//	    header: true
//
// Load decodes strictly (unknown fields are rejected), Validate reports every
// invalid step at once, and Run writes the steps in order.
package recipe

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/judgegen/gen"
)

// Step kinds.
const (
	KindValue       = "value"
	KindVector      = "vector"
	KindMatrix      = "matrix"
	KindString      = "string"
	KindGrid        = "grid"
	KindPermutation = "permutation"
	KindUnique      = "unique"
	KindTree        = "tree"
	KindBinaryTree  = "binary_tree"
	KindGraph       = "graph"
	KindPoints      = "points"
)

// DefaultPool is used by string, grid and char steps without a pool.
const DefaultPool = "abcdefghijklmnopqrstuvwxyz"

// ErrInvalidRecipe wraps every validation failure.
var ErrInvalidRecipe = errors.New("recipe: invalid recipe")

// Range is an inclusive [Lo, Hi] bound. Order does not matter.
type Range struct {
	Lo Bound `yaml:"lo"`
	Hi Bound `yaml:"hi"`
}

// Ints returns the bounds as ordered int64 values. Both must be exact
// integers (see Bound.Int64).
func (r Range) Ints() (int64, int64, error) {
	lo, err := r.Lo.Int64()
	if err != nil {
		return 0, 0, fmt.Errorf("lo: %w", err)
	}
	hi, err := r.Hi.Int64()
	if err != nil {
		return 0, 0, fmt.Errorf("hi: %w", err)
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi, nil
}

// Floats returns the bounds as real values in the given order.
func (r Range) Floats() (float64, float64) {
	return r.Lo.Float64(), r.Hi.Float64()
}

// Step is one block of output.
//
// N is the length, vertex count, point count or row count depending on Kind.
// M is the edge count for graphs and the column count for matrices and grids.
// Type selects the scalar kind for values, vectors, matrices and weights.
type Step struct {
	Kind    string `yaml:"kind"`
	Type    string `yaml:"type,omitempty"`
	N       int    `yaml:"n"`
	M       int    `yaml:"m,omitempty"`
	Start   *int   `yaml:"start,omitempty"`
	Range   *Range `yaml:"range,omitempty"`
	Pool    string `yaml:"pool,omitempty"`
	Weights *Range `yaml:"weights,omitempty"`
	Header  bool   `yaml:"header,omitempty"`
}

// Recipe is a seed plus an ordered list of steps.
type Recipe struct {
	Seed  *uint64 `yaml:"seed,omitempty"`
	Steps []Step  `yaml:"steps"`
}

// Load decodes a recipe from r. Unknown fields are an error.
func Load(r io.Reader) (*Recipe, error) {
	var rec Recipe
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&rec); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("recipe: empty document: %w", ErrInvalidRecipe)
		}
		return nil, fmt.Errorf("recipe: decode: %w", err)
	}

	return &rec, nil
}

// LoadFile reads and decodes the recipe at path.
func LoadFile(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("recipe: unable to read '%s': %w", path, err)
	}
	rec, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe '%s': %w", path, err)
	}

	return rec, nil
}

// Validate checks every step and returns all problems as one error, or nil.
func (r *Recipe) Validate() error {
	var errs error
	if len(r.Steps) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("recipe: no steps: %w", ErrInvalidRecipe))
	}
	for i, s := range r.Steps {
		if err := s.validate(); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("recipe: step %d (%s): %w", i, s.Kind, err))
		}
	}

	return errs
}

func (s Step) validate() error {
	kind, err := s.scalarKind()
	if err != nil {
		return err
	}

	switch s.Kind {
	case KindValue:
		return s.needRange(kind)
	case KindVector, KindPermutation, KindString, KindPoints:
		if err := s.needSize("n", s.N); err != nil {
			return err
		}
		if s.Kind == KindPoints && kind != gen.KindInteger {
			return fmt.Errorf("point coordinates must be integers, got %s: %w", kind, ErrInvalidRecipe)
		}
		if s.Kind == KindVector || s.Kind == KindPoints {
			return s.needRange(kind)
		}
		if s.Kind == KindString {
			return s.needPool()
		}
		return nil
	case KindMatrix, KindGrid:
		if err := s.needSize("n", s.N); err != nil {
			return err
		}
		if err := s.needSize("m", s.M); err != nil {
			return err
		}
		if s.Kind == KindGrid {
			return s.needPool()
		}
		return s.needRange(kind)
	case KindUnique:
		if err := s.needSize("n", s.N); err != nil {
			return err
		}
		if kind != gen.KindInteger {
			return fmt.Errorf("unique values must be integers, got %s: %w", kind, ErrInvalidRecipe)
		}
		if err := s.needRange(kind); err != nil {
			return err
		}
		lo, hi, _ := s.Range.Ints()
		if width := uint64(hi - lo); width != math.MaxUint64 && uint64(s.N) > width+1 {
			return fmt.Errorf("n=%d exceeds the %d values in range: %w", s.N, width+1, gen.ErrRangeTooSmall)
		}
		return nil
	case KindTree, KindBinaryTree:
		if s.N < gen.MinTreeVertices {
			return fmt.Errorf("n=%d < %d: %w", s.N, gen.MinTreeVertices, gen.ErrInvalidVertexCount)
		}
		return s.weightType(kind)
	case KindGraph:
		if s.N < 0 || s.M < 0 {
			return fmt.Errorf("n=%d, m=%d: %w", s.N, s.M, gen.ErrInvalidGraphParameters)
		}
		if limit := int64(s.N) * int64(s.N-1) / 2; int64(s.M) > limit {
			return fmt.Errorf("m=%d > %d: %w", s.M, limit, gen.ErrTooManyEdges)
		}
		return s.weightType(kind)
	default:
		return fmt.Errorf("unknown kind %q: %w", s.Kind, ErrInvalidRecipe)
	}
}

// scalarKind resolves Type, defaulting to integers.
func (s Step) scalarKind() (gen.Kind, error) {
	if s.Type == "" {
		return gen.KindInteger, nil
	}
	return gen.ParseKind(s.Type)
}

func (s Step) needSize(name string, v int) error {
	if v < 0 {
		return fmt.Errorf("%s=%d < 0: %w", name, v, gen.ErrInvalidSize)
	}
	return nil
}

// needRange requires a range for numeric kinds; chars draw from the pool.
func (s Step) needRange(kind gen.Kind) error {
	if kind == gen.KindChar {
		return s.needPool()
	}
	if s.Range == nil {
		return fmt.Errorf("missing range: %w", ErrInvalidRecipe)
	}
	if kind == gen.KindInteger {
		if _, _, err := s.Range.Ints(); err != nil {
			return fmt.Errorf("range: %w", err)
		}
	}
	return nil
}

func (s Step) needPool() error {
	if s.Pool != "" && !utf8.ValidString(s.Pool) {
		return fmt.Errorf("pool is not valid UTF-8: %w", ErrInvalidRecipe)
	}
	return nil
}

func (s Step) weightType(kind gen.Kind) error {
	if s.Weights == nil {
		return nil
	}
	switch kind {
	case gen.KindChar:
		return fmt.Errorf("weights cannot be chars: %w", ErrInvalidRecipe)
	case gen.KindInteger:
		if _, _, err := s.Weights.Ints(); err != nil {
			return fmt.Errorf("weights: %w", err)
		}
	}
	return nil
}

// pool returns Pool or DefaultPool.
func (s Step) pool() string {
	if s.Pool == "" {
		return DefaultPool
	}
	return s.Pool
}

// start returns the permutation start, 1 when unset.
func (s Step) start() int {
	if s.Start == nil {
		return gen.FirstVertexLabel
	}
	return *s.Start
}
