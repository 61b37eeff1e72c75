package recipe

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Bound is one end of a Range. It keeps integer scalars exact, so bounds
// beyond 2^53 survive decoding, and falls back to float64 for real values.
type Bound struct {
	i     int64
	f     float64
	exact bool
}

// Int returns an integer bound.
func Int(v int64) Bound { return Bound{i: v, exact: true} }

// Float returns a real-valued bound.
func Float(v float64) Bound { return Bound{f: v} }

// UnmarshalYAML implements yaml.Unmarshaler.
func (b *Bound) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: bound must be a number: %w", value.Line, ErrInvalidRecipe)
	}
	// Decoding a float into an int64 truncates, so only !!int scalars take
	// the exact path. Integers past int64 fall through to float64.
	if value.ShortTag() == "!!int" {
		var i int64
		if err := value.Decode(&i); err == nil {
			*b = Int(i)
			return nil
		}
	}
	var f float64
	if err := value.Decode(&f); err != nil {
		return fmt.Errorf("line %d: bound %q is not a number: %w", value.Line, value.Value, ErrInvalidRecipe)
	}
	*b = Float(f)
	return nil
}

// Int64 returns the bound as an integer. Real values must be integral and
// inside the int64 range.
func (b Bound) Int64() (int64, error) {
	if b.exact {
		return b.i, nil
	}
	// -2^63 is representable; 2^63 is not.
	if b.f != math.Trunc(b.f) || b.f < math.MinInt64 || b.f >= -math.MinInt64 {
		return 0, fmt.Errorf("bound %v is not an int64: %w", b.f, ErrInvalidRecipe)
	}
	return int64(b.f), nil
}

// Float64 returns the bound as a real value.
func (b Bound) Float64() float64 {
	if b.exact {
		return float64(b.i)
	}
	return b.f
}

// String implements fmt.Stringer.
func (b Bound) String() string {
	if b.exact {
		return fmt.Sprint(b.i)
	}
	return fmt.Sprint(b.f)
}
