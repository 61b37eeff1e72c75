// Package gen provides validation helpers enforcing parameter contracts.
//
// Each helper wraps the matching sentinel with method context.
package gen

import "fmt"

// validateSize ensures a length-like parameter is non-negative.
// Complexity: O(1).
func validateSize(method, name string, got int) error {
	if got < 0 {
		return fmt.Errorf("%s: %s=%d < 0: %w", method, name, got, ErrInvalidSize)
	}

	return nil
}

// validatePool ensures a candidate pool has at least one element.
// Complexity: O(1).
func validatePool(method string, size int) error {
	if size == 0 {
		return fmt.Errorf("%s: pool has no elements: %w", method, ErrEmptyPool)
	}

	return nil
}

// validateVertices ensures a tree has at least MinTreeVertices vertices.
// Complexity: O(1).
func validateVertices(method string, n int) error {
	if n < MinTreeVertices {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, MinTreeVertices, ErrInvalidVertexCount)
	}

	return nil
}

// maxSimpleEdges returns n(n-1)/2 without intermediate overflow for n ≥ 0.
func maxSimpleEdges(n int) uint64 {
	if n < 2 {
		return 0
	}
	un := uint64(n)
	if un%2 == 0 {
		return (un / 2) * (un - 1)
	}
	return un * ((un - 1) / 2)
}
