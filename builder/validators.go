// SPDX-License-Identifier: MIT
// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns a formatted error wrapping a builder sentinel
// when its precondition is violated.
package builder

import (
	"math"
)

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns "<Method>: parameter must be ≥ <min>, got <got>: ErrTooFewVertices" otherwise.
//
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, "parameter must be ≥ %d, got %d: %w", min, got, ErrTooFewVertices)
	}

	return nil
}

// validatePositive ensures that a spacing or size is finite and > 0.
func validatePositive(method, name string, x float64) error {
	if !(x > 0) || math.IsInf(x, 0) {
		return builderErrorf(method, "%s must be finite and > 0, got %g: %w", name, x, ErrOptionViolation)
	}

	return nil
}

// validateFinite ensures that every coordinate of every point is finite.
func validateFinite(method string, points [][3]float64) error {
	for i, p := range points {
		for _, c := range p {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return builderErrorf(method, "point #%d has a non-finite coordinate: %w", i, ErrOptionViolation)
			}
		}
	}

	return nil
}

// validateIndices ensures that every face index addresses an existing point.
func validateIndices(method string, faces [][]int, n int) error {
	for fi, f := range faces {
		for _, i := range f {
			if i < 0 || i >= n {
				return builderErrorf(method, "face #%d: index %d outside [0,%d): %w", fi, i, n, ErrOptionViolation)
			}
		}
	}

	return nil
}
