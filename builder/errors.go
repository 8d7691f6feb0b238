// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w` (method tag first).
//   • Constructors never panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (n, nx, ny, point count)
// is smaller than the allowed minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that the input could not be turned into a
// valid mesh (degenerate hull, empty iso-surface, inconsistent face lists).
// Usage: if errors.Is(err, ErrConstructFailed) { /* inspect input geometry */ }.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates a meaningless parameter that must surface as
// an error rather than a panic (e.g. an unknown Platonic solid, a negative
// spacing, a face index outside the point list).
// Usage: if errors.Is(err, ErrOptionViolation) { /* correct parameter values */ }.
var ErrOptionViolation = errors.New("builder: invalid option value")

// builderErrorf prefixes a formatted message with the constructor name.
// The format may use %w to keep a sentinel reachable through errors.Is.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
