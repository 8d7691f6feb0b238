// SPDX-License-Identifier: MIT
// Package remesh provides tunable options and error definitions
// for iterative triangle remeshing toward a target edge length.
package remesh

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvmesh/core"
)

// Sentinel errors for remeshing.
var (
	// ErrMeshNil is returned if a nil mesh pointer is passed.
	ErrMeshNil = errors.New("remesh: mesh is nil")

	// ErrNotTriangleMesh is returned when the mesh has a non-triangular face.
	ErrNotTriangleMesh = errors.New("remesh: mesh is not a triangle mesh")

	// ErrOptionViolation is returned when an invalid Option or target is supplied.
	ErrOptionViolation = errors.New("remesh: invalid option supplied")

	// ErrStop may be returned by a Callback to end remeshing early
	// without reporting an error.
	ErrStop = errors.New("remesh: stop requested")
)

// Callback runs after every completed iteration k (0-based). Returning
// ErrStop ends the loop cleanly; any other error aborts and is propagated.
type Callback func(m *core.Mesh, k int) error

// Option configures Remesh via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds remeshing parameters.
type Options struct {
	// Ctx is checked between iterations; a phase always runs to completion.
	Ctx context.Context

	// Iterations is the iteration budget kmax (≥ 1).
	Iterations int

	// Tolerance widens the accepted edge-length band around the target:
	// lmin = (1-tol)·4/5·target, lmax = (1+tol)·4/3·target.
	Tolerance float64

	// Divergence is the relative vertex-count change below which the
	// loop is considered converged once the ramp is over.
	Divergence float64

	// Fixed vertices are never collapsed away or smoothed.
	Fixed map[int]struct{}

	// BoundarySplit, BoundarySwap and BoundaryCollapse allow the matching
	// phase to touch boundary edges.
	BoundarySplit    bool
	BoundarySwap     bool
	BoundaryCollapse bool

	// Smooth enables the area-smoothing phase.
	Smooth bool

	// Callback runs after every iteration; nil means none.
	Callback Callback

	// Logger receives per-iteration Debug records and a final Info record.
	Logger *zap.Logger

	err error
}

// DefaultOptions returns:
//   - context.Background()
//   - 100 iterations, tolerance 0.1, divergence 0.01
//   - smoothing on, boundary edges left alone, nothing fixed
//   - a no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Iterations: 100,
		Tolerance:  0.1,
		Divergence: 0.01,
		Fixed:      map[int]struct{}{},
		Smooth:     true,
		Logger:     zap.NewNop(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithIterations sets the iteration budget; k < 1 → ErrOptionViolation.
func WithIterations(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: Iterations must be ≥ 1 (%d)", ErrOptionViolation, k)
			return
		}
		o.Iterations = k
	}
}

// WithTolerance sets the length tolerance; tol ∉ [0,1) → ErrOptionViolation.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if !(tol >= 0 && tol < 1) {
			o.err = fmt.Errorf("%w: Tolerance must be in [0,1) (%g)", ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithDivergence sets the convergence threshold; d ≤ 0 → ErrOptionViolation.
func WithDivergence(d float64) Option {
	return func(o *Options) {
		if !(d > 0) {
			o.err = fmt.Errorf("%w: Divergence must be > 0 (%g)", ErrOptionViolation, d)
			return
		}
		o.Divergence = d
	}
}

// WithFixed pins vertices.
func WithFixed(keys ...int) Option {
	return func(o *Options) {
		for _, k := range keys {
			o.Fixed[k] = struct{}{}
		}
	}
}

// WithBoundarySplit allows splitting boundary edges.
func WithBoundarySplit() Option {
	return func(o *Options) { o.BoundarySplit = true }
}

// WithBoundarySwap allows swapping edges with a boundary endpoint.
func WithBoundarySwap() Option {
	return func(o *Options) { o.BoundarySwap = true }
}

// WithBoundaryCollapse allows collapsing edges with a boundary endpoint.
func WithBoundaryCollapse() Option {
	return func(o *Options) { o.BoundaryCollapse = true }
}

// WithoutSmoothing skips the smoothing phase.
func WithoutSmoothing() Option {
	return func(o *Options) { o.Smooth = false }
}

// WithCallback registers a per-iteration callback.
func WithCallback(fn Callback) Option {
	return func(o *Options) {
		if fn != nil {
			o.Callback = fn
		}
	}
}

// WithLogger routes progress records to l; nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result summarizes a Remesh run.
type Result struct {
	// Iterations is the number of completed iterations.
	Iterations int

	// Splits, Collapses and Swaps count successful edge operations.
	Splits    int
	Collapses int
	Swaps     int

	// Converged is true when the vertex count settled after the ramp.
	Converged bool

	// Stopped is true when the Callback returned ErrStop.
	Stopped bool
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
