// SPDX-License-Identifier: MIT
// Package smooth provides tunable options and error definitions
// for Laplacian-style vertex smoothing over a core.Mesh.
package smooth

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmesh/core"
)

// Sentinel errors for smoothing.
var (
	// ErrMeshNil is returned if a nil mesh pointer is passed.
	ErrMeshNil = errors.New("smooth: mesh is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("smooth: invalid option supplied")

	// ErrStop may be returned by a Callback to end smoothing early
	// without reporting an error.
	ErrStop = errors.New("smooth: stop requested")
)

// Callback runs after every iteration k (0-based). Returning ErrStop ends
// the loop cleanly; any other error aborts and is propagated.
type Callback func(m *core.Mesh, k int) error

// Option configures smoothing via functional arguments.
type Option func(*Options)

// Options holds smoothing parameters.
type Options struct {
	// Iterations is the number of sweeps (≥ 1).
	Iterations int

	// Damping in (0,1] scales each step toward the target point.
	Damping float64

	// Fixed vertices never move.
	Fixed map[int]struct{}

	// BoundaryFixed pins every boundary vertex.
	BoundaryFixed bool

	// Callback runs after every sweep; nil means none.
	Callback Callback

	err error
}

// DefaultOptions returns 10 sweeps at damping 0.5 with nothing fixed.
func DefaultOptions() Options {
	return Options{
		Iterations: 10,
		Damping:    0.5,
		Fixed:      map[int]struct{}{},
	}
}

// WithIterations sets the number of sweeps; k < 1 → ErrOptionViolation.
func WithIterations(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: Iterations must be ≥ 1 (%d)", ErrOptionViolation, k)
			return
		}
		o.Iterations = k
	}
}

// WithDamping sets the step factor; d ∉ (0,1] → ErrOptionViolation.
func WithDamping(d float64) Option {
	return func(o *Options) {
		if !(d > 0 && d <= 1) {
			o.err = fmt.Errorf("%w: Damping must be in (0,1] (%g)", ErrOptionViolation, d)
			return
		}
		o.Damping = d
	}
}

// WithFixed pins vertices in place.
func WithFixed(keys ...int) Option {
	return func(o *Options) {
		for _, k := range keys {
			o.Fixed[k] = struct{}{}
		}
	}
}

// WithBoundaryFixed pins every boundary vertex.
func WithBoundaryFixed() Option {
	return func(o *Options) {
		o.BoundaryFixed = true
	}
}

// WithCallback registers a per-sweep callback.
func WithCallback(fn Callback) Option {
	return func(o *Options) {
		if fn != nil {
			o.Callback = fn
		}
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
