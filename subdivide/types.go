// SPDX-License-Identifier: MIT
// Package subdivide provides tunable options and error definitions
// for subdivision of a core.Mesh.
package subdivide

import (
	"errors"
	"fmt"
)

// Sentinel errors for subdivision.
var (
	// ErrMeshNil is returned if a nil mesh pointer is passed.
	ErrMeshNil = errors.New("subdivide: mesh is nil")

	// ErrUnknownScheme is returned by Subdivide for an unregistered scheme name.
	ErrUnknownScheme = errors.New("subdivide: unknown scheme")

	// ErrNotTriangleMesh is returned by Loop when a face is not a triangle.
	ErrNotTriangleMesh = errors.New("subdivide: scheme requires a triangle mesh")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("subdivide: invalid option supplied")
)

// Scheme names a subdivision algorithm.
type Scheme string

const (
	// Tri inserts the centroid of every face and re-triangulates it as a fan.
	Tri Scheme = "tri"
	// Corner splits every edge and cuts every corner off as a triangle.
	Corner Scheme = "corner"
	// Quad splits every edge and replaces each n-gon by n quads.
	Quad Scheme = "quad"
	// CatmullClark is Quad followed by Catmull-Clark smoothing.
	CatmullClark Scheme = "catmullclark"
	// DooSabin builds a face per face, interior vertex and interior edge.
	DooSabin Scheme = "doosabin"
	// Loop is the triangle-only Loop scheme.
	Loop Scheme = "loop"
)

// Option configures subdivision via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the parameters shared by all schemes.
type Options struct {
	// K is the number of subdivision rounds (≥ 1).
	K int

	// Fixed vertices keep their position in smoothing schemes
	// (CatmullClark, Loop). Keys refer to the input mesh.
	Fixed map[int]struct{}

	err error
}

// DefaultOptions returns one round and no fixed vertices.
func DefaultOptions() Options {
	return Options{K: 1, Fixed: map[int]struct{}{}}
}

// WithK sets the number of rounds.
//
//	k ≥ 1: apply the scheme k times
//	k < 1: invalid option → ErrOptionViolation
func WithK(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: K must be ≥ 1 (%d)", ErrOptionViolation, k)
			return
		}
		o.K = k
	}
}

// WithFixed pins vertices so smoothing schemes do not move them.
func WithFixed(keys ...int) Option {
	return func(o *Options) {
		for _, k := range keys {
			o.Fixed[k] = struct{}{}
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
