// SPDX-License-Identifier: MIT
// Package delaunay provides tunable options and error definitions
// for planar Delaunay triangulation and Voronoi duals.
package delaunay

import (
	"errors"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// Sentinel errors.
var (
	// ErrMeshNil is returned if a nil mesh pointer is passed.
	ErrMeshNil = errors.New("delaunay: mesh is nil")

	// ErrTooFewPoints is returned when fewer than three points are given.
	ErrTooFewPoints = errors.New("delaunay: at least three points required")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("delaunay: invalid option supplied")

	// ErrLocate is returned when an inserted point lies in no triangle,
	// which only happens for non-finite or extreme coordinates.
	ErrLocate = errors.New("delaunay: point outside triangulation")
)

// Default perturbation scale relative to the point-set diagonal.
const DefaultTiny = 1e-12

// superScale is the super-triangle radius in units of the point-set diagonal.
const superScale = 300.0

// Option configures triangulation via functional arguments.
type Option func(*Options)

// Options holds parameters for FromPoints.
type Options struct {
	// Boundary, when set, keeps only faces whose centroid lies inside it.
	Boundary []r2.Vec

	// Holes drop faces whose centroid lies inside any of them.
	Holes [][]r2.Vec

	// Tiny scales the random perturbation applied to the predicate
	// coordinates (not to the stored points), relative to the diagonal.
	Tiny float64

	// Rand drives the perturbation; defaults to a fixed seed.
	Rand *rand.Rand

	err error
}

// DefaultOptions returns no boundary, no holes, DefaultTiny and seed 0.
func DefaultOptions() Options {
	return Options{Tiny: DefaultTiny, Rand: rand.New(rand.NewSource(0))}
}

// WithBoundary keeps faces inside polygon (xy of each point).
func WithBoundary(polygon [][3]float64) Option {
	return func(o *Options) {
		if len(polygon) < 3 {
			o.err = fmt.Errorf("%w: boundary needs ≥ 3 points (%d)", ErrOptionViolation, len(polygon))
			return
		}
		o.Boundary = project(polygon)
	}
}

// WithHoles drops faces inside any of polygons.
func WithHoles(polygons ...[][3]float64) Option {
	return func(o *Options) {
		for i, p := range polygons {
			if len(p) < 3 {
				o.err = fmt.Errorf("%w: hole #%d needs ≥ 3 points (%d)", ErrOptionViolation, i, len(p))
				return
			}
			o.Holes = append(o.Holes, project(p))
		}
	}
}

// WithTiny sets the perturbation scale; eps < 0 → ErrOptionViolation.
func WithTiny(eps float64) Option {
	return func(o *Options) {
		if eps < 0 {
			o.err = fmt.Errorf("%w: Tiny cannot be negative (%g)", ErrOptionViolation, eps)
			return
		}
		o.Tiny = eps
	}
}

// WithSeed seeds the perturbation RNG.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand sets the perturbation RNG; nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// VoronoiOption configures Voronoi.
type VoronoiOption func(*VoronoiOptions)

// VoronoiOptions holds parameters for Voronoi.
type VoronoiOptions struct {
	// Circumcenters places each cell corner at the circumcenter of its
	// triangle instead of the centroid.
	Circumcenters bool

	// BoundaryCells adds open cells around boundary vertices, closed by
	// the midpoints of their boundary edges.
	BoundaryCells bool
}

// WithCircumcenters places cell corners at triangle circumcenters.
func WithCircumcenters() VoronoiOption {
	return func(o *VoronoiOptions) { o.Circumcenters = true }
}

// WithBoundaryCells adds cells for boundary vertices.
func WithBoundaryCells() VoronoiOption {
	return func(o *VoronoiOptions) { o.BoundaryCells = true }
}

func project(points [][3]float64) []r2.Vec {
	out := make([]r2.Vec, len(points))
	for i, p := range points {
		out[i] = r2.Vec{X: p[0], Y: p[1]}
	}

	return out
}
