// SPDX-License-Identifier: MIT
// Package dijkstra defines core types and configuration options
// for shortest edge paths over the vertices of a core.Mesh.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices, walking mesh edges. By default an edge costs its
// Euclidean length, so distances approximate geodesics along the surface.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |vertices|, E = |edges|
//	   • Each vertex is extracted from the priority queue at most once.
//	   • Each edge relaxation may push into the priority queue.
//	– Space: O(V + E)
//	   • O(V) for distance and predecessor maps.
//	   • O(E) in the priority queue in the worst case (lazy decrease-key).
//
// Options:
//
//	– Source:           key of the starting vertex (required, must exist in the mesh).
//	– ReturnPath:       if true, return the predecessor map for path reconstruction.
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this are skipped.
//	– InfEdgeThreshold: edges with cost >= this threshold are treated as impassable.
//	– Weight:           edge cost function; defaults to Mesh.EdgeLength.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if no source vertex was given.
//	– ErrMeshNil         if the provided mesh pointer is nil.
//	– ErrVertexNotFound  if the source vertex does not exist in the mesh.
//	– ErrNegativeWeight  if the weight function yields a negative or NaN cost.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
//	– ErrUnreachable     if ShortestPath finds no route.
//
// Example usage:
//
//	dist, prev, err := dijkstra.Dijkstra(m, dijkstra.Source(0), dijkstra.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Distance to 8: %g, parent: %d\n", dist[8], prev[8])
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that no source vertex was given.
	ErrEmptySource = errors.New("dijkstra: source vertex not set")

	// ErrMeshNil indicates that a nil *core.Mesh was passed to Dijkstra.
	ErrMeshNil = errors.New("dijkstra: mesh is nil")

	// ErrVertexNotFound indicates that the source or target vertex does not
	// exist in the provided mesh.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in mesh")

	// ErrNegativeWeight indicates that the weight function returned a
	// negative or NaN edge cost.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or
	// a negative value, which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrUnreachable indicates that the target cannot be reached from the source.
	ErrUnreachable = errors.New("dijkstra: target unreachable")
)

// WeightFunc returns the cost of stepping from u to v along a mesh edge.
type WeightFunc func(u, v int) (float64, error)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex key (must be set and present in the mesh).
// ReturnPath       – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance      – optional cap on distances to explore (vertices beyond are skipped).
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – treat edges with cost ≥ this threshold as impassable walls.
//
//	Must be > 0. Default is +Inf (no walls).
//
// Weight           – edge cost; nil means Euclidean edge length.
type Options struct {
	Source           int        // Key of the source vertex
	ReturnPath       bool       // Whether to return the predecessor map
	MaxDistance      float64    // Maximum distance to explore
	InfEdgeThreshold float64    // Cost threshold above which edges are non-traversable
	Weight           WeightFunc // Edge cost; nil means EdgeLength

	hasSource bool
	err       error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the source vertex key.
// Must be given to specify the starting vertex.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
		o.hasSource = true
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If not given, the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// A negative or NaN value is recorded as ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if !(max >= 0) {
			o.err = fmt.Errorf("%w (%g)", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a cost threshold at or above which edges are
// considered non-traversable. A zero, negative or NaN value is recorded as
// ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if !(threshold > 0) {
			o.err = fmt.Errorf("%w (%g)", ErrBadInfThreshold, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithWeight replaces the edge cost function; nil is ignored.
func WithWeight(fn WeightFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Weight = fn
		}
	}
}

// DefaultOptions returns an Options struct initialized with defaults.
// Use this as a starting point for further functional-options overrides.
//
// Defaults:
//   - Source:           unset (Dijkstra fails with ErrEmptySource).
//   - ReturnPath:       false (predecessor map not returned).
//   - MaxDistance:      +Inf (no distance limit; explore all reachable).
//   - InfEdgeThreshold: +Inf (no edges treated as impassable).
//   - Weight:           nil (Euclidean edge length).
func DefaultOptions() Options {
	return Options{
		ReturnPath:       false,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
