// SPDX-License-Identifier: MIT
// Package prim_kruskal defines configuration options and sentinel errors for
// minimum spanning trees over the edges of a core.Mesh.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmesh/core"
)

// ErrMeshNil indicates that a nil *core.Mesh was passed.
var ErrMeshNil = errors.New("prim_kruskal: mesh is nil")

// ErrDisconnected indicates that the mesh edge graph is not connected, so a
// spanning tree covering all vertices cannot be formed.
var ErrDisconnected = errors.New("prim_kruskal: mesh is disconnected")

// ErrNegativeWeight indicates that the weight function yielded a negative or NaN cost.
var ErrNegativeWeight = errors.New("prim_kruskal: negative edge weight")

// ErrUnknownMethod indicates an MSTOptions.Method other than MethodPrim or MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// WeightFunc returns the cost of the edge u-v. It is called with u < v.
type WeightFunc func(u, v int) (float64, error)

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string     — one of MethodPrim or MethodKruskal.
//	Root   int        — start vertex key for Prim; ignored when Method == MethodKruskal.
//	Weight WeightFunc — edge cost; nil means Mesh.EdgeLength.
//
// Complexity: O(E log V) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int

	// Weight is the edge cost; nil means Euclidean edge length.
	Weight WeightFunc
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm; Kruskal ignores it.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithWeight replaces the edge cost function; nil is ignored.
func WithWeight(fn WeightFunc) Option {
	return func(opts *MSTOptions) {
		if fn != nil {
			opts.Weight = fn
		}
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//	– Method = MethodKruskal
//	– Root   = 0 (ignored by Kruskal)
//	– Weight = nil (edge length).
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   0,
	}
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– If opts.Method == MethodKruskal: calls Kruskal(m).
//	– If opts.Method == MethodPrim:    calls Prim(m, opts.Root).
//	– Otherwise:                        returns ErrUnknownMethod.
//
// Returns the tree edges (canonical, U < V) and their total weight.
func Compute(m *core.Mesh, opts ...Option) ([]core.Edge, float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	switch cfg.Method {
	case MethodKruskal:
		return kruskal(m, cfg.Weight)
	case MethodPrim:
		return prim(m, cfg.Root, cfg.Weight)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, cfg.Method)
	}
}

// edgeWeight resolves fn (or the edge length) for e and rejects negative costs.
func edgeWeight(m *core.Mesh, fn WeightFunc, e core.Edge) (float64, error) {
	var (
		w   float64
		err error
	)
	if fn == nil {
		w, err = m.EdgeLength(e.U, e.V)
	} else {
		w, err = fn(e.U, e.V)
	}
	if err != nil {
		return 0, fmt.Errorf("prim_kruskal: weight %d-%d: %w", e.U, e.V, err)
	}
	if !(w >= 0) {
		return 0, fmt.Errorf("%w: edge %d-%d weight=%g", ErrNegativeWeight, e.U, e.V, w)
	}

	return w, nil
}
