// SPDX-License-Identifier: MIT
// Package orient makes face cycles agree across shared edges.
//
// Adjacency is read from the face cycles themselves, not from the halfedge
// map, so meshes whose faces were added with mixed winding (and whose
// halfedge map is therefore inconsistent) can still be repaired.
package orient

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmesh/bfs"
	"github.com/katalvlaran/lvmesh/core"
)

var (
	// ErrMeshNil is returned if a nil mesh pointer is passed.
	ErrMeshNil = errors.New("orient: mesh is nil")

	// ErrNotOrientable is returned by UnifyCycles when no consistent
	// winding exists (e.g. a Möbius strip).
	ErrNotOrientable = errors.New("orient: mesh is not orientable")
)

// cycleGraph is the edge-to-faces incidence derived from face cycles.
type cycleGraph struct {
	cycles map[int][]int
	faces  map[core.Edge][]int
}

func newCycleGraph(m *core.Mesh) (*cycleGraph, error) {
	g := &cycleGraph{
		cycles: make(map[int][]int, m.FaceCount()),
		faces:  make(map[core.Edge][]int),
	}
	for _, f := range m.Faces() {
		cycle, err := m.FaceVertices(f)
		if err != nil {
			return nil, err
		}
		g.cycles[f] = cycle
		for i := range cycle {
			e := core.NewEdge(cycle[i], cycle[(i+1)%len(cycle)])
			g.faces[e] = append(g.faces[e], f)
			if n := len(g.faces[e]); n > 2 {
				return nil, fmt.Errorf("orient: edge %d-%d has %d faces: %w", e.U, e.V, n, core.ErrNotImplemented)
			}
		}
	}

	return g, nil
}

func (g *cycleGraph) neighbors(f int) ([]int, error) {
	cycle := g.cycles[f]
	var out []int
	for i := range cycle {
		for _, h := range g.faces[core.NewEdge(cycle[i], cycle[(i+1)%len(cycle)])] {
			if h != f {
				out = append(out, h)
			}
		}
	}

	return out, nil
}

// forward reports whether face f runs u→v.
func (g *cycleGraph) forward(f, u, v int) bool {
	cycle := g.cycles[f]
	for i, x := range cycle {
		if x == u && cycle[(i+1)%len(cycle)] == v {
			return true
		}
	}

	return false
}

// plan decides, per face, whether it must be reversed. Components are
// seeded from root first, then from the smallest unvisited face key; a
// seed keeps its winding. The bool is false when some edge ends up with
// both faces running the same way.
func (g *cycleGraph) plan(root int, order []int) (map[int]bool, bool, error) {
	flip := make(map[int]bool, len(g.cycles))
	seen := make(map[int]bool, len(g.cycles))
	seeds := append([]int{root}, order...)
	for _, seed := range seeds {
		if seen[seed] {
			continue
		}
		res, err := bfs.Walk(seed, g.neighbors)
		if err != nil {
			return nil, false, err
		}
		for _, f := range res.Order {
			seen[f] = true
			p, ok := res.Parent[f]
			if !ok {
				continue
			}
			u, v := g.shared(p, f)
			flip[f] = flip[p] != g.forward(f, u, v)
		}
	}

	for e, fs := range g.faces {
		if len(fs) != 2 {
			continue
		}
		a := g.forward(fs[0], e.U, e.V) != flip[fs[0]]
		b := g.forward(fs[1], e.U, e.V) != flip[fs[1]]
		if a == b {
			return flip, false, nil
		}
	}

	return flip, true, nil
}

// shared returns an edge u→v of p's cycle that f also uses.
func (g *cycleGraph) shared(p, f int) (int, int) {
	cycle := g.cycles[p]
	for i := range cycle {
		u, v := cycle[i], cycle[(i+1)%len(cycle)]
		for _, h := range g.faces[core.NewEdge(u, v)] {
			if h == f {
				return u, v
			}
		}
	}

	return core.NoVertex, core.NoVertex
}

// UnifyCycles reverses faces so that every shared edge is traversed in
// opposite directions by its two faces, then rebuilds the halfedge map.
// The component containing root keeps root's winding; every other
// component keeps the winding of its smallest face key.
//
// Returns the number of faces reversed.
//
// Errors:
//   - ErrMeshNil, core.ErrFaceNotFound (unknown root).
//   - core.ErrNotImplemented: an edge is shared by more than two faces.
//   - ErrNotOrientable: no consistent winding exists; the mesh is untouched.
//
// Complexity: O(Σ face sizes).
func UnifyCycles(m *core.Mesh, root int) (int, error) {
	if m == nil {
		return 0, ErrMeshNil
	}
	if !m.HasFace(root) {
		return 0, fmt.Errorf("UnifyCycles(%d): %w", root, core.ErrFaceNotFound)
	}
	g, err := newCycleGraph(m)
	if err != nil {
		return 0, err
	}
	flip, ok, err := g.plan(root, m.Faces())
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrNotOrientable
	}

	var keys []int
	for _, f := range m.Faces() {
		if flip[f] {
			keys = append(keys, f)
		}
	}
	if err := m.FlipFaces(keys...); err != nil {
		return 0, fmt.Errorf("UnifyCycles(%d): %w", root, err)
	}

	return len(keys), nil
}

// IsOrientable reports whether the faces of m admit a consistent winding.
// An empty mesh is orientable.
//
// Errors:
//   - ErrMeshNil.
//   - core.ErrNotImplemented: an edge is shared by more than two faces.
func IsOrientable(m *core.Mesh) (bool, error) {
	if m == nil {
		return false, ErrMeshNil
	}
	faces := m.Faces()
	if len(faces) == 0 {
		return true, nil
	}
	g, err := newCycleGraph(m)
	if err != nil {
		return false, err
	}
	_, ok, err := g.plan(faces[0], faces)

	return ok, err
}
