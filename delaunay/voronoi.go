// SPDX-License-Identifier: MIT
// Package delaunay: dual and Voronoi meshes.
//
// Cycle direction: cells list their corners in the clockwise fan order of
// the primal vertex, so every dual face winds opposite to the primal mesh
// and FaceNormal of a cell points the other way. Call FlipCycles on the
// result when a matching orientation is required.
package delaunay

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/core"
)

// Dual returns the dual of m: one vertex per face (same key, at the face
// centroid) and one face per interior vertex (same key).
//
// Complexity: O(V·deg + F·face size).
func Dual(m *core.Mesh) (*core.Mesh, error) {
	if m == nil {
		return nil, ErrMeshNil
	}

	return cells(m, VoronoiOptions{})
}

// Voronoi returns the Voronoi diagram of a triangulation as a mesh. It is
// Dual plus the choices in VoronoiOptions.
func Voronoi(m *core.Mesh, opts ...VoronoiOption) (*core.Mesh, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	var o VoronoiOptions
	for _, opt := range opts {
		opt(&o)
	}

	return cells(m, o)
}

func cells(m *core.Mesh, o VoronoiOptions) (*core.Mesh, error) {
	out := core.New()

	for _, f := range m.Faces() {
		p, err := cellCorner(m, f, o.Circumcenters)
		if err != nil {
			return nil, fmt.Errorf("Voronoi: face %d: %w", f, err)
		}
		if _, err := out.AddVertex(core.WithKey(f), core.WithPoint(p)); err != nil {
			return nil, fmt.Errorf("Voronoi: face %d: %w", f, err)
		}
	}

	// Boundary edge midpoints, shared by the two cells at their ends.
	mids := make(map[core.Edge]int)
	midpoint := func(u, v int) (int, error) {
		e := core.NewEdge(u, v)
		if k, ok := mids[e]; ok {
			return k, nil
		}
		p, err := m.EdgeMidpoint(u, v)
		if err != nil {
			return core.NoVertex, err
		}
		k, err := out.AddVertex(core.WithPoint(p))
		if err != nil {
			return core.NoVertex, err
		}
		mids[e] = k

		return k, nil
	}

	for _, v := range m.Vertices() {
		boundary, err := m.IsVertexOnBoundary(v)
		if err != nil {
			return nil, err
		}
		if boundary && !o.BoundaryCells {
			continue
		}
		faces, err := m.VertexFaces(v, true)
		if err != nil {
			return nil, fmt.Errorf("Voronoi: vertex %d: %w", v, err)
		}
		if len(faces) == 0 {
			continue
		}

		cycle := append([]int(nil), faces...)
		if boundary {
			nbrs, err := m.VertexNeighborsOrdered(v)
			if err != nil {
				return nil, fmt.Errorf("Voronoi: vertex %d: %w", v, err)
			}
			first, err := midpoint(v, nbrs[0])
			if err != nil {
				return nil, err
			}
			last, err := midpoint(v, nbrs[len(nbrs)-1])
			if err != nil {
				return nil, err
			}
			cycle = append(append([]int{first}, cycle...), last)
		}
		if len(cycle) < 3 {
			continue
		}
		if _, err := out.AddFace(cycle, core.WithKey(v)); err != nil {
			return nil, fmt.Errorf("Voronoi: vertex %d: %w", v, err)
		}
	}

	return out, nil
}

// cellCorner is the centroid of f, or its circumcenter for triangles when
// requested. The circumcenter keeps the centroid height.
func cellCorner(m *core.Mesh, f int, circum bool) (r3.Vec, error) {
	c, err := m.FaceCentroid(f)
	if err != nil {
		return r3.Vec{}, err
	}
	if !circum {
		return c, nil
	}
	pts, err := m.FaceCoordinates(f)
	if err != nil {
		return r3.Vec{}, err
	}
	if len(pts) != 3 {
		return c, nil
	}
	cc, ok := Circumcenter(
		r2.Vec{X: pts[0].X, Y: pts[0].Y},
		r2.Vec{X: pts[1].X, Y: pts[1].Y},
		r2.Vec{X: pts[2].X, Y: pts[2].Y},
	)
	if !ok {
		return c, nil
	}

	return r3.Vec{X: cc.X, Y: cc.Y, Z: c.Z}, nil
}
