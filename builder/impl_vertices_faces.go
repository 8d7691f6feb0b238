// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_vertices_faces.go — VerticesAndFaces and Polygons constructors.
//
// Contract (VerticesAndFaces):
//   • points are finite; face indices address points (else ErrOptionViolation).
//   • One vertex per point in input order, then one face per index cycle.
//   • A face re-using a directed halfedge of an earlier face is rejected with
//     ErrConstructFailed (inconsistent winding or non-manifold input).
//
// Contract (Polygons):
//   • Each polygon has ≥ 3 corners (else ErrTooFewVertices).
//   • Corners that quantize to the same cfg.precision cell share one vertex;
//     keys are handed out in first-seen order.
//   • Same halfedge rule as VerticesAndFaces.
//
// Complexity:
//   • Time: O(P + Σ|face|·deg), Space: O(P).

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/core"
)

// VerticesAndFaces returns a Constructor that adds an indexed face list.
func VerticesAndFaces(points [][3]float64, faces [][]int) Constructor {
	return func(m *core.Mesh, cfg builderConfig) error {
		if err := validateFinite(MethodVerticesAndFaces, points); err != nil {
			return err
		}
		if err := validateIndices(MethodVerticesAndFaces, faces, len(points)); err != nil {
			return err
		}

		pts := make([]r3.Vec, len(points))
		for i, p := range points {
			pts[i] = vec(p)
		}
		keys, err := addPoints(MethodVerticesAndFaces, m, pts)
		if err != nil {
			return err
		}

		for fi, f := range faces {
			cycle := make([]int, len(f))
			for i, idx := range f {
				cycle[i] = keys[idx]
			}
			if err := addClaimedFace(MethodVerticesAndFaces, m, fi, cycle); err != nil {
				return err
			}
		}

		return nil
	}
}

// Polygons returns a Constructor that welds a polygon soup into a mesh.
func Polygons(polygons [][][3]float64) Constructor {
	return func(m *core.Mesh, cfg builderConfig) error {
		for pi, poly := range polygons {
			if len(poly) < MinPolygonVertices {
				return fmt.Errorf("%s: polygon #%d has %d corners (must be ≥ %d): %w",
					MethodPolygons, pi, len(poly), MinPolygonVertices, ErrTooFewVertices)
			}
			if err := validateFinite(MethodPolygons, poly); err != nil {
				return err
			}
		}

		w := newWelder(m, cfg.precision)
		for pi, poly := range polygons {
			cycle := make([]int, len(poly))
			for i, p := range poly {
				k, err := w.key(vec(p))
				if err != nil {
					return fmt.Errorf("%s: polygon #%d: %w", MethodPolygons, pi, err)
				}
				cycle[i] = k
			}
			if err := addClaimedFace(MethodPolygons, m, pi, cycle); err != nil {
				return err
			}
		}

		return nil
	}
}

// addClaimedFace adds cycle as a face after checking that none of its
// halfedges belongs to another face.
func addClaimedFace(method string, m *core.Mesh, index int, cycle []int) error {
	if len(cycle) >= MinPolygonVertices && !canClaim(m, cycle) {
		return fmt.Errorf("%s: face #%d %v reuses a claimed halfedge: %w",
			method, index, cycle, ErrConstructFailed)
	}
	if _, err := m.AddFace(cycle); err != nil {
		return fmt.Errorf("%s: face #%d: %w", method, index, err)
	}

	return nil
}
