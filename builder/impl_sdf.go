// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_sdf.go — implementation of FromSDF(s, cells) constructor.
//
// Canonical model:
//   • sdfx uniform marching cubes renders the zero iso-surface of s into a
//     triangle soup (cells along the longest bounding-box axis).
//   • Corners are welded at cfg.precision, then each triangle becomes a face.
//   • Triangles that collapse under welding, or that would re-claim a directed
//     halfedge, are skipped so the result stays manifold.
//
// Contract:
//   • s != nil (else ErrOptionViolation); cells ≥ MinSDFCells (else ErrTooFewVertices).
//   • An empty surface → ErrConstructFailed.
//
// Complexity:
//   • Time: O(cells³) field evaluations plus O(T·deg) face insertion.

package builder

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/core"
)

// FromSDF returns a Constructor that meshes the iso-surface of s.
func FromSDF(s sdf.SDF3, cells int) Constructor {
	return func(m *core.Mesh, cfg builderConfig) error {
		if s == nil {
			return fmt.Errorf("%s: nil field: %w", MethodFromSDF, ErrOptionViolation)
		}
		if err := validateMin(MethodFromSDF, cells, MinSDFCells); err != nil {
			return err
		}

		tris := render.ToTriangles(s, render.NewMarchingCubesUniform(cells))
		w := newWelder(m, cfg.precision)
		added := 0
		for _, tri := range tris {
			var cycle [3]int
			for j := 0; j < 3; j++ {
				p := tri[j]
				k, err := w.key(r3.Vec{X: p.X, Y: p.Y, Z: p.Z})
				if err != nil {
					return fmt.Errorf("%s: %w", MethodFromSDF, err)
				}
				cycle[j] = k
			}
			if cycle[0] == cycle[1] || cycle[1] == cycle[2] || cycle[2] == cycle[0] {
				continue
			}
			if !canClaim(m, cycle[:]) {
				continue
			}
			if _, err := m.AddFace(cycle[:]); err != nil {
				return fmt.Errorf("%s: AddFace(%v): %w", MethodFromSDF, cycle, err)
			}
			added++
		}
		if added == 0 {
			return fmt.Errorf("%s: empty iso-surface: %w", MethodFromSDF, ErrConstructFailed)
		}

		// Welded corners of skipped triangles may be left without faces.
		for _, k := range w.cells {
			if fs, err := m.VertexFaces(k, false); err == nil && len(fs) == 0 {
				_ = m.DeleteVertex(k)
			}
		}

		return nil
	}
}
