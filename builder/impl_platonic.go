// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_platonic.go — implementation of PlatonicSolid(name) constructor.
//
// Canonical model:
//   • Vertices from variants_platonic.go, rescaled to circumradius cfg.scale.
//   • Face i collects the vertices with maximal projection on normal i and
//     orders them by angle around the normal, so every face winds CCW seen
//     from outside (outward orientation).
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron}.
//   • Unknown name → ErrOptionViolation (invalid parameter).
//   • The result is closed and manifold with Euler characteristic 2.
//
// Complexity:
//   • Time: O(V·F) for the selected solid (V ≤ 20, F ≤ 20).
//   • Space: O(V).

package builder

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/core"
)

// platonicFaceTol separates the supporting plane from the next vertex layer.
const platonicFaceTol = 1e-9

// PlatonicSolid returns a Constructor that builds the chosen closed solid.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(m *core.Mesh, cfg builderConfig) error {
		// 1) Lookup canonical data for the selected solid (O(1) map lookup).
		shape, ok := platonicShapes[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", MethodPlatonicSolid, name, ErrOptionViolation)
		}

		// 2) Project every vertex onto the sphere of radius cfg.scale.
		points := make([]r3.Vec, len(shape.vertices))
		for i, p := range shape.vertices {
			points[i] = r3.Scale(cfg.scale, r3.Unit(vec(p)))
		}
		keys, err := addPoints(MethodPlatonicSolid, m, points)
		if err != nil {
			return err
		}

		// 3) Derive each face from its normal and emit it outward-oriented.
		for fi, raw := range shape.normals {
			n := r3.Unit(vec(raw))
			idx := supportingFace(points, n)
			if len(idx) < MinPolygonVertices {
				return fmt.Errorf("%s: %s face #%d has %d vertices: %w",
					MethodPlatonicSolid, name, fi, len(idx), ErrConstructFailed)
			}
			cycle := make([]int, len(idx))
			for i, j := range idx {
				cycle[i] = keys[j]
			}
			if _, err := m.AddFace(cycle); err != nil {
				return fmt.Errorf("%s: AddFace(%v): %w", MethodPlatonicSolid, cycle, err)
			}
		}

		return nil
	}
}

// supportingFace returns the indices of the points on the supporting plane
// with normal n, sorted counter-clockwise around n.
func supportingFace(points []r3.Vec, n r3.Vec) []int {
	best := math.Inf(-1)
	for _, p := range points {
		best = math.Max(best, r3.Dot(p, n))
	}
	tol := platonicFaceTol * math.Max(1, math.Abs(best))

	var idx []int
	var c r3.Vec
	for i, p := range points {
		if r3.Dot(p, n) > best-tol {
			idx = append(idx, i)
			c = r3.Add(c, p)
		}
	}
	if len(idx) == 0 {
		return nil
	}
	c = r3.Scale(1/float64(len(idx)), c)

	// Local frame (a, b) in the face plane; a × b = n keeps angles CCW about n.
	a := r3.Unit(r3.Sub(points[idx[0]], c))
	b := r3.Cross(n, a)
	angle := make(map[int]float64, len(idx))
	for _, i := range idx {
		d := r3.Sub(points[i], c)
		angle[i] = math.Atan2(r3.Dot(d, b), r3.Dot(d, a))
	}
	sort.Slice(idx, func(x, y int) bool { return angle[idx[x]] < angle[idx[y]] })

	return idx
}
