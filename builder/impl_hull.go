// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_hull.go — implementation of ConvexHull(points) constructor.
//
// Canonical model:
//   • quickhull computes the triangulated hull over the input indices.
//   • Only points referenced by hull triangles become vertices, added in
//     ascending input index order.
//   • Each triangle is flipped if needed so its normal points away from the
//     hull centroid (outward orientation).
//
// Contract:
//   • len(points) ≥ MinHullPoints (4); else ErrTooFewVertices.
//   • Non-finite coordinates → ErrOptionViolation.
//   • Fewer than 4 hull triangles (flat or degenerate cloud) → ErrConstructFailed.
//
// Complexity:
//   • Time: O(P log P) expected (quickhull), Space: O(P).

package builder

import (
	"fmt"
	"sort"

	geor3 "github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/core"
)

// minHullTriangles is the face count of the smallest closed hull (a tetrahedron).
const minHullTriangles = 4

// ConvexHull returns a Constructor that builds the closed triangle hull of points.
func ConvexHull(points [][3]float64) Constructor {
	return func(m *core.Mesh, cfg builderConfig) error {
		if len(points) < MinHullPoints {
			return fmt.Errorf("%s: %d points (must be ≥ %d): %w",
				MethodConvexHull, len(points), MinHullPoints, ErrTooFewVertices)
		}
		if err := validateFinite(MethodConvexHull, points); err != nil {
			return err
		}

		cloud := make([]geor3.Vector, len(points))
		for i, p := range points {
			cloud[i] = geor3.Vector{X: p[0], Y: p[1], Z: p[2]}
		}
		qh := new(quickhull.QuickHull)
		ch := qh.ConvexHull(cloud, true, true, cfg.hullEps)
		if len(ch.Indices)%3 != 0 || len(ch.Indices)/3 < minHullTriangles {
			return fmt.Errorf("%s: hull has %d indices: %w", MethodConvexHull, len(ch.Indices), ErrConstructFailed)
		}

		// Collect hull vertices in ascending input order.
		used := make(map[int]bool)
		for _, i := range ch.Indices {
			used[i] = true
		}
		order := make([]int, 0, len(used))
		for i := range used {
			order = append(order, i)
		}
		sort.Ints(order)

		var center r3.Vec
		pts := make([]r3.Vec, len(order))
		for j, i := range order {
			pts[j] = vec(points[i])
			center = r3.Add(center, pts[j])
		}
		center = r3.Scale(1/float64(len(pts)), center)

		keys, err := addPoints(MethodConvexHull, m, pts)
		if err != nil {
			return err
		}
		keyOf := make(map[int]int, len(order))
		for j, i := range order {
			keyOf[i] = keys[j]
		}

		for t := 0; t < len(ch.Indices); t += 3 {
			a, b, c := ch.Indices[t], ch.Indices[t+1], ch.Indices[t+2]
			pa, pb, pc := vec(points[a]), vec(points[b]), vec(points[c])
			n := r3.Cross(r3.Sub(pb, pa), r3.Sub(pc, pa))
			mid := r3.Scale(1.0/3, r3.Add(pa, r3.Add(pb, pc)))
			if r3.Dot(n, r3.Sub(mid, center)) < 0 {
				b, c = c, b
			}
			cycle := []int{keyOf[a], keyOf[b], keyOf[c]}
			if _, err := m.AddFace(cycle); err != nil {
				return fmt.Errorf("%s: AddFace(%v): %w", MethodConvexHull, cycle, err)
			}
		}

		return nil
	}
}
