// SPDX-License-Identifier: MIT
// Package delaunay: planar predicates used by triangulation and cell culling.
//
// All predicates work on the xy-plane; callers project points first.
package delaunay

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// triArea2 returns twice the signed area of (a, b, c); positive when CCW.
func triArea2(a, b, c r2.Vec) float64 {
	return r2.Cross(r2.Sub(b, a), r2.Sub(c, a))
}

// InCircle reports whether d lies strictly inside the circumcircle of the
// counter-clockwise triangle (a, b, c).
func InCircle(a, b, c, d r2.Vec) bool {
	return r2.Dot(a, a)*triArea2(b, c, d)-
		r2.Dot(b, b)*triArea2(a, c, d)+
		r2.Dot(c, c)*triArea2(a, b, d)-
		r2.Dot(d, d)*triArea2(a, b, c) > 0
}

// InTriangle reports whether p lies inside or on the triangle (a, b, c),
// for either winding.
func InTriangle(a, b, c, p r2.Vec) bool {
	d1 := triArea2(a, b, p)
	d2 := triArea2(b, c, p)
	d3 := triArea2(c, a, p)
	neg := d1 < 0 || d2 < 0 || d3 < 0
	pos := d1 > 0 || d2 > 0 || d3 > 0

	return !(neg && pos)
}

// Circumcenter returns the center of the circle through a, b and c.
// The bool is false for collinear input.
func Circumcenter(a, b, c r2.Vec) (r2.Vec, bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if d == 0 {
		return r2.Vec{}, false
	}
	aa, bb, cc := r2.Dot(a, a), r2.Dot(b, b), r2.Dot(c, c)

	return r2.Vec{
		X: (aa*(b.Y-c.Y) + bb*(c.Y-a.Y) + cc*(a.Y-b.Y)) / d,
		Y: (aa*(c.X-b.X) + bb*(a.X-c.X) + cc*(b.X-a.X)) / d,
	}, true
}

// InPolygon reports whether p lies inside the closed polygon (even-odd rule).
// Points exactly on an edge may fall on either side.
func InPolygon(polygon []r2.Vec, p r2.Vec) bool {
	inside := false
	n := len(polygon)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := polygon[i], polygon[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				inside = !inside
			}
		}
	}

	return inside
}
