// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_cycle.go — implementation of RegularPolygon(n): one n-gon face.
//
// Contract:
//   • n ≥ MinPolygonVertices (3); else ErrTooFewVertices.
//   • Vertices lie on a circle of radius cfg.scale in the xy-plane,
//     starting on +x and advancing counter-clockwise.
//   • A single face [k0 … k(n-1)] is emitted; every edge is on the boundary.
//
// Complexity:
//   • Time: O(n), Space: O(n).

package builder

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/core"
)

// RegularPolygon returns a Constructor that builds a single regular n-gon face.
func RegularPolygon(n int) Constructor {
	return func(m *core.Mesh, cfg builderConfig) error {
		if err := validateMin(MethodRegularPolygon, n, MinPolygonVertices); err != nil {
			return err
		}

		keys, err := addPoints(MethodRegularPolygon, m, ring(n, cfg.scale, 0))
		if err != nil {
			return err
		}
		if _, err = m.AddFace(keys); err != nil {
			return fmt.Errorf("%s: AddFace: %w", MethodRegularPolygon, err)
		}

		return nil
	}
}

// ring returns n points evenly spaced CCW on a circle of radius r at height z.
func ring(n int, r, z float64) []r3.Vec {
	out := make([]r3.Vec, n)
	step := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		a := float64(i) * step
		out[i] = r3.Vec{X: r * math.Cos(a), Y: r * math.Sin(a), Z: z}
	}

	return out
}
