// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_wheel.go — implementation of Wheel(n): a triangle-fan disc.
//
// Canonical model:
//   • A center vertex plus a rim of n-1 vertices (n counts the center).
//   • One CCW triangle [center, rim[i], rim[i+1]] per rim edge.
//
// Contract:
//   • n ≥ MinWheelVertices (4); else ErrTooFewVertices.
//   • The center is added first; rim radius is cfg.scale; rim z gets cfg.noise().
//
// Complexity:
//   • Time: O(n), Space: O(n).

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/core"
)

// Wheel returns a Constructor that builds a triangle fan with n vertices.
func Wheel(n int) Constructor {
	return func(m *core.Mesh, cfg builderConfig) error {
		if err := validateMin(MethodWheel, n, MinWheelVertices); err != nil {
			return err
		}

		rim := ring(n-1, cfg.scale, 0)
		for i := range rim {
			rim[i].Z = cfg.noise()
		}
		keys, err := addPoints(MethodWheel, m, append([]r3.Vec{{}}, rim...))
		if err != nil {
			return err
		}

		center, spokes := keys[0], keys[1:]
		for i := range spokes {
			cycle := []int{center, spokes[i], spokes[(i+1)%len(spokes)]}
			if _, err := m.AddFace(cycle); err != nil {
				return fmt.Errorf("%s: AddFace(%v): %w", MethodWheel, cycle, err)
			}
		}

		return nil
	}
}
