// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_grid.go — implementation of Grid(nx, ny, dx, dy) constructor.
//
// Canonical model:
//   • nx×ny quad cells in the xy-plane, lower-left corner at the origin.
//   • Vertices are added row-major (y asc, then x asc): (nx+1)·(ny+1) of them.
//   • Each cell is the CCW quad [a, a+1, a+nx+2, a+nx+1] seen from +z.
//
// Contract:
//   • nx ≥ 1 and ny ≥ 1 (else ErrTooFewVertices).
//   • dx, dy finite and > 0 (else ErrOptionViolation).
//   • Spacing is multiplied by cfg.scale; z gets cfg.noise() per vertex.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(nx·ny) vertices and faces.
//   • Space: O((nx+1)·(ny+1)) for the key table.
//
// Determinism:
//   • Stable vertex and face order; jitter is deterministic for a seeded rng.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/core"
)

// Grid returns a Constructor that builds an nx×ny quad grid.
func Grid(nx, ny int, dx, dy float64) Constructor {
	// The returned closure captures (nx, ny, dx, dy); BuildMesh supplies (m, cfg).
	return func(m *core.Mesh, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast; no partial work).
		if nx < MinGridDim || ny < MinGridDim {
			return fmt.Errorf("%s: nx=%d, ny=%d (each must be ≥ %d): %w",
				MethodGrid, nx, ny, MinGridDim, ErrTooFewVertices)
		}
		if err := validatePositive(MethodGrid, "dx", dx); err != nil {
			return err
		}
		if err := validatePositive(MethodGrid, "dy", dy); err != nil {
			return err
		}

		// 2) Lay out the lattice points row-major.
		points := make([]r3.Vec, 0, (nx+1)*(ny+1))
		for y := 0; y <= ny; y++ {
			for x := 0; x <= nx; x++ {
				points = append(points, r3.Vec{
					X: float64(x) * dx * cfg.scale,
					Y: float64(y) * dy * cfg.scale,
					Z: cfg.noise(),
				})
			}
		}
		keys, err := addPoints(MethodGrid, m, points)
		if err != nil {
			return err
		}

		// 3) Emit one CCW quad per cell.
		stride := nx + 1
		for y := 0; y < ny; y++ {
			for x := 0; x < nx; x++ {
				a := y*stride + x
				cycle := []int{keys[a], keys[a+1], keys[a+stride+1], keys[a+stride]}
				if _, err := m.AddFace(cycle); err != nil {
					return fmt.Errorf("%s: AddFace(%v): %w", MethodGrid, cycle, err)
				}
			}
		}

		return nil
	}
}
