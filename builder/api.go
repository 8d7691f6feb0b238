// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildMesh(mopts, bopts, cons...). Creates m, resolves cfg, runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical meshes.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/core"
)

// Constructor applies a deterministic mesh mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Allocate vertex and face keys through core (auto-numbering), so several
//     constructors compose into one mesh without key clashes.
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(m *core.Mesh, cfg builderConfig) error

// BuildMesh creates a new core.Mesh with mesh options mopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildMesh: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)) time, O(1) space.
//   - Applying K constructors: Σ cost of each constructor; wrapper overhead O(K).
//
// Errors:
//   - Wraps constructor errors via %w; callers branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrConstructFailed, ...)
//     or core sentinels.
func BuildMesh(mopts []core.MeshOption, bopts []BuilderOption, cons ...Constructor) (*core.Mesh, error) {
	m := core.New(mopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMesh: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("BuildMesh: %w", err)
		}
	}

	return m, nil
}

// Apply runs constructors against an existing mesh with freshly resolved
// options. It is the in-place counterpart of BuildMesh.
func Apply(m *core.Mesh, bopts []BuilderOption, cons ...Constructor) error {
	if m == nil {
		return fmt.Errorf("Apply: nil mesh: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================

// VerticesAndFaces adds points as vertices and faces as index cycles into points.
// Complexity: O(P + Σ face sizes·deg).
//func VerticesAndFaces(points [][3]float64, faces [][]int) Constructor

// Polygons adds a polygon soup, welding corners closer than cfg.precision.
// Complexity: O(Σ polygon sizes·deg).
//func Polygons(polygons [][][3]float64) Constructor

// Grid builds an nx×ny quad grid with spacing dx, dy in the xy-plane.
// Complexity: O(nx·ny).
//func Grid(nx, ny int, dx, dy float64) Constructor

// RegularPolygon builds a single regular n-gon face (n ≥ 3).
// Complexity: O(n).
//func RegularPolygon(n int) Constructor

// Wheel builds a triangle fan: a rim of n-1 vertices around a center (n ≥ 4).
// Complexity: O(n).
//func Wheel(n int) Constructor

// PlatonicSolid builds one of the five closed, outward-oriented Platonic solids.
// Complexity: O(V·F) for the chosen solid (V ≤ 20, F ≤ 20).
//func PlatonicSolid(name PlatonicName) Constructor

// ConvexHull builds the closed triangle hull of a point cloud (quickhull).
// Complexity: O(P log P) expected.
//func ConvexHull(points [][3]float64) Constructor

// FromSDF meshes the iso-surface of an sdfx signed distance field with
// uniform marching cubes, welding shared corners.
// Complexity: O(cells³).
//func FromSDF(s sdf.SDF3, cells int) Constructor
