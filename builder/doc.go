// SPDX-License-Identifier: MIT

// Package builder provides reusable "functional-options"-style constructors
// that populate a core.Mesh: indexed face lists, welded polygon soups,
// parametric grids and fans, Platonic solids, convex hulls and iso-surfaces
// of signed distance fields.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildMesh:      creates a mesh, resolves options, runs constructors.
//     – Apply:          runs constructors against an existing mesh.
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  weld precision, scale, RNG, jitter, hull epsilon.
//   - Constructors (Constructor implementations):
//     – VerticesAndFaces(points, faces)
//     – Polygons(polygons)                 welded at WithPrecision
//     – Grid(nx, ny, dx, dy)               CCW quads in the xy-plane
//     – RegularPolygon(n), Wheel(n)        single n-gon / triangle fan
//     – PlatonicSolid(name)                closed, outward-oriented
//     – ConvexHull(points)                 quickhull triangles, outward
//     – FromSDF(s, cells)                  sdfx marching cubes, welded
//   - Validation helpers:
//     – validateMin, validatePositive, validateFinite, validateIndices.
//
// Guarantees:
//
//   - Composability: constructors allocate keys through core auto-numbering,
//     so several of them can populate one mesh.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors for invalid build parameters, wrapping the
//     method name and a sentinel (ErrTooFewVertices, ErrOptionViolation,
//     ErrConstructFailed).
//   - Determinism: same inputs, options and seed produce identical meshes.
//
// See individual function documentation for detailed contracts and
// performance notes.
package builder
