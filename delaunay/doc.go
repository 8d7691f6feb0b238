// SPDX-License-Identifier: MIT

// Package delaunay builds planar Delaunay triangulations and their duals
// as core meshes.
//
// FromPoints triangulates the xy-projection of a point set with the
// incremental algorithm: a super-triangle, point location, InsertVertex
// and Lawson edge flips driven by the InCircle predicate. A tiny random
// perturbation (Options.Tiny, seeded) breaks co-circular and collinear
// ties; it touches only the coordinates fed to the predicates, never the
// stored points.
//
// Dual and Voronoi turn a mesh inside out: face keys become vertex keys
// and interior vertex keys become face keys.
//
// Options:
//
//   - WithBoundary(poly): keep faces whose centroid is inside poly.
//   - WithHoles(polys…):  drop faces whose centroid is inside any hole.
//   - WithTiny(eps):      perturbation scale (default DefaultTiny).
//   - WithSeed / WithRand: perturbation source (default seed 0).
//
// Voronoi options:
//
//   - WithCircumcenters(): cell corners at triangle circumcenters.
//   - WithBoundaryCells(): open cells for boundary vertices too.
//
// Predicates are plain float64; no adaptive-precision arithmetic.
package delaunay
