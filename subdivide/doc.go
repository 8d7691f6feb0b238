// SPDX-License-Identifier: MIT

// Package subdivide implements polygon-mesh subdivision schemes on top of
// the core topology mutators.
//
// Every entry point works on a clone of the input and returns it, so the
// caller's mesh survives as the control mesh.
//
// Schemes:
//
//   - Tri:          InsertVertex on every face (centroid fan).
//   - Corner:       split all edges; one midpoint face plus one corner
//     triangle per corner.
//   - Quad:         split all edges; each n-gon becomes n quads
//     [corner, next midpoint, face point, previous midpoint].
//   - CatmullClark: Quad, then the Catmull-Clark vertex and edge rules.
//   - DooSabin:     face, vertex and edge faces from weighted corner points.
//   - Loop:         triangle meshes only; Loop masks, then 1→4 split.
//
// Tri, Quad and CatmullClark preserve V − E + F of a closed input, and so
// do Corner, DooSabin and Loop.
//
// Options:
//
//   - WithK(k):          number of rounds (default 1).
//   - WithFixed(keys…):  vertices the smoothing schemes leave in place.
//
// Complexity: each round is O(Σ face sizes · deg).
package subdivide
