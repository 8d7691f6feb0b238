// SPDX-License-Identifier: MIT

// Package lvmesh is an in-memory halfedge mesh toolkit: build polygon
// meshes, query their adjacency, edit them locally, and run the classic
// geometry-processing passes on top.
//
// 🚀 What is lvmesh?
//
//	A pure-Go library that brings together:
//		• Core primitives: vertices, faces and halfedges with integer keys and attributes
//		• Local edits: split, collapse and swap edges, insert and delete elements
//		• Builders: grids, polygons, platonic solids, convex hulls, SDF isosurfaces
//		• Subdivision: tri, corner, quad, Catmull–Clark, Doo–Sabin, Loop
//		• Smoothing and remeshing towards a target edge length
//		• Delaunay triangulation, duals and Voronoi cells
//		• Traversals: BFS over vertices or faces, Dijkstra edge paths, spanning trees
//		• Orientation repair and JSON / YAML / OBJ interchange
//
// ✨ Why choose lvmesh?
//
//   - Deterministic – ascending keys everywhere, seeded randomness only
//   - Sentinel errors – every failure is checkable with errors.Is
//   - Functional options – defaults that just work, knobs when needed
//   - Hooks – callbacks and zap loggers for long-running passes
//
// Packages:
//
//	core/         — Mesh, halfedge adjacency, attributes, local edits, validation
//	builder/      — constructors composed through BuildMesh
//	subdivide/    — subdivision schemes
//	smooth/       — centroid and area-weighted smoothing
//	remesh/       — isotropic triangle remeshing
//	delaunay/     — planar Delaunay triangulation, Dual and Voronoi
//	bfs/          — breadth-first traversal and components
//	dijkstra/     — shortest edge paths
//	prim_kruskal/ — minimum spanning trees over mesh edges
//	orient/       — consistent face winding
//	meshio/       — JSON, YAML and OBJ readers and writers
//
// Quick ASCII example:
//
//	    3───2
//	    │ ╱ │
//	    0───1
//
//	two triangles [0 1 2] and [0 2 3] sharing the halfedge pair 0→2 / 2→0.
//
//	go get github.com/katalvlaran/lvmesh
package lvmesh
