// SPDX-License-Identifier: MIT
// Package core provides the halfedge polygon Mesh: a topology store of
// vertices, directed halfedges and faces, the structural queries over it,
// and the atomic topology mutators every higher-level algorithm is built on.
//
// The Mesh M = (V, H, F) is stored as:
//
//   - Vertices: integer keys → attribute record (at least x, y, z) plus the
//     list of outgoing halfedges (neighbor, face) in insertion order.
//   - Halfedges: the directed relation halfedge[u][v] → face key, or NoFace
//     when u→v bounds the exterior. Every edge that belongs to a face has both
//     directions registered; a boundary edge has exactly one NoFace direction.
//   - Faces: integer keys → ordered vertex cycle (≥ 3 distinct vertices) plus
//     a lazily created attribute record.
//   - Edge attributes: keyed by the canonical unordered pair, reachable from
//     either direction.
//
// Keys are process-local and monotonically allocated: an auto-assigned key is
// always max_seen + 1, explicit keys advance the running maximum, and keys are
// never reused while the mesh exists.
//
// Core Methods:
//
//	// Store
//	AddVertex(opts ...ElementOption) (int, error)          // O(1)
//	AddFace(cycle []int, opts ...ElementOption) (int, error) // O(len(cycle)·deg)
//	DeleteVertex(v int) error                               // O(deg(v)·face size)
//	DeleteFace(f int) error                                 // O(face size)
//
//	// Queries
//	VertexNeighbors(v int) ([]int, error)
//	VertexNeighborsOrdered(v int) ([]int, error)            // fan order, boundary first
//	VertexFaces(v int, ordered bool) ([]int, error)
//	IsEdgeOnBoundary(u, v int) (bool, error)
//	IsValid() / IsManifold() / IsRegular() / IsClosed() / Euler() / Genus()
//
//	// Mutators (atomic: fully applied, or ok == false and mesh untouched)
//	SplitEdge(u, v int, opts ...EdgeOpOption) (w int, ok bool, err error)
//	CollapseEdge(u, v int, opts ...EdgeOpOption) (bool, error)
//	SwapEdge(u, v int, opts ...EdgeOpOption) (bool, error)
//	InsertVertex(f int, opts ...ElementOption) (int, []int, error)
//
// Error taxonomy:
//
//	ErrVertexNotFound / ErrFaceNotFound / ErrEdgeNotFound – missing key in a direct accessor
//	ErrParameterDomain  – split/collapse parameter outside its interval
//	ErrDegenerateFace   – AddFace input with fewer than 3 distinct vertices
//	ErrMalformedFan     – ordered fan walk cannot close within degree(v) steps
//	ErrNotImplemented   – diagnostics that are deliberately not answered
//
// Illegal mutations are not errors: they report ok == false and leave the
// mesh exactly as it was, so batch algorithms treat them as a normal branch.
//
// Concurrency:
//
//	A Mesh is single-threaded. It carries no locks and is not safe for
//	concurrent mutation; shard independent meshes or serialize access.
package core
