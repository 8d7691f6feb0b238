// SPDX-License-Identifier: MIT

// Package dijkstra finds cheapest edge paths between the vertices of a
// core.Mesh with non-negative edge costs.
//
// Overview:
//
//   - Dijkstra computes the minimum cost from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - Edges cost their Euclidean length by default, which gives the usual
//     edge-path approximation of surface geodesics.
//   - ShortestPath and PathTo rebuild the vertex sequence of a path.
//
// When to use:
//
//   - Tracing seams or cut lines along existing edges.
//   - Distance fields over a mesh for falloff-weighted edits.
//   - Any query where only the edge graph matters; BFS is cheaper when every
//     edge costs the same.
//
// Key features:
//
//   - ReturnPath: returns a predecessor map, so you can rebuild each path.
//   - MaxDistance: stops exploration beyond a given distance.
//   - InfEdgeThreshold: treats any edge with cost ≥ threshold as impassable.
//   - Weight: swaps in a custom cost, for example to penalize crease edges.
//
// Determinism:
//
//   - Neighbors are relaxed in ascending key order and equal distances pop in
//     ascending key order, so predecessors are stable for a given mesh.
//
// Errors:
//
//   - ErrEmptySource, ErrMeshNil, ErrVertexNotFound, ErrNegativeWeight,
//     ErrBadMaxDistance, ErrBadInfThreshold, ErrUnreachable.
//
// Dijkstra only reads the mesh; concurrent runs on one mesh are safe as long
// as nothing mutates it.
package dijkstra
