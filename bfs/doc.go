// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first traversal over a core.Mesh.
//
// What
//
//   - Vertices walks vertex keys through edges.
//   - Faces walks face keys through shared edges.
//   - Walk runs the same traversal over any caller-supplied adjacency.
//   - Components partitions vertices into edge-connected pieces.
//   - Every traversal returns a BFSResult with Order, Depth and Parent,
//     and PathTo rebuilds the fewest-step path to any reached key.
//
// Determinism
//
//	Neighbors are enqueued in ascending key order, so the visit sequence
//	is reproducible for a given mesh.
//
// Complexity (V = |Vertices|, E = |Edges|, F = |Faces|)
//
//   - Vertices: O(V + E) plus sorting each neighbor list.
//   - Faces:    O(Σ face sizes).
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit, no filtering.
//   - WithContext(ctx):            set a custom context for cancellation.
//   - WithMaxDepth(d):             stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn):      skip steps for which fn(curr,neighbor)==false.
//   - WithOnEnqueue(fn):           hook before a key is enqueued.
//   - WithOnDequeue(fn):           hook immediately before visiting a key.
//   - WithOnVisit(fn):             hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrMeshNil          if the mesh pointer is nil.
//   - ErrStartNotFound    if the start key does not exist.
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors        if the neighbor lookup fails.
//   - Wrapped user-supplied hook errors from OnVisit.
//
// Traversals only read the mesh; concurrent traversals of one mesh are
// safe as long as nothing mutates it.
package bfs
