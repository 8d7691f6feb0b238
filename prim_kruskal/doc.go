// SPDX-License-Identifier: MIT

// Package prim_kruskal computes minimum spanning trees over the edge graph
// of a core.Mesh: Prim's algorithm and Kruskal's algorithm.
//
// What & Why
//
//   - A spanning tree of the mesh edges reaches every vertex with |V|−1
//     edges and no cycles; the minimum one has the smallest total weight.
//   - Edges weigh their Euclidean length unless WithWeight supplies a cost,
//     for example to make crease edges cheap so that cut lines prefer them.
//   - Uses: seam and cut-line layout for unfolding, wire-frame skeletons,
//     connectivity checks with a cost model.
//
// Algorithms Provided
//
//   - Kruskal(m *core.Mesh) ([]core.Edge, float64, error)
//
//   - Strategy: sort all edges by weight and merge components with a
//     disjoint-set, skipping edges whose endpoints are already joined.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Determinism: m.Edges() is sorted by (U, V) and the weight sort is
//     stable, so ties break predictably.
//
//   - Prim(m *core.Mesh, root int) ([]core.Edge, float64, error)
//
//   - Strategy: grow one tree from root, always taking the cheapest edge
//     to an outside vertex from a min-heap.
//
//   - Complexity: O(E log V) time, O(V + E) space.
//
//   - Determinism: heap ties break on the canonical edge.
//
//   - Compute(m, opts...) dispatches on WithMethod and applies WithRoot and WithWeight.
//
// Error Conditions
//
//	- ErrMeshNil            if the mesh pointer is nil.
//	- core.ErrVertexNotFound if Prim's root does not exist.
//	- ErrDisconnected       if the mesh is empty or its edge graph has more than one component.
//	- ErrNegativeWeight     if a custom weight is negative or NaN.
//	- ErrUnknownMethod      if Compute is given an unknown method name.
//
// Returned edges are canonical (U < V) in the order they joined the tree.
package prim_kruskal
