// SPDX-License-Identifier: MIT
// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm
// over mesh edges.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/lvmesh/core"
)

// Kruskal computes the Minimum Spanning Tree (MST) of the edge graph of m,
// weighting each edge by its length. Use Compute with WithWeight for other costs.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Error Conditions:
//   - ErrMeshNil        : if m is nil.
//   - ErrDisconnected   : if |V| == 0 or |V| > 1 but the edge graph is not connected.
//   - ErrNegativeWeight : if a custom weight is negative.
//
// Steps:
//  1. Validate m; a single vertex gives a trivial MST (empty, weight=0).
//  2. Weigh every edge of m.Edges() (already sorted by (U, V)).
//  3. Sort edges by ascending weight (stable, so ties keep the (U, V) order).
//  4. Initialize DSU maps parent[] and rank[] for each vertex.
//  5. For each edge (u,v), if find(u) != find(v), then union(u,v) and include the edge.
//  6. Once the MST has |V|-1 edges, break. Fewer edges → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(m *core.Mesh) ([]core.Edge, float64, error) {
	return kruskal(m, nil)
}

func kruskal(m *core.Mesh, fn WeightFunc) ([]core.Edge, float64, error) {
	// 1. Validate.
	if m == nil {
		return nil, 0, ErrMeshNil
	}
	vertices := m.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	// 2. Weigh all edges.
	type weighted struct {
		e core.Edge
		w float64
	}
	all := m.Edges()
	edges := make([]weighted, 0, len(all))
	for _, e := range all {
		w, err := edgeWeight(m, fn, e)
		if err != nil {
			return nil, 0, err
		}
		edges = append(edges, weighted{e: e, w: w})
	}

	// 3. Sort by ascending weight.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].w < edges[j].w
	})

	// 4. Initialize disjoint-set (union-find) structures.
	parent := make(map[int]int, len(vertices))
	rank := make(map[int]int, len(vertices))
	for _, v := range vertices {
		parent[v] = v
	}

	// Iterative find with path compression.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank merges two disjoint sets.
	union := func(u, v int) {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return
		}
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
	}

	// 5. Build MST by iterating over sorted edges.
	var (
		mst         []core.Edge
		totalWeight float64
		numVerts    = len(vertices)
	)
	for _, we := range edges {
		if find(we.e.U) != find(we.e.V) {
			union(we.e.U, we.e.V)
			mst = append(mst, we.e)
			totalWeight += we.w
			if len(mst) == numVerts-1 {
				break
			}
		}
	}

	// 6. Fewer than |V|-1 edges means more than one component.
	if len(mst) < numVerts-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}
