// SPDX-License-Identifier: MIT
// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It grows the MST over mesh edges from a specified root vertex using a min-heap.
package prim_kruskal

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvmesh/core"
)

// Prim computes the Minimum Spanning Tree (MST) of the edge graph of m,
// weighting each edge by its length, by growing outwards from root.
//
// Error Conditions:
//   - ErrMeshNil             : if m is nil.
//   - core.ErrVertexNotFound : if root does not exist in m.
//   - ErrDisconnected        : if |V| == 0 or the edge graph is not connected.
//   - ErrNegativeWeight      : if a custom weight is negative.
//
// Steps:
//  1. Validate m and root; a single vertex gives a trivial MST.
//  2. Mark root as visited and push its edges into a min-heap.
//  3. While the heap is not empty and MST has < |V|-1 edges:
//     a. Pop the cheapest edge (u→v); skip it if v is already visited.
//     b. Otherwise add it, mark v visited and push v's edges to unvisited neighbors.
//  4. If MST size < |V|-1 after the loop → ErrDisconnected.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(m *core.Mesh, root int) ([]core.Edge, float64, error) {
	return prim(m, root, nil)
}

func prim(m *core.Mesh, root int, fn WeightFunc) ([]core.Edge, float64, error) {
	// 1. Validate.
	if m == nil {
		return nil, 0, ErrMeshNil
	}
	n := m.VertexCount()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if !m.HasVertex(root) {
		return nil, 0, fmt.Errorf("prim_kruskal: root %d: %w", root, core.ErrVertexNotFound)
	}
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	visited := make(map[int]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var totalWeight float64
	pq := &edgePQ{}
	heap.Init(pq)

	// push enqueues every edge from u to an unvisited neighbor.
	push := func(u int) error {
		nbrs, err := m.VertexNeighbors(u)
		if err != nil {
			return err
		}
		sort.Ints(nbrs)
		for _, v := range nbrs {
			if visited[v] {
				continue
			}
			e := core.NewEdge(u, v)
			w, err := edgeWeight(m, fn, e)
			if err != nil {
				return err
			}
			heap.Push(pq, &edgeItem{edge: e, to: v, weight: w})
		}

		return nil
	}

	// 2. Seed with root.
	visited[root] = true
	if err := push(root); err != nil {
		return nil, 0, err
	}

	// 3. Main loop.
	for pq.Len() > 0 && len(mst) < n-1 {
		it := heap.Pop(pq).(*edgeItem)
		if visited[it.to] {
			continue
		}
		visited[it.to] = true
		mst = append(mst, it.edge)
		totalWeight += it.weight
		if err := push(it.to); err != nil {
			return nil, 0, err
		}
	}

	// 4. Not every vertex was reached.
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}

// edgeItem is a candidate tree edge leading to the unvisited vertex to.
type edgeItem struct {
	edge   core.Edge
	to     int
	weight float64
}

// edgePQ implements heap.Interface for a min-heap of *edgeItem, ordered by
// weight and then by the canonical edge.
type edgePQ []*edgeItem

// Len returns the number of edges in the priority queue.
func (pq edgePQ) Len() int { return len(pq) }

// Less compares by weight; ties go to the smaller (U, V).
func (pq edgePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	if a.edge.U != b.edge.U {
		return a.edge.U < b.edge.U
	}

	return a.edge.V < b.edge.V
}

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new *edgeItem to the heap.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(*edgeItem)) }

// Pop removes and returns the last element after heap adjustments.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
