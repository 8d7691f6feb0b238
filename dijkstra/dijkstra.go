// SPDX-License-Identifier: MIT
// Package dijkstra implements Dijkstra's shortest-path algorithm over the
// edge graph of a core.Mesh.
//
// Notes on implementation choices:
//
//   - A custom Weight is pre-scanned over every edge in both directions
//     (O(E)) to detect negative costs and fail fast. Euclidean lengths
//     need no scan.
//   - Any edge with cost ≥ InfEdgeThreshold is an impassable wall.
//   - Exploration stops once the minimum distance in the heap exceeds MaxDistance.
//   - Lazy decrease-key: duplicates are pushed into the heap and stale
//     entries are ignored when popped.
//   - Neighbors are relaxed in ascending key order and heap ties break on
//     the smaller key, so predecessors are reproducible.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvmesh/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices of m. It accepts functional options to customize
// behavior (ReturnPath, MaxDistance, InfEdgeThreshold, Weight).
//
// Returns:
//
//   - dist: map from vertex key to minimum distance (+Inf if unreachable).
//   - prev: optional predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     For the source and unreachable v, prev[v] == core.NoVertex.
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  2. Source must be set (ErrEmptySource).
//  3. m must be non-nil (ErrMeshNil).
//  4. m must contain Source (ErrVertexNotFound).
//  5. A custom Weight must not yield a negative cost (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(m *core.Mesh, opts ...Option) (map[int]float64, map[int]int, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}

	// 2) Validate Source is provided
	if !cfg.hasSource {
		return nil, nil, ErrEmptySource
	}

	// 3) Validate mesh is non-nil
	if m == nil {
		return nil, nil, ErrMeshNil
	}

	// 4) Validate Source exists in the mesh
	if !m.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, cfg.Source)
	}

	// 5) Pre-scan custom weights. Fail fast with ErrNegativeWeight.
	weight := cfg.Weight
	if weight == nil {
		weight = m.EdgeLength
	} else {
		for _, e := range m.Edges() {
			if err := checkWeight(weight, e.U, e.V); err != nil {
				return nil, nil, err
			}
			if err := checkWeight(weight, e.V, e.U); err != nil {
				return nil, nil, err
			}
		}
	}

	// 6) Prepare data structures for the algorithm.
	V := m.VertexCount()
	r := &runner{
		m:       m,
		options: cfg,
		weight:  weight,
		dist:    make(map[int]float64, V),
		prev:    make(map[int]int, V),
		visited: make(map[int]bool, V),
		pq:      make(nodePQ, 0, V),
	}

	// 7) Initialize algorithm state and run main loop.
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	// 8) Drop the predecessor map unless the caller asked for it.
	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// ShortestPath returns the vertex keys of a cheapest edge path from source
// to target, both inclusive, and its total cost. Source and ReturnPath
// options are implied; the other options apply as in Dijkstra.
//
// Errors:
//   - Everything Dijkstra returns, ErrVertexNotFound for a missing target,
//     and ErrUnreachable when no path exists within the limits.
func ShortestPath(m *core.Mesh, source, target int, opts ...Option) ([]int, float64, error) {
	if m != nil && !m.HasVertex(target) {
		return nil, 0, fmt.Errorf("%w: target %d", ErrVertexNotFound, target)
	}
	opts = append(append([]Option(nil), opts...), Source(source), WithReturnPath())
	dist, prev, err := Dijkstra(m, opts...)
	if err != nil {
		return nil, 0, err
	}
	path, err := PathTo(prev, source, target)
	if err != nil {
		return nil, 0, err
	}

	return path, dist[target], nil
}

// PathTo rebuilds the path source → target from a predecessor map returned
// by Dijkstra with WithReturnPath. Returns ErrUnreachable if target was not
// reached from source.
func PathTo(prev map[int]int, source, target int) ([]int, error) {
	if _, ok := prev[target]; !ok {
		return nil, fmt.Errorf("%w: %d → %d", ErrUnreachable, source, target)
	}
	var rev []int
	for v := target; v != source; v = prev[v] {
		if v == core.NoVertex || len(rev) > len(prev) {
			return nil, fmt.Errorf("%w: %d → %d", ErrUnreachable, source, target)
		}
		rev = append(rev, v)
	}
	rev = append(rev, source)

	path := make([]int, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}

	return path, nil
}

func checkWeight(weight WeightFunc, u, v int) error {
	w, err := weight(u, v)
	if err != nil {
		return fmt.Errorf("dijkstra: weight %d→%d: %w", u, v, err)
	}
	if !(w >= 0) {
		return fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, u, v, w)
	}

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	m       *core.Mesh      // The input mesh; read-only within Dijkstra.
	options Options         // Configuration options (Source, thresholds, etc.).
	weight  WeightFunc      // Resolved edge cost.
	dist    map[int]float64 // Maps vertex key → current best distance from Source.
	prev    map[int]int     // Maps vertex key → predecessor on the shortest path.
	visited map[int]bool    // Tracks if a vertex's distance is finalized.
	pq      nodePQ          // Min-heap of *nodeItem for lazy priority queue.
}

// init sets up initial distances and predecessors, and pushes Source=0 into the heap.
func (r *runner) init() {
	for _, v := range r.m.Vertices() {
		r.dist[v] = math.Inf(1)
		r.prev[v] = core.NoVertex
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the vertex
// with the minimum distance from the source and relaxes its edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// Stale heap entry.
		if r.visited[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge at u and attempts to improve distances to its neighbors.
// It respects InfEdgeThreshold and MaxDistance. If a shorter path to neighbor
// v is found, dist[v] and prev[v] are updated and a new heap entry is pushed.
//
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner) relax(u int) error {
	neighbors, err := r.m.VertexNeighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}
	sort.Ints(neighbors)

	for _, v := range neighbors {
		if r.visited[v] {
			continue
		}
		w, err := r.weight(u, v)
		if err != nil {
			return fmt.Errorf("dijkstra: weight %d→%d: %w", u, v, err)
		}
		// Walls.
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		if !(w >= 0) {
			return fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, u, v, w)
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict “<” keeps the first predecessor found on ties.
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem struct {
	id   int     // vertex key
	dist float64 // distance from source
}

// nodePQ is a min-heap of *nodeItem, ordered by dist and then by key.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority; ties go to the smaller key.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
