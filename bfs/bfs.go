// SPDX-License-Identifier: MIT
// Package bfs provides breadth-first traversal over a core.Mesh, either
// across vertices (edge adjacency) or across faces (shared edges),
// returning step distances, parent links, and visit order.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvmesh/core"
)

// ErrNeighbors is returned when fetching neighbors from the mesh fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// neighborFunc lists the adjacent keys of key.
type neighborFunc func(key int) ([]int, error)

// queueItem pairs a key with its BFS depth.
type queueItem struct {
	key   int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	next    neighborFunc
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[int]bool
	res     *BFSResult
}

// Vertices runs breadth-first search over the vertices of m starting
// from vertex start. Neighbors are visited in ascending key order.
// Returns ErrMeshNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for mesh failures,
// or any user-supplied hook error.
func Vertices(m *core.Mesh, start int, opts ...Option) (*BFSResult, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	if !m.HasVertex(start) {
		return nil, fmt.Errorf("%w: vertex %d", ErrStartNotFound, start)
	}

	return run(m.VertexNeighbors, start, m.VertexCount(), opts)
}

// Faces runs breadth-first search over the faces of m starting from face
// start; two faces are adjacent when they share an edge.
func Faces(m *core.Mesh, start int, opts ...Option) (*BFSResult, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	if !m.HasFace(start) {
		return nil, fmt.Errorf("%w: face %d", ErrStartNotFound, start)
	}

	return run(m.FaceNeighbors, start, m.FaceCount(), opts)
}

// Walk runs breadth-first search from start over any adjacency: next
// lists the neighbors of a key. It backs Vertices and Faces and lets
// callers traverse derived adjacencies with the same options and result.
func Walk(start int, next func(key int) ([]int, error), opts ...Option) (*BFSResult, error) {
	if next == nil {
		return nil, fmt.Errorf("%w: nil neighbor function", ErrOptionViolation)
	}

	return run(next, start, 0, opts)
}

// Components partitions the vertices of m into edge-connected components.
// Components are ordered by their smallest key; each lists its keys in
// ascending order. Isolated vertices form singleton components.
func Components(m *core.Mesh) ([][]int, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	seen := make(map[int]bool, m.VertexCount())
	var out [][]int
	for _, v := range m.Vertices() {
		if seen[v] {
			continue
		}
		res, err := Vertices(m, v)
		if err != nil {
			return nil, err
		}
		comp := append([]int(nil), res.Order...)
		for _, k := range comp {
			seen[k] = true
		}
		sort.Ints(comp)
		out = append(out, comp)
	}

	return out, nil
}

func run(next neighborFunc, start, n int, opts []Option) (*BFSResult, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		next:    next,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[int]bool, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks key visited at depth d, calls OnEnqueue,
// and adds it to the queue.
func (w *walker) enqueue(key, d int) {
	w.visited[key] = true
	w.res.Depth[key] = d
	w.opts.OnEnqueue(key, d)
	w.queue = append(w.queue, queueItem{key: key, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.key, item.depth)

	return item
}

// visit records the key in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.key)
	if err := w.opts.OnVisit(item.key, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.key, err)
	}

	return nil
}

// enqueueNeighbors retrieves neighbors, applies filtering and MaxDepth,
// and enqueues each unseen neighbor. Returns ErrNeighbors on lookup failure.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.next(item.key)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %d: %v", ErrNeighbors, item.key, err)
	}
	neighbors = append([]int(nil), neighbors...)
	sort.Ints(neighbors)
	for _, nbr := range neighbors {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.key, nbr) {
			continue
		}
		w.res.Parent[nbr] = item.key
		w.enqueue(nbr, nextDepth)
	}

	return nil
}
