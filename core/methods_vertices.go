// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle & enumeration.
//
// Determinism:
//   - Vertices() returns keys sorted ascending.
//   - Auto-assigned keys are max_seen + 1; deleted keys are never reused.
package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex and returns its key.
//
// Implementation:
//   - Stage 1: Resolve options; reject a negative explicit key (ErrInvalidKey).
//   - Stage 2: Without WithKey, allocate maxVertex+1; with a key above the
//     running maximum, advance the maximum to it.
//   - Stage 3: If the key exists, merge the new attributes into the old record;
//     otherwise create a record with an empty outgoing list.
//
// Behavior highlights:
//   - Re-adding an existing key is not an error: attributes are merged.
//   - Explicit sparse numbering mixes freely with auto-numbering.
//
// Errors:
//   - ErrInvalidKey: explicit key < 0.
//
// Complexity:
//   - Time O(len(attrs)), Space O(len(attrs)).
func (m *Mesh) AddVertex(opts ...ElementOption) (int, error) {
	spec := resolveElement(opts)

	key := m.maxVertex + 1
	if spec.hasKey {
		if spec.key < 0 {
			return NoVertex, fmt.Errorf("AddVertex(%d): %w", spec.key, ErrInvalidKey)
		}
		key = spec.key
	}
	if key > m.maxVertex {
		m.maxVertex = key
	}

	if rec, ok := m.vertices[key]; ok {
		for k, v := range spec.attrs {
			rec.attrs[k] = v
		}
		return key, nil
	}
	m.vertices[key] = &vertexRecord{attrs: spec.attrs}

	return key, nil
}

// HasVertex reports whether the vertex key exists.
// Complexity: O(1).
func (m *Mesh) HasVertex(v int) bool {
	_, ok := m.vertices[v]
	return ok
}

// Vertices returns all vertex keys in ascending order.
// Complexity: O(V log V).
func (m *Mesh) Vertices() []int {
	keys := make([]int, 0, len(m.vertices))
	for k := range m.vertices {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.vertices) }

// MaxVertex returns the largest vertex key ever allocated, or -1.
func (m *Mesh) MaxVertex() int { return m.maxVertex }

// VertexRecord pairs a vertex key with its attributes merged over the defaults.
type VertexRecord struct {
	Key   int
	Attrs Attrs
}

// VertexRecords returns every vertex with its attributes, in key order.
// Complexity: O(V log V + V·A).
func (m *Mesh) VertexRecords() []VertexRecord {
	keys := m.Vertices()
	out := make([]VertexRecord, 0, len(keys))
	for _, k := range keys {
		out = append(out, VertexRecord{Key: k, Attrs: merged(m.dva, m.vertices[k].attrs)})
	}

	return out
}

// DeleteVertex removes a vertex and cascades through its neighborhood.
//
// Implementation:
//   - Stage 1: Delete every face incident to v (their halfedges become
//     boundary halfedges, face attributes are dropped).
//   - Stage 2: Remove the halfedges between v and each neighbor together with
//     the edge attributes.
//   - Stage 3: Around each former neighbor, prune edges left with no face on
//     either side.
//   - Stage 4: Drop the vertex record.
//
// Errors:
//   - ErrVertexNotFound: v does not exist.
//
// Complexity:
//   - Time O(Σ face sizes around v + Σ deg(neighbors)).
func (m *Mesh) DeleteVertex(v int) error {
	rec, ok := m.vertices[v]
	if !ok {
		return fmt.Errorf("DeleteVertex(%d): %w", v, ErrVertexNotFound)
	}

	nbrs := make([]int, 0, len(rec.out))
	for _, h := range rec.out {
		nbrs = append(nbrs, h.to)
	}

	// Stage 1: faces through v.
	for _, n := range nbrs {
		f, _ := m.halfedgeFace(v, n)
		if f == NoFace {
			continue
		}
		if _, exists := m.faces[f]; exists {
			m.unlinkFace(f)
		}
	}

	// Stage 2: spokes.
	for _, n := range nbrs {
		m.removeHalfedge(n, v)
		delete(m.edgedata, NewEdge(n, v))
	}

	// Stage 3: dangling boundary pairs around the former neighbors.
	for _, n := range nbrs {
		nrec, exists := m.vertices[n]
		if !exists {
			continue
		}
		others := make([]int, 0, len(nrec.out))
		for _, h := range nrec.out {
			others = append(others, h.to)
		}
		for _, o := range others {
			m.pruneEdge(n, o)
		}
	}

	delete(m.vertices, v)

	return nil
}

// RemoveUnusedVertices deletes every vertex without incident edges and
// returns how many were removed.
// Complexity: O(V).
func (m *Mesh) RemoveUnusedVertices() int {
	removed := 0
	for k, rec := range m.vertices {
		if len(rec.out) == 0 {
			delete(m.vertices, k)
			removed++
		}
	}

	return removed
}

// CullVertices deletes every vertex that does not belong to any face and
// returns how many were removed. Unlike RemoveUnusedVertices it also drops
// vertices that are only attached through face-less (wire) edges.
func (m *Mesh) CullVertices() int {
	used := make(map[int]struct{}, len(m.vertices))
	for _, f := range m.faces {
		for _, v := range f.cycle {
			used[v] = struct{}{}
		}
	}
	removed := 0
	for _, k := range m.Vertices() {
		if _, ok := used[k]; ok {
			continue
		}
		if err := m.DeleteVertex(k); err == nil {
			removed++
		}
	}

	return removed
}
