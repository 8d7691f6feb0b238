// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Undirected edge enumeration over the halfedge relation.
//
// Determinism:
//   - Edges() returns canonical pairs sorted by (U, V).
package core

import "sort"

// Edges returns every undirected edge once, in canonical form, sorted.
// Complexity: O(H log H), H = number of halfedges.
func (m *Mesh) Edges() []Edge {
	out := make([]Edge, 0, m.EdgeCount())
	for u, rec := range m.vertices {
		for _, h := range rec.out {
			if u < h.to || !m.hasHalfedge(h.to, u) {
				out = append(out, NewEdge(u, h.to))
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// EdgeCount returns the number of undirected edges.
func (m *Mesh) EdgeCount() int {
	n := 0
	for u, rec := range m.vertices {
		for _, h := range rec.out {
			if u < h.to || !m.hasHalfedge(h.to, u) {
				n++
			}
		}
	}

	return n
}

// HasEdge reports whether u and v are adjacent, in either direction.
func (m *Mesh) HasEdge(u, v int) bool {
	return m.hasHalfedge(u, v) || m.hasHalfedge(v, u)
}

// HasHalfedge reports whether the directed halfedge u→v is registered.
func (m *Mesh) HasHalfedge(u, v int) bool {
	return m.hasHalfedge(u, v)
}

// EdgeRecord pairs an edge with its attributes merged over the defaults.
type EdgeRecord struct {
	Edge  Edge
	Attrs Attrs
}

// EdgeRecords returns every edge with its attributes, sorted.
func (m *Mesh) EdgeRecords() []EdgeRecord {
	edges := m.Edges()
	out := make([]EdgeRecord, 0, len(edges))
	for _, e := range edges {
		out = append(out, EdgeRecord{Edge: e, Attrs: merged(m.dea, m.edgedata[e])})
	}

	return out
}
