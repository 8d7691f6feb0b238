// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Cloning and clearing mesh instances.
// Determinism:
//   - Clone carries maxVertex/maxFace so keys allocated on the clone continue
//     the source sequence.
package core

// CloneEmpty returns a mesh with the same attributes, default templates and
// key counters, but no vertices or faces.
// Complexity: O(A).
func (m *Mesh) CloneEmpty() *Mesh {
	clone := &Mesh{
		attributes: m.attributes.Clone(),
		dva:        m.dva.Clone(),
		dea:        m.dea.Clone(),
		dfa:        m.dfa.Clone(),
		vertices:   make(map[int]*vertexRecord, len(m.vertices)),
		faces:      make(map[int]*faceRecord, len(m.faces)),
		edgedata:   make(map[Edge]Attrs, len(m.edgedata)),
		maxVertex:  m.maxVertex,
		maxFace:    m.maxFace,
	}

	return clone
}

// Clone returns a deep copy of the mesh: records, halfedge order, attributes
// (shallow per value) and key counters.
// Complexity: O(V + H + Σ face sizes).
func (m *Mesh) Clone() *Mesh {
	clone := m.CloneEmpty()
	for k, rec := range m.vertices {
		out := make([]halfedge, len(rec.out))
		copy(out, rec.out)
		clone.vertices[k] = &vertexRecord{attrs: rec.attrs.Clone(), out: out}
	}
	for k, rec := range m.faces {
		cycle := make([]int, len(rec.cycle))
		copy(cycle, rec.cycle)
		clone.faces[k] = &faceRecord{cycle: cycle, attrs: rec.attrs.Clone()}
	}
	for e, attrs := range m.edgedata {
		clone.edgedata[e] = attrs.Clone()
	}

	return clone
}

// Clear removes all vertices, faces and edge attributes and resets the key
// counters. Mesh attributes and default templates are kept.
func (m *Mesh) Clear() {
	m.vertices = make(map[int]*vertexRecord)
	m.faces = make(map[int]*faceRecord)
	m.edgedata = make(map[Edge]Attrs)
	m.maxVertex = -1
	m.maxFace = -1
}
