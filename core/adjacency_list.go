// SPDX-License-Identifier: MIT
// File: adjacency_list.go
// Role: Raw halfedge primitives on the per-vertex outgoing lists.
//
// Policy:
//   - No topology rules here; callers (store, mutators) own the invariants.
//   - Outgoing lists keep insertion order so that enumeration is reproducible.
//   - Callers guarantee that every referenced vertex exists.
package core

// halfedgeFace returns the face on the left of u→v and whether u→v exists.
// Complexity: O(deg(u)).
func (m *Mesh) halfedgeFace(u, v int) (int, bool) {
	rec, ok := m.vertices[u]
	if !ok {
		return NoFace, false
	}
	for _, h := range rec.out {
		if h.to == v {
			return h.face, true
		}
	}

	return NoFace, false
}

// hasHalfedge reports whether u→v is registered (with or without a face).
func (m *Mesh) hasHalfedge(u, v int) bool {
	_, ok := m.halfedgeFace(u, v)
	return ok
}

// setHalfedge registers u→v with face f, updating in place when present.
// Complexity: O(deg(u)).
func (m *Mesh) setHalfedge(u, v, f int) {
	rec := m.vertices[u]
	for i := range rec.out {
		if rec.out[i].to == v {
			rec.out[i].face = f
			return
		}
	}
	rec.out = append(rec.out, halfedge{to: v, face: f})
}

// ensureHalfedge registers u→v as a boundary halfedge unless it already exists.
func (m *Mesh) ensureHalfedge(u, v int) {
	if !m.hasHalfedge(u, v) {
		m.setHalfedge(u, v, NoFace)
	}
}

// removeHalfedge drops u→v from u's outgoing list, preserving order.
// Complexity: O(deg(u)).
func (m *Mesh) removeHalfedge(u, v int) {
	rec, ok := m.vertices[u]
	if !ok {
		return
	}
	for i := range rec.out {
		if rec.out[i].to == v {
			rec.out = append(rec.out[:i], rec.out[i+1:]...)
			return
		}
	}
}

// renameHalfedge replaces u→old with u→nu, keeping its slot and face.
func (m *Mesh) renameHalfedge(u, old, nu, f int) {
	rec := m.vertices[u]
	for i := range rec.out {
		if rec.out[i].to == old {
			rec.out[i] = halfedge{to: nu, face: f}
			return
		}
	}
	rec.out = append(rec.out, halfedge{to: nu, face: f})
}

// pruneEdge removes both directions of u–v when neither side has a face,
// together with the edge attributes. It reports whether the edge was removed.
func (m *Mesh) pruneEdge(u, v int) bool {
	fuv, okuv := m.halfedgeFace(u, v)
	fvu, okvu := m.halfedgeFace(v, u)
	if (okuv && fuv != NoFace) || (okvu && fvu != NoFace) {
		return false
	}
	m.removeHalfedge(u, v)
	m.removeHalfedge(v, u)
	delete(m.edgedata, NewEdge(u, v))

	return true
}

// faceIndex returns the position of v in face f's cycle, or -1.
func faceIndex(cycle []int, v int) int {
	for i, x := range cycle {
		if x == v {
			return i
		}
	}

	return -1
}

// normalizeCycle drops a closing duplicate and collapses consecutive repeats.
func normalizeCycle(vertices []int) []int {
	out := make([]int, 0, len(vertices))
	for _, v := range vertices {
		if len(out) > 0 && out[len(out)-1] == v {
			continue
		}
		out = append(out, v)
	}
	for len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}

	return out
}

// distinctCount returns the number of distinct keys in cycle.
func distinctCount(cycle []int) int {
	seen := make(map[int]struct{}, len(cycle))
	for _, v := range cycle {
		seen[v] = struct{}{}
	}

	return len(seen)
}
