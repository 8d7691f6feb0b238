// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Neighborhood, fan and boundary queries.
//
// Determinism:
//   - Unordered neighbor/face lists follow halfedge insertion order.
//   - Ordered lists follow the face fan around the vertex, starting at a
//     boundary neighbor when one exists.
//   - Boundary enumerations are sorted.
package core

import (
	"fmt"
	"sort"
)

// Halfedge is a directed edge u→v.
type Halfedge struct {
	U, V int
}

// VertexNeighbors returns the neighbors of v in halfedge insertion order.
func (m *Mesh) VertexNeighbors(v int) ([]int, error) {
	rec, ok := m.vertices[v]
	if !ok {
		return nil, fmt.Errorf("VertexNeighbors(%d): %w", v, ErrVertexNotFound)
	}
	out := make([]int, len(rec.out))
	for i, h := range rec.out {
		out[i] = h.to
	}

	return out, nil
}

// VertexNeighborsOrdered returns the neighbors of v in fan order.
//
// Implementation:
//   - Start at a neighbor n with halfedge v→n on the boundary, else at the first
//     neighbor, so that a boundary vertex's list begins and ends on the boundary.
//   - Repeatedly take f = face(n→v) and step to the vertex following v in f,
//     until the walk returns to the start or reaches a boundary gap.
//
// Errors:
//   - ErrVertexNotFound.
//   - ErrMalformedFan: the walk neither closes nor stops within degree(v)
//     steps, or a face on the walk does not contain v.
//
// Complexity:
//   - Time O(deg(v)·(deg + face size)).
func (m *Mesh) VertexNeighborsOrdered(v int) ([]int, error) {
	nbrs, err := m.VertexNeighbors(v)
	if err != nil {
		return nil, err
	}
	if len(nbrs) == 0 {
		return nbrs, nil
	}

	start := nbrs[0]
	for _, n := range nbrs {
		if f, _ := m.halfedgeFace(v, n); f == NoFace {
			start = n
			break
		}
	}

	ordered := []int{start}
	f, _ := m.halfedgeFace(start, v)
	for f != NoFace {
		rec, ok := m.faces[f]
		if !ok {
			return nil, fmt.Errorf("VertexNeighborsOrdered(%d): face %d: %w", v, f, ErrMalformedFan)
		}
		i := faceIndex(rec.cycle, v)
		if i < 0 {
			return nil, fmt.Errorf("VertexNeighborsOrdered(%d): face %d: %w", v, f, ErrMalformedFan)
		}
		next := rec.cycle[(i+1)%len(rec.cycle)]
		if next == start {
			break
		}
		if len(ordered) >= len(nbrs) {
			return nil, fmt.Errorf("VertexNeighborsOrdered(%d): walk exceeds degree %d: %w", v, len(nbrs), ErrMalformedFan)
		}
		ordered = append(ordered, next)
		f, _ = m.halfedgeFace(next, v)
	}

	return ordered, nil
}

// VertexDegree returns the number of neighbors of v.
func (m *Mesh) VertexDegree(v int) (int, error) {
	rec, ok := m.vertices[v]
	if !ok {
		return 0, fmt.Errorf("VertexDegree(%d): %w", v, ErrVertexNotFound)
	}

	return len(rec.out), nil
}

// VertexMinDegree returns the smallest vertex degree, or 0 for an empty mesh.
func (m *Mesh) VertexMinDegree() int {
	lo := -1
	for _, rec := range m.vertices {
		if lo < 0 || len(rec.out) < lo {
			lo = len(rec.out)
		}
	}
	if lo < 0 {
		return 0
	}

	return lo
}

// VertexMaxDegree returns the largest vertex degree, or 0 for an empty mesh.
func (m *Mesh) VertexMaxDegree() int {
	hi := 0
	for _, rec := range m.vertices {
		if len(rec.out) > hi {
			hi = len(rec.out)
		}
	}

	return hi
}

// VertexFaces returns the faces around v. With ordered set, the faces follow
// the fan order of VertexNeighborsOrdered.
func (m *Mesh) VertexFaces(v int, ordered bool) ([]int, error) {
	var (
		nbrs []int
		err  error
	)
	if ordered {
		nbrs, err = m.VertexNeighborsOrdered(v)
	} else {
		nbrs, err = m.VertexNeighbors(v)
	}
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(nbrs))
	seen := make(map[int]struct{}, len(nbrs))
	for _, n := range nbrs {
		f, _ := m.halfedgeFace(v, n)
		if f == NoFace {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}

	return out, nil
}

// VertexNeighborhood returns the vertices within ring edge-hops of v,
// excluding v, sorted.
func (m *Mesh) VertexNeighborhood(v int, ring int) ([]int, error) {
	if _, ok := m.vertices[v]; !ok {
		return nil, fmt.Errorf("VertexNeighborhood(%d): %w", v, ErrVertexNotFound)
	}
	if ring < 1 {
		return nil, fmt.Errorf("VertexNeighborhood(%d): ring %d: %w", v, ring, ErrParameterDomain)
	}
	seen := map[int]struct{}{v: {}}
	frontier := []int{v}
	for r := 0; r < ring; r++ {
		var next []int
		for _, u := range frontier {
			for _, h := range m.vertices[u].out {
				if _, ok := seen[h.to]; ok {
					continue
				}
				seen[h.to] = struct{}{}
				next = append(next, h.to)
			}
		}
		frontier = next
	}
	delete(seen, v)
	out := make([]int, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Ints(out)

	return out, nil
}

// HalfedgeFace returns the face on the left of u→v, or NoFace on the boundary.
func (m *Mesh) HalfedgeFace(u, v int) (int, error) {
	f, ok := m.halfedgeFace(u, v)
	if !ok {
		return NoFace, fmt.Errorf("HalfedgeFace(%d, %d): %w", u, v, ErrEdgeNotFound)
	}

	return f, nil
}

// EdgeFaces returns the faces on the left of u→v and of v→u.
func (m *Mesh) EdgeFaces(u, v int) (int, int, error) {
	fuv, ok1 := m.halfedgeFace(u, v)
	fvu, ok2 := m.halfedgeFace(v, u)
	if !ok1 && !ok2 {
		return NoFace, NoFace, fmt.Errorf("EdgeFaces(%d, %d): %w", u, v, ErrEdgeNotFound)
	}

	return fuv, fvu, nil
}

// FaceHalfedges returns the directed edges of f in cycle order.
func (m *Mesh) FaceHalfedges(f int) ([]Halfedge, error) {
	rec, ok := m.faces[f]
	if !ok {
		return nil, fmt.Errorf("FaceHalfedges(%d): %w", f, ErrFaceNotFound)
	}
	n := len(rec.cycle)
	out := make([]Halfedge, n)
	for i := 0; i < n; i++ {
		out[i] = Halfedge{U: rec.cycle[i], V: rec.cycle[(i+1)%n]}
	}

	return out, nil
}

// FaceDegree returns the number of vertices of f.
func (m *Mesh) FaceDegree(f int) (int, error) {
	rec, ok := m.faces[f]
	if !ok {
		return 0, fmt.Errorf("FaceDegree(%d): %w", f, ErrFaceNotFound)
	}

	return len(rec.cycle), nil
}

// FaceNeighbors returns the faces sharing an edge with f, in cycle order.
func (m *Mesh) FaceNeighbors(f int) ([]int, error) {
	hes, err := m.FaceHalfedges(f)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(hes))
	seen := make(map[int]struct{}, len(hes))
	for _, he := range hes {
		nf, _ := m.halfedgeFace(he.V, he.U)
		if nf == NoFace || nf == f {
			continue
		}
		if _, dup := seen[nf]; dup {
			continue
		}
		seen[nf] = struct{}{}
		out = append(out, nf)
	}

	return out, nil
}

// FaceVertexAncestor returns the vertex preceding v in the cycle of f.
func (m *Mesh) FaceVertexAncestor(f, v int) (int, error) {
	rec, ok := m.faces[f]
	if !ok {
		return NoVertex, fmt.Errorf("FaceVertexAncestor(%d, %d): %w", f, v, ErrFaceNotFound)
	}
	i := faceIndex(rec.cycle, v)
	if i < 0 {
		return NoVertex, fmt.Errorf("FaceVertexAncestor(%d, %d): %w", f, v, ErrVertexNotFound)
	}
	n := len(rec.cycle)

	return rec.cycle[(i-1+n)%n], nil
}

// FaceVertexDescendant returns the vertex following v in the cycle of f.
func (m *Mesh) FaceVertexDescendant(f, v int) (int, error) {
	rec, ok := m.faces[f]
	if !ok {
		return NoVertex, fmt.Errorf("FaceVertexDescendant(%d, %d): %w", f, v, ErrFaceNotFound)
	}
	i := faceIndex(rec.cycle, v)
	if i < 0 {
		return NoVertex, fmt.Errorf("FaceVertexDescendant(%d, %d): %w", f, v, ErrVertexNotFound)
	}

	return rec.cycle[(i+1)%len(rec.cycle)], nil
}

// FaceAdjacencyHalfedge returns the halfedge of f1 whose reverse belongs to f2.
// The bool is false when the faces do not share an edge.
func (m *Mesh) FaceAdjacencyHalfedge(f1, f2 int) (Halfedge, bool, error) {
	hes, err := m.FaceHalfedges(f1)
	if err != nil {
		return Halfedge{}, false, err
	}
	if !m.HasFace(f2) {
		return Halfedge{}, false, fmt.Errorf("FaceAdjacencyHalfedge(%d, %d): %w", f1, f2, ErrFaceNotFound)
	}
	for _, he := range hes {
		if nf, _ := m.halfedgeFace(he.V, he.U); nf == f2 {
			return he, true, nil
		}
	}

	return Halfedge{}, false, nil
}

// ---------- boundary ----------

// IsVertexOnBoundary reports whether v has an outgoing boundary halfedge.
func (m *Mesh) IsVertexOnBoundary(v int) (bool, error) {
	rec, ok := m.vertices[v]
	if !ok {
		return false, fmt.Errorf("IsVertexOnBoundary(%d): %w", v, ErrVertexNotFound)
	}

	return m.onBoundary(rec), nil
}

func (m *Mesh) onBoundary(rec *vertexRecord) bool {
	for _, h := range rec.out {
		if h.face == NoFace {
			return true
		}
	}

	return false
}

// IsEdgeOnBoundary reports whether either direction of u–v has no face.
func (m *Mesh) IsEdgeOnBoundary(u, v int) (bool, error) {
	fuv, fvu, err := m.EdgeFaces(u, v)
	if err != nil {
		return false, err
	}

	return fuv == NoFace || fvu == NoFace, nil
}

// IsFaceOnBoundary reports whether f has an edge on the boundary.
func (m *Mesh) IsFaceOnBoundary(f int) (bool, error) {
	hes, err := m.FaceHalfedges(f)
	if err != nil {
		return false, err
	}
	for _, he := range hes {
		if nf, _ := m.halfedgeFace(he.V, he.U); nf == NoFace {
			return true, nil
		}
	}

	return false, nil
}

// VerticesOnBoundary returns the boundary vertices, sorted.
func (m *Mesh) VerticesOnBoundary() []int {
	out := make([]int, 0)
	for k, rec := range m.vertices {
		if m.onBoundary(rec) {
			out = append(out, k)
		}
	}
	sort.Ints(out)

	return out
}

// EdgesOnBoundary returns the boundary edges, sorted.
func (m *Mesh) EdgesOnBoundary() []Edge {
	out := make([]Edge, 0)
	for _, e := range m.Edges() {
		fuv, _ := m.halfedgeFace(e.U, e.V)
		fvu, _ := m.halfedgeFace(e.V, e.U)
		if fuv == NoFace || fvu == NoFace {
			out = append(out, e)
		}
	}

	return out
}

// FacesOnBoundary returns the faces with at least one boundary edge, sorted.
func (m *Mesh) FacesOnBoundary() []int {
	out := make([]int, 0)
	for _, f := range m.Faces() {
		if on, _ := m.IsFaceOnBoundary(f); on {
			out = append(out, f)
		}
	}

	return out
}

// BoundaryLoops returns the closed chains of boundary halfedges as vertex
// sequences. Each loop starts at its smallest vertex key and loops are ordered
// by that key. Face-less (wire) pairs are skipped.
func (m *Mesh) BoundaryLoops() [][]int {
	used := make(map[Halfedge]struct{})
	isBoundary := func(u, v int) bool {
		f, ok := m.halfedgeFace(u, v)
		if !ok || f != NoFace {
			return false
		}
		r, _ := m.halfedgeFace(v, u)
		return r != NoFace
	}

	var loops [][]int
	for _, u := range m.Vertices() {
		for _, h := range m.vertices[u].out {
			he := Halfedge{U: u, V: h.to}
			if _, done := used[he]; done || !isBoundary(u, h.to) {
				continue
			}
			loop := []int{u}
			cur := he
			for {
				used[cur] = struct{}{}
				if cur.V == u {
					break
				}
				loop = append(loop, cur.V)
				nextFound := false
				for _, nh := range m.vertices[cur.V].out {
					cand := Halfedge{U: cur.V, V: nh.to}
					if _, done := used[cand]; done {
						continue
					}
					if isBoundary(cur.V, nh.to) {
						cur = cand
						nextFound = true
						break
					}
				}
				if !nextFound {
					break
				}
			}
			loops = append(loops, loop)
		}
	}

	return loops
}
