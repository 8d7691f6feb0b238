// SPDX-License-Identifier: MIT
// File: swap.go
// Role: Edge swap (flip) on a pair of triangles.
package core

import "fmt"

// SwapEdge replaces the diagonal u–v of the two triangles on either side by
// the diagonal joining their opposite vertices.
//
// With face(u→v) = (u, v, o) and face(v→u) = (v, u, p), the result is the pair
// (u, p, o) and (v, o, p); both faces keep their keys and attributes.
//
// Illegal (false, mesh untouched) when:
//   - either side has no face, or either face is not a triangle;
//   - u or v is on the boundary and WithBoundary is not given;
//   - o == p, or o and p are already adjacent.
//
// Errors:
//   - ErrVertexNotFound, ErrEdgeNotFound.
//
// Complexity: O(deg(u) + deg(v) + deg(o) + deg(p)).
func (m *Mesh) SwapEdge(u, v int, opts ...EdgeOpOption) (bool, error) {
	op := resolveEdgeOp(opts)
	ru, oku := m.vertices[u]
	rv, okv := m.vertices[v]
	if !oku || !okv {
		return false, fmt.Errorf("SwapEdge(%d, %d): %w", u, v, ErrVertexNotFound)
	}
	fuv, fvu, err := m.EdgeFaces(u, v)
	if err != nil {
		return false, fmt.Errorf("SwapEdge(%d, %d): %w", u, v, ErrEdgeNotFound)
	}
	if fuv == NoFace || fvu == NoFace {
		return false, nil
	}
	cuv, cvu := m.faces[fuv].cycle, m.faces[fvu].cycle
	if len(cuv) != 3 || len(cvu) != 3 {
		return false, nil
	}
	if !op.allowBoundary && (m.onBoundary(ru) || m.onBoundary(rv)) {
		return false, nil
	}
	o := cuv[(faceIndex(cuv, u)+2)%3]
	p := cvu[(faceIndex(cvu, v)+2)%3]
	if o == p || m.HasEdge(o, p) {
		return false, nil
	}

	auv, avu := m.faces[fuv].attrs, m.faces[fvu].attrs
	delete(m.faces, fuv)
	delete(m.faces, fvu)
	m.removeHalfedge(u, v)
	m.removeHalfedge(v, u)
	delete(m.edgedata, NewEdge(u, v))

	m.attachFace(fuv, []int{u, p, o}, auv)
	m.attachFace(fvu, []int{v, o, p}, avu)

	return true, nil
}
