// SPDX-License-Identifier: MIT
// File: split.go
// Role: Edge split mutators (general polygon and triangle-preserving).
//
// Policy:
//   - Illegal split (boundary edge without WithBoundary, non-triangle side for
//     TriSplitEdge) → (NoVertex, false, nil), mesh untouched.
//   - t outside (0,1) → ErrParameterDomain.
package core

import "fmt"

// SplitEdge inserts a vertex w on edge u–v at parameter t (WithT, default 0.5)
// and splices it into both adjacent face cycles.
//
// Implementation:
//   - Stage 1: Validate t and the edge; refuse boundary edges unless WithBoundary.
//   - Stage 2: Add w at u + t·(v - u).
//   - Stage 3: Rewire u→w→v onto face(u→v) and v→w→u onto face(v→u);
//     u and v keep the slot of the replaced halfedge in their outgoing lists.
//   - Stage 4: Insert w before v in face(u→v) and before u in face(v→u).
//     The attributes of u–v are dropped.
//
// Errors:
//   - ErrParameterDomain: t ∉ (0,1).
//   - ErrVertexNotFound, ErrEdgeNotFound.
//
// Complexity:
//   - Time O(deg(u) + deg(v) + face sizes).
func (m *Mesh) SplitEdge(u, v int, opts ...EdgeOpOption) (int, bool, error) {
	op := resolveEdgeOp(opts)
	fuv, fvu, err := m.checkSplit(u, v, op)
	if err != nil {
		return NoVertex, false, err
	}
	if !op.allowBoundary && (fuv == NoFace || fvu == NoFace) {
		return NoVertex, false, nil
	}

	return m.splitEdge(u, v, op.t, fuv, fvu), true, nil
}

func (m *Mesh) checkSplit(u, v int, op edgeOp) (int, int, error) {
	if op.t <= 0 || op.t >= 1 {
		return NoFace, NoFace, fmt.Errorf("SplitEdge(%d, %d): t=%g not in (0,1): %w", u, v, op.t, ErrParameterDomain)
	}
	if !m.HasVertex(u) || !m.HasVertex(v) {
		return NoFace, NoFace, fmt.Errorf("SplitEdge(%d, %d): %w", u, v, ErrVertexNotFound)
	}
	fuv, fvu, err := m.EdgeFaces(u, v)
	if err != nil {
		return NoFace, NoFace, fmt.Errorf("SplitEdge(%d, %d): %w", u, v, ErrEdgeNotFound)
	}

	return fuv, fvu, nil
}

func (m *Mesh) splitEdge(u, v int, t float64, fuv, fvu int) int {
	p := m.edgePoint(u, v, t)
	w, _ := m.AddVertex(WithPoint(p))

	m.renameHalfedge(u, v, w, fuv)
	m.setHalfedge(w, v, fuv)
	m.renameHalfedge(v, u, w, fvu)
	m.setHalfedge(w, u, fvu)
	delete(m.edgedata, NewEdge(u, v))

	if fuv != NoFace {
		m.spliceBefore(fuv, v, w)
	}
	if fvu != NoFace {
		m.spliceBefore(fvu, u, w)
	}

	return w
}

// spliceBefore inserts w in front of before in the cycle of f.
func (m *Mesh) spliceBefore(f, before, w int) {
	rec := m.faces[f]
	i := faceIndex(rec.cycle, before)
	cycle := make([]int, 0, len(rec.cycle)+1)
	cycle = append(cycle, rec.cycle[:i]...)
	cycle = append(cycle, w)
	cycle = append(cycle, rec.cycle[i:]...)
	rec.cycle = cycle
}

// TriSplitEdge splits u–v like SplitEdge and then connects w to the opposite
// vertex of each adjacent triangle, so a triangle mesh stays triangular.
// Each adjacent triangle keeps its key for the half containing the original
// endpoint u (side u→v) or v (side v→u); the other half gets a new key.
//
// Illegal (false) when an adjacent face is not a triangle or when the edge is
// on the boundary without WithBoundary.
func (m *Mesh) TriSplitEdge(u, v int, opts ...EdgeOpOption) (int, bool, error) {
	op := resolveEdgeOp(opts)
	fuv, fvu, err := m.checkSplit(u, v, op)
	if err != nil {
		return NoVertex, false, err
	}
	if !op.allowBoundary && (fuv == NoFace || fvu == NoFace) {
		return NoVertex, false, nil
	}
	for _, f := range []int{fuv, fvu} {
		if f != NoFace && len(m.faces[f].cycle) != 3 {
			return NoVertex, false, nil
		}
	}

	w := m.splitEdge(u, v, op.t, fuv, fvu)
	if fuv != NoFace {
		m.splitQuadAt(fuv, u, w, v)
	}
	if fvu != NoFace {
		m.splitQuadAt(fvu, v, w, u)
	}

	return w, true, nil
}

// splitQuadAt turns face f = (a, w, b, o) into (a, w, o) under key f and
// (w, b, o) under a new key.
func (m *Mesh) splitQuadAt(f, a, w, b int) {
	rec := m.faces[f]
	i := faceIndex(rec.cycle, b)
	o := rec.cycle[(i+1)%len(rec.cycle)]
	attrs := rec.attrs
	delete(m.faces, f)
	m.attachFace(f, []int{a, w, o}, attrs)
	m.maxFace++
	m.attachFace(m.maxFace, []int{w, b, o}, nil)
}
