// SPDX-License-Identifier: MIT
// File: collapse.go
// Role: Edge collapse (v merged into u) with an upfront legality check.
//
// Policy:
//   - Legality is decided entirely before the first write, so an illegal
//     collapse leaves every map untouched and needs no rollback.
//   - Surviving faces keep their keys and attributes; edge attributes follow
//     the renamed endpoints.
package core

import "fmt"

// collapsePlan is the outcome of a legality check: the new cycle of every
// face containing v (nil when the face disappears).
type collapsePlan struct {
	cycles map[int][]int
	order  []int
}

// IsCollapseLegal reports whether CollapseEdge(u, v, opts...) would proceed.
//
// A collapse is illegal when:
//   - u or v is in the WithFixed set;
//   - u or v lies on the boundary and WithBoundary is not given;
//   - u and v are interior and see no more than two other vertices, i.e. the
//     edge belongs to a closed tetrahedron (or smaller) that would flatten;
//   - a vertex adjacent to both u and v is not part of a face across u–v
//     (the merge would pinch the surface);
//   - a face contains u and v without them being consecutive;
//   - a rewritten face would claim a halfedge already owned by another face,
//     or would repeat a vertex.
//
// Errors:
//   - ErrParameterDomain: t ∉ [0,1].
//   - ErrVertexNotFound, ErrEdgeNotFound.
func (m *Mesh) IsCollapseLegal(u, v int, opts ...EdgeOpOption) (bool, error) {
	op := resolveEdgeOp(opts)
	_, ok, err := m.planCollapse(u, v, op)

	return ok, err
}

func (m *Mesh) planCollapse(u, v int, op edgeOp) (collapsePlan, bool, error) {
	var plan collapsePlan
	if op.t < 0 || op.t > 1 {
		return plan, false, fmt.Errorf("CollapseEdge(%d, %d): t=%g not in [0,1]: %w", u, v, op.t, ErrParameterDomain)
	}
	ru, oku := m.vertices[u]
	rv, okv := m.vertices[v]
	if !oku || !okv {
		return plan, false, fmt.Errorf("CollapseEdge(%d, %d): %w", u, v, ErrVertexNotFound)
	}
	fuv, fvu, err := m.EdgeFaces(u, v)
	if err != nil || u == v {
		return plan, false, fmt.Errorf("CollapseEdge(%d, %d): %w", u, v, ErrEdgeNotFound)
	}

	if _, fixed := op.fixed[u]; fixed {
		return plan, false, nil
	}
	if _, fixed := op.fixed[v]; fixed {
		return plan, false, nil
	}
	if !op.allowBoundary && (m.onBoundary(ru) || m.onBoundary(rv)) {
		return plan, false, nil
	}

	// a closed component keeps at least four vertices
	if !m.onBoundary(ru) && !m.onBoundary(rv) && len(ru.out) <= 3 && len(rv.out) <= 3 {
		link := make(map[int]struct{}, 4)
		for _, h := range ru.out {
			link[h.to] = struct{}{}
		}
		for _, h := range rv.out {
			link[h.to] = struct{}{}
		}
		delete(link, u)
		delete(link, v)
		if len(link) <= 2 {
			return plan, false, nil
		}
	}

	// common neighbors must sit in a face across u–v
	inFace := func(f, w int) bool {
		return f != NoFace && faceIndex(m.faces[f].cycle, w) >= 0
	}
	for _, h := range ru.out {
		w := h.to
		if w == v || !m.hasHalfedge(v, w) {
			continue
		}
		if !inFace(fuv, w) && !inFace(fvu, w) {
			return plan, false, nil
		}
	}

	plan.cycles = make(map[int][]int)
	seen := make(map[int]struct{})
	for _, h := range rv.out {
		for _, f := range []int{h.face, m.faceOf(h.to, v)} {
			if f == NoFace {
				continue
			}
			if _, dup := seen[f]; dup {
				continue
			}
			seen[f] = struct{}{}
			plan.order = append(plan.order, f)
		}
	}

	claimed := make(map[Halfedge]int)
	for _, f := range plan.order {
		old := m.faces[f].cycle
		iu, iv := faceIndex(old, u), faceIndex(old, v)
		n := len(old)
		if iu >= 0 && (iu+1)%n != iv && (iv+1)%n != iu {
			return plan, false, nil
		}
		renamed := make([]int, n)
		for i, x := range old {
			if x == v {
				x = u
			}
			renamed[i] = x
		}
		cycle := normalizeCycle(renamed)
		if len(cycle) < 3 {
			plan.cycles[f] = nil
			continue
		}
		if distinctCount(cycle) != len(cycle) {
			return plan, false, nil
		}
		for i := range cycle {
			he := Halfedge{U: cycle[i], V: cycle[(i+1)%len(cycle)]}
			if _, dup := claimed[he]; dup {
				return plan, false, nil
			}
			claimed[he] = f
			owner, _ := m.halfedgeFace(he.U, he.V)
			if owner == NoFace || owner == f {
				continue
			}
			if _, affected := seen[owner]; !affected {
				return plan, false, nil
			}
		}
		plan.cycles[f] = cycle
	}

	return plan, true, nil
}

// faceOf returns face(a→b) or NoFace when the halfedge is missing.
func (m *Mesh) faceOf(a, b int) int {
	f, _ := m.halfedgeFace(a, b)
	return f
}

// CollapseEdge merges v into u. u moves to u + t·(v - u) (WithT, default 0.5);
// faces through u–v lose a vertex and disappear when fewer than three remain;
// every other face of v is re-homed onto u; v is deleted.
//
// Returns false, with the mesh untouched, when IsCollapseLegal is false.
//
// Complexity:
//   - Time O(Σ sizes of faces around v · deg).
func (m *Mesh) CollapseEdge(u, v int, opts ...EdgeOpOption) (bool, error) {
	op := resolveEdgeOp(opts)
	plan, ok, err := m.planCollapse(u, v, op)
	if err != nil || !ok {
		return false, err
	}

	m.setPoint(u, m.edgePoint(u, v, op.t))

	// edge attributes, renamed onto u; u's own records win
	saved := make(map[Edge]Attrs)
	for pass := 0; pass < 2; pass++ {
		for _, f := range plan.order {
			cycle := m.faces[f].cycle
			for i := range cycle {
				a, b := cycle[i], cycle[(i+1)%len(cycle)]
				touchesV := a == v || b == v
				if (pass == 0) != touchesV {
					continue
				}
				attrs, has := m.edgedata[NewEdge(a, b)]
				if !has {
					continue
				}
				if a == v {
					a = u
				}
				if b == v {
					b = u
				}
				if a != b {
					saved[NewEdge(a, b)] = attrs
				}
			}
		}
	}

	faceAttrs := make(map[int]Attrs, len(plan.order))
	for _, f := range plan.order {
		faceAttrs[f] = m.faces[f].attrs
		m.unlinkFace(f)
	}
	_ = m.DeleteVertex(v)

	for _, f := range plan.order {
		if cycle := plan.cycles[f]; cycle != nil {
			m.attachFace(f, cycle, faceAttrs[f])
		}
	}
	for e, attrs := range saved {
		if m.HasEdge(e.U, e.V) {
			m.edgedata[e] = attrs
		}
	}

	return true, nil
}

// TriCollapseEdge collapses like CollapseEdge and then deletes every vertex
// around the merge point left with fewer than two neighbors.
func (m *Mesh) TriCollapseEdge(u, v int, opts ...EdgeOpOption) (bool, error) {
	around := make(map[int]struct{})
	if rec, ok := m.vertices[v]; ok {
		for _, h := range rec.out {
			around[h.to] = struct{}{}
		}
	}
	if rec, ok := m.vertices[u]; ok {
		for _, h := range rec.out {
			around[h.to] = struct{}{}
		}
	}

	ok, err := m.CollapseEdge(u, v, opts...)
	if err != nil || !ok {
		return ok, err
	}

	around[u] = struct{}{}
	delete(around, v)
	for w := range around {
		if rec, exists := m.vertices[w]; exists && len(rec.out) < 2 {
			_ = m.DeleteVertex(w)
		}
	}

	return true, nil
}
