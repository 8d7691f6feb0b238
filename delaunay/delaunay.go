// SPDX-License-Identifier: MIT
// Package delaunay: incremental Delaunay triangulation.
package delaunay

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/lvmesh/core"
)

// FromPoints triangulates the xy-projection of points and returns a mesh
// whose vertex i is points[i] (z kept) and whose faces are CCW seen from +z.
//
// Implementation:
//   - Stage 1: Perturb the predicate coordinates by Tiny·diagonal (seeded).
//   - Stage 2: Add a CCW super-triangle of radius 300·diagonal around the
//     centroid, keyed n, n+1, n+2.
//   - Stage 3: For each point, locate its triangle, InsertVertex it, then
//     run Lawson flips from a stack seeded with the edges opposite the new
//     vertex. A flipped edge pushes its two new outer edges.
//   - Stage 4: Delete the super vertices (their faces go with them), then
//     drop faces whose centroid is outside Boundary or inside a hole.
//
// Errors:
//   - ErrTooFewPoints, ErrOptionViolation, ErrLocate.
//
// Complexity:
//   - Time O(n²) worst case (linear point location), Space O(n).
func FromPoints(points [][3]float64, opts ...Option) (*core.Mesh, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := len(points)
	if n < 3 {
		return nil, fmt.Errorf("FromPoints: %d points: %w", n, ErrTooFewPoints)
	}

	lo := r2.Vec{X: math.Inf(1), Y: math.Inf(1)}
	hi := r2.Vec{X: math.Inf(-1), Y: math.Inf(-1)}
	var c r2.Vec
	for i, p := range points {
		if math.IsNaN(p[0]+p[1]) || math.IsInf(p[0]+p[1], 0) {
			return nil, fmt.Errorf("FromPoints: point #%d is not finite: %w", i, ErrOptionViolation)
		}
		lo.X, lo.Y = math.Min(lo.X, p[0]), math.Min(lo.Y, p[1])
		hi.X, hi.Y = math.Max(hi.X, p[0]), math.Max(hi.Y, p[1])
		c = r2.Add(c, r2.Vec{X: p[0], Y: p[1]})
	}
	c = r2.Scale(1/float64(n), c)
	diag := r2.Norm(r2.Sub(hi, lo))
	if diag == 0 {
		return nil, fmt.Errorf("FromPoints: all points coincide: %w", ErrTooFewPoints)
	}

	// Stage 1: predicate coordinates.
	pos := make(map[int]r2.Vec, n+3)
	for i, p := range points {
		pos[i] = r2.Vec{
			X: p[0] + o.Tiny*diag*(2*o.Rand.Float64()-1),
			Y: p[1] + o.Tiny*diag*(2*o.Rand.Float64()-1),
		}
	}

	// Stage 2: super-triangle.
	m := core.New()
	radius := superScale * diag
	super := []int{n, n + 1, n + 2}
	for j, k := range super {
		a := math.Pi/2 + float64(j)*2*math.Pi/3
		p := r2.Add(c, r2.Vec{X: radius * math.Cos(a), Y: radius * math.Sin(a)})
		pos[k] = p
		if _, err := m.AddVertex(core.WithKey(k), core.WithXYZ(p.X, p.Y, 0)); err != nil {
			return nil, fmt.Errorf("FromPoints: %w", err)
		}
	}
	if _, err := m.AddFace(super); err != nil {
		return nil, fmt.Errorf("FromPoints: %w", err)
	}

	// Stage 3: insertion with Lawson flips.
	for i, p := range points {
		f, cycle, err := locate(m, pos, pos[i])
		if err != nil {
			return nil, fmt.Errorf("FromPoints: point #%d: %w", i, err)
		}
		if _, _, err := m.InsertVertex(f, core.WithKey(i), core.WithXYZ(p[0], p[1], p[2])); err != nil {
			return nil, fmt.Errorf("FromPoints: point #%d: %w", i, err)
		}
		if err := legalize(m, pos, i, cycle); err != nil {
			return nil, fmt.Errorf("FromPoints: point #%d: %w", i, err)
		}
	}

	// Stage 4: remove scaffolding and cull.
	for _, k := range super {
		if err := m.DeleteVertex(k); err != nil {
			return nil, fmt.Errorf("FromPoints: %w", err)
		}
	}
	if o.Boundary != nil || len(o.Holes) > 0 {
		for _, f := range m.Faces() {
			cycle, _ := m.FaceVertices(f)
			fc := centroid2(pos, cycle)
			drop := o.Boundary != nil && !InPolygon(o.Boundary, fc)
			for _, h := range o.Holes {
				drop = drop || InPolygon(h, fc)
			}
			if drop {
				if err := m.DeleteFace(f); err != nil {
					return nil, fmt.Errorf("FromPoints: %w", err)
				}
			}
		}
	}

	return m, nil
}

// locate returns the first face (ascending keys) whose triangle holds p.
func locate(m *core.Mesh, pos map[int]r2.Vec, p r2.Vec) (int, []int, error) {
	for _, f := range m.Faces() {
		cycle, err := m.FaceVertices(f)
		if err != nil {
			return core.NoFace, nil, err
		}
		if InTriangle(pos[cycle[0]], pos[cycle[1]], pos[cycle[2]], p) {
			return f, cycle, nil
		}
	}

	return core.NoFace, nil, ErrLocate
}

// legalize flips edges around the freshly inserted vertex p until every
// triangle on the frontier passes the incircle test. Each stack entry is a
// halfedge u→v whose left face is [u, v, p].
func legalize(m *core.Mesh, pos map[int]r2.Vec, p int, cycle []int) error {
	stack := make([]core.Halfedge, 0, 2*len(cycle))
	for i := range cycle {
		stack = append(stack, core.Halfedge{U: cycle[i], V: cycle[(i+1)%len(cycle)]})
	}

	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		across, err := m.HalfedgeFace(h.V, h.U)
		if err != nil || across == core.NoFace {
			continue
		}
		o, err := m.FaceVertexDescendant(across, h.U)
		if err != nil {
			return err
		}
		if !InCircle(pos[h.U], pos[h.V], pos[p], pos[o]) {
			continue
		}
		ok, err := m.SwapEdge(h.U, h.V, core.WithBoundary())
		if err != nil {
			return err
		}
		if ok {
			stack = append(stack, core.Halfedge{U: h.U, V: o}, core.Halfedge{U: o, V: h.V})
		}
	}

	return nil
}

func centroid2(pos map[int]r2.Vec, keys []int) r2.Vec {
	var c r2.Vec
	for _, k := range keys {
		c = r2.Add(c, pos[k])
	}

	return r2.Scale(1/float64(len(keys)), c)
}
