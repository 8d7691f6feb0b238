// SPDX-License-Identifier: MIT
// Package remesh: the iteration driver and its four phases.
package remesh

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/core"
	"github.com/katalvlaran/lvmesh/smooth"
)

// Remesh drives the triangle mesh m, in place, toward edges of length target.
//
// Implementation:
//   - Stage 1: lmin = (1-tol)·4/5·target, lmax = (1+tol)·4/3·target.
//     For k ≤ kmax/2 both are widened by scale = fac·(1 - 2k/kmax), where
//     fac = (longest edge / 2) / target; afterwards the band is exact.
//   - Stage 2: per iteration, in order:
//     split edges longer than the upper bound (TriSplitEdge);
//     collapse edges shorter than the lower bound (TriCollapseEdge), unless
//     the merged vertex would gain an edge longer than the upper bound;
//     swap edges whose flip moves the four valences closer to 6
//     (boundary vertices count as valence+2);
//     one damped area-smoothing sweep with boundary and fixed vertices pinned.
//     Each phase touches a vertex at most once.
//   - Stage 3: after the ramp, stop when |1 - V_before/V_after| < Divergence.
//
// The context is checked between iterations only.
//
// Errors:
//   - ErrMeshNil, ErrNotTriangleMesh, ErrOptionViolation.
//   - ctx.Err() on cancellation, with the partial Result.
//   - any Callback error other than ErrStop.
//
// Complexity:
//   - Time O(kmax · E · deg).
func Remesh(m *core.Mesh, target float64, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if !(target > 0) || math.IsInf(target, 1) {
		return nil, fmt.Errorf("%w: target must be a positive length (%g)", ErrOptionViolation, target)
	}
	if !m.IsTrimesh() {
		return nil, ErrNotTriangleMesh
	}

	r := &remesher{m: m, o: o}
	lmin := (1 - o.Tolerance) * 4 / 5 * target
	lmax := (1 + o.Tolerance) * 4 / 3 * target
	fac := r.longestEdge() / 2 / target
	ramp := float64(o.Iterations) / 2

	res := &Result{}
	for k := 0; k < o.Iterations; k++ {
		if err := o.Ctx.Err(); err != nil {
			return res, err
		}

		scale := 0.0
		if float64(k) <= ramp {
			scale = fac * (1 - float64(k)/ramp)
		}
		lo, hi := lmin*(1-scale), lmax*(1+scale)
		before := m.VertexCount()

		splits, err := r.split(hi)
		if err != nil {
			return res, err
		}
		collapses, err := r.collapse(lo, hi)
		if err != nil {
			return res, err
		}
		swaps, err := r.swap()
		if err != nil {
			return res, err
		}
		if o.Smooth {
			if err := r.smooth(); err != nil {
				return res, err
			}
		}

		res.Iterations++
		res.Splits += splits
		res.Collapses += collapses
		res.Swaps += swaps
		after := m.VertexCount()
		o.Logger.Debug("remesh iteration",
			zap.Int("k", k), zap.Float64("lmin", lo), zap.Float64("lmax", hi),
			zap.Int("splits", splits), zap.Int("collapses", collapses), zap.Int("swaps", swaps),
			zap.Int("vertices", after))

		if o.Callback != nil {
			if err := o.Callback(m, k); err != nil {
				if errors.Is(err, ErrStop) {
					res.Stopped = true
					o.Logger.Info("remesh stopped by callback", zap.Int("k", k))
					return res, nil
				}
				return res, err
			}
		}

		if float64(k) > ramp && after > 0 && math.Abs(1-float64(before)/float64(after)) < o.Divergence {
			res.Converged = true
			break
		}
	}

	o.Logger.Info("remesh done",
		zap.Int("iterations", res.Iterations), zap.Bool("converged", res.Converged),
		zap.Int("vertices", m.VertexCount()), zap.Int("faces", m.FaceCount()))

	return res, nil
}

// remesher carries the mesh and resolved options through the phases.
type remesher struct {
	m *core.Mesh
	o Options
}

func (r *remesher) longestEdge() float64 {
	longest := 0.0
	for _, e := range r.m.Edges() {
		if l, err := r.m.EdgeLength(e.U, e.V); err == nil && l > longest {
			longest = l
		}
	}

	return longest
}

// visitedSet guards a phase against editing the same neighborhood twice.
type visitedSet map[int]struct{}

func (s visitedSet) any(keys ...int) bool {
	for _, k := range keys {
		if _, ok := s[k]; ok {
			return true
		}
	}

	return false
}

func (s visitedSet) mark(keys ...int) {
	for _, k := range keys {
		s[k] = struct{}{}
	}
}

func (r *remesher) edgeOpts(allowBoundary bool) []core.EdgeOpOption {
	opts := make([]core.EdgeOpOption, 0, 2)
	if allowBoundary {
		opts = append(opts, core.WithBoundary())
	}
	if len(r.o.Fixed) > 0 {
		opts = append(opts, core.WithFixed(r.fixedKeys()...))
	}

	return opts
}

func (r *remesher) fixedKeys() []int {
	keys := make([]int, 0, len(r.o.Fixed))
	for k := range r.o.Fixed {
		keys = append(keys, k)
	}

	return keys
}

// split divides every edge longer than hi.
func (r *remesher) split(hi float64) (int, error) {
	visited := visitedSet{}
	opts := r.edgeOpts(r.o.BoundarySplit)
	n := 0
	for _, e := range r.m.Edges() {
		if visited.any(e.U, e.V) || !r.m.HasEdge(e.U, e.V) {
			continue
		}
		l, err := r.m.EdgeLength(e.U, e.V)
		if err != nil {
			return n, err
		}
		if l <= hi {
			continue
		}
		visited.mark(e.U, e.V)
		_, ok, err := r.m.TriSplitEdge(e.U, e.V, opts...)
		if err != nil {
			return n, fmt.Errorf("remesh: split %d-%d: %w", e.U, e.V, err)
		}
		if ok {
			n++
		}
	}

	return n, nil
}

// collapse merges the endpoints of every edge shorter than lo whose
// midpoint stays within hi of every vertex around u and v.
func (r *remesher) collapse(lo, hi float64) (int, error) {
	visited := visitedSet{}
	opts := r.edgeOpts(r.o.BoundaryCollapse)
	n := 0
	for _, e := range r.m.Edges() {
		if visited.any(e.U, e.V) || !r.m.HasEdge(e.U, e.V) {
			continue
		}
		l, err := r.m.EdgeLength(e.U, e.V)
		if err != nil {
			return n, err
		}
		if l >= lo {
			continue
		}
		short, err := r.collapseStaysShort(e.U, e.V, hi)
		if err != nil {
			return n, err
		}
		if !short {
			continue
		}
		visited.mark(e.U, e.V)
		ok, err := r.m.TriCollapseEdge(e.U, e.V, opts...)
		if err != nil {
			return n, fmt.Errorf("remesh: collapse %d-%d: %w", e.U, e.V, err)
		}
		if ok {
			n++
		}
	}

	return n, nil
}

// collapseStaysShort reports whether every edge created by merging u and v
// at their midpoint is at most hi long.
func (r *remesher) collapseStaysShort(u, v int, hi float64) (bool, error) {
	mid, err := r.m.EdgeMidpoint(u, v)
	if err != nil {
		return false, err
	}
	for _, end := range []int{u, v} {
		nbrs, err := r.m.VertexNeighbors(end)
		if err != nil {
			return false, err
		}
		for _, w := range nbrs {
			if w == u || w == v {
				continue
			}
			p, err := r.m.VertexPoint(w)
			if err != nil {
				return false, err
			}
			if r3.Norm(r3.Sub(p, mid)) > hi {
				return false, nil
			}
		}
	}

	return true, nil
}

// swap flips interior edges whose flip lowers the total valence deviation.
func (r *remesher) swap() (int, error) {
	visited := visitedSet{}
	var opts []core.EdgeOpOption
	if r.o.BoundarySwap {
		opts = append(opts, core.WithBoundary())
	}
	n := 0
	for _, e := range r.m.Edges() {
		u, v := e.U, e.V
		if visited.any(u, v) || !r.m.HasEdge(u, v) {
			continue
		}
		fuv, fvu, err := r.m.EdgeFaces(u, v)
		if err != nil {
			return n, err
		}
		if fuv == core.NoFace || fvu == core.NoFace {
			continue
		}
		o, err := r.m.FaceVertexDescendant(fuv, v)
		if err != nil {
			return n, err
		}
		p, err := r.m.FaceVertexDescendant(fvu, u)
		if err != nil {
			return n, err
		}

		var val [4]int
		for i, x := range []int{u, v, o, p} {
			if val[i], err = r.valence(x); err != nil {
				return n, err
			}
		}
		current := abs(val[0]-6) + abs(val[1]-6) + abs(val[2]-6) + abs(val[3]-6)
		flipped := abs(val[0]-7) + abs(val[1]-7) + abs(val[2]-5) + abs(val[3]-5)
		if current <= flipped {
			continue
		}
		visited.mark(u, v)
		ok, err := r.m.SwapEdge(u, v, opts...)
		if err != nil {
			return n, fmt.Errorf("remesh: swap %d-%d: %w", u, v, err)
		}
		if ok {
			n++
		}
	}

	return n, nil
}

// valence is the degree of v, plus 2 on the boundary so that the ideal
// boundary valence of 4 also scores against 6.
func (r *remesher) valence(v int) (int, error) {
	d, err := r.m.VertexDegree(v)
	if err != nil {
		return 0, err
	}
	on, err := r.m.IsVertexOnBoundary(v)
	if err != nil {
		return 0, err
	}
	if on {
		d += 2
	}

	return d, nil
}

func (r *remesher) smooth() error {
	return smooth.Area(r.m,
		smooth.WithIterations(1),
		smooth.WithBoundaryFixed(),
		smooth.WithFixed(r.fixedKeys()...),
	)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
