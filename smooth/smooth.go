// SPDX-License-Identifier: MIT
// Package smooth implements Centroid and Area smoothing.
//
// Both schemes run in sweeps: every sweep computes all targets from the
// positions at the start of the sweep, then moves each free vertex by
// Damping·(target − p). Isolated vertices are skipped.
package smooth

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/core"
)

// target computes the destination of v from a position snapshot.
// The bool is false when v has no meaningful target.
type target func(m *core.Mesh, pts map[int]r3.Vec, v int) (r3.Vec, bool, error)

// Centroid moves every free vertex toward the centroid of its neighbors.
//
// Complexity: O(Iterations · Σ deg).
func Centroid(m *core.Mesh, opts ...Option) error {
	return run(m, opts, centroidTarget)
}

// Area moves every free vertex toward the area-weighted centroid of the
// centroids of its incident faces.
//
// Complexity: O(Iterations · Σ deg · face size).
func Area(m *core.Mesh, opts ...Option) error {
	return run(m, opts, areaTarget)
}

func run(m *core.Mesh, opts []Option, fn target) error {
	if m == nil {
		return ErrMeshNil
	}
	o, err := resolve(opts)
	if err != nil {
		return err
	}

	free := make([]int, 0, m.VertexCount())
	for _, v := range m.Vertices() {
		if _, pinned := o.Fixed[v]; pinned {
			continue
		}
		if o.BoundaryFixed {
			on, err := m.IsVertexOnBoundary(v)
			if err != nil {
				return err
			}
			if on {
				continue
			}
		}
		free = append(free, v)
	}

	for k := 0; k < o.Iterations; k++ {
		pts := m.Points()
		next := make(map[int]r3.Vec, len(free))
		for _, v := range free {
			t, ok, err := fn(m, pts, v)
			if err != nil {
				return err
			}
			if ok {
				next[v] = r3.Add(pts[v], r3.Scale(o.Damping, r3.Sub(t, pts[v])))
			}
		}
		for v, p := range next {
			if err := m.SetVertexPoint(v, p); err != nil {
				return err
			}
		}

		if o.Callback != nil {
			if err := o.Callback(m, k); err != nil {
				if errors.Is(err, ErrStop) {
					return nil
				}
				return err
			}
		}
	}

	return nil
}

func centroidTarget(m *core.Mesh, pts map[int]r3.Vec, v int) (r3.Vec, bool, error) {
	nbrs, err := m.VertexNeighbors(v)
	if err != nil || len(nbrs) == 0 {
		return r3.Vec{}, false, err
	}
	var c r3.Vec
	for _, n := range nbrs {
		c = r3.Add(c, pts[n])
	}

	return r3.Scale(1/float64(len(nbrs)), c), true, nil
}

func areaTarget(m *core.Mesh, pts map[int]r3.Vec, v int) (r3.Vec, bool, error) {
	faces, err := m.VertexFaces(v, false)
	if err != nil || len(faces) == 0 {
		return r3.Vec{}, false, err
	}
	var (
		c     r3.Vec
		total float64
	)
	for _, f := range faces {
		cycle, err := m.FaceVertices(f)
		if err != nil {
			return r3.Vec{}, false, err
		}
		fc, area := faceCentroidArea(pts, cycle)
		c = r3.Add(c, r3.Scale(area, fc))
		total += area
	}
	if total == 0 {
		return r3.Vec{}, false, nil
	}

	return r3.Scale(1/total, c), true, nil
}

// faceCentroidArea returns the vertex centroid of cycle and its area as the
// sum of the fan triangles around that centroid.
func faceCentroidArea(pts map[int]r3.Vec, cycle []int) (r3.Vec, float64) {
	var c r3.Vec
	for _, k := range cycle {
		c = r3.Add(c, pts[k])
	}
	c = r3.Scale(1/float64(len(cycle)), c)

	var area float64
	n := len(cycle)
	for i := 0; i < n; i++ {
		a := r3.Sub(pts[cycle[i]], c)
		b := r3.Sub(pts[cycle[(i+1)%n]], c)
		area += 0.5 * r3.Norm(r3.Cross(a, b))
	}

	return c, area
}
