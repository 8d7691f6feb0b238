// SPDX-License-Identifier: MIT
// Package builder provides internal helper functions used by Constructor
// implementations: bulk vertex insertion and a quantized point welder.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap errors with the calling method for uniform reporting.
//   - Determinism: welding assigns keys in first-seen order.
package builder

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/core"
)

// addPoints inserts one vertex per point and returns the assigned keys.
//
// Complexity: O(n) time, O(n) space.
func addPoints(method string, m *core.Mesh, points []r3.Vec) ([]int, error) {
	keys := make([]int, len(points))
	for i, p := range points {
		k, err := m.AddVertex(core.WithPoint(p))
		if err != nil {
			return nil, fmt.Errorf("%s: AddVertex(#%d): %w", method, i, err)
		}
		keys[i] = k
	}

	return keys, nil
}

// welder maps points to vertex keys, merging points that quantize to the
// same cell of size precision.
type welder struct {
	m         *core.Mesh
	precision float64
	cells     map[[3]int64]int
}

func newWelder(m *core.Mesh, precision float64) *welder {
	return &welder{m: m, precision: precision, cells: make(map[[3]int64]int)}
}

// key returns the vertex key of p, adding a vertex on first sight.
func (w *welder) key(p r3.Vec) (int, error) {
	cell := [3]int64{
		int64(math.Round(p.X / w.precision)),
		int64(math.Round(p.Y / w.precision)),
		int64(math.Round(p.Z / w.precision)),
	}
	if k, ok := w.cells[cell]; ok {
		return k, nil
	}
	k, err := w.m.AddVertex(core.WithPoint(p))
	if err != nil {
		return core.NoVertex, err
	}
	w.cells[cell] = k

	return k, nil
}

// canClaim reports whether every directed halfedge of cycle is still free,
// so adding the face keeps each halfedge owned by a single face. Repeated
// consecutive vertices are ignored; AddFace drops them.
func canClaim(m *core.Mesh, cycle []int) bool {
	n := len(cycle)
	for i := 0; i < n; i++ {
		u, v := cycle[i], cycle[(i+1)%n]
		if u == v {
			continue
		}
		if f, err := m.HalfedgeFace(u, v); err == nil && f != core.NoFace {
			return false
		}
	}

	return true
}

func vec(p [3]float64) r3.Vec {
	return r3.Vec{X: p[0], Y: p[1], Z: p[2]}
}
