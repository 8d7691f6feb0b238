// SPDX-License-Identifier: MIT
package subdivide

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/core"
)

// loopStep runs one round of Loop subdivision. Masks are evaluated on the
// positions at the start of the round:
//
//	interior v, valence n   (1 - nβ)·v + β·Σ neighbors, β = 3/16 (n = 3) else (5/8 - (3/8 + cos(2π/n)/4)²)/n
//	boundary v              3/4·v + 1/8·(b1 + b2)
//	interior edge a-b       (3(a + b) + l + r) / 8
//	boundary edge a-b       (a + b) / 2
//
// Fixed vertices do not move.
func loopStep(work *core.Mesh, o Options) (*core.Mesh, error) {
	if !work.IsTrimesh() {
		return nil, ErrNotTriangleMesh
	}
	pts := work.Points()

	moved := make(map[int]r3.Vec)
	for _, v := range work.Vertices() {
		if _, fixed := o.Fixed[v]; fixed {
			continue
		}
		p, ok, err := loopVertexPoint(work, pts, v)
		if err != nil {
			return nil, err
		}
		if ok {
			moved[v] = p
		}
	}

	edges := work.Edges()
	edgePts := make([]r3.Vec, len(edges))
	for i, e := range edges {
		p, err := loopEdgePoint(work, pts, e)
		if err != nil {
			return nil, err
		}
		edgePts[i] = p
	}

	faces := work.FaceRecords()
	for i, e := range edges {
		w, _, err := work.SplitEdge(e.U, e.V, core.WithBoundary())
		if err != nil {
			return nil, err
		}
		if err := work.SetVertexPoint(w, edgePts[i]); err != nil {
			return nil, err
		}
	}
	for v, p := range moved {
		if err := work.SetVertexPoint(v, p); err != nil {
			return nil, err
		}
	}

	for _, fr := range faces {
		a, b, c := fr.Vertices[0], fr.Vertices[1], fr.Vertices[2]
		ab, err := work.FaceVertexDescendant(fr.Key, a)
		if err != nil {
			return nil, err
		}
		bc, err := work.FaceVertexDescendant(fr.Key, b)
		if err != nil {
			return nil, err
		}
		ca, err := work.FaceVertexDescendant(fr.Key, c)
		if err != nil {
			return nil, err
		}
		if err := replaceFace(work, fr.Key,
			[]int{ab, bc, ca},
			[]int{a, ab, ca},
			[]int{ab, b, bc},
			[]int{ca, bc, c},
		); err != nil {
			return nil, err
		}
	}

	return work, nil
}

func loopVertexPoint(work *core.Mesh, pts map[int]r3.Vec, v int) (r3.Vec, bool, error) {
	nbrs, err := work.VertexNeighbors(v)
	if err != nil || len(nbrs) == 0 {
		return r3.Vec{}, false, err
	}
	boundary, err := work.IsVertexOnBoundary(v)
	if err != nil {
		return r3.Vec{}, false, err
	}
	p := pts[v]

	if boundary {
		var rim []int
		for _, w := range nbrs {
			if on, _ := work.IsEdgeOnBoundary(v, w); on {
				rim = append(rim, w)
			}
		}
		if len(rim) != 2 {
			return r3.Vec{}, false, nil
		}
		q := r3.Scale(0.75, p)
		q = r3.Add(q, r3.Scale(0.125, r3.Add(pts[rim[0]], pts[rim[1]])))
		return q, true, nil
	}

	n := float64(len(nbrs))
	beta := 3.0 / 16
	if len(nbrs) != 3 {
		c := 3.0/8 + math.Cos(2*math.Pi/n)/4
		beta = (5.0/8 - c*c) / n
	}
	var sum r3.Vec
	for _, w := range nbrs {
		sum = r3.Add(sum, pts[w])
	}

	return r3.Add(r3.Scale(1-n*beta, p), r3.Scale(beta, sum)), true, nil
}

func loopEdgePoint(work *core.Mesh, pts map[int]r3.Vec, e core.Edge) (r3.Vec, error) {
	mid := r3.Scale(0.5, r3.Add(pts[e.U], pts[e.V]))
	fuv, fvu, err := work.EdgeFaces(e.U, e.V)
	if err != nil {
		return r3.Vec{}, err
	}
	if fuv == core.NoFace || fvu == core.NoFace {
		return mid, nil
	}
	l, err := work.FaceVertexDescendant(fuv, e.V)
	if err != nil {
		return r3.Vec{}, err
	}
	r, err := work.FaceVertexDescendant(fvu, e.U)
	if err != nil {
		return r3.Vec{}, err
	}
	q := r3.Scale(3, r3.Add(pts[e.U], pts[e.V]))
	q = r3.Add(q, r3.Add(pts[l], pts[r]))

	return r3.Scale(1.0/8, q), nil
}
