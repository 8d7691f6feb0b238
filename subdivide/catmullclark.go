// SPDX-License-Identifier: MIT
package subdivide

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/core"
)

// catmullClarkStep runs a quad round and then moves the vertices:
//
//	edge point    (a + b + f1 + f2) / 4 over its four neighbors; boundary edge points stay
//	interior v    (F + 2R + (n-3)·V) / n, F = mean face point, R = mean edge midpoint
//	boundary v    V/2 + mean of its two boundary edge midpoints / 2
//
// All positions are read from the state right after the quad round.
// Fixed vertices do not move.
func catmullClarkStep(work *core.Mesh, o Options) (*core.Mesh, error) {
	before := make(map[int]struct{}, work.VertexCount())
	for _, v := range work.Vertices() {
		before[v] = struct{}{}
	}

	ql, err := quadRound(work)
	if err != nil {
		return nil, err
	}
	pts := work.Points()
	moved := make(map[int]r3.Vec)

	for w := range ql.edgePoints {
		boundary, err := work.IsVertexOnBoundary(w)
		if err != nil {
			return nil, err
		}
		if boundary {
			continue
		}
		nbrs, err := work.VertexNeighbors(w)
		if err != nil {
			return nil, err
		}
		moved[w] = centroid(pts, nbrs)
	}

	for v := range before {
		if _, fixed := o.Fixed[v]; fixed {
			continue
		}
		nbrs, err := work.VertexNeighbors(v)
		if err != nil {
			return nil, err
		}
		if len(nbrs) == 0 {
			continue
		}
		boundary, err := work.IsVertexOnBoundary(v)
		if err != nil {
			return nil, err
		}
		p := pts[v]

		if boundary {
			var mids []int
			for _, w := range nbrs {
				if on, _ := work.IsEdgeOnBoundary(v, w); on {
					mids = append(mids, w)
				}
			}
			if len(mids) == 0 {
				continue
			}
			moved[v] = r3.Add(r3.Scale(0.5, p), r3.Scale(0.5, centroid(pts, mids)))
			continue
		}

		faces, err := work.VertexFaces(v, false)
		if err != nil {
			return nil, err
		}
		facePts := make([]int, 0, len(faces))
		for _, f := range faces {
			cycle, err := work.FaceVertices(f)
			if err != nil {
				return nil, err
			}
			for _, k := range cycle {
				if _, ok := ql.facePoints[k]; ok {
					facePts = append(facePts, k)
				}
			}
		}

		n := float64(len(nbrs))
		F := centroid(pts, facePts)
		R := centroid(pts, nbrs)
		q := r3.Add(F, r3.Scale(2, R))
		q = r3.Add(q, r3.Scale(n-3, p))
		moved[v] = r3.Scale(1/n, q)
	}

	for v, p := range moved {
		if err := work.SetVertexPoint(v, p); err != nil {
			return nil, err
		}
	}

	return work, nil
}
