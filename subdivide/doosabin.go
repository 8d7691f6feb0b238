// SPDX-License-Identifier: MIT
package subdivide

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/core"
)

// dooSabinStep builds a new mesh with one corner point per (face, corner):
//
//	p'(i) = Σ_j α(i,j)·p(j),  α(i,i) = (n+5)/4n,  α(i,j) = (3 + 2cos(2π(i-j)/n))/4n
//
// and connects one face per old face, one per interior vertex and one per
// interior edge. Vertex and face keys are renumbered.
func dooSabinStep(work *core.Mesh, _ Options) (*core.Mesh, error) {
	out := work.CloneEmpty()
	out.Clear()
	pts := work.Points()

	type corner struct{ face, vertex int }
	keys := make(map[corner]int)

	for _, fr := range work.FaceRecords() {
		n := len(fr.Vertices)
		cycle := make([]int, n)
		for i, vi := range fr.Vertices {
			var p r3.Vec
			for j, vj := range fr.Vertices {
				p = r3.Add(p, r3.Scale(dooSabinWeight(i, j, n), pts[vj]))
			}
			k, err := out.AddVertex(core.WithPoint(p))
			if err != nil {
				return nil, err
			}
			keys[corner{fr.Key, vi}] = k
			cycle[i] = k
		}
		if _, err := out.AddFace(cycle); err != nil {
			return nil, err
		}
	}

	for _, v := range work.Vertices() {
		boundary, err := work.IsVertexOnBoundary(v)
		if err != nil {
			return nil, err
		}
		if boundary {
			continue
		}
		faces, err := work.VertexFaces(v, true)
		if err != nil {
			return nil, err
		}
		if len(faces) < 3 {
			continue
		}
		// The fan walk runs clockwise; the new face must run counter-clockwise.
		cycle := make([]int, len(faces))
		for i, f := range faces {
			cycle[len(faces)-1-i] = keys[corner{f, v}]
		}
		if _, err := out.AddFace(cycle); err != nil {
			return nil, err
		}
	}

	for _, e := range work.Edges() {
		fuv, fvu, err := work.EdgeFaces(e.U, e.V)
		if err != nil {
			return nil, err
		}
		if fuv == core.NoFace || fvu == core.NoFace {
			continue
		}
		cycle := []int{
			keys[corner{fvu, e.U}], keys[corner{fvu, e.V}],
			keys[corner{fuv, e.V}], keys[corner{fuv, e.U}],
		}
		if _, err := out.AddFace(cycle); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func dooSabinWeight(i, j, n int) float64 {
	fn := float64(n)
	if i == j {
		return (fn + 5) / (4 * fn)
	}

	return (3 + 2*math.Cos(2*math.Pi*float64(i-j)/fn)) / (4 * fn)
}
