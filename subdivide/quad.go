// SPDX-License-Identifier: MIT
package subdivide

import (
	"github.com/katalvlaran/lvmesh/core"
)

// triStep inserts the centroid of every face as a fan apex.
func triStep(work *core.Mesh, _ Options) (*core.Mesh, error) {
	for _, f := range work.Faces() {
		if _, _, err := work.InsertVertex(f); err != nil {
			return nil, err
		}
	}

	return work, nil
}

// quadLayout records which vertices a quad round created.
type quadLayout struct {
	facePoints map[int]int // face point key → originating face
	edgePoints map[int]struct{}
}

// quadStep replaces every n-gon by n quads [corner, after, center, before].
func quadStep(work *core.Mesh, _ Options) (*core.Mesh, error) {
	_, err := quadRound(work)
	if err != nil {
		return nil, err
	}

	return work, nil
}

func quadRound(work *core.Mesh) (quadLayout, error) {
	pts := work.Points()
	layout, edgePoints, err := splitAll(work)
	if err != nil {
		return quadLayout{}, err
	}

	ql := quadLayout{facePoints: make(map[int]int, len(layout)), edgePoints: edgePoints}
	for _, sc := range layout {
		c, err := work.AddVertex(core.WithPoint(centroid(pts, sc.corners)))
		if err != nil {
			return quadLayout{}, err
		}
		ql.facePoints[c] = sc.face

		cycles := make([][]int, len(sc.corners))
		for i, v := range sc.corners {
			cycles[i] = []int{v, sc.after[i], c, sc.before[i]}
		}
		if err := replaceFace(work, sc.face, cycles...); err != nil {
			return quadLayout{}, err
		}
	}

	return ql, nil
}

// cornerStep keeps a face through the midpoints of every face and cuts
// each corner off as the triangle [before, corner, after].
func cornerStep(work *core.Mesh, _ Options) (*core.Mesh, error) {
	layout, _, err := splitAll(work)
	if err != nil {
		return nil, err
	}

	for _, sc := range layout {
		cycles := make([][]int, 0, len(sc.corners)+1)
		cycles = append(cycles, append([]int(nil), sc.after...))
		for i, v := range sc.corners {
			cycles = append(cycles, []int{sc.before[i], v, sc.after[i]})
		}
		if err := replaceFace(work, sc.face, cycles...); err != nil {
			return nil, err
		}
	}

	return work, nil
}
