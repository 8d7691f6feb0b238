// SPDX-License-Identifier: MIT
// Package subdivide implements the scheme dispatcher and the shared
// split-then-rebuild machinery used by the individual schemes.
package subdivide

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/core"
)

// step applies one round of a scheme to a working mesh. It may mutate
// work in place or return a freshly built mesh.
type step func(work *core.Mesh, o Options) (*core.Mesh, error)

var schemes = map[Scheme]step{
	Tri:          triStep,
	Corner:       cornerStep,
	Quad:         quadStep,
	CatmullClark: catmullClarkStep,
	DooSabin:     dooSabinStep,
	Loop:         loopStep,
}

// Subdivide applies scheme k times (WithK) to a copy of m and returns the
// copy. The input mesh is never modified.
//
// Errors:
//   - ErrMeshNil, ErrUnknownScheme, ErrOptionViolation.
//   - ErrNotTriangleMesh (Loop).
//   - Wrapped core errors from the underlying mutators.
func Subdivide(m *core.Mesh, scheme Scheme, opts ...Option) (*core.Mesh, error) {
	fn, ok := schemes[scheme]
	if !ok {
		return nil, fmt.Errorf("Subdivide(%q): %w", scheme, ErrUnknownScheme)
	}

	return run(m, string(scheme), fn, opts)
}

// TriSubdivide is Subdivide(m, Tri, opts...).
func TriSubdivide(m *core.Mesh, opts ...Option) (*core.Mesh, error) {
	return run(m, string(Tri), triStep, opts)
}

// CornerSubdivide is Subdivide(m, Corner, opts...).
func CornerSubdivide(m *core.Mesh, opts ...Option) (*core.Mesh, error) {
	return run(m, string(Corner), cornerStep, opts)
}

// QuadSubdivide is Subdivide(m, Quad, opts...).
func QuadSubdivide(m *core.Mesh, opts ...Option) (*core.Mesh, error) {
	return run(m, string(Quad), quadStep, opts)
}

// CatmullClarkSubdivide is Subdivide(m, CatmullClark, opts...).
func CatmullClarkSubdivide(m *core.Mesh, opts ...Option) (*core.Mesh, error) {
	return run(m, string(CatmullClark), catmullClarkStep, opts)
}

// DooSabinSubdivide is Subdivide(m, DooSabin, opts...).
func DooSabinSubdivide(m *core.Mesh, opts ...Option) (*core.Mesh, error) {
	return run(m, string(DooSabin), dooSabinStep, opts)
}

// LoopSubdivide is Subdivide(m, Loop, opts...).
func LoopSubdivide(m *core.Mesh, opts ...Option) (*core.Mesh, error) {
	return run(m, string(Loop), loopStep, opts)
}

func run(m *core.Mesh, name string, fn step, opts []Option) (*core.Mesh, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	work := m.Clone()
	for i := 0; i < o.K; i++ {
		if work.FaceCount() == 0 {
			break
		}
		if work, err = fn(work, o); err != nil {
			return nil, fmt.Errorf("Subdivide(%q) round %d: %w", name, i+1, err)
		}
	}

	return work, nil
}

// splitCorners holds, per original face, the corners and the midpoints
// inserted before and after each corner.
type splitCorners struct {
	face    int
	corners []int
	before  []int // ancestor midpoint of corners[i]
	after   []int // descendant midpoint of corners[i]
}

// splitAll halves every edge of work (boundary included) and records the
// corner layout of every face. Returns the new edge-point keys.
func splitAll(work *core.Mesh) ([]splitCorners, map[int]struct{}, error) {
	faces := work.FaceRecords()
	edgePoints := make(map[int]struct{})
	for _, e := range work.Edges() {
		w, ok, err := work.SplitEdge(e.U, e.V, core.WithBoundary())
		if err != nil {
			return nil, nil, err
		}
		if ok {
			edgePoints[w] = struct{}{}
		}
	}

	out := make([]splitCorners, len(faces))
	for i, fr := range faces {
		sc := splitCorners{
			face:    fr.Key,
			corners: fr.Vertices,
			before:  make([]int, len(fr.Vertices)),
			after:   make([]int, len(fr.Vertices)),
		}
		for j, v := range fr.Vertices {
			a, err := work.FaceVertexAncestor(fr.Key, v)
			if err != nil {
				return nil, nil, err
			}
			d, err := work.FaceVertexDescendant(fr.Key, v)
			if err != nil {
				return nil, nil, err
			}
			sc.before[j], sc.after[j] = a, d
		}
		out[i] = sc
	}

	return out, edgePoints, nil
}

// replaceFace deletes f and adds cycles in its place; the first cycle
// keeps the key of f.
func replaceFace(work *core.Mesh, f int, cycles ...[]int) error {
	if err := work.DeleteFace(f); err != nil {
		return err
	}
	for i, c := range cycles {
		var err error
		if i == 0 {
			_, err = work.AddFace(c, core.WithKey(f))
		} else {
			_, err = work.AddFace(c)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// centroid returns the mean of the points of keys.
func centroid(pts map[int]r3.Vec, keys []int) r3.Vec {
	var c r3.Vec
	for _, k := range keys {
		c = r3.Add(c, pts[k])
	}

	return r3.Scale(1/float64(len(keys)), c)
}
