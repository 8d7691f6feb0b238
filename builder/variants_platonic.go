// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// variants_platonic.go — canonical coordinates for the five Platonic solids.
//
// Design:
//   • Each solid is described by its vertex directions and its face normals.
//     The face normals are the vertex directions of the dual solid, rotated
//     so that each normal passes through a face center.
//   • Faces are derived, not listed: the vertices of face i are the vertices
//     with maximal projection onto normal i (see impl_platonic.go).
//
// Determinism:
//   • Sign expansion order is fixed (+ before -, x then y then z).

package builder

import "math"

// PlatonicName identifies one of the five Platonic solids by name.
// Use these names in the PlatonicSolid constructor.
type PlatonicName string

const (
	// Tetrahedron: V=4, E=6, F=4 triangles.
	Tetrahedron PlatonicName = "tetrahedron"
	// Cube: V=8, E=12, F=6 quads.
	Cube PlatonicName = "cube"
	// Octahedron: V=6, E=12, F=8 triangles.
	Octahedron PlatonicName = "octahedron"
	// Dodecahedron: V=20, E=30, F=12 pentagons.
	Dodecahedron PlatonicName = "dodecahedron"
	// Icosahedron: V=12, E=30, F=20 triangles.
	Icosahedron PlatonicName = "icosahedron"
)

// platonicShape pairs vertex directions with face normals.
type platonicShape struct {
	vertices [][3]float64
	normals  [][3]float64
}

var phi = (1 + math.Sqrt(5)) / 2

// expand returns every sign combination of p, skipping duplicates from zeros.
func expand(ps ...[3]float64) [][3]float64 {
	var out [][3]float64
	for _, p := range ps {
		for _, sx := range signs(p[0]) {
			for _, sy := range signs(p[1]) {
				for _, sz := range signs(p[2]) {
					out = append(out, [3]float64{sx * p[0], sy * p[1], sz * p[2]})
				}
			}
		}
	}

	return out
}

func signs(x float64) []float64 {
	if x == 0 {
		return []float64{1}
	}

	return []float64{1, -1}
}

func negate(ps [][3]float64) [][3]float64 {
	out := make([][3]float64, len(ps))
	for i, p := range ps {
		out[i] = [3]float64{-p[0], -p[1], -p[2]}
	}

	return out
}

// platonicShapes is built once at init and never mutated.
var platonicShapes map[PlatonicName]platonicShape

func init() {
	tetra := [][3]float64{{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1}}
	cube := expand([3]float64{1, 1, 1})
	octa := expand([3]float64{1, 0, 0}, [3]float64{0, 1, 0}, [3]float64{0, 0, 1})
	inv := 1 / phi

	platonicShapes = map[PlatonicName]platonicShape{
		Tetrahedron: {vertices: tetra, normals: negate(tetra)},
		Cube:        {vertices: cube, normals: octa},
		Octahedron:  {vertices: octa, normals: cube},
		Dodecahedron: {
			vertices: expand([3]float64{1, 1, 1}, [3]float64{0, inv, phi}, [3]float64{inv, phi, 0}, [3]float64{phi, 0, inv}),
			normals:  expand([3]float64{1, 0, phi}, [3]float64{0, phi, 1}, [3]float64{phi, 1, 0}),
		},
		Icosahedron: {
			vertices: expand([3]float64{0, 1, phi}, [3]float64{1, phi, 0}, [3]float64{phi, 0, 1}),
			normals:  expand([3]float64{1, 1, 1}, [3]float64{0, phi, inv}, [3]float64{inv, 0, phi}, [3]float64{phi, inv, 0}),
		},
	}
}
