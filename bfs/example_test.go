// SPDX-License-Identifier: MIT
package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/bfs"
	"github.com/katalvlaran/lvmesh/builder"
)

// ExampleVertices demonstrates BFS layering on the 9 vertices of a 2×2 quad grid.
// Keys are row-major, so layers follow the Manhattan distance from corner 0.
func ExampleVertices() {
	m, err := builder.BuildMesh(nil, nil, builder.Grid(2, 2, 1, 1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := bfs.Vertices(m, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println(res.Depth[8])
	// Output:
	// [0 1 3 2 4 6 5 7 8]
	// 4
}

// ExampleFaces finds the fewest-step face path across a cube.
func ExampleFaces() {
	cube, err := builder.BuildMesh(nil, nil, builder.PlatonicSolid(builder.Cube))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := bfs.Faces(cube, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(res.Order), res.Order[0])
	// Output:
	// 6 0
}

// ExampleComponents lists the connected pieces of a mesh.
func ExampleComponents() {
	m, err := builder.BuildMesh(nil, nil,
		builder.RegularPolygon(3),
		builder.RegularPolygon(4),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	comps, err := bfs.Components(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(comps)
	// Output:
	// [[0 1 2] [3 4 5 6]]
}
