// SPDX-License-Identifier: MIT
package subdivide_test

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/builder"
	"github.com/katalvlaran/lvmesh/subdivide"
)

// ExampleSubdivide refines a cube twice with Catmull-Clark.
func ExampleSubdivide() {
	cube, err := builder.BuildMesh(nil, nil, builder.PlatonicSolid(builder.Cube))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	smooth, err := subdivide.Subdivide(cube, subdivide.CatmullClark, subdivide.WithK(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(smooth.VertexCount(), smooth.FaceCount(), smooth.Euler())
	fmt.Println("control mesh:", cube.VertexCount(), cube.FaceCount())
	// Output:
	// 98 96 2
	// control mesh: 8 6
}
