// SPDX-License-Identifier: MIT
package meshio_test

import (
	"os"

	"github.com/katalvlaran/lvmesh/builder"
	"github.com/katalvlaran/lvmesh/meshio"
)

// ExampleWriteOBJ exports a single triangle.
func ExampleWriteOBJ() {
	m, err := builder.BuildMesh(nil, nil, builder.VerticesAndFaces(
		[][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		[][]int{{0, 1, 2}},
	))
	if err != nil {
		return
	}
	_ = meshio.WriteOBJ(os.Stdout, m)
	// Output:
	// v 0 0 0
	// v 1 0 0
	// v 0 1 0
	// f 1 2 3
}
