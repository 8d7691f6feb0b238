// SPDX-License-Identifier: MIT
package remesh_test

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/builder"
	"github.com/katalvlaran/lvmesh/core"
	"github.com/katalvlaran/lvmesh/remesh"
)

// ExampleRemesh runs a single iteration and stops from the callback.
func ExampleRemesh() {
	m, err := builder.BuildMesh(nil, nil, builder.Grid(4, 4, 1, 1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	m.QuadsToTriangles()

	res, err := remesh.Remesh(m, 0.5, remesh.WithCallback(func(*core.Mesh, int) error {
		return remesh.ErrStop
	}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Iterations, res.Stopped, m.IsTrimesh())
	// Output:
	// 1 true true
}
