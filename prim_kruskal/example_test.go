// SPDX-License-Identifier: MIT
package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/builder"
	"github.com/katalvlaran/lvmesh/prim_kruskal"
)

// ExampleKruskal spans a 1×1 quad: three of its four unit sides.
func ExampleKruskal() {
	m, err := builder.BuildMesh(nil, nil, builder.Grid(1, 1, 1, 1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	edges, total, err := prim_kruskal.Kruskal(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("Total: %g, Edges: %v\n", total, edges)
	// Output: Total: 3, Edges: [0-1 0-2 1-3]
}

// ExamplePrim grows the same tree from the opposite corner.
func ExamplePrim() {
	m, err := builder.BuildMesh(nil, nil, builder.Grid(1, 1, 1, 1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	edges, total, err := prim_kruskal.Prim(m, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("Total: %g, Edges: %v\n", total, edges)
	// Output: Total: 3, Edges: [1-3 0-1 0-2]
}
