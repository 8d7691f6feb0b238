// SPDX-License-Identifier: MIT
package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/core"
)

// ExampleMesh demonstrates building two triangles and querying their topology.
func ExampleMesh() {
	m := core.New()
	for _, p := range [][2]float64{{0, 0}, {1, 1}, {1, 0}, {0, 1}} {
		_, _ = m.AddVertex(core.WithXYZ(p[0], p[1], 0))
	}
	_, _ = m.AddFace([]int{0, 2, 1})
	_, _ = m.AddFace([]int{0, 1, 3, 0}) // closing vertex is dropped

	fmt.Println("V E F:", m.VertexCount(), m.EdgeCount(), m.FaceCount())
	onBoundary, _ := m.IsEdgeOnBoundary(0, 1)
	fmt.Println("0-1 on boundary:", onBoundary)
	fmt.Println("boundary loop:", m.BoundaryLoops()[0])
	fmt.Println("valid:", m.IsValid(), "euler:", m.Euler())

	// Output:
	// V E F: 4 5 2
	// 0-1 on boundary: false
	// boundary loop: [0 3 1 2]
	// valid: true euler: 1
}

// ExampleMesh_SplitEdge shows the split parameter domain and the spliced cycles.
func ExampleMesh_SplitEdge() {
	m := core.New()
	for _, p := range [][2]float64{{0, 0}, {1, 1}, {1, 0}, {0, 1}} {
		_, _ = m.AddVertex(core.WithXYZ(p[0], p[1], 0))
	}
	_, _ = m.AddFace([]int{0, 2, 1})
	_, _ = m.AddFace([]int{0, 1, 3})

	_, _, err := m.SplitEdge(0, 1, core.WithT(1.5))
	fmt.Println(err)

	w, ok, _ := m.SplitEdge(0, 1)
	f1, _ := m.FaceVertices(1)
	fmt.Println(w, ok, f1)

	// Output:
	// SplitEdge(0, 1): t=1.5 not in (0,1): core: parameter out of domain
	// 4 true [0 4 1 3]
}

// ExampleMesh_CollapseEdge shows that an illegal collapse is a normal branch.
func ExampleMesh_CollapseEdge() {
	m := core.New()
	for i := 0; i < 3; i++ {
		_, _ = m.AddVertex(core.WithXYZ(float64(i), 0, 0))
	}
	_, _ = m.AddFace([]int{0, 1, 2})

	ok, err := m.CollapseEdge(0, 1)
	fmt.Println(ok, err)

	// Output:
	// false <nil>
}
