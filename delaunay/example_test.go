// SPDX-License-Identifier: MIT
package delaunay_test

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/delaunay"
)

// ExampleFromPoints triangulates the corners of a unit square.
func ExampleFromPoints() {
	points := [][3]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	m, err := delaunay.FromPoints(points)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(m.VertexCount(), m.EdgeCount(), m.FaceCount())
	// Output:
	// 4 5 2
}
