// SPDX-License-Identifier: MIT
package remesh_test

import (
	"testing"

	"github.com/katalvlaran/lvmesh/remesh"
)

func BenchmarkRemesh_Grid(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		m := triGrid(b)
		b.StartTimer()
		if _, err := remesh.Remesh(m, 0.5, remesh.WithIterations(10)); err != nil {
			b.Fatal(err)
		}
	}
}
