// SPDX-License-Identifier: MIT
package bfs_test

import (
	"testing"

	"github.com/katalvlaran/lvmesh/bfs"
)

// BenchmarkVertices_Grid runs vertex BFS on a 100×100 quad grid.
func BenchmarkVertices_Grid(b *testing.B) {
	m := grid(b, 100, 100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Vertices(m, 0)
	}
}

// BenchmarkFaces_Grid runs face BFS on a 100×100 quad grid.
func BenchmarkFaces_Grid(b *testing.B) {
	m := grid(b, 100, 100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Faces(m, 0)
	}
}

// BenchmarkComponents_Grid partitions a 100×100 quad grid.
func BenchmarkComponents_Grid(b *testing.B) {
	m := grid(b, 100, 100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Components(m)
	}
}
