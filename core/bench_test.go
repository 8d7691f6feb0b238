// SPDX-License-Identifier: MIT
// Package core_test provides benchmarks for core.Mesh operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/lvmesh/core"
)

// BenchmarkAddFace_Grid measures building a 32×32 triangulated grid.
func BenchmarkAddFace_Grid(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = triGrid(b, 32)
	}
}

// BenchmarkVertexNeighborsOrdered measures the fan walk on interior vertices.
func BenchmarkVertexNeighborsOrdered(b *testing.B) {
	const n = 32
	m := triGrid(b, n)
	v := gridKey(n, n/2, n/2)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.VertexNeighborsOrdered(v)
	}
}

// BenchmarkTriSplitEdge measures repeated interior splits on a fresh clone.
func BenchmarkTriSplitEdge(b *testing.B) {
	const n = 16
	base := triGrid(b, n)
	edges := base.Edges()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := base.Clone()
		for _, e := range edges {
			_, _, _ = m.TriSplitEdge(e.U, e.V, core.WithBoundary())
		}
	}
}
