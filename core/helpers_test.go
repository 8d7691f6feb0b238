// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmesh/core"
)

// twoTriangles builds the unit square split along the diagonal 0–1:
//
//	3(0,1)   1(1,1)
//	0(0,0)   2(1,0)
//
// faces 0 = [0,2,1], 1 = [0,1,3].
func twoTriangles(t testing.TB) *core.Mesh {
	t.Helper()
	m := core.New()
	pts := [][3]float64{{0, 0, 0}, {1, 1, 0}, {1, 0, 0}, {0, 1, 0}}
	for _, p := range pts {
		_, err := m.AddVertex(core.WithXYZ(p[0], p[1], p[2]))
		require.NoError(t, err)
	}
	_, err := m.AddFace([]int{0, 2, 1})
	require.NoError(t, err)
	_, err = m.AddFace([]int{0, 1, 3})
	require.NoError(t, err)

	return m
}

// gridKey returns the vertex key of grid point (x, y) for an n×n grid.
func gridKey(n, x, y int) int { return y*(n+1) + x }

// triGrid builds an n×n grid of unit quads, each split along a–c into
// [a,b,c] and [a,c,d]. Interior vertices have degree 6.
func triGrid(t testing.TB, n int) *core.Mesh {
	t.Helper()
	m := core.New()
	for y := 0; y <= n; y++ {
		for x := 0; x <= n; x++ {
			_, err := m.AddVertex(core.WithXYZ(float64(x), float64(y), 0))
			require.NoError(t, err)
		}
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			a, b := gridKey(n, x, y), gridKey(n, x+1, y)
			c, d := gridKey(n, x+1, y+1), gridKey(n, x, y+1)
			_, err := m.AddFace([]int{a, b, c})
			require.NoError(t, err)
			_, err = m.AddFace([]int{a, c, d})
			require.NoError(t, err)
		}
	}

	return m
}

// neighborsSnapshot records every vertex's neighbor list in storage order.
func neighborsSnapshot(t testing.TB, m *core.Mesh) map[int][]int {
	t.Helper()
	out := make(map[int][]int)
	for _, v := range m.Vertices() {
		nbrs, err := m.VertexNeighbors(v)
		require.NoError(t, err)
		out[v] = nbrs
	}

	return out
}

// tetrahedron builds a closed, consistently wound tetrahedron on keys 0..3.
func tetrahedron(t testing.TB) *core.Mesh {
	t.Helper()
	m := core.New()
	pts := [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for _, p := range pts {
		_, err := m.AddVertex(core.WithXYZ(p[0], p[1], p[2]))
		require.NoError(t, err)
	}
	for _, f := range [][]int{{0, 2, 1}, {0, 1, 3}, {1, 2, 3}, {0, 3, 2}} {
		_, err := m.AddFace(f)
		require.NoError(t, err)
	}
	require.True(t, m.IsClosed())

	return m
}
