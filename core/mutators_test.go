// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmesh/core"
)

// TestSplitEdge_SharedEdge splits the diagonal of two triangles.
func TestSplitEdge_SharedEdge(t *testing.T) {
	m := twoTriangles(t)

	w, ok, err := m.SplitEdge(0, 1, core.WithT(0.5))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 4, w)
	assert.Equal(t, 5, m.VertexCount())
	assert.Equal(t, 2, m.FaceCount())

	for _, f := range m.Faces() {
		cycle, _ := m.FaceVertices(f)
		assert.Len(t, cycle, 4)
		assert.Contains(t, cycle, w)
	}
	assert.False(t, m.HasEdge(0, 1))
	assert.True(t, m.HasEdge(0, w))
	assert.True(t, m.HasEdge(w, 1))

	p, _ := m.VertexPoint(w)
	assert.InDelta(t, 0.5, p.X, 1e-12)
	assert.InDelta(t, 0.5, p.Y, 1e-12)
	assert.True(t, m.IsValid())
}

// TestSplitEdge_ParameterDomain verifies t outside (0,1) is a hard error.
func TestSplitEdge_ParameterDomain(t *testing.T) {
	m := twoTriangles(t)
	before := m.ToData()

	for _, tt := range []float64{1.5, 0, 1, -0.1} {
		_, ok, err := m.SplitEdge(0, 1, core.WithT(tt))
		assert.ErrorIs(t, err, core.ErrParameterDomain, "t=%g", tt)
		assert.False(t, ok)
	}
	assert.Equal(t, before, m.ToData())
}

// TestSplitEdge_Boundary verifies the boundary policy.
func TestSplitEdge_Boundary(t *testing.T) {
	m := twoTriangles(t)

	_, ok, err := m.SplitEdge(0, 2)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 4, m.VertexCount())

	w, ok, err := m.SplitEdge(0, 2, core.WithBoundary())
	require.NoError(t, err)
	require.True(t, ok)
	cycle, _ := m.FaceVertices(0)
	assert.Equal(t, []int{0, w, 2, 1}, cycle)
	f, _ := m.HalfedgeFace(w, 0)
	assert.Equal(t, core.NoFace, f)
	assert.True(t, m.IsValid())

	_, _, err = m.SplitEdge(2, 3)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

// TestTriSplitEdge keeps a triangle mesh triangular.
func TestTriSplitEdge(t *testing.T) {
	const n = 3
	m := triGrid(t, n)
	u, v := gridKey(n, 1, 1), gridKey(n, 2, 2)

	w, ok, err := m.TriSplitEdge(u, v)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 20, m.FaceCount())
	assert.True(t, m.IsTrimesh())
	assert.True(t, m.IsValid())
	deg, _ := m.VertexDegree(w)
	assert.Equal(t, 4, deg)
	assert.Equal(t, 1, m.Euler())
}

// TestCollapseEdge_Legal collapses an interior diagonal of a grid.
func TestCollapseEdge_Legal(t *testing.T) {
	const n = 4
	m := triGrid(t, n)
	u, v := gridKey(n, 1, 1), gridKey(n, 2, 2)
	require.NoError(t, m.SetEdgeAttribute(v, gridKey(n, 3, 2), "w", 7.0))

	legal, err := m.IsCollapseLegal(u, v)
	require.NoError(t, err)
	require.True(t, legal)

	ok, err := m.CollapseEdge(u, v)
	require.NoError(t, err)
	require.True(t, ok)

	assert.False(t, m.HasVertex(v))
	assert.Equal(t, 24, m.VertexCount())
	assert.Equal(t, 30, m.FaceCount())
	assert.Equal(t, 1, m.Euler())
	assert.True(t, m.IsValid())
	assert.True(t, m.IsManifold())

	p, _ := m.VertexPoint(u)
	assert.InDelta(t, 1.5, p.X, 1e-12)
	assert.InDelta(t, 1.5, p.Y, 1e-12)

	w, _, err := m.EdgeAttribute(u, gridKey(n, 3, 2), "w")
	require.NoError(t, err)
	assert.Equal(t, 7.0, w)
}

// TestCollapseEdge_IllegalPinchIsNoop verifies an illegal collapse leaves the mesh identical.
func TestCollapseEdge_IllegalPinchIsNoop(t *testing.T) {
	// 0–1 share the face [0,1,2]; 3 is adjacent to both through unrelated faces.
	m := core.New()
	for i := 0; i < 6; i++ {
		_, _ = m.AddVertex(core.WithXYZ(float64(i), float64(i*i), 0))
	}
	_, _ = m.AddFace([]int{0, 1, 2})
	_, _ = m.AddFace([]int{1, 3, 4})
	_, _ = m.AddFace([]int{3, 0, 5})
	require.True(t, m.IsValid())

	before := m.ToData()
	nbrs := neighborsSnapshot(t, m)

	legal, err := m.IsCollapseLegal(0, 1, core.WithBoundary())
	require.NoError(t, err)
	assert.False(t, legal)

	ok, err := m.CollapseEdge(0, 1, core.WithBoundary())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, before, m.ToData())
	assert.Equal(t, nbrs, neighborsSnapshot(t, m))
}

// TestCollapseEdge_Policies covers fixed vertices, boundary policy and parameter faults.
func TestCollapseEdge_Policies(t *testing.T) {
	const n = 4
	m := triGrid(t, n)
	u, v := gridKey(n, 1, 1), gridKey(n, 2, 2)
	before := m.ToData()

	ok, err := m.CollapseEdge(u, v, core.WithFixed(v))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = m.CollapseEdge(gridKey(n, 1, 0), gridKey(n, 2, 0))
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = m.CollapseEdge(u, v, core.WithT(2))
	assert.ErrorIs(t, err, core.ErrParameterDomain)

	_, err = m.CollapseEdge(0, gridKey(n, 4, 4))
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
	assert.Equal(t, before, m.ToData())

	ok, err = m.CollapseEdge(gridKey(n, 1, 0), gridKey(n, 2, 0), core.WithBoundary(), core.WithT(0))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, m.IsValid())
	assert.Equal(t, 1, m.Euler())
}

// TestCollapseEdge_ClosedTetrahedronIsNoop verifies no edge of a closed
// tetrahedron can be collapsed into a two-face pillow.
func TestCollapseEdge_ClosedTetrahedronIsNoop(t *testing.T) {
	m := tetrahedron(t)
	before := m.ToData()

	for _, e := range m.Edges() {
		legal, err := m.IsCollapseLegal(e.U, e.V)
		require.NoError(t, err)
		assert.False(t, legal, "edge %v", e)

		ok, err := m.CollapseEdge(e.U, e.V)
		require.NoError(t, err)
		assert.False(t, ok, "edge %v", e)

		ok, err = m.TriCollapseEdge(e.U, e.V)
		require.NoError(t, err)
		assert.False(t, ok, "edge %v", e)
	}
	assert.Equal(t, before, m.ToData())
	require.NoError(t, m.Validate())
	assert.Equal(t, 2, m.Euler())
}

// TestTriCollapseEdge_PrunesLowDegree collapses a lone triangle edge.
func TestTriCollapseEdge_PrunesLowDegree(t *testing.T) {
	m := core.New()
	for i := 0; i < 3; i++ {
		_, _ = m.AddVertex(core.WithXYZ(float64(i), 0, 0))
	}
	_, _ = m.AddFace([]int{0, 1, 2})

	ok, err := m.TriCollapseEdge(0, 1, core.WithBoundary())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 0, m.FaceCount())
	assert.Equal(t, 0, m.VertexCount())
	assert.True(t, m.IsValid())
}

// TestSwapEdge flips the shared diagonal and rejects illegal swaps.
func TestSwapEdge(t *testing.T) {
	m := twoTriangles(t)

	ok, err := m.SwapEdge(0, 1)
	require.NoError(t, err)
	assert.False(t, ok, "endpoints on the boundary")

	ok, err = m.SwapEdge(0, 1, core.WithBoundary())
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, m.HasEdge(0, 1))
	assert.True(t, m.HasEdge(2, 3))
	assert.Equal(t, []int{0, 1}, m.Faces())
	assert.True(t, m.IsValid())
	assert.InDelta(t, 1.0, m.Area(), 1e-12)

	ok, err = m.SwapEdge(0, 2, core.WithBoundary())
	require.NoError(t, err)
	assert.False(t, ok, "boundary edge has one face")

	_, err = m.SwapEdge(0, 1)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

// TestSwapEdge_DuplicateEdge rejects a flip onto an existing edge.
func TestSwapEdge_DuplicateEdge(t *testing.T) {
	tet := tetrahedron(t)
	before := tet.ToData()
	ok, err := tet.SwapEdge(0, 1)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, before, tet.ToData())
}

// TestMutatorSequence_KeepsValidity runs a mixed sequence of legal operations.
func TestMutatorSequence_KeepsValidity(t *testing.T) {
	const n = 5
	m := triGrid(t, n)
	euler := m.Euler()

	for _, e := range m.Edges() {
		if !m.HasEdge(e.U, e.V) {
			continue
		}
		if _, _, err := m.TriSplitEdge(e.U, e.V); err != nil {
			t.Fatal(err)
		}
		require.True(t, m.IsValid())
	}
	for _, e := range m.Edges() {
		if !m.HasEdge(e.U, e.V) {
			continue
		}
		_, err := m.SwapEdge(e.U, e.V)
		require.NoError(t, err)
		require.True(t, m.IsValid())
	}
	for _, e := range m.Edges() {
		if !m.HasEdge(e.U, e.V) {
			continue
		}
		_, err := m.TriCollapseEdge(e.U, e.V)
		require.NoError(t, err)
		require.True(t, m.IsValid())
	}
	assert.Equal(t, euler, m.Euler())
	assert.True(t, m.IsManifold())
}
