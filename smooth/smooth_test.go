// SPDX-License-Identifier: MIT
package smooth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/builder"
	"github.com/katalvlaran/lvmesh/core"
	"github.com/katalvlaran/lvmesh/smooth"
)

// liftedGrid returns a 2×2 quad grid whose center vertex 4 is raised to z=0.5.
func liftedGrid(t *testing.T) *core.Mesh {
	t.Helper()
	m, err := builder.BuildMesh(nil, nil, builder.Grid(2, 2, 1, 1))
	require.NoError(t, err)
	require.NoError(t, m.SetVertexPoint(4, r3.Vec{X: 1, Y: 1, Z: 0.5}))

	return m
}

func TestCentroid(t *testing.T) {
	m := liftedGrid(t)
	require.NoError(t, smooth.Centroid(m,
		smooth.WithIterations(1), smooth.WithDamping(1), smooth.WithBoundaryFixed()))

	p, err := m.VertexPoint(4)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, p.X, 1e-12)
	assert.InDelta(t, 1.0, p.Y, 1e-12)
	assert.InDelta(t, 0.0, p.Z, 1e-12)

	corner, err := m.VertexPoint(0)
	require.NoError(t, err)
	assert.Equal(t, r3.Vec{}, corner)
}

func TestArea(t *testing.T) {
	m := liftedGrid(t)
	require.NoError(t, smooth.Area(m,
		smooth.WithIterations(1), smooth.WithDamping(1), smooth.WithBoundaryFixed()))

	p, err := m.VertexPoint(4)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, p.X, 1e-12)
	assert.InDelta(t, 1.0, p.Y, 1e-12)
	assert.InDelta(t, 0.125, p.Z, 1e-12)
}

func TestSmooth_FixedAndDamping(t *testing.T) {
	m := liftedGrid(t)
	require.NoError(t, smooth.Centroid(m, smooth.WithFixed(4), smooth.WithBoundaryFixed()))
	p, _ := m.VertexPoint(4)
	assert.Equal(t, 0.5, p.Z)

	m = liftedGrid(t)
	require.NoError(t, smooth.Centroid(m, smooth.WithIterations(1), smooth.WithBoundaryFixed()))
	p, _ = m.VertexPoint(4)
	assert.InDelta(t, 0.25, p.Z, 1e-12, "default damping halves the step")
}

func TestSmooth_Callback(t *testing.T) {
	m := liftedGrid(t)
	calls := 0
	err := smooth.Area(m, smooth.WithIterations(5), smooth.WithCallback(func(_ *core.Mesh, k int) error {
		calls++
		return smooth.ErrStop
	}))
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	boom := errors.New("boom")
	err = smooth.Area(m, smooth.WithCallback(func(*core.Mesh, int) error { return boom }))
	assert.ErrorIs(t, err, boom)
}

func TestSmooth_Errors(t *testing.T) {
	assert.ErrorIs(t, smooth.Centroid(nil), smooth.ErrMeshNil)
	m := liftedGrid(t)
	assert.ErrorIs(t, smooth.Centroid(m, smooth.WithIterations(0)), smooth.ErrOptionViolation)
	assert.ErrorIs(t, smooth.Area(m, smooth.WithDamping(1.5)), smooth.ErrOptionViolation)
}
