// SPDX-License-Identifier: MIT
package remesh_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvmesh/builder"
	"github.com/katalvlaran/lvmesh/core"
	"github.com/katalvlaran/lvmesh/remesh"
	"github.com/katalvlaran/lvmesh/subdivide"
)

// triGrid returns a 4×4 unit grid with every quad split along a diagonal:
// 25 vertices, 32 triangles, interior vertex 6 at (1,1).
func triGrid(t testing.TB) *core.Mesh {
	t.Helper()
	m, err := builder.BuildMesh(nil, nil, builder.Grid(4, 4, 1, 1))
	require.NoError(t, err)
	require.Equal(t, 16, m.QuadsToTriangles())

	return m
}

func TestRemesh_RefinesInterior(t *testing.T) {
	m := triGrid(t)
	boundary := m.VerticesOnBoundary()
	before := make(map[int][3]float64, len(boundary))
	for _, v := range boundary {
		p, err := m.VertexPoint(v)
		require.NoError(t, err)
		before[v] = [3]float64{p.X, p.Y, p.Z}
	}

	res, err := remesh.Remesh(m, 0.5, remesh.WithIterations(10))
	require.NoError(t, err)

	assert.Equal(t, 10, res.Iterations)
	assert.Positive(t, res.Splits)
	assert.Greater(t, m.VertexCount(), 25)
	assert.True(t, m.IsTrimesh())
	require.NoError(t, m.Validate())
	assert.Equal(t, 1, m.Euler())

	// Boundary edges are left alone and boundary vertices are pinned.
	assert.Equal(t, boundary, m.VerticesOnBoundary())
	for v, want := range before {
		p, err := m.VertexPoint(v)
		require.NoError(t, err)
		assert.Equal(t, want, [3]float64{p.X, p.Y, p.Z}, "boundary vertex %d moved", v)
	}
}

// TestRemesh_ClosedSurfaceStaysClosed coarsens a subdivided icosahedron and
// checks the sphere keeps its topology at several targets.
func TestRemesh_ClosedSurfaceStaysClosed(t *testing.T) {
	for _, target := range []float64{0.3, 0.8, 5} {
		ico, err := builder.BuildMesh(nil, nil, builder.PlatonicSolid(builder.Icosahedron))
		require.NoError(t, err)
		m, err := subdivide.LoopSubdivide(ico, subdivide.WithK(2))
		require.NoError(t, err)
		require.Equal(t, 162, m.VertexCount())

		_, err = remesh.Remesh(m, target, remesh.WithIterations(30))
		require.NoError(t, err, "target %g", target)

		require.NoError(t, m.Validate(), "target %g", target)
		assert.True(t, m.IsClosed(), "target %g", target)
		assert.True(t, m.IsTrimesh(), "target %g", target)
		assert.GreaterOrEqual(t, m.VertexCount(), 4, "target %g", target)
		assert.Equal(t, 2, m.Euler(), "target %g", target)
	}
}

func TestRemesh_CoarsensAndConverges(t *testing.T) {
	m := triGrid(t)
	res, err := remesh.Remesh(m, 10, remesh.WithIterations(20), remesh.WithoutSmoothing())
	require.NoError(t, err)

	assert.Positive(t, res.Collapses)
	assert.Zero(t, res.Splits)
	assert.True(t, res.Converged)
	assert.Less(t, res.Iterations, 20)
	assert.Less(t, m.VertexCount(), 25)
	require.NoError(t, m.Validate())
}

func TestRemesh_Fixed(t *testing.T) {
	m := triGrid(t)
	p0, err := m.VertexPoint(6)
	require.NoError(t, err)

	_, err = remesh.Remesh(m, 10, remesh.WithIterations(6), remesh.WithFixed(6))
	require.NoError(t, err)

	require.True(t, m.HasVertex(6))
	p1, err := m.VertexPoint(6)
	require.NoError(t, err)
	assert.Equal(t, p0, p1)
}

func TestRemesh_Callback(t *testing.T) {
	m := triGrid(t)
	var seen []int
	res, err := remesh.Remesh(m, 0.5, remesh.WithCallback(func(_ *core.Mesh, k int) error {
		seen = append(seen, k)
		if k == 2 {
			return remesh.ErrStop
		}
		return nil
	}))
	require.NoError(t, err)
	assert.True(t, res.Stopped)
	assert.Equal(t, 3, res.Iterations)
	assert.Equal(t, []int{0, 1, 2}, seen)

	boom := errors.New("boom")
	_, err = remesh.Remesh(triGrid(t), 0.5, remesh.WithCallback(func(*core.Mesh, int) error {
		return boom
	}))
	assert.ErrorIs(t, err, boom)
}

func TestRemesh_Context(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := triGrid(t)
	res, err := remesh.Remesh(m, 0.5, remesh.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Zero(t, res.Iterations)
	assert.Equal(t, 25, m.VertexCount())
}

func TestRemesh_Logger(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)

	_, err := remesh.Remesh(triGrid(t), 0.5, remesh.WithIterations(2), remesh.WithLogger(zap.New(obs)))
	require.NoError(t, err)
	assert.Equal(t, 2, logs.FilterMessage("remesh iteration").Len())
	done := logs.FilterMessage("remesh done").All()
	require.Len(t, done, 1)
	assert.Equal(t, int64(2), done[0].ContextMap()["iterations"])
}

func TestRemesh_Errors(t *testing.T) {
	_, err := remesh.Remesh(nil, 1)
	assert.ErrorIs(t, err, remesh.ErrMeshNil)

	_, err = remesh.Remesh(triGrid(t), 0)
	assert.ErrorIs(t, err, remesh.ErrOptionViolation)

	quads, err := builder.BuildMesh(nil, nil, builder.Grid(2, 2, 1, 1))
	require.NoError(t, err)
	_, err = remesh.Remesh(quads, 1)
	assert.ErrorIs(t, err, remesh.ErrNotTriangleMesh)

	for name, opt := range map[string]remesh.Option{
		"iterations": remesh.WithIterations(0),
		"tolerance":  remesh.WithTolerance(1),
		"divergence": remesh.WithDivergence(0),
	} {
		_, err := remesh.Remesh(triGrid(t), 1, opt)
		assert.ErrorIs(t, err, remesh.ErrOptionViolation, name)
	}
}
