// SPDX-License-Identifier: MIT
// File: builder_impl_test.go
// Package builder_test contains functional tests for all Constructor
// implementations in the builder package, verifying counts, topology,
// orientation and error contracts.
package builder_test

import (
	"errors"
	"math"
	"testing"

	"github.com/deadsy/sdfx/sdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/builder"
	"github.com/katalvlaran/lvmesh/core"
)

// build is a shorthand for a single-constructor BuildMesh call.
func build(t *testing.T, ctor builder.Constructor, opts ...builder.BuilderOption) *core.Mesh {
	t.Helper()
	m, err := builder.BuildMesh(nil, opts, ctor)
	require.NoError(t, err)
	require.NotNil(t, m)

	return m
}

// assertOutward checks that every face normal points away from the mesh centroid.
func assertOutward(t *testing.T, m *core.Mesh) {
	t.Helper()
	c := m.Centroid()
	for _, f := range m.Faces() {
		n, err := m.FaceNormal(f)
		require.NoError(t, err)
		fc, err := m.FaceCentroid(f)
		require.NoError(t, err)
		assert.Greater(t, r3.Dot(n, r3.Sub(fc, c)), 0.0, "face %d points inward", f)
	}
}

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		wantF       int
		sampleCheck func(t *testing.T, m *core.Mesh)
	}{
		{
			name:  "Grid(3,2)",
			ctor:  builder.Grid(3, 2, 1, 1),
			wantV: 12, wantE: 17, wantF: 6,
			sampleCheck: func(t *testing.T, m *core.Mesh) {
				assert.True(t, m.IsQuadmesh())
				cycle, err := m.FaceVertices(0)
				require.NoError(t, err)
				assert.Equal(t, []int{0, 1, 5, 4}, cycle)
				n, err := m.FaceNormal(0)
				require.NoError(t, err)
				assert.InDelta(t, 1.0, n.Z, 1e-12)
				assert.Len(t, m.BoundaryLoops(), 1)
			},
		},
		{
			name:  "RegularPolygon(5)",
			ctor:  builder.RegularPolygon(5),
			wantV: 5, wantE: 5, wantF: 1,
			sampleCheck: func(t *testing.T, m *core.Mesh) {
				assert.Len(t, m.EdgesOnBoundary(), 5)
				area, err := m.FaceArea(0)
				require.NoError(t, err)
				// Regular pentagon of circumradius 1.
				assert.InDelta(t, 2.5*math.Sin(2*math.Pi/5), area, 1e-9)
			},
		},
		{
			name:  "Wheel(6)",
			ctor:  builder.Wheel(6),
			wantV: 6, wantE: 10, wantF: 5,
			sampleCheck: func(t *testing.T, m *core.Mesh) {
				deg, err := m.VertexDegree(0)
				require.NoError(t, err)
				assert.Equal(t, 5, deg)
				on, err := m.IsVertexOnBoundary(0)
				require.NoError(t, err)
				assert.False(t, on)
				assert.True(t, m.IsTrimesh())
			},
		},
		{
			name:  "VerticesAndFaces",
			ctor:  builder.VerticesAndFaces([][3]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}, [][]int{{0, 1, 2}, {0, 2, 3}}),
			wantV: 4, wantE: 5, wantF: 2,
			sampleCheck: func(t *testing.T, m *core.Mesh) {
				assert.True(t, m.HasEdge(0, 2))
				assert.InDelta(t, 1.0, m.Area(), 1e-12)
			},
		},
		{
			name: "Polygons(welded)",
			ctor: builder.Polygons([][][3]float64{
				{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}},
				{{0, 0, 0}, {1, 1, 0}, {0, 1, 0}},
			}),
			wantV: 4, wantE: 5, wantF: 2,
			sampleCheck: func(t *testing.T, m *core.Mesh) {
				assert.True(t, m.IsManifold())
				fuv, fvu, err := m.EdgeFaces(0, 2)
				require.NoError(t, err)
				assert.Equal(t, 1, fuv)
				assert.Equal(t, 0, fvu)
			},
		},
		{
			name:  "ConvexHull(octahedron+center)",
			ctor:  builder.ConvexHull([][3]float64{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}, {0, 0, 0.1}}),
			wantV: 6, wantE: 12, wantF: 8,
			sampleCheck: func(t *testing.T, m *core.Mesh) {
				assert.True(t, m.IsClosed())
				assert.False(t, m.HasVertex(6))
				assertOutward(t, m)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := build(t, tc.ctor)
			assert.Equal(t, tc.wantV, m.VertexCount(), "vertices")
			assert.Equal(t, tc.wantE, m.EdgeCount(), "edges")
			assert.Equal(t, tc.wantF, m.FaceCount(), "faces")
			require.NoError(t, m.Validate())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, m)
			}
		})
	}
}

// TestPlatonicSolids checks counts, closure, Euler characteristic and outward winding.
func TestPlatonicSolids(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name          builder.PlatonicName
		v, e, f, side int
	}{
		{builder.Tetrahedron, 4, 6, 4, 3},
		{builder.Cube, 8, 12, 6, 4},
		{builder.Octahedron, 6, 12, 8, 3},
		{builder.Dodecahedron, 20, 30, 12, 5},
		{builder.Icosahedron, 12, 30, 20, 3},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(string(tc.name), func(t *testing.T) {
			t.Parallel()
			m := build(t, builder.PlatonicSolid(tc.name), builder.WithScale(2))
			assert.Equal(t, tc.v, m.VertexCount())
			assert.Equal(t, tc.e, m.EdgeCount())
			assert.Equal(t, tc.f, m.FaceCount())
			assert.True(t, m.IsClosed())
			assert.True(t, m.IsManifold())
			assert.True(t, m.IsRegular())
			assert.Equal(t, 2, m.Euler())
			assert.Equal(t, 0, m.Genus())
			for _, f := range m.Faces() {
				d, err := m.FaceDegree(f)
				require.NoError(t, err)
				assert.Equal(t, tc.side, d)
			}
			for _, p := range m.Points() {
				assert.InDelta(t, 2.0, r3.Norm(p), 1e-9)
			}
			assertOutward(t, m)
		})
	}
}

// TestFromSDF meshes a unit sphere and checks the surface stays on the sphere.
func TestFromSDF(t *testing.T) {
	t.Parallel()

	s, err := sdf.Sphere3D(1)
	require.NoError(t, err)
	m := build(t, builder.FromSDF(s, 16))

	assert.Positive(t, m.FaceCount())
	assert.True(t, m.IsTrimesh())
	for _, p := range m.Points() {
		assert.InDelta(t, 1.0, r3.Norm(p), 0.15)
	}
	for _, v := range m.Vertices() {
		fs, err := m.VertexFaces(v, false)
		require.NoError(t, err)
		assert.NotEmpty(t, fs, "vertex %d has no faces", v)
	}
}

// TestBuildMesh_Composition checks that constructors share one key space.
func TestBuildMesh_Composition(t *testing.T) {
	t.Parallel()

	m, err := builder.BuildMesh(
		[]core.MeshOption{core.WithAttributes(core.Attrs{"name": "pair"})},
		nil,
		builder.PlatonicSolid(builder.Tetrahedron),
		builder.RegularPolygon(3),
	)
	require.NoError(t, err)
	assert.Equal(t, "pair", m.Name())
	assert.Equal(t, 7, m.VertexCount())
	assert.Equal(t, 5, m.FaceCount())
	cycle, err := m.FaceVertices(4)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 6}, cycle)
}

// TestBuildMesh_GridJitterDeterministic checks seeded jitter reproducibility.
func TestBuildMesh_GridJitterDeterministic(t *testing.T) {
	t.Parallel()

	opts := []builder.BuilderOption{builder.WithSeed(3), builder.WithJitter(0.1)}
	a := build(t, builder.Grid(2, 2, 1, 1), opts...)
	b := build(t, builder.Grid(2, 2, 1, 1), opts...)
	assert.True(t, core.Equal(a, b))

	moved := false
	for _, p := range a.Points() {
		if p.Z != 0 {
			moved = true
		}
	}
	assert.True(t, moved)
}

// TestBuilders_Errors verifies that every constructor surfaces sentinel errors.
func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Grid(0,1)", builder.Grid(0, 1, 1, 1), builder.ErrTooFewVertices},
		{"Grid(dx=0)", builder.Grid(1, 1, 0, 1), builder.ErrOptionViolation},
		{"RegularPolygon(2)", builder.RegularPolygon(2), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"PlatonicSolid(unknown)", builder.PlatonicSolid("torus"), builder.ErrOptionViolation},
		{"ConvexHull(3 points)", builder.ConvexHull([][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}), builder.ErrTooFewVertices},
		{"FromSDF(nil)", builder.FromSDF(nil, 8), builder.ErrOptionViolation},
		{"FromSDF(cells=1)", builder.FromSDF(mustSphere(t), 1), builder.ErrTooFewVertices},
		{"VerticesAndFaces(bad index)", builder.VerticesAndFaces([][3]float64{{0, 0, 0}}, [][]int{{0, 1, 2}}), builder.ErrOptionViolation},
		{"VerticesAndFaces(NaN)", builder.VerticesAndFaces([][3]float64{{math.NaN(), 0, 0}}, nil), builder.ErrOptionViolation},
		{
			"VerticesAndFaces(claimed halfedge)",
			builder.VerticesAndFaces([][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}, [][]int{{0, 1, 2}, {0, 1, 3}}),
			builder.ErrConstructFailed,
		},
		{"Polygons(2 corners)", builder.Polygons([][][3]float64{{{0, 0, 0}, {1, 0, 0}}}), builder.ErrTooFewVertices},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.BuildMesh(nil, nil, tc.ctor)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}

	// Degenerate welded polygons surface the core sentinel.
	_, err := builder.BuildMesh(nil, nil, builder.Polygons([][][3]float64{{{0, 0, 0}, {0, 0, 0}, {1, 0, 0}}}))
	assert.ErrorIs(t, err, core.ErrDegenerateFace)
}

func mustSphere(t *testing.T) sdf.SDF3 {
	t.Helper()
	s, err := sdf.Sphere3D(1)
	require.NoError(t, err)

	return s
}

// TestApply verifies in-place construction into an existing mesh.
func TestApply(t *testing.T) {
	t.Parallel()

	m := core.New()
	require.NoError(t, builder.Apply(m, []builder.BuilderOption{builder.WithScale(0.5)}, builder.Wheel(5)))
	assert.Equal(t, 4, m.FaceCount())
	p, err := m.VertexPoint(1)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, r3.Norm(p), 1e-12)

	assert.ErrorIs(t, builder.Apply(nil, nil), builder.ErrConstructFailed)
}
