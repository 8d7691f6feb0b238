// SPDX-License-Identifier: MIT
package delaunay_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/builder"
	"github.com/katalvlaran/lvmesh/core"
	"github.com/katalvlaran/lvmesh/delaunay"
)

// assertEmptyCircumcircles checks that no input point lies strictly inside
// the circumcircle of any face.
func assertEmptyCircumcircles(t *testing.T, m *core.Mesh, points [][3]float64) {
	t.Helper()
	for _, f := range m.Faces() {
		pts, err := m.FaceCoordinates(f)
		require.NoError(t, err)
		require.Len(t, pts, 3)
		a := r2.Vec{X: pts[0].X, Y: pts[0].Y}
		b := r2.Vec{X: pts[1].X, Y: pts[1].Y}
		c := r2.Vec{X: pts[2].X, Y: pts[2].Y}
		cc, ok := delaunay.Circumcenter(a, b, c)
		require.True(t, ok, "face %d is degenerate", f)
		r := r2.Norm(r2.Sub(a, cc))
		for i, p := range points {
			d := r2.Norm(r2.Sub(r2.Vec{X: p[0], Y: p[1]}, cc))
			assert.GreaterOrEqual(t, d, r-1e-9, "point %d inside circumcircle of face %d", i, f)
		}
	}
}

func assertCCW(t *testing.T, m *core.Mesh) {
	t.Helper()
	for _, f := range m.Faces() {
		n, err := m.FaceNormal(f)
		require.NoError(t, err)
		assert.Greater(t, n.Z, 0.0, "face %d", f)
	}
}

func gridPoints(n int) [][3]float64 {
	var pts [][3]float64
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			pts = append(pts, [3]float64{float64(x), float64(y), 0})
		}
	}

	return pts
}

func TestFromPoints_UnitSquare(t *testing.T) {
	points := [][3]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	m, err := delaunay.FromPoints(points)
	require.NoError(t, err)

	assert.Equal(t, 2, m.FaceCount())
	assert.Equal(t, []int{0, 1, 2, 3}, m.Vertices())
	assert.True(t, m.IsTrimesh())
	require.NoError(t, m.Validate())
	assertCCW(t, m)
	assertEmptyCircumcircles(t, m, points)
}

func TestFromPoints_RandomCloud(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	points := make([][3]float64, 60)
	for i := range points {
		points[i] = [3]float64{rng.Float64(), rng.Float64(), rng.Float64()}
	}

	m, err := delaunay.FromPoints(points, delaunay.WithSeed(5))
	require.NoError(t, err)

	assert.Equal(t, len(points), m.VertexCount())
	assert.True(t, m.IsManifold())
	assert.Equal(t, 1, m.Euler(), "a triangulated convex region is a disc")
	assert.Len(t, m.BoundaryLoops(), 1)
	require.NoError(t, m.Validate())
	assertCCW(t, m)
	assertEmptyCircumcircles(t, m, points)

	// z is carried through unchanged.
	p, err := m.VertexPoint(7)
	require.NoError(t, err)
	assert.Equal(t, points[7][2], p.Z)
}

func TestFromPoints_BoundaryAndHoles(t *testing.T) {
	points := gridPoints(5)
	left := [][3]float64{{-0.5, -0.5, 0}, {2, -0.5, 0}, {2, 4.5, 0}, {-0.5, 4.5, 0}}
	m, err := delaunay.FromPoints(points, delaunay.WithTiny(1e-6), delaunay.WithBoundary(left))
	require.NoError(t, err)
	require.Positive(t, m.FaceCount())
	for _, f := range m.Faces() {
		c, err := m.FaceCentroid(f)
		require.NoError(t, err)
		assert.Less(t, c.X, 2.0)
	}

	hole := [][3]float64{{1, 1, 0}, {3, 1, 0}, {3, 3, 0}, {1, 3, 0}}
	full, err := delaunay.FromPoints(points, delaunay.WithTiny(1e-6))
	require.NoError(t, err)
	m, err = delaunay.FromPoints(points, delaunay.WithTiny(1e-6), delaunay.WithHoles(hole))
	require.NoError(t, err)
	assert.Less(t, m.FaceCount(), full.FaceCount())
	for _, f := range m.Faces() {
		c, err := m.FaceCentroid(f)
		require.NoError(t, err)
		inside := c.X > 1 && c.X < 3 && c.Y > 1 && c.Y < 3
		assert.False(t, inside, "face %d survived inside the hole", f)
	}
}

func TestFromPoints_Errors(t *testing.T) {
	_, err := delaunay.FromPoints([][3]float64{{0, 0, 0}, {1, 0, 0}})
	assert.ErrorIs(t, err, delaunay.ErrTooFewPoints)

	_, err = delaunay.FromPoints([][3]float64{{1, 1, 0}, {1, 1, 0}, {1, 1, 0}})
	assert.ErrorIs(t, err, delaunay.ErrTooFewPoints)

	_, err = delaunay.FromPoints(gridPoints(2), delaunay.WithTiny(-1))
	assert.ErrorIs(t, err, delaunay.ErrOptionViolation)

	_, err = delaunay.FromPoints([][3]float64{{0, 0, 0}, {1, 0, 0}, {math.NaN(), 1, 0}})
	assert.ErrorIs(t, err, delaunay.ErrOptionViolation)

	_, err = delaunay.FromPoints(gridPoints(2), delaunay.WithBoundary([][3]float64{{0, 0, 0}}))
	assert.ErrorIs(t, err, delaunay.ErrOptionViolation)
}

func TestPredicates(t *testing.T) {
	a, b, c := r2.Vec{X: 1}, r2.Vec{Y: 1}, r2.Vec{X: -1}
	assert.True(t, delaunay.InCircle(a, b, c, r2.Vec{}))
	assert.False(t, delaunay.InCircle(a, b, c, r2.Vec{Y: -2}))
	assert.False(t, delaunay.InCircle(a, b, c, r2.Vec{Y: -1}), "on the circle is not inside")

	assert.True(t, delaunay.InTriangle(a, b, c, r2.Vec{Y: 0.5}))
	assert.True(t, delaunay.InTriangle(a, c, b, r2.Vec{Y: 0.5}), "clockwise input")
	assert.True(t, delaunay.InTriangle(a, b, c, r2.Vec{}), "on an edge")
	assert.False(t, delaunay.InTriangle(a, b, c, r2.Vec{Y: -0.1}))

	cc, ok := delaunay.Circumcenter(a, b, c)
	require.True(t, ok)
	assert.InDelta(t, 0, cc.X, 1e-12)
	assert.InDelta(t, 0, cc.Y, 1e-12)
	_, ok = delaunay.Circumcenter(r2.Vec{}, r2.Vec{X: 1}, r2.Vec{X: 2})
	assert.False(t, ok)

	square := []r2.Vec{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}}
	assert.True(t, delaunay.InPolygon(square, r2.Vec{X: 0.5, Y: 0.5}))
	assert.False(t, delaunay.InPolygon(square, r2.Vec{X: 1.5, Y: 0.5}))
}

func TestDual_Cube(t *testing.T) {
	cube, err := builder.BuildMesh(nil, nil, builder.PlatonicSolid(builder.Cube))
	require.NoError(t, err)

	d, err := delaunay.Dual(cube)
	require.NoError(t, err)
	assert.Equal(t, 6, d.VertexCount())
	assert.Equal(t, 8, d.FaceCount())
	assert.True(t, d.IsClosed())
	assert.Equal(t, cube.Faces(), d.Vertices())
	assert.Equal(t, cube.Vertices(), d.Faces())

	// Dual cycles wind opposite to the primal: normals point inward.
	for _, f := range d.Faces() {
		n, err := d.FaceNormal(f)
		require.NoError(t, err)
		c, err := d.FaceCentroid(f)
		require.NoError(t, err)
		assert.Less(t, r3.Dot(n, c), 0.0)
	}

	_, err = delaunay.Dual(nil)
	assert.ErrorIs(t, err, delaunay.ErrMeshNil)
}

func TestVoronoi_Grid(t *testing.T) {
	m, err := delaunay.FromPoints(gridPoints(3), delaunay.WithTiny(1e-6))
	require.NoError(t, err)

	v, err := delaunay.Voronoi(m)
	require.NoError(t, err)
	assert.Equal(t, []int{4}, v.Faces(), "only the center vertex is interior")

	v, err = delaunay.Voronoi(m, delaunay.WithBoundaryCells())
	require.NoError(t, err)
	assert.Equal(t, 9, v.FaceCount())
	assert.Equal(t, m.FaceCount()+len(m.EdgesOnBoundary()), v.VertexCount())

	v, err = delaunay.Voronoi(m, delaunay.WithCircumcenters())
	require.NoError(t, err)
	for _, f := range m.Faces() {
		cc, err := v.VertexPoint(f)
		require.NoError(t, err)
		pts, err := m.FaceCoordinates(f)
		require.NoError(t, err)
		r0 := r3.Norm(r3.Sub(pts[0], cc))
		for _, p := range pts[1:] {
			assert.InDelta(t, r0, r3.Norm(r3.Sub(p, cc)), 1e-9)
		}
	}
}
