// SPDX-License-Identifier: MIT
package meshio_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmesh/builder"
	"github.com/katalvlaran/lvmesh/core"
	"github.com/katalvlaran/lvmesh/meshio"
)

// sample is a cube with sparse keys, templates and attributes on every level.
func sample(t *testing.T) *core.Mesh {
	t.Helper()
	m, err := builder.BuildMesh(
		[]core.MeshOption{
			core.WithDefaultVertexAttrs(core.Attrs{"fixed": false}),
			core.WithDefaultFaceAttrs(core.Attrs{"color": "grey"}),
			core.WithAttributes(core.Attrs{"name": "box"}),
		},
		nil,
		builder.PlatonicSolid(builder.Cube),
	)
	require.NoError(t, err)
	require.NoError(t, m.SetVertexAttribute(3, "fixed", true))
	require.NoError(t, m.SetFaceAttribute(2, "color", "red"))
	require.NoError(t, m.DeleteFace(5))
	e := m.Edges()[0]
	require.NoError(t, m.SetEdgeAttribute(e.U, e.V, "crease", 2.5))

	return m
}

func TestJSON_RoundTrip(t *testing.T) {
	m := sample(t)
	var buf bytes.Buffer
	require.NoError(t, meshio.WriteJSON(&buf, m))
	assert.Contains(t, buf.String(), `"max_face": 5`)

	back, err := meshio.ReadJSON(&buf)
	require.NoError(t, err)
	assert.True(t, core.Equal(m, back))
}

func TestYAML_RoundTrip(t *testing.T) {
	m := sample(t)
	var buf bytes.Buffer
	require.NoError(t, meshio.WriteYAML(&buf, m))
	assert.Contains(t, buf.String(), "max_face: 5")

	back, err := meshio.ReadYAML(&buf)
	require.NoError(t, err)
	assert.True(t, core.Equal(m, back))
	assert.Equal(t, "box", back.Name())
}

func TestOBJ_RoundTrip(t *testing.T) {
	cube, err := builder.BuildMesh(nil, nil, builder.PlatonicSolid(builder.Cube))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, meshio.WriteOBJ(&buf, cube))
	back, err := meshio.ReadOBJ(&buf)
	require.NoError(t, err)

	assert.Equal(t, cube.VertexCount(), back.VertexCount())
	assert.Equal(t, cube.FaceCount(), back.FaceCount())
	for _, f := range cube.Faces() {
		want, _ := cube.FaceVertices(f)
		got, err := back.FaceVertices(f)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	for _, v := range cube.Vertices() {
		want, _ := cube.VertexPoint(v)
		got, err := back.VertexPoint(v)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.True(t, back.IsClosed())
}

func TestReadOBJ_Statements(t *testing.T) {
	src := `# a quad and a triangle
o patch
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vn 0 0 1
g first
f 1/1/1 2/2/1 3/3/1 4/4/1
v 2 0 0
f -4 -1 -3
`
	m, err := meshio.ReadOBJ(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "patch", m.Name())
	assert.Equal(t, 5, m.VertexCount())
	assert.Equal(t, 2, m.FaceCount())
	cycle, err := m.FaceVertices(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 2}, cycle)
	require.NoError(t, m.Validate())
}

func TestReadOBJ_Errors(t *testing.T) {
	for name, src := range map[string]string{
		"short vertex": "v 1 2\n",
		"bad number":   "v 1 2 x\n",
		"bad index":    "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 a\n",
		"out of range": "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n",
		"zero index":   "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n",
	} {
		_, err := meshio.ReadOBJ(strings.NewReader(src))
		assert.ErrorIs(t, err, meshio.ErrFormat, name)
	}

	_, err := meshio.ReadOBJ(strings.NewReader("v 0 0 0\nv 1 0 0\nf 1 2 1\n"))
	assert.ErrorIs(t, err, core.ErrDegenerateFace)

	_, err = meshio.ReadJSON(strings.NewReader("{"))
	assert.ErrorIs(t, err, meshio.ErrFormat)
	_, err = meshio.ReadYAML(strings.NewReader("face: [1, 2"))
	assert.ErrorIs(t, err, meshio.ErrFormat)

	assert.ErrorIs(t, meshio.WriteJSON(&bytes.Buffer{}, nil), meshio.ErrMeshNil)
	assert.ErrorIs(t, meshio.WriteYAML(&bytes.Buffer{}, nil), meshio.ErrMeshNil)
	assert.ErrorIs(t, meshio.WriteOBJ(&bytes.Buffer{}, nil), meshio.ErrMeshNil)
}

func TestSaveLoad(t *testing.T) {
	m := sample(t)
	dir := t.TempDir()
	for _, name := range []string{"mesh.json", "mesh.YAML", "mesh.yml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, meshio.Save(path, m), name)
		back, err := meshio.Load(path)
		require.NoError(t, err, name)
		assert.True(t, core.Equal(m, back), name)
	}

	path := filepath.Join(dir, "mesh.obj")
	require.NoError(t, meshio.Save(path, m))
	back, err := meshio.Load(path)
	require.NoError(t, err)
	assert.Equal(t, m.FaceCount(), back.FaceCount())

	assert.ErrorIs(t, meshio.Save(filepath.Join(dir, "mesh.stl"), m), meshio.ErrUnknownFormat)
	_, err = meshio.Load(filepath.Join(dir, "mesh.ply"))
	assert.ErrorIs(t, err, meshio.ErrUnknownFormat)
}
