// SPDX-License-Identifier: MIT
// File: types.go
// Role: Mesh type, attribute records, functional options for meshes,
// elements and edge operations, and the sentinel errors shared by every method.
//
// Errors:
//
//	ErrVertexNotFound   - requested vertex does not exist.
//	ErrFaceNotFound     - requested face does not exist.
//	ErrEdgeNotFound     - requested (directed or undirected) edge does not exist.
//	ErrInvalidKey       - explicit key is negative.
//	ErrDegenerateFace   - face has fewer than 3 distinct vertices.
//	ErrParameterDomain  - numeric parameter outside its admissible interval.
//	ErrMalformedFan     - ordered neighbor walk does not close.
//	ErrNotImplemented   - query deliberately not answered for this input.
//	ErrBadData          - serialized record cannot be replayed.
//	ErrInvalidMesh      - structural invariant violated (Validate).
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core mesh operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrFaceNotFound indicates an operation referenced a non-existent face.
	ErrFaceNotFound = errors.New("core: face not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrInvalidKey indicates a negative explicit vertex or face key.
	ErrInvalidKey = errors.New("core: invalid key")

	// ErrDegenerateFace indicates AddFace received fewer than 3 distinct vertices.
	ErrDegenerateFace = errors.New("core: degenerate face")

	// ErrParameterDomain indicates a parametrization fault, e.g. split t ∉ (0,1).
	ErrParameterDomain = errors.New("core: parameter out of domain")

	// ErrMalformedFan indicates the faces around a vertex do not form a walkable fan.
	ErrMalformedFan = errors.New("core: malformed vertex fan")

	// ErrNotImplemented indicates a diagnostic that is deliberately not answered.
	ErrNotImplemented = errors.New("core: not implemented")

	// ErrBadData indicates a serialized mesh record that cannot be replayed.
	ErrBadData = errors.New("core: bad mesh data")

	// ErrInvalidMesh indicates a broken structural invariant found by Validate.
	ErrInvalidMesh = errors.New("core: invalid mesh")
)

// NoFace marks the exterior side of a boundary halfedge.
const NoFace = -1

// NoVertex is returned in place of a vertex key when no vertex was created.
const NoVertex = -1

// Attrs is a string-keyed attribute record. Vertex records hold at least the
// coordinates "x", "y", "z".
type Attrs map[string]any

// Clone returns a shallow copy of the record (values are not deep-copied).
func (a Attrs) Clone() Attrs {
	if a == nil {
		return nil
	}
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = v
	}

	return out
}

// Edge is an undirected edge in canonical form (U < V).
type Edge struct {
	U, V int
}

// NewEdge returns the canonical form of the pair (u, v).
func NewEdge(u, v int) Edge {
	if u > v {
		u, v = v, u
	}

	return Edge{U: u, V: v}
}

// String renders the edge as "u-v", the key format of serialized edge data.
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d", e.U, e.V)
}

// halfedge is one outgoing directed edge of a vertex: the neighbor it points
// to and the face on its left, or NoFace.
type halfedge struct {
	to   int
	face int
}

// vertexRecord is the arena slot of a vertex.
type vertexRecord struct {
	attrs Attrs
	out   []halfedge // outgoing halfedges, insertion order
}

// faceRecord is the arena slot of a face.
type faceRecord struct {
	cycle []int
	attrs Attrs // created lazily on first write
}

// Mesh is the halfedge polygon mesh.
//
// All vertex and face keys are non-negative integers. maxVertex and maxFace
// track the largest key ever seen (initially -1) so that auto-assigned keys
// are never reused, even after deletions.
type Mesh struct {
	attributes Attrs

	// default-attribute templates consulted when a record lacks a name
	dva Attrs
	dea Attrs
	dfa Attrs

	vertices map[int]*vertexRecord
	faces    map[int]*faceRecord
	edgedata map[Edge]Attrs

	maxVertex int
	maxFace   int
}

// MeshOption configures a Mesh at construction time.
type MeshOption func(m *Mesh)

// WithDefaultVertexAttrs merges attrs into the default vertex template.
func WithDefaultVertexAttrs(attrs Attrs) MeshOption {
	return func(m *Mesh) {
		for k, v := range attrs {
			m.dva[k] = v
		}
	}
}

// WithDefaultEdgeAttrs merges attrs into the default edge template.
func WithDefaultEdgeAttrs(attrs Attrs) MeshOption {
	return func(m *Mesh) {
		for k, v := range attrs {
			m.dea[k] = v
		}
	}
}

// WithDefaultFaceAttrs merges attrs into the default face template.
func WithDefaultFaceAttrs(attrs Attrs) MeshOption {
	return func(m *Mesh) {
		for k, v := range attrs {
			m.dfa[k] = v
		}
	}
}

// WithAttributes merges attrs into the mesh-level metadata.
func WithAttributes(attrs Attrs) MeshOption {
	return func(m *Mesh) {
		for k, v := range attrs {
			m.attributes[k] = v
		}
	}
}

// New creates an empty Mesh. The default vertex template is {x:0, y:0, z:0};
// edge and face templates start empty.
// Complexity: O(len(opts)).
func New(opts ...MeshOption) *Mesh {
	m := &Mesh{
		attributes: Attrs{"name": "Mesh"},
		dva:        Attrs{"x": 0.0, "y": 0.0, "z": 0.0},
		dea:        Attrs{},
		dfa:        Attrs{},
		vertices:   make(map[int]*vertexRecord),
		faces:      make(map[int]*faceRecord),
		edgedata:   make(map[Edge]Attrs),
		maxVertex:  -1,
		maxFace:    -1,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// ElementOption configures a vertex or face when it is added.
type ElementOption func(*elementSpec)

type elementSpec struct {
	key    int
	hasKey bool
	attrs  Attrs
}

// WithKey requests an explicit key for the new vertex or face.
func WithKey(key int) ElementOption {
	return func(s *elementSpec) {
		s.key = key
		s.hasKey = true
	}
}

// WithAttrs merges attrs into the new element's attribute record.
func WithAttrs(attrs Attrs) ElementOption {
	return func(s *elementSpec) {
		for k, v := range attrs {
			s.attrs[k] = v
		}
	}
}

// WithAttr sets a single attribute on the new element.
func WithAttr(name string, value any) ElementOption {
	return func(s *elementSpec) { s.attrs[name] = value }
}

// WithXYZ sets the coordinates of a new vertex.
func WithXYZ(x, y, z float64) ElementOption {
	return func(s *elementSpec) {
		s.attrs["x"] = x
		s.attrs["y"] = y
		s.attrs["z"] = z
	}
}

func resolveElement(opts []ElementOption) elementSpec {
	s := elementSpec{attrs: Attrs{}}
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// EdgeOpOption configures split, collapse and swap operations.
type EdgeOpOption func(*edgeOp)

type edgeOp struct {
	t             float64
	allowBoundary bool
	fixed         map[int]struct{}
}

// WithT sets the interpolation parameter along u→v (default 0.5).
func WithT(t float64) EdgeOpOption {
	return func(o *edgeOp) { o.t = t }
}

// WithBoundary permits the operation on boundary edges or vertices.
func WithBoundary() EdgeOpOption {
	return func(o *edgeOp) { o.allowBoundary = true }
}

// WithFixed marks vertices that must not move or disappear.
func WithFixed(keys ...int) EdgeOpOption {
	return func(o *edgeOp) {
		for _, k := range keys {
			o.fixed[k] = struct{}{}
		}
	}
}

func resolveEdgeOp(opts []EdgeOpOption) edgeOp {
	o := edgeOp{t: 0.5, fixed: make(map[int]struct{})}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
