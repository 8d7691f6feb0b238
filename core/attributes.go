// SPDX-License-Identifier: MIT
// File: attributes.go
// Role: Vertex / edge / face attribute access with default-template fall-through.
//
// Policy:
//   - Reads never write: a missing name resolves to the per-mesh template,
//     and a missing template entry resolves to (nil, false).
//   - Returned Attrs are copies; templates are never aliased by entity records.
//   - Missing entities are errors (ErrVertexNotFound / ErrFaceNotFound / ErrEdgeNotFound).
package core

import "fmt"

// merged returns defaults overlaid by own, as a fresh record.
func merged(defaults, own Attrs) Attrs {
	out := make(Attrs, len(defaults)+len(own))
	for k, v := range defaults {
		out[k] = v
	}
	for k, v := range own {
		out[k] = v
	}

	return out
}

func lookup(defaults, own Attrs, name string) (any, bool) {
	if v, ok := own[name]; ok {
		return v, true
	}
	v, ok := defaults[name]

	return v, ok
}

// Attribute returns a mesh-level attribute.
func (m *Mesh) Attribute(name string) (any, bool) {
	v, ok := m.attributes[name]
	return v, ok
}

// SetAttribute sets a mesh-level attribute.
func (m *Mesh) SetAttribute(name string, value any) {
	m.attributes[name] = value
}

// Name returns the "name" mesh attribute.
func (m *Mesh) Name() string {
	s, _ := m.attributes["name"].(string)
	return s
}

// ---------- vertices ----------

// VertexAttribute returns the named attribute of v, falling back to the
// default vertex template. The bool is false when neither defines it.
func (m *Mesh) VertexAttribute(v int, name string) (any, bool, error) {
	rec, ok := m.vertices[v]
	if !ok {
		return nil, false, fmt.Errorf("VertexAttribute(%d, %q): %w", v, name, ErrVertexNotFound)
	}
	val, found := lookup(m.dva, rec.attrs, name)

	return val, found, nil
}

// SetVertexAttribute sets one attribute of v.
func (m *Mesh) SetVertexAttribute(v int, name string, value any) error {
	rec, ok := m.vertices[v]
	if !ok {
		return fmt.Errorf("SetVertexAttribute(%d, %q): %w", v, name, ErrVertexNotFound)
	}
	rec.attrs[name] = value

	return nil
}

// VertexAttributes returns the named attributes of v, or the full record merged
// over the defaults when no names are given. Unknown names map to nil.
func (m *Mesh) VertexAttributes(v int, names ...string) (Attrs, error) {
	rec, ok := m.vertices[v]
	if !ok {
		return nil, fmt.Errorf("VertexAttributes(%d): %w", v, ErrVertexNotFound)
	}

	return selectAttrs(m.dva, rec.attrs, names), nil
}

// SetVertexAttributes merges values into the record of v.
func (m *Mesh) SetVertexAttributes(v int, values Attrs) error {
	rec, ok := m.vertices[v]
	if !ok {
		return fmt.Errorf("SetVertexAttributes(%d): %w", v, ErrVertexNotFound)
	}
	for k, val := range values {
		rec.attrs[k] = val
	}

	return nil
}

// VerticesAttribute returns the named attribute for each key (all vertices in
// key order when keys is empty). Missing values resolve to the default or nil.
func (m *Mesh) VerticesAttribute(name string, keys ...int) ([]any, error) {
	if len(keys) == 0 {
		keys = m.Vertices()
	}
	out := make([]any, 0, len(keys))
	for _, k := range keys {
		val, _, err := m.VertexAttribute(k, name)
		if err != nil {
			return nil, err
		}
		out = append(out, val)
	}

	return out, nil
}

// SetVerticesAttribute sets the named attribute on each key (all vertices
// when keys is empty).
func (m *Mesh) SetVerticesAttribute(name string, value any, keys ...int) error {
	if len(keys) == 0 {
		keys = m.Vertices()
	}
	for _, k := range keys {
		if err := m.SetVertexAttribute(k, name, value); err != nil {
			return err
		}
	}

	return nil
}

// ---------- faces ----------

// FaceAttribute returns the named attribute of f, falling back to the
// default face template.
func (m *Mesh) FaceAttribute(f int, name string) (any, bool, error) {
	rec, ok := m.faces[f]
	if !ok {
		return nil, false, fmt.Errorf("FaceAttribute(%d, %q): %w", f, name, ErrFaceNotFound)
	}
	val, found := lookup(m.dfa, rec.attrs, name)

	return val, found, nil
}

// SetFaceAttribute sets one attribute of f, creating its record on first write.
func (m *Mesh) SetFaceAttribute(f int, name string, value any) error {
	rec, ok := m.faces[f]
	if !ok {
		return fmt.Errorf("SetFaceAttribute(%d, %q): %w", f, name, ErrFaceNotFound)
	}
	if rec.attrs == nil {
		rec.attrs = Attrs{}
	}
	rec.attrs[name] = value

	return nil
}

// FaceAttributes returns the named attributes of f, or the full record merged
// over the defaults when no names are given.
func (m *Mesh) FaceAttributes(f int, names ...string) (Attrs, error) {
	rec, ok := m.faces[f]
	if !ok {
		return nil, fmt.Errorf("FaceAttributes(%d): %w", f, ErrFaceNotFound)
	}

	return selectAttrs(m.dfa, rec.attrs, names), nil
}

// SetFaceAttributes merges values into the record of f.
func (m *Mesh) SetFaceAttributes(f int, values Attrs) error {
	rec, ok := m.faces[f]
	if !ok {
		return fmt.Errorf("SetFaceAttributes(%d): %w", f, ErrFaceNotFound)
	}
	if rec.attrs == nil && len(values) > 0 {
		rec.attrs = Attrs{}
	}
	for k, val := range values {
		rec.attrs[k] = val
	}

	return nil
}

// FacesAttribute returns the named attribute for each key (all faces when
// keys is empty).
func (m *Mesh) FacesAttribute(name string, keys ...int) ([]any, error) {
	if len(keys) == 0 {
		keys = m.Faces()
	}
	out := make([]any, 0, len(keys))
	for _, k := range keys {
		val, _, err := m.FaceAttribute(k, name)
		if err != nil {
			return nil, err
		}
		out = append(out, val)
	}

	return out, nil
}

// SetFacesAttribute sets the named attribute on each key (all faces when
// keys is empty).
func (m *Mesh) SetFacesAttribute(name string, value any, keys ...int) error {
	if len(keys) == 0 {
		keys = m.Faces()
	}
	for _, k := range keys {
		if err := m.SetFaceAttribute(k, name, value); err != nil {
			return err
		}
	}

	return nil
}

// ---------- edges ----------

// EdgeAttribute returns the named attribute of edge u–v (either direction),
// falling back to the default edge template.
func (m *Mesh) EdgeAttribute(u, v int, name string) (any, bool, error) {
	if !m.HasEdge(u, v) {
		return nil, false, fmt.Errorf("EdgeAttribute(%d, %d, %q): %w", u, v, name, ErrEdgeNotFound)
	}
	val, found := lookup(m.dea, m.edgedata[NewEdge(u, v)], name)

	return val, found, nil
}

// SetEdgeAttribute sets one attribute of edge u–v (either direction).
func (m *Mesh) SetEdgeAttribute(u, v int, name string, value any) error {
	if !m.HasEdge(u, v) {
		return fmt.Errorf("SetEdgeAttribute(%d, %d, %q): %w", u, v, name, ErrEdgeNotFound)
	}
	e := NewEdge(u, v)
	rec := m.edgedata[e]
	if rec == nil {
		rec = Attrs{}
		m.edgedata[e] = rec
	}
	rec[name] = value

	return nil
}

// EdgeAttributes returns the named attributes of u–v, or the full record
// merged over the defaults when no names are given.
func (m *Mesh) EdgeAttributes(u, v int, names ...string) (Attrs, error) {
	if !m.HasEdge(u, v) {
		return nil, fmt.Errorf("EdgeAttributes(%d, %d): %w", u, v, ErrEdgeNotFound)
	}

	return selectAttrs(m.dea, m.edgedata[NewEdge(u, v)], names), nil
}

// SetEdgeAttributes merges values into the record of u–v.
func (m *Mesh) SetEdgeAttributes(u, v int, values Attrs) error {
	if !m.HasEdge(u, v) {
		return fmt.Errorf("SetEdgeAttributes(%d, %d): %w", u, v, ErrEdgeNotFound)
	}
	for k, val := range values {
		_ = m.SetEdgeAttribute(u, v, k, val)
	}

	return nil
}

// EdgesAttribute returns the named attribute for each edge (all edges when
// edges is empty).
func (m *Mesh) EdgesAttribute(name string, edges ...Edge) ([]any, error) {
	if len(edges) == 0 {
		edges = m.Edges()
	}
	out := make([]any, 0, len(edges))
	for _, e := range edges {
		val, _, err := m.EdgeAttribute(e.U, e.V, name)
		if err != nil {
			return nil, err
		}
		out = append(out, val)
	}

	return out, nil
}

// SetEdgesAttribute sets the named attribute on each edge (all edges when
// edges is empty).
func (m *Mesh) SetEdgesAttribute(name string, value any, edges ...Edge) error {
	if len(edges) == 0 {
		edges = m.Edges()
	}
	for _, e := range edges {
		if err := m.SetEdgeAttribute(e.U, e.V, name, value); err != nil {
			return err
		}
	}

	return nil
}

func selectAttrs(defaults, own Attrs, names []string) Attrs {
	if len(names) == 0 {
		return merged(defaults, own)
	}
	out := make(Attrs, len(names))
	for _, name := range names {
		val, _ := lookup(defaults, own, name)
		out[name] = val
	}

	return out
}
