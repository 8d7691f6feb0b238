// SPDX-License-Identifier: MIT
// File: data.go
// Role: Structural serialization record and replay.
//
// Policy:
//   - Data carries only plain maps and slices so any codec (JSON, YAML) can
//     encode it; map keys are decimal strings of the integer keys.
//   - FromData replays AddVertex/AddFace in ascending key order with explicit
//     keys, then restores the running counters, so ids survive the round trip.
package core

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Data is the serialized form of a Mesh.
type Data struct {
	Attributes map[string]any            `json:"attributes" yaml:"attributes"`
	DVA        map[string]any            `json:"dva" yaml:"dva"`
	DEA        map[string]any            `json:"dea" yaml:"dea"`
	DFA        map[string]any            `json:"dfa" yaml:"dfa"`
	Vertex     map[string]map[string]any `json:"vertex" yaml:"vertex"`
	Face       map[string][]int          `json:"face" yaml:"face"`
	FaceData   map[string]map[string]any `json:"facedata" yaml:"facedata"`
	EdgeData   map[string]map[string]any `json:"edgedata" yaml:"edgedata"`
	MaxVertex  int                       `json:"max_vertex" yaml:"max_vertex"`
	MaxFace    int                       `json:"max_face" yaml:"max_face"`
}

// ToData snapshots the mesh into a Data record. Only explicitly stored
// attributes are written; defaults travel in the templates.
// Complexity: O(V + F + E + A).
func (m *Mesh) ToData() Data {
	d := Data{
		Attributes: m.attributes.Clone(),
		DVA:        m.dva.Clone(),
		DEA:        m.dea.Clone(),
		DFA:        m.dfa.Clone(),
		Vertex:     make(map[string]map[string]any, len(m.vertices)),
		Face:       make(map[string][]int, len(m.faces)),
		FaceData:   make(map[string]map[string]any),
		EdgeData:   make(map[string]map[string]any, len(m.edgedata)),
		MaxVertex:  m.maxVertex,
		MaxFace:    m.maxFace,
	}
	for k, rec := range m.vertices {
		d.Vertex[strconv.Itoa(k)] = rec.attrs.Clone()
	}
	for k, rec := range m.faces {
		cycle := make([]int, len(rec.cycle))
		copy(cycle, rec.cycle)
		d.Face[strconv.Itoa(k)] = cycle
		if len(rec.attrs) > 0 {
			d.FaceData[strconv.Itoa(k)] = rec.attrs.Clone()
		}
	}
	for e, attrs := range m.edgedata {
		if len(attrs) > 0 {
			d.EdgeData[e.String()] = attrs.Clone()
		}
	}

	return d
}

// FromData rebuilds a mesh from a Data record.
//
// Errors:
//   - ErrBadData: a key that is not a non-negative integer, an edge key not
//     of the form "u-v", or edge data for a missing edge.
//   - Errors of AddFace (degenerate cycle, missing vertex) wrapped with the key.
func FromData(d Data) (*Mesh, error) {
	m := New()
	m.attributes = Attrs{}
	for k, v := range d.Attributes {
		m.attributes[k] = v
	}
	m.dva, m.dea, m.dfa = Attrs{}, Attrs{}, Attrs{}
	for k, v := range d.DVA {
		m.dva[k] = v
	}
	for k, v := range d.DEA {
		m.dea[k] = v
	}
	for k, v := range d.DFA {
		m.dfa[k] = v
	}

	vkeys, err := sortedKeys(d.Vertex)
	if err != nil {
		return nil, fmt.Errorf("FromData: vertex: %w", err)
	}
	for _, k := range vkeys {
		if _, err = m.AddVertex(WithKey(k), WithAttrs(d.Vertex[strconv.Itoa(k)])); err != nil {
			return nil, fmt.Errorf("FromData: vertex %d: %w", k, err)
		}
	}

	fkeys, err := sortedKeys(d.Face)
	if err != nil {
		return nil, fmt.Errorf("FromData: face: %w", err)
	}
	for _, k := range fkeys {
		s := strconv.Itoa(k)
		if _, err = m.AddFace(d.Face[s], WithKey(k), WithAttrs(d.FaceData[s])); err != nil {
			return nil, fmt.Errorf("FromData: face %d: %w", k, err)
		}
	}

	for key, attrs := range d.EdgeData {
		u, v, err := parseEdgeKey(key)
		if err != nil {
			return nil, fmt.Errorf("FromData: edgedata %q: %w", key, err)
		}
		if err = m.SetEdgeAttributes(u, v, attrs); err != nil {
			return nil, fmt.Errorf("FromData: edgedata %q: %v: %w", key, err, ErrBadData)
		}
	}

	if d.MaxVertex > m.maxVertex {
		m.maxVertex = d.MaxVertex
	}
	if d.MaxFace > m.maxFace {
		m.maxFace = d.MaxFace
	}

	return m, nil
}

func sortedKeys[T any](in map[string]T) ([]int, error) {
	out := make([]int, 0, len(in))
	for s := range in {
		k, err := strconv.Atoi(s)
		if err != nil || k < 0 {
			return nil, fmt.Errorf("key %q: %w", s, ErrBadData)
		}
		out = append(out, k)
	}
	sort.Ints(out)

	return out, nil
}

func parseEdgeKey(s string) (int, int, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return 0, 0, ErrBadData
	}
	u, err1 := strconv.Atoi(parts[0])
	v, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, 0, ErrBadData
	}

	return u, v, nil
}

// Equal reports whether a and b hold the same vertices, faces (key and cycle),
// edges, attributes, default templates and key counters. Numeric attribute
// values compare by value regardless of their Go numeric kind.
func Equal(a, b *Mesh) bool {
	if a.maxVertex != b.maxVertex || a.maxFace != b.maxFace {
		return false
	}
	if !attrsEqual(a.attributes, b.attributes) || !attrsEqual(a.dva, b.dva) ||
		!attrsEqual(a.dea, b.dea) || !attrsEqual(a.dfa, b.dfa) {
		return false
	}
	if len(a.vertices) != len(b.vertices) || len(a.faces) != len(b.faces) {
		return false
	}
	for k, ra := range a.vertices {
		rb, ok := b.vertices[k]
		if !ok || !attrsEqual(ra.attrs, rb.attrs) || len(ra.out) != len(rb.out) {
			return false
		}
		for _, h := range ra.out {
			if f, ok := b.halfedgeFace(k, h.to); !ok || f != h.face {
				return false
			}
		}
	}
	for k, ra := range a.faces {
		rb, ok := b.faces[k]
		if !ok || !reflect.DeepEqual(ra.cycle, rb.cycle) || !attrsEqual(ra.attrs, rb.attrs) {
			return false
		}
	}
	for e, attrs := range a.edgedata {
		if !attrsEqual(attrs, b.edgedata[e]) {
			return false
		}
	}
	for e, attrs := range b.edgedata {
		if !attrsEqual(attrs, a.edgedata[e]) {
			return false
		}
	}

	return true
}

func attrsEqual(a, b Attrs) bool {
	if len(a) != len(b) {
		return false
	}
	for k, va := range a {
		vb, ok := b[k]
		if !ok {
			return false
		}
		if isNumber(va) && isNumber(vb) {
			if toFloat(va) != toFloat(vb) {
				return false
			}
			continue
		}
		if !reflect.DeepEqual(va, vb) {
			return false
		}
	}

	return true
}

func isNumber(v any) bool {
	switch v.(type) {
	case float64, float32, int, int64, int32:
		return true
	}

	return false
}
