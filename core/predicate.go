// SPDX-License-Identifier: MIT
// File: predicate.go
// Role: Typed vertex/face filters.
//
// A Predicate is a tagged variant resolved when it is built: it either
// compares a stored attribute (equality or closed numeric range) or a typed
// structural query (equality or closed range). Filters combine with AND.
package core

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrQueryScope indicates a vertex query used on faces or vice versa.
var ErrQueryScope = errors.New("core: query applied to the wrong element kind")

// PredicateKind tags the variant held by a Predicate.
type PredicateKind int

const (
	// KindAttrEquals matches an attribute value exactly (numbers by value).
	KindAttrEquals PredicateKind = iota
	// KindAttrInRange matches a numeric attribute in [Min, Max].
	KindAttrInRange
	// KindQueryEquals matches a query result exactly.
	KindQueryEquals
	// KindQueryInRange matches a query result in [Min, Max].
	KindQueryInRange
)

// Scope is the element kind a query applies to.
type Scope int

const (
	VertexScope Scope = iota
	FaceScope
)

// Query is a named numeric structural measure of a vertex or face.
type Query struct {
	Name  string
	Scope Scope
	eval  func(m *Mesh, key int) (float64, error)
}

// Structural queries available to predicates.
var (
	VertexDegreeQuery = Query{Name: "vertex_degree", Scope: VertexScope, eval: func(m *Mesh, k int) (float64, error) {
		d, err := m.VertexDegree(k)
		return float64(d), err
	}}
	VertexAreaQuery = Query{Name: "vertex_area", Scope: VertexScope, eval: func(m *Mesh, k int) (float64, error) {
		return m.VertexArea(k)
	}}
	FaceDegreeQuery = Query{Name: "face_degree", Scope: FaceScope, eval: func(m *Mesh, k int) (float64, error) {
		d, err := m.FaceDegree(k)
		return float64(d), err
	}}
	FaceAreaQuery = Query{Name: "face_area", Scope: FaceScope, eval: func(m *Mesh, k int) (float64, error) {
		return m.FaceArea(k)
	}}
)

// Predicate is one filter condition.
type Predicate struct {
	Kind     PredicateKind
	Name     string // attribute name (attribute kinds)
	Query    Query  // structural query (query kinds)
	Value    any    // equality operand
	Min, Max float64
}

// AttrEquals matches elements whose attribute name equals value.
func AttrEquals(name string, value any) Predicate {
	return Predicate{Kind: KindAttrEquals, Name: name, Value: value}
}

// AttrInRange matches elements whose numeric attribute lies in [lo, hi].
// Panics if lo > hi.
func AttrInRange(name string, lo, hi float64) Predicate {
	if lo > hi {
		panic(fmt.Sprintf("AttrInRange(%q): lo=%g > hi=%g", name, lo, hi))
	}
	return Predicate{Kind: KindAttrInRange, Name: name, Min: lo, Max: hi}
}

// QueryEquals matches elements whose query result equals value.
func QueryEquals(q Query, value float64) Predicate {
	return Predicate{Kind: KindQueryEquals, Query: q, Value: value}
}

// QueryInRange matches elements whose query result lies in [lo, hi].
// Panics if lo > hi.
func QueryInRange(q Query, lo, hi float64) Predicate {
	if lo > hi {
		panic(fmt.Sprintf("QueryInRange(%s): lo=%g > hi=%g", q.Name, lo, hi))
	}
	return Predicate{Kind: KindQueryInRange, Query: q, Min: lo, Max: hi}
}

func (p Predicate) match(m *Mesh, key int, scope Scope, defaults, own Attrs) (bool, error) {
	switch p.Kind {
	case KindAttrEquals:
		val, ok := lookup(defaults, own, p.Name)
		if !ok {
			return false, nil
		}
		if isNumber(val) && isNumber(p.Value) {
			return toFloat(val) == toFloat(p.Value), nil
		}
		return reflect.DeepEqual(val, p.Value), nil
	case KindAttrInRange:
		val, ok := lookup(defaults, own, p.Name)
		if !ok || !isNumber(val) {
			return false, nil
		}
		x := toFloat(val)
		return x >= p.Min && x <= p.Max, nil
	case KindQueryEquals, KindQueryInRange:
		if p.Query.eval == nil || p.Query.Scope != scope {
			return false, fmt.Errorf("predicate %q: %w", p.Query.Name, ErrQueryScope)
		}
		x, err := p.Query.eval(m, key)
		if err != nil {
			return false, err
		}
		if p.Kind == KindQueryEquals {
			return x == toFloat(p.Value), nil
		}
		return x >= p.Min && x <= p.Max, nil
	default:
		return false, fmt.Errorf("predicate kind %d: %w", p.Kind, ErrParameterDomain)
	}
}

// VerticesWhere returns, in key order, the vertices matching every predicate.
func (m *Mesh) VerticesWhere(preds ...Predicate) ([]int, error) {
	out := make([]int, 0)
	for _, k := range m.Vertices() {
		ok, err := m.matchAll(preds, k, VertexScope, m.dva, m.vertices[k].attrs)
		if err != nil {
			return nil, fmt.Errorf("VerticesWhere: %w", err)
		}
		if ok {
			out = append(out, k)
		}
	}

	return out, nil
}

// FacesWhere returns, in key order, the faces matching every predicate.
func (m *Mesh) FacesWhere(preds ...Predicate) ([]int, error) {
	out := make([]int, 0)
	for _, k := range m.Faces() {
		ok, err := m.matchAll(preds, k, FaceScope, m.dfa, m.faces[k].attrs)
		if err != nil {
			return nil, fmt.Errorf("FacesWhere: %w", err)
		}
		if ok {
			out = append(out, k)
		}
	}

	return out, nil
}

func (m *Mesh) matchAll(preds []Predicate, key int, scope Scope, defaults, own Attrs) (bool, error) {
	for _, p := range preds {
		ok, err := p.match(m, key, scope, defaults, own)
		if err != nil || !ok {
			return false, err
		}
	}

	return true, nil
}
