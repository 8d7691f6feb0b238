// SPDX-License-Identifier: MIT
// File: geometry.go
// Role: Coordinate access and derived geometry over vertex attributes.
//
// Policy:
//   - Coordinates live in the "x", "y", "z" attributes; numeric values of any
//     Go float/int kind are accepted, anything else reads as 0.
//   - Polygon normals and areas use the centroid fan, so non-planar faces get
//     a well-defined average.
package core

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// WithPoint sets the coordinates of a new vertex from a vector.
func WithPoint(p r3.Vec) ElementOption {
	return WithXYZ(p.X, p.Y, p.Z)
}

// toFloat converts a numeric attribute value to float64.
func toFloat(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case int32:
		return float64(x)
	default:
		return 0
	}
}

// point reads the coordinates of an existing vertex.
func (m *Mesh) point(v int) r3.Vec {
	rec := m.vertices[v]
	x, _ := lookup(m.dva, rec.attrs, "x")
	y, _ := lookup(m.dva, rec.attrs, "y")
	z, _ := lookup(m.dva, rec.attrs, "z")

	return r3.Vec{X: toFloat(x), Y: toFloat(y), Z: toFloat(z)}
}

func (m *Mesh) setPoint(v int, p r3.Vec) {
	rec := m.vertices[v]
	rec.attrs["x"] = p.X
	rec.attrs["y"] = p.Y
	rec.attrs["z"] = p.Z
}

// VertexPoint returns the coordinates of v.
func (m *Mesh) VertexPoint(v int) (r3.Vec, error) {
	if _, ok := m.vertices[v]; !ok {
		return r3.Vec{}, fmt.Errorf("VertexPoint(%d): %w", v, ErrVertexNotFound)
	}

	return m.point(v), nil
}

// SetVertexPoint moves v to p.
func (m *Mesh) SetVertexPoint(v int, p r3.Vec) error {
	if _, ok := m.vertices[v]; !ok {
		return fmt.Errorf("SetVertexPoint(%d): %w", v, ErrVertexNotFound)
	}
	m.setPoint(v, p)

	return nil
}

// Points returns the coordinates of every vertex, keyed by vertex.
func (m *Mesh) Points() map[int]r3.Vec {
	out := make(map[int]r3.Vec, len(m.vertices))
	for k := range m.vertices {
		out[k] = m.point(k)
	}

	return out
}

// VertexCoordinates returns the coordinates of v along the given axes, e.g.
// "xyz" or "xy". Unknown axis letters are ignored.
func (m *Mesh) VertexCoordinates(v int, axes string) ([]float64, error) {
	p, err := m.VertexPoint(v)
	if err != nil {
		return nil, err
	}
	out := make([]float64, 0, len(axes))
	for _, a := range axes {
		switch a {
		case 'x':
			out = append(out, p.X)
		case 'y':
			out = append(out, p.Y)
		case 'z':
			out = append(out, p.Z)
		}
	}

	return out, nil
}

// EdgeVector returns point(v) - point(u).
func (m *Mesh) EdgeVector(u, v int) (r3.Vec, error) {
	if !m.HasVertex(u) || !m.HasVertex(v) {
		return r3.Vec{}, fmt.Errorf("EdgeVector(%d, %d): %w", u, v, ErrVertexNotFound)
	}

	return r3.Sub(m.point(v), m.point(u)), nil
}

// EdgeLength returns the Euclidean distance between u and v.
func (m *Mesh) EdgeLength(u, v int) (float64, error) {
	d, err := m.EdgeVector(u, v)
	if err != nil {
		return 0, err
	}

	return r3.Norm(d), nil
}

func (m *Mesh) edgePoint(u, v int, t float64) r3.Vec {
	a, b := m.point(u), m.point(v)
	return r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
}

// EdgePoint returns the point at parameter t along u→v.
func (m *Mesh) EdgePoint(u, v int, t float64) (r3.Vec, error) {
	if !m.HasVertex(u) || !m.HasVertex(v) {
		return r3.Vec{}, fmt.Errorf("EdgePoint(%d, %d): %w", u, v, ErrVertexNotFound)
	}

	return m.edgePoint(u, v, t), nil
}

// EdgeMidpoint returns the midpoint of u–v.
func (m *Mesh) EdgeMidpoint(u, v int) (r3.Vec, error) {
	return m.EdgePoint(u, v, 0.5)
}

func (m *Mesh) faceCentroid(cycle []int) r3.Vec {
	var c r3.Vec
	for _, v := range cycle {
		c = r3.Add(c, m.point(v))
	}

	return r3.Scale(1/float64(len(cycle)), c)
}

// polygonNormal returns the non-normalized centroid-fan normal; its length
// is twice the polygon area.
func (m *Mesh) polygonNormal(cycle []int) r3.Vec {
	o := m.faceCentroid(cycle)
	var n r3.Vec
	for i := range cycle {
		a := r3.Sub(m.point(cycle[i]), o)
		b := r3.Sub(m.point(cycle[(i+1)%len(cycle)]), o)
		n = r3.Add(n, r3.Cross(a, b))
	}

	return n
}

// FaceCoordinates returns the points of the face cycle.
func (m *Mesh) FaceCoordinates(f int) ([]r3.Vec, error) {
	rec, ok := m.faces[f]
	if !ok {
		return nil, fmt.Errorf("FaceCoordinates(%d): %w", f, ErrFaceNotFound)
	}
	out := make([]r3.Vec, len(rec.cycle))
	for i, v := range rec.cycle {
		out[i] = m.point(v)
	}

	return out, nil
}

// FaceCentroid returns the average of the face's vertex points.
func (m *Mesh) FaceCentroid(f int) (r3.Vec, error) {
	rec, ok := m.faces[f]
	if !ok {
		return r3.Vec{}, fmt.Errorf("FaceCentroid(%d): %w", f, ErrFaceNotFound)
	}

	return m.faceCentroid(rec.cycle), nil
}

// FaceNormal returns the unit normal of f (zero vector for a degenerate face).
func (m *Mesh) FaceNormal(f int) (r3.Vec, error) {
	rec, ok := m.faces[f]
	if !ok {
		return r3.Vec{}, fmt.Errorf("FaceNormal(%d): %w", f, ErrFaceNotFound)
	}
	n := m.polygonNormal(rec.cycle)
	if r3.Norm(n) == 0 {
		return n, nil
	}

	return r3.Unit(n), nil
}

// FaceArea returns the area of f.
func (m *Mesh) FaceArea(f int) (float64, error) {
	rec, ok := m.faces[f]
	if !ok {
		return 0, fmt.Errorf("FaceArea(%d): %w", f, ErrFaceNotFound)
	}

	return 0.5 * r3.Norm(m.polygonNormal(rec.cycle)), nil
}

// VertexNormal returns the unit average of the normals of the faces around v.
func (m *Mesh) VertexNormal(v int) (r3.Vec, error) {
	faces, err := m.VertexFaces(v, false)
	if err != nil {
		return r3.Vec{}, err
	}
	var n r3.Vec
	for _, f := range faces {
		fn, _ := m.FaceNormal(f)
		n = r3.Add(n, fn)
	}
	if r3.Norm(n) == 0 {
		return n, nil
	}

	return r3.Unit(n), nil
}

// VertexArea returns the share of the surrounding face area attributed to v:
// each incident face contributes area/len(face).
func (m *Mesh) VertexArea(v int) (float64, error) {
	faces, err := m.VertexFaces(v, false)
	if err != nil {
		return 0, err
	}
	area := 0.0
	for _, f := range faces {
		a, _ := m.FaceArea(f)
		area += a / float64(len(m.faces[f].cycle))
	}

	return area, nil
}

// Centroid returns the average of all vertex points.
func (m *Mesh) Centroid() r3.Vec {
	if len(m.vertices) == 0 {
		return r3.Vec{}
	}
	var c r3.Vec
	for k := range m.vertices {
		c = r3.Add(c, m.point(k))
	}

	return r3.Scale(1/float64(len(m.vertices)), c)
}

// Area returns the total face area.
func (m *Mesh) Area() float64 {
	total := 0.0
	for _, rec := range m.faces {
		total += 0.5 * r3.Norm(m.polygonNormal(rec.cycle))
	}

	return total
}

// BoundingBox returns the axis-aligned bounds of the vertex points.
// An empty mesh yields the zero box.
func (m *Mesh) BoundingBox() r3.Box {
	if len(m.vertices) == 0 {
		return r3.Box{}
	}
	lo := r3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi := r3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for k := range m.vertices {
		p := m.point(k)
		lo = r3.Vec{X: math.Min(lo.X, p.X), Y: math.Min(lo.Y, p.Y), Z: math.Min(lo.Z, p.Z)}
		hi = r3.Vec{X: math.Max(hi.X, p.X), Y: math.Max(hi.Y, p.Y), Z: math.Max(hi.Z, p.Z)}
	}

	return r3.Box{Min: lo, Max: hi}
}
