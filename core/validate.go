// SPDX-License-Identifier: MIT
// File: validate.go
// Role: Structural diagnostics (validity, manifoldness, closedness, Euler, genus).
package core

import "fmt"

// Validate checks the global invariants and returns nil, or an error wrapping
// ErrInvalidMesh that names the first violation found (in key order):
//   - every halfedge points at an existing vertex and has its reverse registered;
//   - no edge has NoFace on both sides;
//   - every face has ≥3 distinct vertices and its cycle matches the halfedge map;
//   - every face referenced by a halfedge exists and contains that halfedge.
//
// Complexity: O(H·deg + Σ face sizes·deg).
func (m *Mesh) Validate() error {
	for _, u := range m.Vertices() {
		for _, h := range m.vertices[u].out {
			if _, ok := m.vertices[h.to]; !ok {
				return fmt.Errorf("halfedge %d→%d: missing vertex: %w", u, h.to, ErrInvalidMesh)
			}
			rf, ok := m.halfedgeFace(h.to, u)
			if !ok {
				return fmt.Errorf("halfedge %d→%d: missing reverse: %w", u, h.to, ErrInvalidMesh)
			}
			if h.face == NoFace && rf == NoFace {
				return fmt.Errorf("edge %d-%d: no face on either side: %w", u, h.to, ErrInvalidMesh)
			}
			if h.face == NoFace {
				continue
			}
			rec, ok := m.faces[h.face]
			if !ok {
				return fmt.Errorf("halfedge %d→%d: missing face %d: %w", u, h.to, h.face, ErrInvalidMesh)
			}
			i := faceIndex(rec.cycle, u)
			if i < 0 || rec.cycle[(i+1)%len(rec.cycle)] != h.to {
				return fmt.Errorf("halfedge %d→%d: not in face %d: %w", u, h.to, h.face, ErrInvalidMesh)
			}
		}
	}
	for _, f := range m.Faces() {
		cycle := m.faces[f].cycle
		if distinctCount(cycle) < 3 || distinctCount(cycle) != len(cycle) {
			return fmt.Errorf("face %d %v: repeated or too few vertices: %w", f, cycle, ErrInvalidMesh)
		}
		for i := range cycle {
			u, v := cycle[i], cycle[(i+1)%len(cycle)]
			if hf, ok := m.halfedgeFace(u, v); !ok || hf != f {
				return fmt.Errorf("face %d: halfedge %d→%d not mapped: %w", f, u, v, ErrInvalidMesh)
			}
		}
	}

	return nil
}

// IsValid reports whether Validate finds no violation.
func (m *Mesh) IsValid() bool { return m.Validate() == nil }

// IsManifold reports whether every edge has at most two faces and the faces
// around every vertex form a single fan: at most one boundary halfedge in
// each direction and an ordered walk covering all neighbors.
// An empty mesh and a mesh with isolated vertices are not manifold.
func (m *Mesh) IsManifold() bool {
	if len(m.vertices) == 0 {
		return false
	}
	for v, rec := range m.vertices {
		if len(rec.out) == 0 {
			return false
		}
		outNone, inNone := 0, 0
		for _, h := range rec.out {
			if h.face == NoFace {
				outNone++
			}
			if f, _ := m.halfedgeFace(h.to, v); f == NoFace {
				inNone++
			}
		}
		if outNone > 1 || inNone > 1 {
			return false
		}
		ordered, err := m.VertexNeighborsOrdered(v)
		if err != nil || len(ordered) != len(rec.out) {
			return false
		}
	}

	return true
}

// IsRegular reports whether the mesh is closed-interior and every vertex has
// the same degree. An empty mesh is not regular.
func (m *Mesh) IsRegular() bool {
	degree := -1
	for _, rec := range m.vertices {
		if m.onBoundary(rec) {
			return false
		}
		if degree < 0 {
			degree = len(rec.out)
		} else if len(rec.out) != degree {
			return false
		}
	}

	return degree >= 0
}

// IsClosed reports whether the mesh has faces and no boundary halfedge.
func (m *Mesh) IsClosed() bool {
	if len(m.faces) == 0 {
		return false
	}
	for _, rec := range m.vertices {
		if m.onBoundary(rec) {
			return false
		}
	}

	return true
}

// IsTrimesh reports whether the mesh has faces and all are triangles.
func (m *Mesh) IsTrimesh() bool { return m.allFaces(3) }

// IsQuadmesh reports whether the mesh has faces and all are quads.
func (m *Mesh) IsQuadmesh() bool { return m.allFaces(4) }

func (m *Mesh) allFaces(n int) bool {
	if len(m.faces) == 0 {
		return false
	}
	for _, rec := range m.faces {
		if len(rec.cycle) != n {
			return false
		}
	}

	return true
}

// IsEmpty reports whether the mesh has no vertices.
func (m *Mesh) IsEmpty() bool { return len(m.vertices) == 0 }

// Euler returns V - E + F.
func (m *Mesh) Euler() int {
	return len(m.vertices) - m.EdgeCount() + len(m.faces)
}

// Genus returns the genus of an orientable surface: (2 - X)/2 for a closed
// mesh, (2 - B - X)/2 for a mesh with B boundary loops.
func (m *Mesh) Genus() int {
	x := m.Euler()
	if m.IsClosed() {
		return (2 - x) / 2
	}

	return (2 - len(m.BoundaryLoops()) - x) / 2
}
