// SPDX-License-Identifier: MIT
// File: methods_faces.go
// Role: Face lifecycle, enumeration and whole-mesh face rewrites.
//
// Policy:
//   - AddFace normalizes its input (closing duplicate, consecutive repeats).
//   - Faces() returns keys sorted ascending; FaceVertices returns a copy.
package core

import (
	"fmt"
	"sort"
)

// AddFace inserts a face bounded by the given vertex cycle and returns its key.
//
// Implementation:
//   - Stage 1: Normalize: drop a trailing vertex equal to the first, collapse
//     consecutive duplicates. Fewer than 3 distinct vertices → ErrDegenerateFace.
//   - Stage 2: Verify every vertex exists (ErrVertexNotFound).
//   - Stage 3: Allocate the key (auto maxFace+1 or WithKey); an existing face
//     with the same key is replaced.
//   - Stage 4: Map each forward halfedge to the face; register the reverse
//     direction as a boundary halfedge when it is not yet known.
//
// Behavior highlights:
//   - A forward halfedge already claimed by another face is reassigned to the
//     new face; callers that need manifold input check HalfedgeFace first.
//
// Errors:
//   - ErrDegenerateFace (key NoFace), ErrVertexNotFound, ErrInvalidKey.
//
// Complexity:
//   - Time O(n·deg), n = len(cycle).
func (m *Mesh) AddFace(cycle []int, opts ...ElementOption) (int, error) {
	spec := resolveElement(opts)

	vs := normalizeCycle(cycle)
	if len(vs) < 3 || distinctCount(vs) < 3 {
		return NoFace, fmt.Errorf("AddFace(%v): %w", cycle, ErrDegenerateFace)
	}
	for _, v := range vs {
		if _, ok := m.vertices[v]; !ok {
			return NoFace, fmt.Errorf("AddFace(%v): vertex %d: %w", cycle, v, ErrVertexNotFound)
		}
	}

	key := m.maxFace + 1
	if spec.hasKey {
		if spec.key < 0 {
			return NoFace, fmt.Errorf("AddFace(%v): key %d: %w", cycle, spec.key, ErrInvalidKey)
		}
		key = spec.key
	}
	if key > m.maxFace {
		m.maxFace = key
	}
	if _, exists := m.faces[key]; exists {
		m.unlinkFace(key)
	}

	m.attachFace(key, vs, spec.attrs)

	return key, nil
}

// attachFace stores a normalized cycle under key and wires its halfedges.
func (m *Mesh) attachFace(key int, vs []int, attrs Attrs) {
	rec := &faceRecord{cycle: vs}
	if len(attrs) > 0 {
		rec.attrs = attrs
	}
	m.faces[key] = rec

	n := len(vs)
	for i := 0; i < n; i++ {
		u, v := vs[i], vs[(i+1)%n]
		m.setHalfedge(u, v, key)
		m.ensureHalfedge(v, u)
	}
}

// unlinkFace clears the face's halfedges and drops edges left with no face on
// either side, then removes the face record.
func (m *Mesh) unlinkFace(f int) {
	rec := m.faces[f]
	n := len(rec.cycle)
	for i := 0; i < n; i++ {
		u, v := rec.cycle[i], rec.cycle[(i+1)%n]
		if face, ok := m.halfedgeFace(u, v); ok && face == f {
			m.setHalfedge(u, v, NoFace)
		}
		m.pruneEdge(u, v)
	}
	delete(m.faces, f)
}

// DeleteFace removes a face. Its halfedges become boundary halfedges; an edge
// with no face on either side afterwards is removed with its attributes.
// Vertices are never removed (see RemoveUnusedVertices).
//
// Errors:
//   - ErrFaceNotFound.
//
// Complexity:
//   - Time O(n·deg), n = face size.
func (m *Mesh) DeleteFace(f int) error {
	if _, ok := m.faces[f]; !ok {
		return fmt.Errorf("DeleteFace(%d): %w", f, ErrFaceNotFound)
	}
	m.unlinkFace(f)

	return nil
}

// HasFace reports whether the face key exists.
func (m *Mesh) HasFace(f int) bool {
	_, ok := m.faces[f]
	return ok
}

// Faces returns all face keys in ascending order.
// Complexity: O(F log F).
func (m *Mesh) Faces() []int {
	keys := make([]int, 0, len(m.faces))
	for k := range m.faces {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int { return len(m.faces) }

// MaxFace returns the largest face key ever allocated, or -1.
func (m *Mesh) MaxFace() int { return m.maxFace }

// FaceVertices returns a copy of the face's vertex cycle.
func (m *Mesh) FaceVertices(f int) ([]int, error) {
	rec, ok := m.faces[f]
	if !ok {
		return nil, fmt.Errorf("FaceVertices(%d): %w", f, ErrFaceNotFound)
	}
	out := make([]int, len(rec.cycle))
	copy(out, rec.cycle)

	return out, nil
}

// FaceRecord pairs a face key with its cycle and attributes merged over the defaults.
type FaceRecord struct {
	Key      int
	Vertices []int
	Attrs    Attrs
}

// FaceRecords returns every face with its cycle and attributes, in key order.
func (m *Mesh) FaceRecords() []FaceRecord {
	keys := m.Faces()
	out := make([]FaceRecord, 0, len(keys))
	for _, k := range keys {
		rec := m.faces[k]
		cycle := make([]int, len(rec.cycle))
		copy(cycle, rec.cycle)
		out = append(out, FaceRecord{Key: k, Vertices: cycle, Attrs: merged(m.dfa, rec.attrs)})
	}

	return out
}

// InsertVertex replaces face f by a fan of triangles around a new vertex.
// Without coordinates in opts the vertex is placed at the face centroid.
// The face's attributes are dropped; edge attributes of its boundary survive.
//
// Returns the new vertex key and the keys of the fan faces in cycle order.
//
// Errors:
//   - ErrFaceNotFound.
//   - ErrInvalidKey: a negative key, or a key already in use; the mesh is
//     untouched.
//
// Complexity:
//   - Time O(n·deg), n = face size.
func (m *Mesh) InsertVertex(f int, opts ...ElementOption) (int, []int, error) {
	rec, ok := m.faces[f]
	if !ok {
		return NoVertex, nil, fmt.Errorf("InsertVertex(%d): %w", f, ErrFaceNotFound)
	}
	spec := resolveElement(opts)
	if spec.hasKey && (spec.key < 0 || m.HasVertex(spec.key)) {
		return NoVertex, nil, fmt.Errorf("InsertVertex(%d): key %d: %w", f, spec.key, ErrInvalidKey)
	}

	_, hasX := spec.attrs["x"]
	_, hasY := spec.attrs["y"]
	_, hasZ := spec.attrs["z"]
	if !hasX && !hasY && !hasZ {
		c := m.faceCentroid(rec.cycle)
		opts = append(opts, WithXYZ(c.X, c.Y, c.Z))
	}
	w, err := m.AddVertex(opts...)
	if err != nil {
		return NoVertex, nil, fmt.Errorf("InsertVertex(%d): %w", f, err)
	}

	cycle := rec.cycle
	delete(m.faces, f)

	n := len(cycle)
	fkeys := make([]int, 0, n)
	for i := 0; i < n; i++ {
		u, v := cycle[i], cycle[(i+1)%n]
		key, err := m.AddFace([]int{u, v, w})
		if err != nil {
			return w, fkeys, fmt.Errorf("InsertVertex(%d): %w", f, err)
		}
		fkeys = append(fkeys, key)
	}

	return w, fkeys, nil
}

// FlipCycles reverses the cycle of every face, keeping face keys, face
// attributes and edge attributes.
// It fails with ErrInvalidMesh, leaving the mesh untouched, when two faces
// share a forward halfedge (AddFace reassigns such halfedges).
// Complexity: O(Σ face sizes · deg).
func (m *Mesh) FlipCycles() error {
	if err := m.FlipFaces(m.Faces()...); err != nil {
		return fmt.Errorf("FlipCycles: %w", err)
	}

	return nil
}

// FlipFaces reverses the cycles of the given faces and rebuilds the halfedge
// map, keeping face keys, face attributes and edge attributes.
//
// Errors:
//   - ErrFaceNotFound: an unknown key; the mesh is untouched.
//   - ErrInvalidMesh: the result would claim a halfedge twice; the mesh is
//     untouched.
//
// Complexity: O(Σ face sizes · deg).
func (m *Mesh) FlipFaces(keys ...int) error {
	flip := make(map[int]bool, len(keys))
	for _, k := range keys {
		if _, ok := m.faces[k]; !ok {
			return fmt.Errorf("FlipFaces(%d): %w", k, ErrFaceNotFound)
		}
		flip[k] = true
	}

	all := m.Faces()
	cycles := make(map[int][]int, len(all))
	claimed := make(map[Halfedge]int)
	for _, k := range all {
		cycle := m.faces[k].cycle
		if flip[k] {
			n := len(cycle)
			rev := make([]int, n)
			for i, v := range cycle {
				rev[n-1-i] = v
			}
			cycle = rev
		}
		for i := range cycle {
			h := Halfedge{U: cycle[i], V: cycle[(i+1)%len(cycle)]}
			if other, dup := claimed[h]; dup {
				return fmt.Errorf("FlipFaces: faces %d and %d both claim %d→%d: %w", other, k, h.U, h.V, ErrInvalidMesh)
			}
			claimed[h] = k
		}
		cycles[k] = cycle
	}

	saved := make(map[int]Attrs, len(all))
	for _, k := range all {
		saved[k] = m.faces[k].attrs
	}
	for _, rec := range m.vertices {
		rec.out = rec.out[:0]
	}
	m.faces = make(map[int]*faceRecord, len(all))
	for _, k := range all {
		m.attachFace(k, cycles[k], saved[k])
	}

	return nil
}

// QuadsToTriangles splits every quadrilateral along its first diagonal.
// The first triangle keeps the quad's key and attributes.
// It returns the number of quads split.
func (m *Mesh) QuadsToTriangles() int {
	count := 0
	for _, f := range m.Faces() {
		rec := m.faces[f]
		if len(rec.cycle) != 4 {
			continue
		}
		a, b, c, d := rec.cycle[0], rec.cycle[1], rec.cycle[2], rec.cycle[3]
		attrs := rec.attrs
		delete(m.faces, f)
		m.attachFace(f, []int{a, b, c}, attrs)
		m.maxFace++
		m.attachFace(m.maxFace, []int{a, c, d}, nil)
		count++
	}

	return count
}
