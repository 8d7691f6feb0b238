// SPDX-License-Identifier: MIT
// Package meshio: Wavefront OBJ.
//
// Only "v", "f" and "o" statements are read; texture coordinates, normals,
// groups and materials are skipped. Vertices get keys 0, 1, 2… in file order.
// On write, vertices are emitted in ascending key order and faces reference
// them by 1-based position.
package meshio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvmesh/core"
)

// WriteOBJ writes vertex positions and face cycles of m.
func WriteOBJ(w io.Writer, m *core.Mesh) error {
	if m == nil {
		return ErrMeshNil
	}
	bw := bufio.NewWriter(w)
	if name := m.Name(); name != "" {
		fmt.Fprintf(bw, "o %s\n", name)
	}

	index := make(map[int]int, m.VertexCount())
	for i, v := range m.Vertices() {
		p, err := m.VertexPoint(v)
		if err != nil {
			return fmt.Errorf("WriteOBJ: %w", err)
		}
		index[v] = i + 1
		fmt.Fprintf(bw, "v %s %s %s\n", num(p.X), num(p.Y), num(p.Z))
	}
	for _, f := range m.Faces() {
		cycle, err := m.FaceVertices(f)
		if err != nil {
			return fmt.Errorf("WriteOBJ: %w", err)
		}
		bw.WriteString("f")
		for _, v := range cycle {
			bw.WriteString(" " + strconv.Itoa(index[v]))
		}
		bw.WriteString("\n")
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteOBJ: %w", err)
	}

	return nil
}

func num(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// ReadOBJ parses r into a new mesh.
//
// Errors:
//   - ErrFormat: a bad number, too few coordinates, or a face index out of range
//     (1-based and negative relative indices are both accepted).
//   - Errors of AddFace, wrapped with the line number.
func ReadOBJ(r io.Reader, opts ...core.MeshOption) (*core.Mesh, error) {
	m := core.New(opts...)
	sc := bufio.NewScanner(r)
	var keys []int
	for line := 1; sc.Scan(); line++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "o":
			if len(fields) > 1 {
				m.SetAttribute("name", strings.Join(fields[1:], " "))
			}
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("ReadOBJ: line %d: vertex needs 3 coordinates: %w", line, ErrFormat)
			}
			var xyz [3]float64
			for i := range xyz {
				x, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("ReadOBJ: line %d: %v: %w", line, err, ErrFormat)
				}
				xyz[i] = x
			}
			k, err := m.AddVertex(core.WithXYZ(xyz[0], xyz[1], xyz[2]))
			if err != nil {
				return nil, fmt.Errorf("ReadOBJ: line %d: %w", line, err)
			}
			keys = append(keys, k)
		case "f":
			cycle := make([]int, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				ref, _, _ := strings.Cut(tok, "/")
				i, err := strconv.Atoi(ref)
				if err != nil {
					return nil, fmt.Errorf("ReadOBJ: line %d: %v: %w", line, err, ErrFormat)
				}
				if i < 0 {
					i += len(keys) + 1
				}
				if i < 1 || i > len(keys) {
					return nil, fmt.Errorf("ReadOBJ: line %d: index %s out of range: %w", line, ref, ErrFormat)
				}
				cycle = append(cycle, keys[i-1])
			}
			if _, err := m.AddFace(cycle); err != nil {
				return nil, fmt.Errorf("ReadOBJ: line %d: %w", line, err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadOBJ: %w", err)
	}

	return m, nil
}
