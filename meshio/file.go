// SPDX-License-Identifier: MIT
// Package meshio: path-based helpers that pick the codec from the extension.
package meshio

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvmesh/core"
)

// Save writes m to path in the format named by its extension.
func Save(path string, m *core.Mesh) (err error) {
	if m == nil {
		return ErrMeshNil
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return fmt.Errorf("Save(%q): %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Save(%q): %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("Save(%q): %w", path, cerr)
		}
	}()

	switch format {
	case JSON:
		return WriteJSON(f, m)
	case YAML:
		return WriteYAML(f, m)
	default:
		return WriteOBJ(f, m)
	}
}

// Load reads the mesh at path in the format named by its extension.
func Load(path string) (*core.Mesh, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("Load(%q): %w", path, err)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load(%q): %w", path, err)
	}
	defer f.Close()

	switch format {
	case JSON:
		return ReadJSON(f)
	case YAML:
		return ReadYAML(f)
	default:
		return ReadOBJ(f)
	}
}
