// SPDX-License-Identifier: MIT
// Package meshio provides format tags and error definitions for reading and
// writing core meshes.
package meshio

import (
	"errors"
	"path/filepath"
	"strings"
)

// Sentinel errors for mesh I/O.
var (
	// ErrMeshNil is returned if a nil mesh pointer is passed.
	ErrMeshNil = errors.New("meshio: mesh is nil")

	// ErrFormat is returned for malformed input.
	ErrFormat = errors.New("meshio: malformed input")

	// ErrUnknownFormat is returned when a path has no supported extension.
	ErrUnknownFormat = errors.New("meshio: unknown format")
)

// Format names a supported encoding.
type Format string

const (
	// JSON is the full structural record (core.Data) as JSON.
	JSON Format = "json"

	// YAML is the full structural record (core.Data) as YAML.
	YAML Format = "yaml"

	// OBJ is Wavefront OBJ: positions and face cycles only.
	OBJ Format = "obj"
)

// FormatFromPath picks a Format from the file extension (case-insensitive):
// .json, .yaml/.yml, .obj.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".obj":
		return OBJ, nil
	}

	return "", ErrUnknownFormat
}
