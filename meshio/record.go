// SPDX-License-Identifier: MIT
// Package meshio: JSON and YAML codecs for the structural record.
//
// Both encode core.Data, so keys, attributes, default templates and key
// counters survive the round trip.
package meshio

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmesh/core"
)

// WriteJSON encodes m.ToData() as indented JSON.
func WriteJSON(w io.Writer, m *core.Mesh) error {
	if m == nil {
		return ErrMeshNil
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m.ToData()); err != nil {
		return fmt.Errorf("WriteJSON: %w", err)
	}

	return nil
}

// ReadJSON decodes a JSON record and replays it with core.FromData.
func ReadJSON(r io.Reader) (*core.Mesh, error) {
	var d core.Data
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("ReadJSON: %v: %w", err, ErrFormat)
	}

	return fromData("ReadJSON", d)
}

// WriteYAML encodes m.ToData() as YAML with two-space indentation.
func WriteYAML(w io.Writer, m *core.Mesh) error {
	if m == nil {
		return ErrMeshNil
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m.ToData()); err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}

	return nil
}

// ReadYAML decodes a YAML record and replays it with core.FromData.
// Integral numbers come back as int; core treats numeric kinds alike.
func ReadYAML(r io.Reader) (*core.Mesh, error) {
	var d core.Data
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("ReadYAML: %v: %w", err, ErrFormat)
	}

	return fromData("ReadYAML", d)
}

func fromData(op string, d core.Data) (*core.Mesh, error) {
	m, err := core.FromData(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return m, nil
}
