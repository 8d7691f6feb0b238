// SPDX-License-Identifier: MIT

// Package meshio reads and writes core meshes.
//
// JSON and YAML carry the complete structural record (core.Data): explicit
// keys, attributes, default templates and key counters, so a mesh read back
// is core.Equal to the one written. OBJ carries positions and face cycles
// only and renumbers vertices from 0.
//
// Save and Load choose the codec from the file extension.
package meshio
