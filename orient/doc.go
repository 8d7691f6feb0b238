// SPDX-License-Identifier: MIT

// Package orient checks and repairs the winding of face cycles.
//
// UnifyCycles walks each connected component breadth-first (bfs.Walk over
// shared edges) and reverses every face whose cycle runs the same way as
// its already-oriented neighbor across their shared edge. IsOrientable
// runs the same walk without touching the mesh.
//
// Only edge-manifold input is handled: an edge with more than two faces
// yields core.ErrNotImplemented.
package orient
