// SPDX-License-Identifier: MIT

// Package smooth relaxes vertex positions of a core.Mesh in place.
//
//   - Centroid: target is the mean of the vertex neighbors.
//   - Area:     target is the area-weighted mean of incident face centroids.
//
// Topology is never modified. Options select the sweep count, damping,
// pinned vertices and a per-sweep callback that can stop early with ErrStop.
package smooth
