// SPDX-License-Identifier: MIT

// Package remesh improves a triangle mesh toward a uniform target edge
// length by repeating four local passes: split, collapse, valence swap and
// area smoothing.
//
// The accepted length band starts wide and tightens linearly to
// [4/5·target, 4/3·target] (scaled by the tolerance) over the first half of
// the iteration budget. After that, the loop ends as soon as the vertex
// count stops changing by more than Divergence.
//
// Every edge operation goes through the legality checks of core, so an
// illegal split, collapse or swap is simply skipped.
//
// Options:
//
//   - WithIterations(kmax), WithTolerance(tol), WithDivergence(d)
//   - WithFixed(keys…): never collapsed or smoothed
//   - WithBoundarySplit / WithBoundarySwap / WithBoundaryCollapse
//   - WithoutSmoothing()
//   - WithCallback(fn): fn may return ErrStop
//   - WithContext(ctx), WithLogger(*zap.Logger)
//
// The mesh is edited in place; clone it first to keep the original.
package remesh
