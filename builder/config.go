// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • precision = 1e-9   (weld tolerance for Polygons / FromSDF)
//   • scale     = 1.0    (uniform scale of generated solids)
//   • rng       = nil    (pure/deterministic unless seeded)
//   • jitter    = 0.0    (no vertex noise)
//   • hullEps   = 1e-12  (quickhull coplanarity tolerance)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Points closer than precision (per axis, after quantization) are welded.
	precision float64
	// Uniform scale applied to generated solids and grids.
	scale float64
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Gaussian vertex noise stdev along z (Grid, Wheel); drawn from rng.
	jitter float64
	// Coplanarity tolerance forwarded to quickhull.
	hullEps float64
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultPrecision = 1e-9
	defaultScale     = 1.0
	defaultJitter    = 0.0
	defaultHullEps   = 1e-12
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		precision: defaultPrecision,
		scale:     defaultScale,
		rng:       nil,
		jitter:    defaultJitter,
		hullEps:   defaultHullEps,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// noise returns one jitter sample, or 0 when no RNG or jitter is configured.
func (c builderConfig) noise() float64 {
	if c.rng == nil || c.jitter == 0 {
		return 0
	}

	return c.rng.NormFloat64() * c.jitter
}
