// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before mesh construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithPrecision sets the weld tolerance used when polygon soups are merged
// into shared vertices. Panics if eps <= 0.
func WithPrecision(eps float64) BuilderOption {
	if eps <= 0 {
		panic("builder: WithPrecision(eps<=0)")
	}
	return func(c *builderConfig) {
		c.precision = eps
	}
}

// WithScale sets a uniform scale for generated solids, grids and wheels.
// Panics if s <= 0.
func WithScale(s float64) BuilderOption {
	if s <= 0 {
		panic("builder: WithScale(s<=0)")
	}
	return func(c *builderConfig) {
		c.scale = s
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithJitter sets the stdev of Gaussian noise added to the z coordinate of
// Grid and Wheel vertices. Requires an RNG (WithSeed/WithRand) to take
// effect. Panics if sigma < 0.
func WithJitter(sigma float64) BuilderOption {
	if sigma < 0 {
		panic("builder: WithJitter(sigma<0)")
	}
	return func(c *builderConfig) {
		c.jitter = sigma
	}
}

// WithHullEpsilon sets the quickhull coplanarity tolerance. Panics if eps < 0.
func WithHullEpsilon(eps float64) BuilderOption {
	if eps < 0 {
		panic("builder: WithHullEpsilon(eps<0)")
	}
	return func(c *builderConfig) {
		c.hullEps = eps
	}
}
