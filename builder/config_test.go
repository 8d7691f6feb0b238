// SPDX-License-Identifier: MIT
// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfigDefaults verifies the documented deterministic defaults.
func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Equal(t, defaultPrecision, cfg.precision)
	assert.Equal(t, defaultScale, cfg.scale)
	assert.Nil(t, cfg.rng)
	assert.Zero(t, cfg.jitter)
	assert.Equal(t, defaultHullEps, cfg.hullEps)
	assert.Zero(t, cfg.noise(), "no rng means no noise")
}

// TestConfigOverrides verifies that later options override earlier ones.
func TestConfigOverrides(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithScale(2), WithScale(3), WithPrecision(1e-6), WithHullEpsilon(0))
	assert.Equal(t, 3.0, cfg.scale)
	assert.Equal(t, 1e-6, cfg.precision)
	assert.Zero(t, cfg.hullEps)

	r := rand.New(rand.NewSource(1))
	cfg = newBuilderConfig(WithSeed(7), WithRand(r))
	assert.Same(t, r, cfg.rng)
}

// TestConfigNoiseDeterministic verifies that equal seeds yield equal jitter.
func TestConfigNoiseDeterministic(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(42), WithJitter(0.5))
	b := newBuilderConfig(WithSeed(42), WithJitter(0.5))
	for i := 0; i < 8; i++ {
		require.Equal(t, a.noise(), b.noise())
	}

	// Jitter without an rng stays silent.
	c := newBuilderConfig(WithJitter(0.5))
	assert.Zero(t, c.noise())
}

// TestOptionPanics verifies that option constructors reject meaningless input.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { WithPrecision(0) })
	assert.Panics(t, func() { WithScale(-1) })
	assert.Panics(t, func() { WithRand(nil) })
	assert.Panics(t, func() { WithJitter(-0.1) })
	assert.Panics(t, func() { WithHullEpsilon(-1) })
	assert.NotPanics(t, func() { WithJitter(0) })
}
