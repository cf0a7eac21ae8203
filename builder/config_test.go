// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestConfigDefaults verifies the deterministic defaults.
func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Equal(t, defaultCardinality, cfg.cardinality)
	assert.Nil(t, cfg.rng)
	assert.Equal(t, DefaultEnergy, cfg.energyFn(nil))
	assert.False(t, cfg.potts)
	assert.False(t, cfg.sourced)
}

// TestConfigOverrides verifies last-wins option application.
func TestConfigOverrides(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithCardinality(3), WithCardinality(5), WithPotts(2), WithSourced())
	assert.Equal(t, 5, cfg.cardinality)
	assert.True(t, cfg.potts)
	assert.Equal(t, 2.0, cfg.pottsBeta)
	assert.True(t, cfg.sourced)

	r := rand.New(rand.NewSource(1))
	cfg = newBuilderConfig(WithSeed(9), WithRand(r))
	assert.Same(t, r, cfg.rng)
}

// TestRNGOptions verifies WithSeed reproducibility.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(123))
	b := newBuilderConfig(WithSeed(123))
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.rng.Int63(), b.rng.Int63())
	}
}

// TestOptionPanics verifies option constructors fail fast.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { WithCardinality(0) })
	assert.Panics(t, func() { WithRand(nil) })
	assert.Panics(t, func() { WithEnergyFn(nil) })
	assert.Panics(t, func() { WithPotts(math.NaN()) })
	assert.Panics(t, func() { WithPotts(math.Inf(-1)) })
	assert.Panics(t, func() { UniformEnergyFn(1, 0) })
	assert.Panics(t, func() { NormalEnergyFn(0, -1) })
}

// TestEnergyFns verifies distribution bounds and nil-rng fallbacks.
func TestEnergyFns(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3.5, ConstantEnergyFn(3.5)(nil))
	assert.Equal(t, DefaultEnergy, UniformEnergyFn(1, 2)(nil))
	assert.Equal(t, DefaultEnergy, NormalEnergyFn(5, 1)(nil))

	r := rand.New(rand.NewSource(3))
	assert.Equal(t, 4.0, UniformEnergyFn(4, 4)(r))
	u := UniformEnergyFn(-2, 3)
	for i := 0; i < 100; i++ {
		v := u(r)
		assert.GreaterOrEqual(t, v, -2.0)
		assert.Less(t, v, 3.0)
	}
	assert.Equal(t, 7.0, NormalEnergyFn(7, 0)(r))
}
