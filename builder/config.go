// SPDX-License-Identifier: MIT
// Package: lvfactor/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • cardinality = 2            (binary variables)
//   • rng         = nil          (no randomness unless seeded)
//   • energyFn    = DefaultEnergyFn (all-zero tables)
//   • potts       = off
//   • sourced     = off          (explicit tables, no data sources)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Cardinality of every variable created by BuildGraph.
	cardinality int
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Per-entry energy generator for factor tables.
	energyFn EnergyFn

	// Potts coupling for pairwise factors: -beta when the pair agrees.
	potts     bool
	pottsBeta float64

	// Back each factor with its own VectorSource registered on the graph.
	sourced bool
}

const defaultCardinality = 2

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		cardinality: defaultCardinality,
		energyFn:    DefaultEnergyFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
