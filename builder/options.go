// SPDX-License-Identifier: MIT
// Package: lvfactor/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors and BuildGraph themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithCardinality sets the number of states of every variable (k >= 1).
// Panics on k < 1.
func WithCardinality(k int) BuilderOption {
	if k < 1 {
		panic(fmt.Sprintf("builder: WithCardinality(%d)", k))
	}
	return func(c *builderConfig) {
		c.cardinality = k
	}
}

// WithRand provides an explicit RNG for stochastic constructors and energies.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithEnergyFn overrides the per-entry energy generator. Panics on nil.
func WithEnergyFn(fn EnergyFn) BuilderOption {
	if fn == nil {
		panic("builder: WithEnergyFn(nil)")
	}
	return func(c *builderConfig) {
		c.energyFn = fn
	}
}

// WithPotts gives every pairwise factor a Potts table: -beta when both
// variables take the same state, 0 otherwise. Other arities keep using the
// energy generator. Panics on a non-finite beta.
func WithPotts(beta float64) BuilderOption {
	if math.IsNaN(beta) || math.IsInf(beta, 0) {
		panic(fmt.Sprintf("builder: WithPotts(%v)", beta))
	}
	return func(c *builderConfig) {
		c.potts, c.pottsBeta = true, beta
	}
}

// WithSourced backs every factor with its own factor.VectorSource, registered
// on the graph as a data source named "f<index>". Tables are then filled by
// ComputeEnergies instead of at construction.
func WithSourced() BuilderOption {
	return func(c *builderConfig) {
		c.sourced = true
	}
}
