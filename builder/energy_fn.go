// SPDX-License-Identifier: MIT
// Package: lvfactor/builder
//
// energy_fn.go - EnergyFn generators and their option shortcuts.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEnergy is the table entry produced when no EnergyFn is set, or when
// a random EnergyFn runs without an RNG.
const DefaultEnergy float64 = 0

// EnergyFn produces one table entry given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type EnergyFn func(rng *rand.Rand) float64

// DefaultEnergyFn always returns DefaultEnergy.
func DefaultEnergyFn(_ *rand.Rand) float64 {
	return DefaultEnergy
}

// ConstantEnergyFn returns an EnergyFn that always yields value.
func ConstantEnergyFn(value float64) EnergyFn {
	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformEnergyFn returns an EnergyFn sampling uniformly in [lo, hi).
// Panics if hi < lo. With a nil rng it yields DefaultEnergy.
func UniformEnergyFn(lo, hi float64) EnergyFn {
	if hi < lo {
		panic(fmt.Sprintf("UniformEnergyFn: require lo ≤ hi, got lo=%g, hi=%g", lo, hi))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEnergy
		}
		if hi == lo {
			return lo
		}

		return lo + rng.Float64()*(hi-lo)
	}
}

// NormalEnergyFn returns an EnergyFn sampling from N(mean, stddev).
// Panics if stddev < 0. With a nil rng it yields DefaultEnergy.
func NormalEnergyFn(mean, stddev float64) EnergyFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalEnergyFn: stddev must be ≥ 0, got %g", stddev))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEnergy
		}

		return rng.NormFloat64()*stddev + mean
	}
}

// WithUniformEnergy sets entries ∼ U[lo,hi) via UniformEnergyFn.
func WithUniformEnergy(lo, hi float64) BuilderOption {
	return WithEnergyFn(UniformEnergyFn(lo, hi))
}

// WithNormalEnergy sets entries ∼ N(mean,stddev) via NormalEnergyFn.
func WithNormalEnergy(mean, stddev float64) BuilderOption {
	return WithEnergyFn(NormalEnergyFn(mean, stddev))
}
