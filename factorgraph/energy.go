// SPDX-License-Identifier: MIT
// Package: lvfactor/factorgraph
//
// energy.go - energy table computation and assignment evaluation.
//
// Contract:
//   - ComputeEnergies holds the write lock; factor caches change only here.
//   - EvaluateEnergy does not need ConnectComponents, but it range-checks
//     every variable id it touches.
//
// Complexity:
//   - EvaluateEnergy: O(V + E) for V variables and E incidences.

package factorgraph

import (
	"fmt"
)

const (
	methodCompute     = "ComputeEnergies"
	methodEvaluate    = "EvaluateEnergy"
	methodEvaluateObs = "EvaluateObservation"
)

// Decoder yields a full variable assignment, one state per variable.
type Decoder interface {
	Decode() []int
}

// Observation is a labeled assignment with optional per-variable loss weights.
// The weights are carried for training code; energy evaluation ignores them.
type Observation struct {
	states      []int
	lossWeights []float64
}

var _ Decoder = (*Observation)(nil)

// NewObservation copies states and lossWeights. A nil lossWeights means
// uniform weights.
func NewObservation(states []int, lossWeights []float64) *Observation {
	o := &Observation{states: append([]int(nil), states...)}
	if lossWeights != nil {
		o.lossWeights = append([]float64(nil), lossWeights...)
	}

	return o
}

// Decode returns a copy of the observed states.
func (o *Observation) Decode() []int {
	if o == nil {
		return nil
	}

	return append([]int(nil), o.states...)
}

// LossWeights returns a copy of the per-variable loss weights, or nil.
func (o *Observation) LossWeights() []float64 {
	if o == nil || o.lossWeights == nil {
		return nil
	}

	return append([]float64(nil), o.lossWeights...)
}

// ComputeEnergies asks every factor, in insertion order, to compute or refresh
// its energy table. The first failure stops the pass and is returned wrapped
// with the factor index; earlier factors keep their refreshed tables.
func (g *FactorGraph) ComputeEnergies() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i, f := range g.factors {
		if err := f.ComputeEnergies(); err != nil {
			return fmt.Errorf("%s: factor %d: %w", methodCompute, i, err)
		}
	}

	return nil
}

// EvaluateEnergy returns the total energy of state, the sum over factors of
// the energy of the sub-assignment each factor spans.
//
// Errors:
//   - ErrStateLength if len(state) != NumVariables().
//   - ErrStateOutOfRange if state[v] is outside [0, cards[v]).
//   - ErrVariableOutOfRange if a factor references an unknown variable.
//   - Factor lookup errors (e.g. factor.ErrNotComputed), wrapped with the
//     factor index.
func (g *FactorGraph) EvaluateEnergy(state []int) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(state) != len(g.cards) {
		return 0, fmt.Errorf("%s: len(state)=%d, variables=%d: %w",
			methodEvaluate, len(state), len(g.cards), ErrStateLength)
	}
	for v, s := range state {
		if s < 0 || s >= g.cards[v] {
			return 0, fmt.Errorf("%s: state[%d]=%d, cardinality %d: %w",
				methodEvaluate, v, s, g.cards[v], ErrStateOutOfRange)
		}
	}

	var total float64
	var sub []int
	for i, f := range g.factors {
		vars := f.Variables()
		sub = sub[:0]
		for _, v := range vars {
			if v < 0 || v >= len(state) {
				return 0, fmt.Errorf("%s: factor %d: variable %d, have %d: %w",
					methodEvaluate, i, v, len(state), ErrVariableOutOfRange)
			}
			sub = append(sub, state[v])
		}
		e, err := f.Energy(sub)
		if err != nil {
			return 0, fmt.Errorf("%s: factor %d: %w", methodEvaluate, i, err)
		}
		total += e
	}

	return total, nil
}

// EvaluateObservation decodes obs and evaluates the resulting assignment.
func (g *FactorGraph) EvaluateObservation(obs Decoder) (float64, error) {
	if obs == nil {
		return 0, fmt.Errorf("%s: %w", methodEvaluateObs, ErrNilObservation)
	}
	e, err := g.EvaluateEnergy(obs.Decode())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodEvaluateObs, err)
	}

	return e, nil
}
