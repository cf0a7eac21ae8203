// SPDX-License-Identifier: MIT
// Package: lvfactor/factor
//
// linear.go - energies as a linear function of shared features: E = W·x.
//
// Contract:
//   - W has one row per joint state (Rows() == NumStates) and one column per
//     feature; the feature count is checked against the source at compute time.
//   - The weight matrix is copied on construction and on Clone.
//   - energies is guarded by mu, like Table.

package factor

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/lvfactor/matrix"
)

const (
	methodNewLinear    = "NewLinear"
	methodLinearEnergy = "Linear.ComputeEnergies"
)

// Linear is a factor whose energy table is the product of a weight matrix and
// a feature vector held by a VectorSource.
type Linear struct {
	scope

	weights *matrix.Dense
	source  *VectorSource

	mu       sync.RWMutex
	energies []float64
}

var _ Factor = (*Linear)(nil)

// NewLinear builds a linear factor.
//
// Errors: scope errors, ErrNilWeights, ErrNilSource, ErrTableSize (weights.Rows()
// differs from the joint state count).
func NewLinear(vars, cards []int, weights *matrix.Dense, src *VectorSource) (*Linear, error) {
	if weights == nil {
		return nil, fmt.Errorf("%s: %w", methodNewLinear, ErrNilWeights)
	}
	if src == nil {
		return nil, fmt.Errorf("%s: %w", methodNewLinear, ErrNilSource)
	}
	sc, err := newScope(vars, cards)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewLinear, err)
	}
	if weights.Rows() != sc.states {
		return nil, fmt.Errorf("%s: weight rows=%d, states=%d: %w",
			methodNewLinear, weights.Rows(), sc.states, ErrTableSize)
	}

	return &Linear{
		scope:   sc,
		weights: weights.Clone().(*matrix.Dense),
		source:  src,
	}, nil
}

// ComputeEnergies evaluates W·x against the current source values.
func (l *Linear) ComputeEnergies() error {
	y, err := l.weights.MulVec(l.source.Values())
	if err != nil {
		return fmt.Errorf("%s: source %q: %w", methodLinearEnergy, l.source.Name(), err)
	}
	l.mu.Lock()
	l.energies = y
	l.mu.Unlock()

	return nil
}

// Energy returns the energy of sub, given in scope order.
func (l *Linear) Energy(sub []int) (float64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.lookup(l.energies, sub)
}

// Weights returns a copy of the weight matrix.
func (l *Linear) Weights() *matrix.Dense {
	return l.weights.Clone().(*matrix.Dense)
}

// Source returns the feature source.
func (l *Linear) Source() DataSource {
	return l.source
}

// Clone returns a deep copy that shares the feature source.
func (l *Linear) Clone() Factor {
	l.mu.RLock()
	defer l.mu.RUnlock()

	c := &Linear{
		scope:   l.scope.clone(),
		weights: l.weights.Clone().(*matrix.Dense),
		source:  l.source,
	}
	if l.energies != nil {
		c.energies = append([]float64(nil), l.energies...)
	}

	return c
}
