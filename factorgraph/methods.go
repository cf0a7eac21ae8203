// SPDX-License-Identifier: MIT
// Package: lvfactor/factorgraph
//
// methods.go - build-phase mutation and plain accessors.
//
// Contract:
//   - AddFactor only appends and counts edges unless eager validation is on.
//   - Accessors return copies; callers cannot reach internal slices.

package factorgraph

import (
	"fmt"

	"github.com/katalvlaran/lvfactor/factor"
)

const (
	methodAddFactor = "AddFactor"
	methodAddSource = "AddDataSource"
	methodSetCards  = "SetCardinalities"
	methodValidate  = "Validate"
)

// AddFactor appends f and adds len(f.Variables()) to the edge count.
//
// Errors:
//   - ErrNilFactor for a nil factor.
//   - With WithEagerValidation: ErrVariableOutOfRange, ErrCardinalityMismatch.
//
// Complexity: O(k) for a factor over k variables.
func (g *FactorGraph) AddFactor(f factor.Factor) error {
	if f == nil {
		return fmt.Errorf("%s: %w", methodAddFactor, ErrNilFactor)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cfg.eager {
		if err := checkFactor(f, g.cards, true); err != nil {
			return fmt.Errorf("%s: factor %d: %w", methodAddFactor, len(g.factors), err)
		}
	}
	g.factors = append(g.factors, f)
	g.numEdges += len(f.Variables())

	return nil
}

// AddDataSource appends src. Sources are not checked against factors.
func (g *FactorGraph) AddDataSource(src factor.DataSource) error {
	if src == nil {
		return fmt.Errorf("%s: %w", methodAddSource, ErrNilDataSource)
	}

	g.mu.Lock()
	g.sources = append(g.sources, src)
	g.mu.Unlock()

	return nil
}

// Cardinalities returns a copy of the cardinality vector.
func (g *FactorGraph) Cardinalities() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]int(nil), g.cards...)
}

// SetCardinalities replaces the cardinality vector with a copy of cards.
// Existing factors are not re-validated. Changing the number of variables
// invalidates the last ConnectComponents run.
//
// Errors: ErrNoVariables, ErrBadCardinality.
func (g *FactorGraph) SetCardinalities(cards []int) error {
	if err := checkCardinalities(cards); err != nil {
		return fmt.Errorf("%s: %w", methodSetCards, err)
	}

	g.mu.Lock()
	g.cards = append([]int(nil), cards...)
	g.mu.Unlock()

	return nil
}

// NumVariables returns the number of variables.
func (g *FactorGraph) NumVariables() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.cards)
}

// NumVectors returns the number of factors.
func (g *FactorGraph) NumVectors() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.factors)
}

// NumEdges returns the number of (factor, variable) incidences added so far.
func (g *FactorGraph) NumEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.numEdges
}

// Factors returns the factors in insertion order. The slice is a copy; the
// factors themselves are shared.
func (g *FactorGraph) Factors() []factor.Factor {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]factor.Factor(nil), g.factors...)
}

// DataSources returns the data sources in insertion order. The slice is a
// copy; the sources themselves are shared.
func (g *FactorGraph) DataSources() []factor.DataSource {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]factor.DataSource(nil), g.sources...)
}

// Validate checks every factor against the current cardinality vector:
// variable ids must be in range and factor cardinalities must match the graph.
// It is the same check WithEagerValidation runs in AddFactor.
func (g *FactorGraph) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for i, f := range g.factors {
		if err := checkFactor(f, g.cards, true); err != nil {
			return fmt.Errorf("%s: factor %d: %w", methodValidate, i, err)
		}
	}

	return nil
}

// checkFactor verifies f's variable ids against cards and, when strict, that
// the factor's cardinalities agree with the graph.
func checkFactor(f factor.Factor, cards []int, strict bool) error {
	vars := f.Variables()
	for _, v := range vars {
		if v < 0 || v >= len(cards) {
			return fmt.Errorf("variable %d, have %d: %w", v, len(cards), ErrVariableOutOfRange)
		}
	}
	if !strict {
		return nil
	}
	fcards := f.Cardinalities()
	for i, v := range vars {
		if i >= len(fcards) || fcards[i] != cards[v] {
			return fmt.Errorf("variable %d: %w", v, ErrCardinalityMismatch)
		}
	}

	return nil
}
