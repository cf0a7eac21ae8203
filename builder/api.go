// SPDX-License-Identifier: MIT
// Package: lvfactor/builder
//
// api.go - public entry point and the shared factor emitter.
//
// Design contract:
//   - One orchestrator: BuildGraph(n, gopts, bopts, cons...). Creates g,
//     resolves cfg, runs cons in order, computes energies, connects components.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical
//     graphs and tables.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvfactor/factor"
	"github.com/katalvlaran/lvfactor/factorgraph"
)

// Constructor applies a deterministic factor-graph mutation using the
// resolved builderConfig. Constructors validate parameters before adding
// anything and return sentinel errors.
type Constructor func(g *factorgraph.FactorGraph, cfg builderConfig) error

// BuildGraph creates a factor graph over n variables of cardinality
// cfg.cardinality with graph options gopts, resolves the builder
// configuration from bopts, applies all constructors in order, then runs
// ComputeEnergies and ConnectComponents so the result is ready for queries.
//
// Errors:
//   - ErrTooFewVariables if n < 1.
//   - ErrConstructFailed for a nil constructor.
//   - Constructor and graph errors wrapped as "BuildGraph: %w".
//
// Complexity: Σ cost of each constructor + O(V + F + E) for the final passes.
func BuildGraph(n int, gopts []factorgraph.Option, bopts []BuilderOption, cons ...Constructor) (*factorgraph.FactorGraph, error) {
	if n < 1 {
		return nil, fmt.Errorf("BuildGraph: n=%d: %w", n, ErrTooFewVariables)
	}
	cfg := newBuilderConfig(bopts...)

	cards := make([]int, n)
	for i := range cards {
		cards[i] = cfg.cardinality
	}
	g, err := factorgraph.New(cards, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	if err = g.ComputeEnergies(); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	if err = g.ConnectComponents(); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// need verifies the graph has at least n variables.
func need(method string, g *factorgraph.FactorGraph, n int) error {
	if have := g.NumVariables(); n > have {
		return fmt.Errorf("%s: needs %d variables, graph has %d: %w", method, n, have, ErrTooFewVariables)
	}

	return nil
}

// emit adds one table factor over vars, sized from the graph's
// cardinalities and filled per cfg (Potts for pairs when enabled, energyFn
// otherwise). With cfg.sourced the table is backed by a fresh VectorSource.
func emit(method string, g *factorgraph.FactorGraph, cfg builderConfig, vars ...int) error {
	all := g.Cardinalities()
	cards := make([]int, len(vars))
	for i, v := range vars {
		cards[i] = all[v]
	}
	states, err := factor.NumStates(cards)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	energies := make([]float64, states)
	if cfg.potts && len(vars) == 2 {
		for idx := range energies {
			a, err := factor.Assignment(cards, idx)
			if err != nil {
				return fmt.Errorf("%s: %w", method, err)
			}
			if a[0] == a[1] {
				energies[idx] = -cfg.pottsBeta
			}
		}
	} else {
		for idx := range energies {
			energies[idx] = cfg.energyFn(cfg.rng)
		}
	}

	var f factor.Factor
	if cfg.sourced {
		src, err := factor.NewVectorSource(fmt.Sprintf("f%d", g.NumVectors()), energies)
		if err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
		if err = g.AddDataSource(src); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
		f, err = factor.NewSourcedTable(vars, cards, src)
		if err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	} else {
		f, err = factor.NewTable(vars, cards, energies)
		if err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}
	if err = g.AddFactor(f); err != nil {
		return fmt.Errorf("%s: %v: %w", method, err, ErrConstructFailed)
	}

	return nil
}
