// SPDX-License-Identifier: MIT
// Package: lvfactor/builder
//
// impl_chain.go - Chain(n) and Cycle(n).
//
// Contract:
//   • Chain: pairwise factors (i, i+1) for i = 0..n-2, in that order. A tree.
//   • Cycle: the Chain factors followed by (n-1, 0). Exactly one cycle.
//   • Both act on variables [0, n) of the target graph.
//
// Complexity: O(n) factors, each O(k²) table entries for cardinality k.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvfactor/factorgraph"
)

// Chain returns a Constructor emitting a chain of pairwise factors.
func Chain(n int) Constructor {
	return func(g *factorgraph.FactorGraph, cfg builderConfig) error {
		if n < MinChainVariables {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", MethodChain, n, MinChainVariables, ErrTooFewVariables)
		}
		if err := need(MethodChain, g, n); err != nil {
			return err
		}

		return chain(MethodChain, g, cfg, n)
	}
}

// Cycle returns a Constructor emitting a ring of pairwise factors.
func Cycle(n int) Constructor {
	return func(g *factorgraph.FactorGraph, cfg builderConfig) error {
		if n < MinCycleVariables {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", MethodCycle, n, MinCycleVariables, ErrTooFewVariables)
		}
		if err := need(MethodCycle, g, n); err != nil {
			return err
		}
		if err := chain(MethodCycle, g, cfg, n); err != nil {
			return err
		}

		// Close the ring.
		return emit(MethodCycle, g, cfg, n-1, 0)
	}
}

func chain(method string, g *factorgraph.FactorGraph, cfg builderConfig, n int) error {
	for i := 0; i+1 < n; i++ {
		if err := emit(method, g, cfg, i, i+1); err != nil {
			return err
		}
	}

	return nil
}
