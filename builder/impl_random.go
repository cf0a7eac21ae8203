// SPDX-License-Identifier: MIT
// Package: lvfactor/builder
//
// impl_random.go - RandomTree(n) and Unary().

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvfactor/factorgraph"
)

// RandomTree returns a Constructor attaching each variable i = 1..n-1 to a
// parent drawn uniformly from [0, i). The result is always a spanning tree
// over [0, n). Requires cfg.rng (ErrNeedRandSource otherwise).
// Complexity: O(n) factors. Deterministic per seed.
func RandomTree(n int) Constructor {
	return func(g *factorgraph.FactorGraph, cfg builderConfig) error {
		if n < MinRandomTreeVariables {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w",
				MethodRandomTree, n, MinRandomTreeVariables, ErrTooFewVariables)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomTree, ErrNeedRandSource)
		}
		if err := need(MethodRandomTree, g, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			parent := cfg.rng.Intn(i)
			if err := emit(MethodRandomTree, g, cfg, parent, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Unary returns a Constructor adding one single-variable factor per graph
// variable, in id order. Unary factors never create cycles.
// Complexity: O(V) factors.
func Unary() Constructor {
	return func(g *factorgraph.FactorGraph, cfg builderConfig) error {
		for v := 0; v < g.NumVariables(); v++ {
			if err := emit(MethodUnary, g, cfg, v); err != nil {
				return err
			}
		}

		return nil
	}
}
