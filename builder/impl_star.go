// SPDX-License-Identifier: MIT
// Package: lvfactor/builder
//
// impl_star.go - Star(n) and Complete(n).
//
// Contract:
//   • Star: factors (0, i) for i = 1..n-1; variable 0 is the hub. A tree.
//   • Complete: factors (i, j) for every i < j, lexicographic order.
//     Cyclic for n ≥ 3.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvfactor/factorgraph"
)

// Star returns a Constructor joining variable 0 to each of 1..n-1.
// Complexity: O(n) factors.
func Star(n int) Constructor {
	return func(g *factorgraph.FactorGraph, cfg builderConfig) error {
		if n < MinStarVariables {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", MethodStar, n, MinStarVariables, ErrTooFewVariables)
		}
		if err := need(MethodStar, g, n); err != nil {
			return err
		}
		for leaf := 1; leaf < n; leaf++ {
			if err := emit(MethodStar, g, cfg, 0, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor with one pairwise factor per pair.
// Complexity: O(n²) factors.
func Complete(n int) Constructor {
	return func(g *factorgraph.FactorGraph, cfg builderConfig) error {
		if n < MinCompleteVariables {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", MethodComplete, n, MinCompleteVariables, ErrTooFewVariables)
		}
		if err := need(MethodComplete, g, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := emit(MethodComplete, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
