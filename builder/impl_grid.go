// SPDX-License-Identifier: MIT
// Package: lvfactor/builder
//
// impl_grid.go - Grid(rows, cols).
//
// Canonical model:
//   • 2D orthogonal lattice with 4-neighborhood; cell (r,c) is variable r*cols+c.
//   • For each cell in row-major order emit Right (r,c+1) then Bottom (r+1,c).
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVariables); cyclic once both ≥ 2.
//
// Complexity: O(rows*cols) factors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvfactor/factorgraph"
)

// Grid returns a Constructor that builds a rows×cols pairwise lattice.
func Grid(rows, cols int) Constructor {
	return func(g *factorgraph.FactorGraph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVariables)
		}
		if err := need(MethodGrid, g, rows*cols); err != nil {
			return err
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := emit(MethodGrid, g, cfg, u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := emit(MethodGrid, g, cfg, u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
