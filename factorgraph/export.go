// SPDX-License-Identifier: MIT
// Package: lvfactor/factorgraph
//
// export.go - DOT text and incidence-operator views of the topology.

package factorgraph

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/lvfactor/linop"
)

// WriteDOT writes the bipartite graph in Graphviz DOT format: variables as
// ellipses labeled with their cardinality, factors as boxes, one undirected
// edge per incidence. Output is deterministic (insertion order).
func (g *FactorGraph) WriteDOT(w io.Writer) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bw := bufio.NewWriter(w)
	bw.WriteString("graph FactorGraph {\n")
	bw.WriteString("  node [fontsize=12];\n")
	bw.WriteString("\n")
	for v, c := range g.cards {
		fmt.Fprintf(bw, "  \"v%d\" [shape=ellipse, label=\"x%d (%d)\"];\n", v, v, c)
	}
	for i := range g.factors {
		fmt.Fprintf(bw, "  \"f%d\" [shape=box, style=filled, fillcolor=lightgrey, label=\"f%d\"];\n", i, i)
	}
	bw.WriteString("\n")
	for i, f := range g.factors {
		for _, v := range f.Variables() {
			fmt.Fprintf(bw, "  \"v%d\" -- \"f%d\";\n", v, i)
		}
	}
	bw.WriteString("}\n")

	return bw.Flush()
}

// Incidence returns the factor×variable incidence operator B with
// B[i][v] = 1 when factor i spans variable v. Applying it to a per-variable
// vector sums that vector over each factor's scope.
//
// Errors:
//   - ErrNoFactors for a graph without factors.
//   - ErrVariableOutOfRange if a factor references an unknown variable.
func (g *FactorGraph) Incidence() (*linop.Operator[float64], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.factors) == 0 {
		return nil, fmt.Errorf("Incidence: %w", ErrNoFactors)
	}
	op, err := linop.NewOperator[float64](len(g.factors), len(g.cards))
	if err != nil {
		return nil, fmt.Errorf("Incidence: %w", err)
	}
	for i, f := range g.factors {
		for _, v := range f.Variables() {
			if v < 0 || v >= len(g.cards) {
				return nil, fmt.Errorf("Incidence: factor %d: variable %d, have %d: %w",
					i, v, len(g.cards), ErrVariableOutOfRange)
			}
			if err = op.Set(i, v, 1); err != nil {
				return nil, fmt.Errorf("Incidence: %w", err)
			}
		}
	}

	return op, nil
}
