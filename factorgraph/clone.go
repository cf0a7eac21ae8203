// SPDX-License-Identifier: MIT
// Package: lvfactor/factorgraph
//
// clone.go - Duplicate and its sharing options.

package factorgraph

import "github.com/katalvlaran/lvfactor/factor"

// DuplicateOption configures Duplicate.
type DuplicateOption func(*dupConfig)

type dupConfig struct {
	deepFactors bool
}

// WithDeepFactors makes Duplicate clone every factor with Factor.Clone. The
// clones keep referencing the original data sources.
func WithDeepFactors() DuplicateOption {
	return func(c *dupConfig) { c.deepFactors = true }
}

// Duplicate returns a new graph with its own cardinality vector and factor
// and data-source slices.
//
// Sharing:
//   - Data sources are always shared by reference.
//   - Factors are shared unless WithDeepFactors is given. Shared factors
//     guard their energy tables themselves, so ComputeEnergies on one graph
//     may run while the other evaluates energies.
//   - The disjoint set and cycle flag are not carried; call ConnectComponents
//     on the duplicate before structural queries.
//   - NumEdges is recounted from the carried factors.
//
// Validation options of the receiver carry over. Panics on a nil option.
func (g *FactorGraph) Duplicate(opts ...DuplicateOption) *FactorGraph {
	var dc dupConfig
	for _, opt := range opts {
		if opt == nil {
			panic("factorgraph: nil DuplicateOption")
		}
		opt(&dc)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	d := &FactorGraph{
		cfg:     g.cfg,
		cards:   append([]int(nil), g.cards...),
		factors: make([]factor.Factor, len(g.factors)),
		sources: append([]factor.DataSource(nil), g.sources...),
	}
	for i, f := range g.factors {
		if dc.deepFactors {
			f = f.Clone()
		}
		d.factors[i] = f
		d.numEdges += len(f.Variables())
	}

	return d
}
