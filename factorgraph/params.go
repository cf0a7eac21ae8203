// SPDX-License-Identifier: MIT
// Package: lvfactor/factorgraph
//
// params.go - named parameter registry and structural summary.

package factorgraph

import "fmt"

// Parameter is one named, described value exposed by a graph.
type Parameter struct {
	Name        string
	Description string
	Value       any
}

// Parameters lists the graph's registered state in a fixed order:
// cardinalities, factors, data_sources, dset, has_cycle, num_edges.
// Values are copies; dset is nil and has_cycle false without a fresh
// ConnectComponents run.
func (g *FactorGraph) Parameters() []Parameter {
	g.mu.RLock()
	defer g.mu.RUnlock()

	hasCycle := false
	dset := any(nil)
	if g.fresh("Parameters") == nil {
		hasCycle = g.hasCycle
		dset = g.dset.Clone()
	}

	return []Parameter{
		{Name: "cardinalities", Description: "Cardinalities", Value: append([]int(nil), g.cards...)},
		{Name: "factors", Description: "Factors", Value: len(g.factors)},
		{Name: "data_sources", Description: "Factor data sources", Value: len(g.sources)},
		{Name: "dset", Description: "Disjoint set", Value: dset},
		{Name: "has_cycle", Description: "Whether the graph has a cycle", Value: hasCycle},
		{Name: "num_edges", Description: "Number of edges", Value: g.numEdges},
	}
}

// Summary is a point-in-time snapshot of a graph's counts and structure.
// The structural fields are meaningful only when Analyzed is true.
type Summary struct {
	Variables   int
	Factors     int
	DataSources int
	Edges       int
	States      float64 // product of cardinalities, as float64 to avoid overflow

	Analyzed   bool // a fresh ConnectComponents run backs the fields below
	Components int
	Acyclic    bool
	Connected  bool
	Tree       bool
}

// Summary returns counts and, when available, structural flags.
func (g *FactorGraph) Summary() Summary {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := Summary{
		Variables:   len(g.cards),
		Factors:     len(g.factors),
		DataSources: len(g.sources),
		Edges:       g.numEdges,
		States:      1,
	}
	for _, c := range g.cards {
		s.States *= float64(c)
	}
	if g.fresh("Summary") == nil {
		s.Analyzed = true
		s.Components = g.dset.Count()
		s.Acyclic = !g.hasCycle
		s.Connected = g.connected
		s.Tree = g.connected && !g.hasCycle
	}

	return s
}

// String renders a one-line summary.
func (s Summary) String() string {
	if !s.Analyzed {
		return fmt.Sprintf("variables=%d factors=%d sources=%d edges=%d (not analyzed)",
			s.Variables, s.Factors, s.DataSources, s.Edges)
	}

	return fmt.Sprintf("variables=%d factors=%d sources=%d edges=%d components=%d connected=%t acyclic=%t tree=%t",
		s.Variables, s.Factors, s.DataSources, s.Edges, s.Components, s.Connected, s.Acyclic, s.Tree)
}
