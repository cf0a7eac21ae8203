// SPDX-License-Identifier: MIT
// Package: lvfactor/factorgraph
//
// connect.go - union-find connectivity analysis and structural queries.
//
// Contract:
//   - ConnectComponents rebuilds the disjoint set from scratch on every call.
//   - Queries answer only while the last run is fresh; otherwise ErrNotConnected.
//
// Complexity:
//   - ConnectComponents: O((V + F + E)·α(V + F)) for V variables, F factors,
//     E incidences.
//   - IsAcyclic / IsConnected / IsTree: O(1) (flags cached by the last run).

package factorgraph

import (
	"fmt"

	"github.com/katalvlaran/lvfactor/dsu"
)

const methodConnect = "ConnectComponents"

// ConnectComponents runs union-find over the bipartite variable/factor graph,
// records whether any incidence closed a cycle, and whether every node ended
// up in one set. Call it after the last AddFactor and before structural
// queries.
//
// Steps:
//  1. Allocate a DisjointSet over V + F node ids.
//  2. For factor i and each variable v it spans: Union(v, V+i); a "same set"
//     result marks a cycle.
//  3. Connected ⇔ the set count dropped to exactly one.
//
// Errors:
//   - ErrVariableOutOfRange if a factor references a variable id outside [0, V).
//     The previous structure, if any, is discarded in that case.
func (g *FactorGraph) ConnectComponents() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	// Invalidate first so a failed run never leaves old answers behind.
	g.built, g.dset, g.hasCycle, g.connected = false, nil, false, false

	numVars := len(g.cards)
	d, err := dsu.New(numVars + len(g.factors))
	if err != nil {
		return fmt.Errorf("%s: %w", methodConnect, err)
	}

	hasCycle := false
	for i, f := range g.factors {
		node := numVars + i
		for _, v := range f.Variables() {
			if v < 0 || v >= numVars {
				return fmt.Errorf("%s: factor %d: variable %d, have %d: %w",
					methodConnect, i, v, numVars, ErrVariableOutOfRange)
			}
			same, err := d.Union(v, node)
			if err != nil {
				return fmt.Errorf("%s: %w", methodConnect, err)
			}
			if same {
				hasCycle = true
			}
		}
	}

	g.dset = d
	g.hasCycle = hasCycle
	g.connected = d.Count() == 1
	g.built = true
	g.builtVars = numVars
	g.builtFacs = len(g.factors)

	return nil
}

// fresh reports whether the last ConnectComponents run still describes the
// graph. Caller must hold mu.
func (g *FactorGraph) fresh(method string) error {
	if !g.built || g.builtVars != len(g.cards) || g.builtFacs != len(g.factors) {
		return fmt.Errorf("%s: %w", method, ErrNotConnected)
	}

	return nil
}

// HasCycle reports whether some incidence closed a cycle.
func (g *FactorGraph) HasCycle() (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if err := g.fresh("HasCycle"); err != nil {
		return false, err
	}

	return g.hasCycle, nil
}

// IsAcyclic reports whether the factor graph has no cycle.
func (g *FactorGraph) IsAcyclic() (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if err := g.fresh("IsAcyclic"); err != nil {
		return false, err
	}

	return !g.hasCycle, nil
}

// IsConnected reports whether every variable and factor node lies in one
// component.
func (g *FactorGraph) IsConnected() (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if err := g.fresh("IsConnected"); err != nil {
		return false, err
	}

	return g.connected, nil
}

// IsTree reports whether the graph is both connected and acyclic.
func (g *FactorGraph) IsTree() (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if err := g.fresh("IsTree"); err != nil {
		return false, err
	}

	return g.connected && !g.hasCycle, nil
}

// DisjointSet returns a copy of the disjoint set built by the last
// ConnectComponents run. Node ids [0, V) are variables, V+i is factor i.
func (g *FactorGraph) DisjointSet() (*dsu.DisjointSet, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if err := g.fresh("DisjointSet"); err != nil {
		return nil, err
	}

	return g.dset.Clone(), nil
}

// Components groups the variable ids by connected component. Components are
// ordered by their smallest variable id; factor nodes are omitted.
func (g *FactorGraph) Components() ([][]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if err := g.fresh("Components"); err != nil {
		return nil, err
	}

	// Work on a copy: Find compresses paths and we only hold the read lock.
	numVars := len(g.cards)
	var out [][]int
	for _, comp := range g.dset.Clone().Components() {
		// Components are ascending, so variables come first in each.
		k := 0
		for k < len(comp) && comp[k] < numVars {
			k++
		}
		if k > 0 {
			out = append(out, comp[:k])
		}
	}

	return out, nil
}
