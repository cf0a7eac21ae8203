// SPDX-License-Identifier: MIT
// Package: lvfactor/factor
//
// table.go - explicit energy tables, optionally sourced from a VectorSource.
//
// Contract:
//   - NewTable: table is usable immediately; ComputeEnergies is a no-op.
//   - NewSourcedTable: table is empty until ComputeEnergies copies the source;
//     the source length is checked at that point, not at construction.
//   - Clone deep-copies scope and energies and shares the source.
//   - energies is guarded by mu, so a table shared between graphs can be
//     recomputed through one while the other evaluates it.

package factor

import (
	"fmt"
	"sync"
)

const (
	methodNewTable    = "NewTable"
	methodSourced     = "NewSourcedTable"
	methodTableEnergy = "Table.ComputeEnergies"
)

// Table is a factor with an explicit energy per joint state.
type Table struct {
	scope

	mu       sync.RWMutex
	energies []float64     // nil until computed for sourced tables
	source   *VectorSource // optional; shared by reference
}

var _ Factor = (*Table)(nil)

// NewTable builds a table factor from explicit energies laid out first
// variable fastest. The energies are copied.
//
// Errors: scope errors, ErrTableSize, ErrNonFinite.
func NewTable(vars, cards []int, energies []float64) (*Table, error) {
	sc, err := newScope(vars, cards)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewTable, err)
	}
	if len(energies) != sc.states {
		return nil, fmt.Errorf("%s: len(energies)=%d, states=%d: %w",
			methodNewTable, len(energies), sc.states, ErrTableSize)
	}
	if err = checkFinite(energies); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewTable, err)
	}

	return &Table{scope: sc, energies: append([]float64(nil), energies...)}, nil
}

// NewSourcedTable builds a table factor whose energies are copied from src by
// ComputeEnergies.
//
// Errors: scope errors, ErrNilSource.
func NewSourcedTable(vars, cards []int, src *VectorSource) (*Table, error) {
	if src == nil {
		return nil, fmt.Errorf("%s: %w", methodSourced, ErrNilSource)
	}
	sc, err := newScope(vars, cards)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodSourced, err)
	}

	return &Table{scope: sc, source: src}, nil
}

// ComputeEnergies refreshes the table from the source. Without a source it
// does nothing.
func (t *Table) ComputeEnergies() error {
	if t.source == nil {
		return nil
	}
	values := t.source.Values()
	if len(values) != t.states {
		return fmt.Errorf("%s: source %q has %d values, states=%d: %w",
			methodTableEnergy, t.source.Name(), len(values), t.states, ErrTableSize)
	}
	t.mu.Lock()
	t.energies = values
	t.mu.Unlock()

	return nil
}

// Energy returns the energy of sub, given in scope order.
func (t *Table) Energy(sub []int) (float64, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.lookup(t.energies, sub)
}

// Energies returns a copy of the table, or nil if it has not been computed.
func (t *Table) Energies() []float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.energies == nil {
		return nil
	}

	return append([]float64(nil), t.energies...)
}

// Source returns the backing data source, or nil.
func (t *Table) Source() DataSource {
	if t.source == nil {
		return nil
	}

	return t.source
}

// Clone returns a deep copy that shares the data source.
func (t *Table) Clone() Factor {
	t.mu.RLock()
	defer t.mu.RUnlock()

	c := &Table{scope: t.scope.clone(), source: t.source}
	if t.energies != nil {
		c.energies = append([]float64(nil), t.energies...)
	}

	return c
}
