// SPDX-License-Identifier: MIT
// Package: lvfactor/factor
//
// types.go - the Factor/DataSource capabilities and the shared scope helper.

package factor

import (
	"fmt"
	"math"
)

// Factor is the capability a factor graph needs from a potential function.
type Factor interface {
	// Variables returns the ordered variable ids spanned by the factor.
	// The returned slice is a copy.
	Variables() []int

	// Cardinalities returns the cardinality of each variable in scope order.
	Cardinalities() []int

	// ComputeEnergies computes or refreshes the energy table, pulling from the
	// factor's data source when it has one.
	ComputeEnergies() error

	// Energy looks up the energy of a sub-assignment given in scope order.
	Energy(sub []int) (float64, error)

	// Clone returns a deep copy of the factor's own state. Data sources are
	// shared with the clone, never copied.
	Clone() Factor
}

// DataSource is an input shared by one or more factors. The graph only uses
// it for ownership bookkeeping.
type DataSource interface {
	Name() string
}

// scope is the variable/cardinality bookkeeping shared by every family.
type scope struct {
	vars   []int
	cards  []int
	states int
}

// newScope validates and copies a (vars, cards) pair.
//
// Errors: ErrEmptyScope, ErrScopeMismatch, ErrNegativeVariable,
// ErrDuplicateVariable, ErrBadCardinality, ErrTooManyStates.
func newScope(vars, cards []int) (scope, error) {
	if len(vars) == 0 {
		return scope{}, ErrEmptyScope
	}
	if len(vars) != len(cards) {
		return scope{}, fmt.Errorf("vars=%d cards=%d: %w", len(vars), len(cards), ErrScopeMismatch)
	}

	seen := make(map[int]struct{}, len(vars))
	for _, v := range vars {
		if v < 0 {
			return scope{}, fmt.Errorf("variable %d: %w", v, ErrNegativeVariable)
		}
		if _, dup := seen[v]; dup {
			return scope{}, fmt.Errorf("variable %d: %w", v, ErrDuplicateVariable)
		}
		seen[v] = struct{}{}
	}
	states, err := NumStates(cards)
	if err != nil {
		return scope{}, err
	}

	return scope{
		vars:   append([]int(nil), vars...),
		cards:  append([]int(nil), cards...),
		states: states,
	}, nil
}

// Variables returns a copy of the scope's variable ids.
func (s *scope) Variables() []int {
	return append([]int(nil), s.vars...)
}

// Cardinalities returns a copy of the scope's cardinalities.
func (s *scope) Cardinalities() []int {
	return append([]int(nil), s.cards...)
}

// NumStates returns the number of joint states of the scope.
func (s *scope) NumStates() int {
	return s.states
}

// clone deep-copies the scope.
func (s *scope) clone() scope {
	return scope{
		vars:   append([]int(nil), s.vars...),
		cards:  append([]int(nil), s.cards...),
		states: s.states,
	}
}

// lookup reads table[Index(sub)].
func (s *scope) lookup(table []float64, sub []int) (float64, error) {
	if table == nil {
		return 0, ErrNotComputed
	}
	idx, err := Index(s.cards, sub)
	if err != nil {
		return 0, err
	}
	if idx >= len(table) {
		return 0, fmt.Errorf("index %d, table %d: %w", idx, len(table), ErrTableSize)
	}

	return table[idx], nil
}

// checkFinite rejects NaN and ±Inf values.
func checkFinite(values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("value[%d]=%v: %w", i, v, ErrNonFinite)
		}
	}

	return nil
}
