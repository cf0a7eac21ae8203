// SPDX-License-Identifier: MIT

package factor

import "errors"

var (
	// ErrEmptyScope indicates a factor without variables.
	ErrEmptyScope = errors.New("factor: scope must contain at least one variable")

	// ErrScopeMismatch indicates len(vars) != len(cards).
	ErrScopeMismatch = errors.New("factor: variables and cardinalities differ in length")

	// ErrNegativeVariable indicates a variable id below zero.
	ErrNegativeVariable = errors.New("factor: variable id must be >= 0")

	// ErrDuplicateVariable indicates the same variable listed twice in one scope.
	ErrDuplicateVariable = errors.New("factor: duplicate variable in scope")

	// ErrBadCardinality indicates a cardinality <= 0.
	ErrBadCardinality = errors.New("factor: cardinality must be > 0")

	// ErrTooManyStates indicates a scope whose joint state count overflows int.
	ErrTooManyStates = errors.New("factor: joint state count overflows int")

	// ErrTableSize indicates an energy table (or weight matrix) whose size does
	// not match the number of joint states of the scope.
	ErrTableSize = errors.New("factor: table size does not match joint state count")

	// ErrNonFinite indicates a NaN or ±Inf energy or feature value.
	ErrNonFinite = errors.New("factor: NaN or Inf value")

	// ErrNilSource indicates a nil data source.
	ErrNilSource = errors.New("factor: data source is nil")

	// ErrNilWeights indicates a nil weight matrix for a Linear factor.
	ErrNilWeights = errors.New("factor: weight matrix is nil")

	// ErrEmptySource indicates a data source created without values.
	ErrEmptySource = errors.New("factor: data source has no values")

	// ErrAssignmentLength indicates a sub-assignment whose length differs from the scope.
	ErrAssignmentLength = errors.New("factor: assignment length does not match scope")

	// ErrStateOutOfRange indicates a state value outside [0, card).
	ErrStateOutOfRange = errors.New("factor: state out of range")

	// ErrIndexOutOfRange indicates a flat table index outside [0, states).
	ErrIndexOutOfRange = errors.New("factor: table index out of range")

	// ErrNotComputed indicates an energy lookup before ComputeEnergies.
	ErrNotComputed = errors.New("factor: energies not computed")
)
