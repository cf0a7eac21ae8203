// SPDX-License-Identifier: MIT

package factorgraph

import "errors"

// Sentinel errors for factor graph operations.
var (
	// ErrNoVariables indicates an empty cardinality vector.
	ErrNoVariables = errors.New("factorgraph: at least one variable is required")

	// ErrBadCardinality indicates a cardinality <= 0.
	ErrBadCardinality = errors.New("factorgraph: cardinality must be > 0")

	// ErrNilFactor indicates AddFactor(nil).
	ErrNilFactor = errors.New("factorgraph: factor is nil")

	// ErrNilDataSource indicates AddDataSource(nil).
	ErrNilDataSource = errors.New("factorgraph: data source is nil")

	// ErrVariableOutOfRange indicates a factor referencing a variable id outside
	// [0, NumVariables()).
	ErrVariableOutOfRange = errors.New("factorgraph: factor variable out of range")

	// ErrCardinalityMismatch indicates a factor whose cardinality for a variable
	// differs from the graph's.
	ErrCardinalityMismatch = errors.New("factorgraph: factor cardinality differs from graph")

	// ErrNotConnected indicates a structural query without a current
	// ConnectComponents run.
	ErrNotConnected = errors.New("factorgraph: ConnectComponents has not run since the last change")

	// ErrStateLength indicates a state whose length differs from NumVariables().
	ErrStateLength = errors.New("factorgraph: state length does not match variable count")

	// ErrStateOutOfRange indicates a state value outside [0, card).
	ErrStateOutOfRange = errors.New("factorgraph: state value out of range")

	// ErrNilObservation indicates a nil observation.
	ErrNilObservation = errors.New("factorgraph: observation is nil")

	// ErrNoFactors indicates an operation that needs at least one factor.
	ErrNoFactors = errors.New("factorgraph: graph has no factors")
)
