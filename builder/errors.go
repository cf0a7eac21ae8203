// SPDX-License-Identifier: MIT
// Package: lvfactor/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach method context with %w.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVariables indicates a size parameter (n, rows, cols) below the
// constructor's minimum, or a topology that needs more variables than the
// graph has.
var ErrTooFewVariables = errors.New("builder: too few variables")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the builder could not finish a graph, e.g. a
// nil constructor or a factor the graph rejected.
var ErrConstructFailed = errors.New("builder: construction failed")
