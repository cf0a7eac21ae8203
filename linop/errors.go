// SPDX-License-Identifier: MIT

package linop

import "errors"

var (
	// ErrInvalidDimensions indicates non-positive row or column counts.
	ErrInvalidDimensions = errors.New("linop: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("linop: index out of range")

	// ErrDimensionMismatch indicates a vector whose length does not match.
	ErrDimensionMismatch = errors.New("linop: dimension mismatch")

	// ErrNilOperator indicates use of a nil (uninitialized) operator or matrix.
	ErrNilOperator = errors.New("linop: operator not initialized")
)
