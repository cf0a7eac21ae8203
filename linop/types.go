// SPDX-License-Identifier: MIT

package linop

// Real is the set of element types that convert losslessly enough to float64
// for dense export.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Scalar is the set of element types that support the arithmetic Apply needs.
type Scalar interface {
	Real | ~complex64 | ~complex128
}

// LinearOperator is anything that maps a vector of length Dimension() to a
// new vector.
type LinearOperator[T Scalar] interface {
	Dimension() int
	Apply(b []T) ([]T, error)
}

// Entry is one stored element of a sparse row.
type Entry[T any] struct {
	Col   int
	Value T
}
