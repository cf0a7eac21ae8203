// Package linop provides row-sparse matrices and the linear operators built on
// them.
//
// Two layers, split by capability rather than by run-time type checks:
//
//   - SparseMatrix[T any] stores any element type: rows of (column, value)
//     entries kept sorted by column. It supports element access, diagonal
//     extraction and diagonal replacement (missing diagonal entries are
//     inserted and the row re-sorted), and deep cloning.
//
//   - Operator[T Scalar] wraps a SparseMatrix and adds Apply (y = A·b).
//     Scalar admits integer, floating-point and complex element types only, so
//     an operator over bool or string is rejected by the compiler instead of
//     failing when Apply is called.
//
// ToDense materializes a real-valued sparse matrix as a matrix.Dense.
//
// The operator dimension is the column count: Apply requires len(b) equal to
// Dimension() and returns a vector with one entry per row.
//
// Errors:
//
//	ErrInvalidDimensions - non-positive row or column count.
//	ErrOutOfRange        - row or column index outside the matrix.
//	ErrDimensionMismatch - vector length does not match the operator.
//	ErrNilOperator       - a nil operator or matrix was used.
package linop
