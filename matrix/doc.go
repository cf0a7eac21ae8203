// Package matrix provides the dense, row-major float64 matrix used to hold
// factor parameters and to materialize sparse operators.
//
// The package is intentionally small:
//
//   - Matrix: the read/write interface (Rows, Cols, At, Set, Clone).
//   - Dense:  a flat row-major buffer (offset = i*cols + j) with bounds-checked
//     accessors that return errors instead of panicking.
//   - MulVec: y = A·x, used by factor.Linear to turn a feature vector into an
//     energy table (one row of weights per joint state).
//
// Numeric policy: Set and NewDenseFrom reject NaN and ±Inf so that energy
// tables built from these matrices stay finite.
//
// Errors:
//
//	ErrInvalidDimensions - non-positive row or column count.
//	ErrOutOfRange        - row or column index outside the matrix.
//	ErrDimensionMismatch - operand lengths do not agree (MulVec, NewDenseFrom).
//	ErrNaNInf            - a NaN or ±Inf value was supplied.
package matrix
