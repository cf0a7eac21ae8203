// SPDX-License-Identifier: MIT

package linop

import "fmt"

// Operator is a sparse linear operator A with y = A·b.
type Operator[T Scalar] struct {
	SparseMatrix[T]
}

var _ LinearOperator[float64] = (*Operator[float64])(nil)

// NewOperator creates an empty rows×cols operator.
func NewOperator[T Scalar](rows, cols int) (*Operator[T], error) {
	m, err := NewSparseMatrix[T](rows, cols)
	if err != nil {
		return nil, err
	}

	return &Operator[T]{SparseMatrix: *m}, nil
}

// OperatorFrom wraps a deep copy of m.
func OperatorFrom[T Scalar](m *SparseMatrix[T]) (*Operator[T], error) {
	if m == nil {
		return nil, fmt.Errorf("OperatorFrom: %w", ErrNilOperator)
	}

	return &Operator[T]{SparseMatrix: *m.Clone()}, nil
}

// Dimension returns the length Apply expects (the column count).
func (op *Operator[T]) Dimension() int {
	if op == nil {
		return 0
	}

	return op.numCols
}

// Matrix returns a deep copy of the underlying sparse matrix.
func (op *Operator[T]) Matrix() *SparseMatrix[T] {
	return op.SparseMatrix.Clone()
}

// Apply returns A·b.
//
// Errors: ErrNilOperator, ErrDimensionMismatch if len(b) != Dimension().
// Complexity: O(nnz).
func (op *Operator[T]) Apply(b []T) ([]T, error) {
	if op == nil {
		return nil, fmt.Errorf("Apply: %w", ErrNilOperator)
	}
	if len(b) != op.numCols {
		return nil, fmt.Errorf("Apply: len(b)=%d, dimension=%d: %w", len(b), op.numCols, ErrDimensionMismatch)
	}

	y := make([]T, len(op.rows))
	for i, row := range op.rows {
		var sum T
		for _, e := range row {
			sum += e.Value * b[e.Col]
		}
		y[i] = sum
	}

	return y, nil
}

// Clone returns a deep copy of the operator.
func (op *Operator[T]) Clone() *Operator[T] {
	return &Operator[T]{SparseMatrix: *op.SparseMatrix.Clone()}
}
