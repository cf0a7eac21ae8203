// SPDX-License-Identifier: MIT
// Package: lvfactor/linop
//
// sparse.go - row-sparse storage with sorted columns.
//
// Contract:
//   - Every row keeps its entries sorted by strictly increasing column.
//   - Public accessors return errors on bad indices; nothing panics.
//   - Clone never aliases row storage with the source.

package linop

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvfactor/matrix"
)

// SparseMatrix is a rows×cols matrix storing only explicit entries.
type SparseMatrix[T any] struct {
	rows    [][]Entry[T]
	numCols int
}

// NewSparseMatrix creates an empty rows×cols sparse matrix.
func NewSparseMatrix[T any](rows, cols int) (*SparseMatrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewSparseMatrix(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &SparseMatrix[T]{rows: make([][]Entry[T], rows), numCols: cols}, nil
}

// Rows returns the row count.
func (m *SparseMatrix[T]) Rows() int { return len(m.rows) }

// Cols returns the column count.
func (m *SparseMatrix[T]) Cols() int { return m.numCols }

// NNZ returns the number of stored entries.
func (m *SparseMatrix[T]) NNZ() int {
	n := 0
	for _, r := range m.rows {
		n += len(r)
	}

	return n
}

// Row returns a copy of the stored entries of row i.
func (m *SparseMatrix[T]) Row(i int) ([]Entry[T], error) {
	if i < 0 || i >= len(m.rows) {
		return nil, fmt.Errorf("Row(%d): %w", i, ErrOutOfRange)
	}

	return append([]Entry[T](nil), m.rows[i]...), nil
}

// At returns the element at (i, j); absent entries read as the zero value.
// Complexity: O(log nnz(row i)).
func (m *SparseMatrix[T]) At(i, j int) (T, error) {
	var zero T
	if err := m.check("At", i, j); err != nil {
		return zero, err
	}
	row := m.rows[i]
	k := sort.Search(len(row), func(k int) bool { return row[k].Col >= j })
	if k < len(row) && row[k].Col == j {
		return row[k].Value, nil
	}

	return zero, nil
}

// Set stores v at (i, j), replacing an existing entry or inserting a new one
// at its sorted position.
// Complexity: O(nnz(row i)).
func (m *SparseMatrix[T]) Set(i, j int, v T) error {
	if err := m.check("Set", i, j); err != nil {
		return err
	}
	row := m.rows[i]
	k := sort.Search(len(row), func(k int) bool { return row[k].Col >= j })
	if k < len(row) && row[k].Col == j {
		row[k].Value = v
		return nil
	}
	row = append(row, Entry[T]{})
	copy(row[k+1:], row[k:])
	row[k] = Entry[T]{Col: j, Value: v}
	m.rows[i] = row

	return nil
}

// diagSize is min(rows, cols).
func (m *SparseMatrix[T]) diagSize() int {
	if len(m.rows) < m.numCols {
		return len(m.rows)
	}

	return m.numCols
}

// Diagonal returns the main diagonal (length min(rows, cols)); missing
// entries read as the zero value.
func (m *SparseMatrix[T]) Diagonal() ([]T, error) {
	if m == nil {
		return nil, fmt.Errorf("Diagonal: %w", ErrNilOperator)
	}
	diag := make([]T, m.diagSize())
	for i := range diag {
		for _, e := range m.rows[i] {
			if e.Col == i {
				diag[i] = e.Value
				break
			}
		}
	}

	return diag, nil
}

// SetDiagonal overwrites the main diagonal. Existing diagonal entries are
// updated in place; missing ones are appended and the affected rows re-sorted
// once at the end.
//
// Errors: ErrNilOperator, ErrDimensionMismatch if len(diag) != min(rows, cols).
func (m *SparseMatrix[T]) SetDiagonal(diag []T) error {
	if m == nil {
		return fmt.Errorf("SetDiagonal: %w", ErrNilOperator)
	}
	if len(diag) != m.diagSize() {
		return fmt.Errorf("SetDiagonal: len=%d, want %d: %w", len(diag), m.diagSize(), ErrDimensionMismatch)
	}

	var unsorted []int
	for i, v := range diag {
		inserted := false
		for k := range m.rows[i] {
			if m.rows[i][k].Col == i {
				m.rows[i][k].Value = v
				inserted = true
				break
			}
		}
		if !inserted {
			m.rows[i] = append(m.rows[i], Entry[T]{Col: i, Value: v})
			unsorted = append(unsorted, i)
		}
	}
	for _, i := range unsorted {
		row := m.rows[i]
		sort.Slice(row, func(a, b int) bool { return row[a].Col < row[b].Col })
	}

	return nil
}

// Clone returns a deep copy.
func (m *SparseMatrix[T]) Clone() *SparseMatrix[T] {
	c := &SparseMatrix[T]{rows: make([][]Entry[T], len(m.rows)), numCols: m.numCols}
	for i, r := range m.rows {
		if len(r) > 0 {
			c.rows[i] = append([]Entry[T](nil), r...)
		}
	}

	return c
}

// check validates (i, j).
func (m *SparseMatrix[T]) check(method string, i, j int) error {
	if i < 0 || i >= len(m.rows) || j < 0 || j >= m.numCols {
		return fmt.Errorf("%s(%d,%d): %w", method, i, j, ErrOutOfRange)
	}

	return nil
}

// ToDense materializes a real-valued sparse matrix as a dense float64 matrix.
//
// Errors: ErrNilOperator for a nil input; matrix.ErrNaNInf if an entry does
// not convert to a finite float64.
func ToDense[T Real](m *SparseMatrix[T]) (*matrix.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("ToDense: %w", ErrNilOperator)
	}
	d, err := matrix.NewDense(len(m.rows), m.numCols)
	if err != nil {
		return nil, fmt.Errorf("ToDense: %w", err)
	}
	for i, r := range m.rows {
		for _, e := range r {
			if err = d.Set(i, e.Col, float64(e.Value)); err != nil {
				return nil, fmt.Errorf("ToDense: %w", err)
			}
		}
	}

	return d, nil
}
