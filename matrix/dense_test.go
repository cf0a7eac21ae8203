package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvfactor/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_Validation covers the shape contract of NewDense.
func TestNewDense_Validation(t *testing.T) {
	for _, tc := range []struct {
		name       string
		rows, cols int
	}{
		{"zero rows", 0, 3},
		{"zero cols", 2, 0},
		{"negative", -1, 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.NewDense(tc.rows, tc.cols)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
		})
	}

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Zero(t, v)
}

// TestDense_AtSet verifies bounds checks and the finite-value policy.
func TestDense_AtSet(t *testing.T) {
	m, _ := matrix.NewDense(2, 2)
	require.NoError(t, m.Set(0, 1, 4.5))

	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	assert.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

// TestNewDenseFrom covers copying, ragged rows and non-finite input.
func TestNewDenseFrom(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	m, err := matrix.NewDenseFrom(src)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 2, m.Cols())

	// Input is copied: mutating the source does not affect m.
	src[0][0] = 100
	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v)

	_, err = matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.NewDenseFrom(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFrom([][]float64{{math.Inf(1)}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestDense_MulVec verifies y = A·x and the dimension check.
func TestDense_MulVec(t *testing.T) {
	a, _ := matrix.NewDenseFrom([][]float64{
		{1, 0, 2},
		{0, 3, -1},
	})
	y, err := a.MulVec([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 3}, y)

	_, err = a.MulVec([]float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestDense_CloneRowString verifies deep copy, row extraction and formatting.
func TestDense_CloneRowString(t *testing.T) {
	a, _ := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
	c := a.Clone()
	require.NoError(t, c.Set(0, 0, 9))

	v, _ := a.At(0, 0)
	assert.Equal(t, 1.0, v, "clone must not alias the original")

	row, err := a.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, row)
	_, err = a.Row(2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	assert.Equal(t, "[1, 2]\n[3, 4]\n", a.String())
}
