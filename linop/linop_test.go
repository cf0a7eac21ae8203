package linop_test

import (
	"testing"

	"github.com/katalvlaran/lvfactor/linop"
	"github.com/katalvlaran/lvfactor/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTridiag builds the 3×3 operator
//
//	[ 2 -1  0 ]
//	[-1  2 -1 ]
//	[ 0 -1  2 ]
func newTridiag(t *testing.T) *linop.Operator[float64] {
	t.Helper()
	op, err := linop.NewOperator[float64](3, 3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, op.Set(i, i, 2))
		if i > 0 {
			require.NoError(t, op.Set(i, i-1, -1))
			require.NoError(t, op.Set(i-1, i, -1))
		}
	}

	return op
}

// TestSparseMatrix_SetAt verifies sorted insertion, overwrite and zero reads.
func TestSparseMatrix_SetAt(t *testing.T) {
	m, err := linop.NewSparseMatrix[int](2, 4)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 3, 30))
	require.NoError(t, m.Set(0, 1, 10))
	require.NoError(t, m.Set(0, 2, 20))
	require.NoError(t, m.Set(0, 1, 11))

	row, err := m.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []linop.Entry[int]{{Col: 1, Value: 11}, {Col: 2, Value: 20}, {Col: 3, Value: 30}}, row)
	assert.Equal(t, 3, m.NNZ())

	v, err := m.At(1, 1)
	require.NoError(t, err)
	assert.Zero(t, v, "absent entry reads as zero")

	assert.ErrorIs(t, m.Set(2, 0, 1), linop.ErrOutOfRange)
	_, err = m.At(0, 4)
	assert.ErrorIs(t, err, linop.ErrOutOfRange)
	_, err = m.Row(-1)
	assert.ErrorIs(t, err, linop.ErrOutOfRange)

	_, err = linop.NewSparseMatrix[int](0, 1)
	assert.ErrorIs(t, err, linop.ErrInvalidDimensions)
}

// TestSparseMatrix_NonNumeric shows that storage works for any element type.
func TestSparseMatrix_NonNumeric(t *testing.T) {
	m, err := linop.NewSparseMatrix[bool](2, 2)
	require.NoError(t, err)
	require.NoError(t, m.SetDiagonal([]bool{true, false}))

	diag, err := m.Diagonal()
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, diag)
}

// TestDiagonal_GetSet covers update-in-place, insertion with re-sort and the
// rectangular diagonal length.
func TestDiagonal_GetSet(t *testing.T) {
	m, _ := linop.NewSparseMatrix[float64](3, 2)
	require.NoError(t, m.Set(0, 0, 5))
	require.NoError(t, m.Set(1, 0, 7)) // row 1 has no diagonal yet

	diag, err := m.Diagonal()
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 0}, diag, "diagonal length is min(rows, cols)")

	require.NoError(t, m.SetDiagonal([]float64{1, 9}))
	diag, _ = m.Diagonal()
	assert.Equal(t, []float64{1, 9}, diag)

	row, _ := m.Row(1)
	assert.Equal(t, []linop.Entry[float64]{{Col: 0, Value: 7}, {Col: 1, Value: 9}}, row, "row re-sorted after insertion")

	assert.ErrorIs(t, m.SetDiagonal([]float64{1}), linop.ErrDimensionMismatch)

	var nilM *linop.SparseMatrix[float64]
	_, err = nilM.Diagonal()
	assert.ErrorIs(t, err, linop.ErrNilOperator)
	assert.ErrorIs(t, nilM.SetDiagonal(nil), linop.ErrNilOperator)
}

// TestOperator_Apply verifies A·b and its validation.
func TestOperator_Apply(t *testing.T) {
	op := newTridiag(t)
	assert.Equal(t, 3, op.Dimension())

	y, err := op.Apply([]float64{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 1}, y)

	_, err = op.Apply([]float64{1, 1})
	assert.ErrorIs(t, err, linop.ErrDimensionMismatch)

	var nilOp *linop.Operator[float64]
	_, err = nilOp.Apply([]float64{1})
	assert.ErrorIs(t, err, linop.ErrNilOperator)
	assert.Zero(t, nilOp.Dimension())
}

// TestOperator_IntegerAndComplex verifies Apply for non-float scalars.
func TestOperator_IntegerAndComplex(t *testing.T) {
	ip, _ := linop.NewOperator[int32](2, 2)
	require.NoError(t, ip.SetDiagonal([]int32{3, 4}))
	y, err := ip.Apply([]int32{2, 5})
	require.NoError(t, err)
	assert.Equal(t, []int32{6, 20}, y)

	cp, _ := linop.NewOperator[complex128](1, 1)
	require.NoError(t, cp.Set(0, 0, 1i))
	z, err := cp.Apply([]complex128{1i})
	require.NoError(t, err)
	assert.Equal(t, []complex128{-1}, z)
}

// TestOperator_CloneIndependent verifies deep copy semantics.
func TestOperator_CloneIndependent(t *testing.T) {
	op := newTridiag(t)
	c := op.Clone()
	require.NoError(t, c.SetDiagonal([]float64{0, 0, 0}))

	d, _ := op.Diagonal()
	assert.Equal(t, []float64{2, 2, 2}, d)

	from, err := linop.OperatorFrom(op.Matrix())
	require.NoError(t, err)
	y, _ := from.Apply([]float64{1, 0, 0})
	assert.Equal(t, []float64{2, -1, 0}, y)

	_, err = linop.OperatorFrom[float64](nil)
	assert.ErrorIs(t, err, linop.ErrNilOperator)
}

// TestToDense verifies dense export of an integer matrix.
func TestToDense(t *testing.T) {
	m, _ := linop.NewSparseMatrix[int](2, 3)
	require.NoError(t, m.Set(0, 2, 4))
	require.NoError(t, m.Set(1, 0, -2))

	d, err := linop.ToDense(m)
	require.NoError(t, err)
	assert.Equal(t, "[0, 0, 4]\n[-2, 0, 0]\n", d.String())

	var dm matrix.Matrix = d
	assert.Equal(t, 3, dm.Cols())

	_, err = linop.ToDense[int](nil)
	assert.ErrorIs(t, err, linop.ErrNilOperator)
}
