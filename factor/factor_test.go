package factor_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvfactor/factor"
	"github.com/katalvlaran/lvfactor/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIndex_FirstVariableFastest checks the mixed-radix layout on a 2×3 scope.
func TestIndex_FirstVariableFastest(t *testing.T) {
	cards := []int{2, 3}
	want := map[[2]int]int{
		{0, 0}: 0, {1, 0}: 1,
		{0, 1}: 2, {1, 1}: 3,
		{0, 2}: 4, {1, 2}: 5,
	}
	for sub, idx := range want {
		got, err := factor.Index(cards, sub[:])
		require.NoError(t, err)
		assert.Equal(t, idx, got, "sub=%v", sub)

		back, err := factor.Assignment(cards, idx)
		require.NoError(t, err)
		assert.Equal(t, sub[:], back)
	}
}

// TestIndex_Errors covers length and range violations.
func TestIndex_Errors(t *testing.T) {
	_, err := factor.Index([]int{2, 2}, []int{0})
	assert.ErrorIs(t, err, factor.ErrAssignmentLength)
	_, err = factor.Index([]int{2, 2}, []int{0, 2})
	assert.ErrorIs(t, err, factor.ErrStateOutOfRange)
	_, err = factor.Index([]int{2}, []int{-1})
	assert.ErrorIs(t, err, factor.ErrStateOutOfRange)

	_, err = factor.Assignment([]int{2, 2}, 4)
	assert.ErrorIs(t, err, factor.ErrIndexOutOfRange)
	_, err = factor.Assignment([]int{2, 0}, 0)
	assert.ErrorIs(t, err, factor.ErrBadCardinality)

	n, err := factor.NumStates([]int{2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 24, n)
	_, err = factor.NumStates(nil)
	assert.ErrorIs(t, err, factor.ErrEmptyScope)
}

// TestNumStates_Overflow rejects scopes whose joint state count does not fit
// in an int instead of wrapping around.
func TestNumStates_Overflow(t *testing.T) {
	huge := []int{3, math.MaxInt/3 + 1}
	_, err := factor.NumStates(huge)
	assert.ErrorIs(t, err, factor.ErrTooManyStates)

	_, err = factor.NewTable([]int{0, 1}, huge, []float64{1, 2})
	assert.ErrorIs(t, err, factor.ErrTooManyStates)

	_, err = factor.Index(huge, []int{0, 1})
	assert.ErrorIs(t, err, factor.ErrTooManyStates)

	binary := make([]int, 64)
	vars := make([]int, 64)
	for i := range binary {
		binary[i], vars[i] = 2, i
	}
	_, err = factor.NumStates(binary)
	assert.ErrorIs(t, err, factor.ErrTooManyStates)
	_, err = factor.NewTable(vars, binary, nil)
	assert.ErrorIs(t, err, factor.ErrTooManyStates)

	n, err := factor.NumStates(binary[:62])
	require.NoError(t, err)
	assert.Equal(t, 1<<62, n)
}

// TestNewTable_Validation covers scope and table validation.
func TestNewTable_Validation(t *testing.T) {
	for _, tc := range []struct {
		name     string
		vars     []int
		cards    []int
		energies []float64
		want     error
	}{
		{"empty scope", nil, nil, nil, factor.ErrEmptyScope},
		{"length mismatch", []int{0, 1}, []int{2}, []float64{0, 0}, factor.ErrScopeMismatch},
		{"negative variable", []int{-1}, []int{2}, []float64{0, 0}, factor.ErrNegativeVariable},
		{"duplicate variable", []int{1, 1}, []int{2, 2}, make([]float64, 4), factor.ErrDuplicateVariable},
		{"zero cardinality", []int{0}, []int{0}, nil, factor.ErrBadCardinality},
		{"wrong table size", []int{0, 1}, []int{2, 2}, []float64{1, 2, 3}, factor.ErrTableSize},
	} {
		t.Run(tc.name, func(t *testing.T) {
			f, err := factor.NewTable(tc.vars, tc.cards, tc.energies)
			assert.Nil(t, f)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestTable_EnergyAndCopies verifies lookups and defensive copies.
func TestTable_EnergyAndCopies(t *testing.T) {
	vars := []int{3, 5}
	energies := []float64{0.5, 1.5, 2.5, 3.5}
	f, err := factor.NewTable(vars, []int{2, 2}, energies)
	require.NoError(t, err)

	// Mutating inputs after construction must not change the factor.
	vars[0] = 99
	energies[0] = -1

	assert.Equal(t, []int{3, 5}, f.Variables())
	assert.Equal(t, []int{2, 2}, f.Cardinalities())
	assert.Equal(t, 4, f.NumStates())
	require.NoError(t, f.ComputeEnergies(), "explicit table: compute is a no-op")

	e, err := f.Energy([]int{1, 1})
	require.NoError(t, err)
	assert.Equal(t, 3.5, e)
	e, err = f.Energy([]int{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0.5, e)

	_, err = f.Energy([]int{2, 0})
	assert.ErrorIs(t, err, factor.ErrStateOutOfRange)
	assert.Nil(t, f.Source())
}

// TestSourcedTable_Lifecycle verifies lazy computation from a shared source.
func TestSourcedTable_Lifecycle(t *testing.T) {
	src, err := factor.NewVectorSource("pair", []float64{1, 2, 3, 4})
	require.NoError(t, err)

	f, err := factor.NewSourcedTable([]int{0, 1}, []int{2, 2}, src)
	require.NoError(t, err)
	assert.Nil(t, f.Energies())

	_, err = f.Energy([]int{0, 0})
	assert.ErrorIs(t, err, factor.ErrNotComputed)

	require.NoError(t, f.ComputeEnergies())
	e, _ := f.Energy([]int{1, 0})
	assert.Equal(t, 2.0, e)

	// The source changes; the cached table only follows after recompute.
	require.NoError(t, src.SetValues([]float64{10, 20, 30, 40}))
	e, _ = f.Energy([]int{1, 0})
	assert.Equal(t, 2.0, e)
	require.NoError(t, f.ComputeEnergies())
	e, _ = f.Energy([]int{1, 0})
	assert.Equal(t, 20.0, e)

	// A source of the wrong size fails at compute time.
	require.NoError(t, src.SetValues([]float64{1, 2}))
	assert.ErrorIs(t, f.ComputeEnergies(), factor.ErrTableSize)

	_, err = factor.NewSourcedTable([]int{0}, []int{2}, nil)
	assert.ErrorIs(t, err, factor.ErrNilSource)
}

// TestTable_CloneSharesSource verifies the clone policy.
func TestTable_CloneSharesSource(t *testing.T) {
	src, _ := factor.NewVectorSource("s", []float64{1, 2})
	f, _ := factor.NewSourcedTable([]int{0}, []int{2}, src)
	require.NoError(t, f.ComputeEnergies())

	c := f.Clone().(*factor.Table)
	assert.Same(t, f.Source(), c.Source(), "source must be shared")
	assert.Equal(t, f.Energies(), c.Energies())

	// Recomputing the original after a source change does not touch the clone.
	require.NoError(t, src.SetValues([]float64{7, 8}))
	require.NoError(t, f.ComputeEnergies())
	e, _ := c.Energy([]int{0})
	assert.Equal(t, 1.0, e)
}

// TestLinear_ComputeEnergies verifies E = W·x and its validation.
func TestLinear_ComputeEnergies(t *testing.T) {
	src, err := factor.NewVectorSource("x", []float64{1, 2})
	require.NoError(t, err)
	w, err := matrix.NewDenseFrom([][]float64{
		{1, 0}, // state 0
		{0, 1}, // state 1
		{1, 1}, // state 2
	})
	require.NoError(t, err)

	f, err := factor.NewLinear([]int{4}, []int{3}, w, src)
	require.NoError(t, err)

	_, err = f.Energy([]int{0})
	assert.ErrorIs(t, err, factor.ErrNotComputed)

	require.NoError(t, f.ComputeEnergies())
	for s, want := range []float64{1, 2, 3} {
		e, err := f.Energy([]int{s})
		require.NoError(t, err)
		assert.Equal(t, want, e)
	}

	// Weights are copied; the original matrix can change freely.
	require.NoError(t, w.Set(0, 0, 100))
	got, _ := f.Weights().At(0, 0)
	assert.Equal(t, 1.0, got)

	// Feature dimension mismatch surfaces the matrix sentinel.
	require.NoError(t, src.SetValues([]float64{1, 2, 3}))
	assert.ErrorIs(t, f.ComputeEnergies(), matrix.ErrDimensionMismatch)

	c := f.Clone().(*factor.Linear)
	assert.Same(t, f.Source(), c.Source())
}

// TestNewLinear_Validation covers nil inputs and row count mismatch.
func TestNewLinear_Validation(t *testing.T) {
	src, _ := factor.NewVectorSource("x", []float64{1})
	w, _ := matrix.NewDense(2, 1)

	_, err := factor.NewLinear([]int{0}, []int{2}, nil, src)
	assert.ErrorIs(t, err, factor.ErrNilWeights)
	_, err = factor.NewLinear([]int{0}, []int{2}, w, nil)
	assert.ErrorIs(t, err, factor.ErrNilSource)
	_, err = factor.NewLinear([]int{0}, []int{3}, w, src)
	assert.ErrorIs(t, err, factor.ErrTableSize)
}

// TestVectorSource_Validation covers empty and non-finite inputs.
func TestVectorSource_Validation(t *testing.T) {
	_, err := factor.NewVectorSource("e", nil)
	assert.ErrorIs(t, err, factor.ErrEmptySource)
	_, err = factor.NewVectorSource("n", []float64{1, math.NaN()})
	assert.ErrorIs(t, err, factor.ErrNonFinite)

	src, _ := factor.NewVectorSource("s", []float64{1})
	assert.Equal(t, "s", src.Name())
	assert.Equal(t, 1, src.Len())
	assert.ErrorIs(t, src.SetValues(nil), factor.ErrEmptySource)
}
