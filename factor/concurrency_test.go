package factor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvfactor/factor"
	"github.com/katalvlaran/lvfactor/matrix"
)

// TestFactors_RecomputeWhileReading refreshes table and linear energies while
// other goroutines read and clone the same factors.
func TestFactors_RecomputeWhileReading(t *testing.T) {
	defer goleak.VerifyNone(t)

	src, err := factor.NewVectorSource("x", []float64{1, 2})
	require.NoError(t, err)
	tbl, err := factor.NewSourcedTable([]int{0}, []int{2}, src)
	require.NoError(t, err)
	w, err := matrix.NewDenseFrom([][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)
	lin, err := factor.NewLinear([]int{1}, []int{2}, w, src)
	require.NoError(t, err)

	fs := []factor.Factor{tbl, lin}
	for _, f := range fs {
		require.NoError(t, f.ComputeEnergies())
	}

	const rounds = 200
	var eg errgroup.Group
	for _, f := range fs {
		eg.Go(func() error {
			for i := 0; i < rounds; i++ {
				if err := f.ComputeEnergies(); err != nil {
					return err
				}
			}
			return nil
		})
		eg.Go(func() error {
			for i := 0; i < rounds; i++ {
				if _, err := f.Energy([]int{1}); err != nil {
					return err
				}
				_ = f.Clone()
			}
			return nil
		})
	}
	eg.Go(func() error {
		for i := 0; i < rounds; i++ {
			_ = tbl.Energies()
		}
		return nil
	})
	require.NoError(t, eg.Wait())

	for _, f := range fs {
		e, err := f.Energy([]int{1})
		require.NoError(t, err)
		assert.Equal(t, 2.0, e)
	}
}
