package linsolve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"linsolve"
)

// Factorization reuse must not change the numeric result.
func TestFactorizedMatchesSolve(t *testing.T) {
	a := fromDense(t, bandedA(), linsolve.Float64)
	b1 := linsolve.NewDense([]float64{1, 2, 3, 4, 5})
	b2 := linsolve.NewDense([]float64{5, 4, 3, 2, 1})

	solver, err := linsolve.Factorized(a)
	require.NoError(t, err)
	defer solver.Close()

	for _, b := range []*linsolve.Dense{b1, b2} {
		want, err := linsolve.Solve(a, b)
		require.NoError(t, err)
		got, err := solver.Solve(b)
		require.NoError(t, err)
		for i := 0; i < b.N; i++ {
			require.InDelta(t, want.Real[i], got.Real[i], 1e-12, "row %d", i)
		}
		requireResidual(t, a, got, b, 1e-8)
	}
}

func TestFactorizedFallback(t *testing.T) {
	a := fromDense(t, bandedA(), linsolve.Float64)
	b := linsolve.NewDense([]float64{1, 2, 3, 4, 5})

	solver, err := linsolve.Factorized(a, linsolve.WithFallback())
	require.NoError(t, err)
	defer solver.Close()

	x, err := solver.Solve(b)
	require.NoError(t, err)
	requireResidual(t, a, x, b, 1e-8)
}

func TestFactorizedComplex(t *testing.T) {
	re := bandedA()
	im := banded(5, 5, [][]float64{{2, 1, 2, 1, 2}}, []int{0})
	a := fromDenseComplex(t, re, im, linsolve.Complex128)
	b, err := linsolve.NewDenseComplex([]float64{1, 2, 3, 4, 5}, []float64{5, 4, 3, 2, 1})
	require.NoError(t, err)

	solver, err := linsolve.Factorized(a)
	require.NoError(t, err)
	defer solver.Close()

	x, err := solver.Solve(b)
	require.NoError(t, err)
	requireResidual(t, a, x, b, 1e-8)
}

func TestFactorizedDimensionMismatch(t *testing.T) {
	a := fromDense(t, bandedA(), linsolve.Float64)

	solver, err := linsolve.Factorized(a)
	require.NoError(t, err)
	defer solver.Close()

	_, err = solver.Solve(linsolve.NewDense([]float64{1, 2, 3}))
	require.ErrorIs(t, err, linsolve.ErrDimension)
}

func TestFactorizedNonSquare(t *testing.T) {
	a := fromDense(t, banded(4, 5, [][]float64{{1, 2, 3, 4, 5}, {6, 5, 8, 9, 10}}, []int{0, 1}), linsolve.Float64)

	_, err := linsolve.Factorized(a)
	require.ErrorIs(t, err, linsolve.ErrShape)
}

func TestFactorizedUseAfterClose(t *testing.T) {
	a := fromDense(t, bandedA(), linsolve.Float64)

	solver, err := linsolve.Factorized(a)
	require.NoError(t, err)

	require.NoError(t, solver.Close())
	require.NoError(t, solver.Close()) // idempotent

	_, err = solver.Solve(linsolve.NewDense([]float64{1, 2, 3, 4, 5}))
	require.ErrorIs(t, err, linsolve.ErrState)
}

func TestFactorizedSingular(t *testing.T) {
	singular := [][]float64{
		{0, 0},
		{0, 1},
	}
	a := fromDense(t, singular, linsolve.Float64)

	_, err := linsolve.Factorized(a)
	require.ErrorIs(t, err, linsolve.ErrFactorization)
}
