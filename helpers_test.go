package linsolve_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"linsolve"
)

// fromDense builds a CSC matrix from row-major dense data.
func fromDense(t *testing.T, d [][]float64, dt linsolve.DType) *linsolve.CSC {
	t.Helper()
	rows, cols := len(d), len(d[0])
	colPtr := make([]int, cols+1)
	var rowIdx []int
	var values []float64
	for j := 0; j < cols; j++ {
		colPtr[j+1] = colPtr[j]
		for i := 0; i < rows; i++ {
			if d[i][j] != 0.0 {
				rowIdx = append(rowIdx, i)
				values = append(values, d[i][j])
				colPtr[j+1]++
			}
		}
	}
	a, err := linsolve.NewCSC(rows, cols, colPtr, rowIdx, values, nil, dt)
	require.NoError(t, err)
	return a
}

// fromDenseComplex builds a complex CSC matrix from separated row-major
// dense parts. An entry is kept when either part is nonzero.
func fromDenseComplex(t *testing.T, re, im [][]float64, dt linsolve.DType) *linsolve.CSC {
	t.Helper()
	rows, cols := len(re), len(re[0])
	colPtr := make([]int, cols+1)
	var rowIdx []int
	var values, ivalues []float64
	for j := 0; j < cols; j++ {
		colPtr[j+1] = colPtr[j]
		for i := 0; i < rows; i++ {
			if re[i][j] != 0.0 || im[i][j] != 0.0 {
				rowIdx = append(rowIdx, i)
				values = append(values, re[i][j])
				ivalues = append(ivalues, im[i][j])
				colPtr[j+1]++
			}
		}
	}
	a, err := linsolve.NewCSC(rows, cols, colPtr, rowIdx, values, ivalues, dt)
	require.NoError(t, err)
	return a
}

// banded lays out diagonals the spdiags way: entry d[k][j] of diagonal
// offset[k] lands at row j-offset[k], column j, when in range.
func banded(rows, cols int, diags [][]float64, offsets []int) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
	}
	for k, off := range offsets {
		for j := 0; j < cols; j++ {
			i := j - off
			if i >= 0 && i < rows {
				out[i][j] = diags[k][j]
			}
		}
	}
	return out
}

// bandedA is the 5x5 test system: main diagonal 1..5 plus the
// superdiagonal of [6,5,8,9,10].
func bandedA() [][]float64 {
	return banded(5, 5, [][]float64{{1, 2, 3, 4, 5}, {6, 5, 8, 9, 10}}, []int{0, 1})
}

func randomDense(rng *rand.Rand, rows, cols int) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
		for j := range out[i] {
			out[i][j] = rng.Float64() + 0.1
		}
	}
	return out
}

// toDenseComplex expands a CSC matrix to a dense complex matrix.
func toDenseComplex(a *linsolve.CSC) [][]complex128 {
	out := make([][]complex128, a.Rows)
	for i := range out {
		out[i] = make([]complex128, a.Cols)
	}
	for j := 0; j < a.Cols; j++ {
		for p := a.ColPtr[j]; p < a.ColPtr[j+1]; p++ {
			im := 0.0
			if a.Imag != nil {
				im = a.Imag[p]
			}
			out[a.RowIdx[p]][j] = complex(a.Real[p], im)
		}
	}
	return out
}

// requireResidual checks A·x ≈ b to the given absolute tolerance.
func requireResidual(t *testing.T, a *linsolve.CSC, x, b *linsolve.Dense, tol float64) {
	t.Helper()
	ax, err := a.MulVec(x)
	require.NoError(t, err)
	for i := 0; i < b.N; i++ {
		require.InDelta(t, b.Real[i], ax.Real[i], tol, "row %d (real)", i)
		bi := 0.0
		if b.Imag != nil {
			bi = b.Imag[i]
		}
		if ax.Imag != nil {
			require.InDelta(t, bi, ax.Imag[i], tol, "row %d (imag)", i)
		}
	}
}
