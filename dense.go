package linsolve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// DenseLU is the fallback backend, wrapping gonum's dense LU. It serves
// only the real dtypes (float32 by upcast), requires a square matrix,
// and has no decomposition-extraction capability.
//
// Not safe for concurrent use.
type DenseLU struct {
	opts options

	n      int
	lu     *mat.LU
	scale  []float64
	closed bool
}

func (d *DenseLU) Name() string { return KindDenseLU.String() }

func (d *DenseLU) Supports(t DType) bool { return t == Float32 || t == Float64 }

// Close releases the factorization. Idempotent.
func (d *DenseLU) Close() error {
	d.lu = nil
	d.scale = nil
	d.closed = true
	return nil
}

// Numeric densifies a, equilibrates its rows and factors it. A singular
// matrix is reported here, never deferred to solve time.
func (d *DenseLU) Numeric(a *CSC) error {
	if d.closed {
		return fmt.Errorf("%w: handle is closed", ErrState)
	}
	if a.DType.IsComplex() {
		return fmt.Errorf("%w: %s backend cannot factor %s input", ErrUnsupportedType, d.Name(), a.DType)
	}
	if !a.IsSquare() {
		return fmt.Errorf("%w: got %dx%d", ErrShape, a.Rows, a.Cols)
	}
	d.n = a.Rows
	d.lu = nil

	d.scale = make([]float64, a.Rows)
	for p, i := range a.RowIdx {
		d.scale[i] += math.Abs(a.Real[p])
	}
	for i := range d.scale {
		if d.scale[i] == 0.0 {
			return fmt.Errorf("%w: row %d is structurally empty", ErrFactorization, i)
		}
	}

	dense := mat.NewDense(a.Rows, a.Cols, nil)
	for j := 0; j < a.Cols; j++ {
		for p := a.ColPtr[j]; p < a.ColPtr[j+1]; p++ {
			i := a.RowIdx[p]
			dense.Set(i, j, a.Real[p]/d.scale[i])
		}
	}

	var lu mat.LU
	lu.Factorize(dense)
	if det := lu.Det(); det == 0.0 || math.IsNaN(det) {
		return fmt.Errorf("%w: matrix is singular", ErrFactorization)
	}
	d.lu = &lu
	return nil
}

// Solve runs the triangular solves against the stored factorization.
func (d *DenseLU) Solve(b *Dense) (*Dense, error) {
	if d.closed {
		return nil, fmt.Errorf("%w: handle is closed", ErrState)
	}
	if d.lu == nil {
		return nil, fmt.Errorf("%w: numeric factorization not done", ErrState)
	}
	if b.N != d.n {
		return nil, fmt.Errorf("%w: matrix has %d rows, rhs has length %d", ErrDimension, d.n, b.N)
	}
	if b.DType.IsComplex() {
		return nil, fmt.Errorf("%w: complex rhs against a real factorization", ErrUnsupportedType)
	}

	rhs := make([]float64, d.n)
	for i := range rhs {
		rhs[i] = b.Real[i] / d.scale[i]
	}
	var x mat.VecDense
	if err := d.lu.SolveVecTo(&x, false, mat.NewVecDense(d.n, rhs)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFactorization, err)
	}
	out := &Dense{N: d.n, Real: make([]float64, d.n), DType: Float64}
	for i := 0; i < d.n; i++ {
		out.Real[i] = x.AtVec(i)
	}
	return out, nil
}
