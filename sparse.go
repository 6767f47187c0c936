package linsolve

import "fmt"

// NewCSC builds a compressed-column matrix and validates the storage
// invariants. Values are given at float64 precision regardless of dtype;
// a narrow dtype records the caller's precision for downcast on output.
// imag must be nil for real dtypes and may be nil for complex dtypes, in
// which case it is taken as all zeros.
func NewCSC(rows, cols int, colPtr, rowIdx []int, real, imag []float64, d DType) (*CSC, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: invalid size %dx%d", ErrInvalidMatrix, rows, cols)
	}
	if !d.Valid() {
		return nil, fmt.Errorf("%w: dtype tag %d", ErrUnsupportedType, d)
	}
	if len(colPtr) != cols+1 {
		return nil, fmt.Errorf("%w: column pointer length %d, want %d", ErrInvalidMatrix, len(colPtr), cols+1)
	}
	if colPtr[0] != 0 {
		return nil, fmt.Errorf("%w: column pointers must start at 0", ErrInvalidMatrix)
	}
	nnz := colPtr[cols]
	if len(rowIdx) != nnz || len(real) != nnz {
		return nil, fmt.Errorf("%w: %d nonzeros, %d row indices, %d values",
			ErrInvalidMatrix, nnz, len(rowIdx), len(real))
	}
	if !d.IsComplex() && imag != nil {
		return nil, fmt.Errorf("%w: imaginary values with real dtype %s", ErrInvalidMatrix, d)
	}
	if imag != nil && len(imag) != nnz {
		return nil, fmt.Errorf("%w: %d nonzeros but %d imaginary values", ErrInvalidMatrix, nnz, len(imag))
	}
	for j := 0; j < cols; j++ {
		if colPtr[j+1] < colPtr[j] {
			return nil, fmt.Errorf("%w: column pointers decrease at column %d", ErrInvalidMatrix, j)
		}
	}
	for j := 0; j < cols; j++ {
		for p := colPtr[j]; p < colPtr[j+1]; p++ {
			i := rowIdx[p]
			if i < 0 || i >= rows {
				return nil, fmt.Errorf("%w: row index %d out of range in column %d", ErrInvalidMatrix, i, j)
			}
			if p > colPtr[j] && rowIdx[p-1] >= i {
				return nil, fmt.Errorf("%w: row indices not sorted or duplicated in column %d", ErrInvalidMatrix, j)
			}
		}
	}
	m := &CSC{
		Rows:   rows,
		Cols:   cols,
		ColPtr: append([]int(nil), colPtr...),
		RowIdx: append([]int(nil), rowIdx...),
		Real:   append([]float64(nil), real...),
		DType:  d,
	}
	if d.IsComplex() {
		m.Imag = make([]float64, nnz)
		copy(m.Imag, imag)
	}
	return m, nil
}

// NewDense builds a double-precision real vector.
func NewDense(v []float64) *Dense {
	return &Dense{N: len(v), Real: append([]float64(nil), v...), DType: Float64}
}

// NewDense32 widens a single-precision real vector.
func NewDense32(v []float32) *Dense {
	r := make([]float64, len(v))
	for i, x := range v {
		r[i] = float64(x)
	}
	return &Dense{N: len(v), Real: r, DType: Float32}
}

// NewDenseComplex builds a complex vector from separated real and
// imaginary parts. imag may be nil for a vector with zero imaginary part.
func NewDenseComplex(real, imag []float64) (*Dense, error) {
	if imag != nil && len(imag) != len(real) {
		return nil, fmt.Errorf("%w: real length %d, imaginary length %d", ErrDimension, len(real), len(imag))
	}
	d := &Dense{N: len(real), Real: append([]float64(nil), real...), DType: Complex128}
	d.Imag = make([]float64, len(real))
	copy(d.Imag, imag)
	return d, nil
}

// NewDenseComplex64 is NewDenseComplex at single precision.
func NewDenseComplex64(real, imag []float32) (*Dense, error) {
	if imag != nil && len(imag) != len(real) {
		return nil, fmt.Errorf("%w: real length %d, imaginary length %d", ErrDimension, len(real), len(imag))
	}
	d := &Dense{N: len(real), Real: make([]float64, len(real)), Imag: make([]float64, len(real)), DType: Complex64}
	for i, x := range real {
		d.Real[i] = float64(x)
	}
	for i, x := range imag {
		d.Imag[i] = float64(x)
	}
	return d, nil
}

// MulVec computes A·x, returning a full-precision dense vector. Used for
// residual checks; x must have length equal to the column count.
func (a *CSC) MulVec(x *Dense) (*Dense, error) {
	if x.N != a.Cols {
		return nil, fmt.Errorf("%w: matrix is %dx%d, vector has length %d", ErrDimension, a.Rows, a.Cols, x.N)
	}
	y := &Dense{N: a.Rows, Real: make([]float64, a.Rows), DType: Float64}
	cplx := a.DType.IsComplex() || x.DType.IsComplex()
	if cplx {
		y.Imag = make([]float64, a.Rows)
		y.DType = Complex128
	}
	for j := 0; j < a.Cols; j++ {
		xr := x.Real[j]
		xi := 0.0
		if x.Imag != nil {
			xi = x.Imag[j]
		}
		for p := a.ColPtr[j]; p < a.ColPtr[j+1]; p++ {
			i := a.RowIdx[p]
			ar := a.Real[p]
			ai := 0.0
			if a.Imag != nil {
				ai = a.Imag[p]
			}
			y.Real[i] += ar*xr - ai*xi
			if cplx {
				y.Imag[i] += ar*xi + ai*xr
			}
		}
	}
	return y, nil
}

// IsSquare reports whether the matrix has equal row and column counts.
func (a *CSC) IsSquare() bool { return a.Rows == a.Cols }

// asComplex returns a view of a retagged to the complex dtype of matching
// precision. The value slices are shared; an all-zero imaginary vector is
// attached for real input.
func (a *CSC) asComplex() *CSC {
	if a.DType.IsComplex() {
		return a
	}
	c := *a
	c.Imag = make([]float64, len(a.Real))
	if a.DType == Float32 {
		c.DType = Complex64
	} else {
		c.DType = Complex128
	}
	return &c
}

// denseColumn flattens a single-column sparse matrix into a dense vector
// of the same dtype.
func denseColumn(b *CSC) *Dense {
	d := &Dense{N: b.Rows, Real: make([]float64, b.Rows), DType: b.DType}
	if b.DType.IsComplex() {
		d.Imag = make([]float64, b.Rows)
	}
	for p := b.ColPtr[0]; p < b.ColPtr[1]; p++ {
		d.Real[b.RowIdx[p]] = b.Real[p]
		if b.Imag != nil {
			d.Imag[b.RowIdx[p]] = b.Imag[p]
		}
	}
	return d
}

// promoteDType yields the result dtype of an operation mixing a and b:
// complex wins over real, double wins over single.
func promoteDType(a, b DType) DType {
	if a.IsComplex() || b.IsComplex() {
		if a.IsSingle() && b.IsSingle() {
			return Complex64
		}
		return Complex128
	}
	if a.IsSingle() && b.IsSingle() {
		return Float32
	}
	return Float64
}

// demote narrows x in place to dtype d by rounding through float32 when d
// is single precision. Solutions are computed at double precision and
// narrowed only here, at the caller boundary.
func demote(x *Dense, d DType) *Dense {
	if d.IsSingle() {
		for i := range x.Real {
			x.Real[i] = float64(float32(x.Real[i]))
		}
		for i := range x.Imag {
			x.Imag[i] = float64(float32(x.Imag[i]))
		}
	}
	x.DType = d
	return x
}
