package linsolve

import "fmt"

func (s *SparseLU) checkSolve(b *Dense) error {
	if s.closed {
		return fmt.Errorf("%w: handle is closed", ErrState)
	}
	if !s.factored {
		return fmt.Errorf("%w: numeric factorization not done", ErrState)
	}
	if s.rows != s.cols {
		return fmt.Errorf("%w: factorization is %dx%d", ErrShape, s.rows, s.cols)
	}
	if b.N != s.rows {
		return fmt.Errorf("%w: matrix has %d rows, rhs has length %d", ErrDimension, s.rows, b.N)
	}
	if !s.cplx && b.DType.IsComplex() {
		return fmt.Errorf("%w: complex rhs against a real factorization", ErrUnsupportedType)
	}
	return nil
}

// Solve runs forward/backward substitution against the stored
// factorization, returning the solution at full precision. The
// factorization must be square.
func (s *SparseLU) Solve(b *Dense) (*Dense, error) {
	if err := s.checkSolve(b); err != nil {
		return nil, err
	}
	if s.cplx {
		return s.solveComplex(b)
	}
	n := s.rows

	// Apply P and R to the rhs.
	c := make([]float64, n)
	for t := 0; t < n; t++ {
		r := s.rowPerm[t]
		c[t] = b.Real[r] / s.rowScale[r]
	}

	// Forward elimination, solves Lz = PRb. L is unit lower; columns
	// hold only the below-diagonal entries.
	for t := 0; t < n; t++ {
		ct := c[t]
		if ct == 0.0 {
			continue
		}
		for _, e := range s.lcols[t] {
			c[s.rowPos[e.Row]] -= ct * e.Real
		}
	}

	// Backward substitution, solves Uy = z. The diagonal is stored last
	// in each U column.
	for t := n - 1; t >= 0; t-- {
		ucol := s.ucols[t]
		d := ucol[len(ucol)-1]
		yt := c[t] / d.Real
		c[t] = yt
		if yt == 0.0 {
			continue
		}
		for _, e := range ucol[:len(ucol)-1] {
			c[e.Row] -= yt * e.Real
		}
	}

	// Undo the column permutation.
	x := &Dense{N: n, Real: make([]float64, n), DType: Float64}
	for t := 0; t < n; t++ {
		x.Real[s.colPerm[t]] = c[t]
	}
	return x, nil
}

func (s *SparseLU) solveComplex(b *Dense) (*Dense, error) {
	n := s.rows
	c := make([]complex128, n)
	for t := 0; t < n; t++ {
		r := s.rowPerm[t]
		im := 0.0
		if b.Imag != nil {
			im = b.Imag[r]
		}
		c[t] = complex(b.Real[r]/s.rowScale[r], im/s.rowScale[r])
	}

	for t := 0; t < n; t++ {
		ct := c[t]
		if ct == 0 {
			continue
		}
		for _, e := range s.lcols[t] {
			c[s.rowPos[e.Row]] -= ct * complex(e.Real, e.Imag)
		}
	}

	for t := n - 1; t >= 0; t-- {
		ucol := s.ucols[t]
		d := ucol[len(ucol)-1]
		yt := c[t] / complex(d.Real, d.Imag)
		c[t] = yt
		if yt == 0 {
			continue
		}
		for _, e := range ucol[:len(ucol)-1] {
			c[e.Row] -= yt * complex(e.Real, e.Imag)
		}
	}

	x := &Dense{N: n, Real: make([]float64, n), Imag: make([]float64, n), DType: Complex128}
	for t := 0; t < n; t++ {
		x.Real[s.colPerm[t]] = real(c[t])
		x.Imag[s.colPerm[t]] = imag(c[t])
	}
	return x, nil
}

// SolveTransposed solves Aᵀx = b against the same factorization.
func (s *SparseLU) SolveTransposed(b *Dense) (*Dense, error) {
	if err := s.checkSolve(b); err != nil {
		return nil, err
	}
	n := s.rows
	if s.cplx {
		return s.solveTransposedComplex(b)
	}

	// Undo Q on the rhs.
	c := make([]float64, n)
	for t := 0; t < n; t++ {
		c[t] = b.Real[s.colPerm[t]]
	}

	// Uᵀ is lower triangular: forward substitution, row-oriented over
	// the stored U columns.
	for t := 0; t < n; t++ {
		ucol := s.ucols[t]
		acc := c[t]
		for _, e := range ucol[:len(ucol)-1] {
			acc -= e.Real * c[e.Row]
		}
		c[t] = acc / ucol[len(ucol)-1].Real
	}

	// Lᵀ is unit upper triangular: backward substitution.
	for t := n - 1; t >= 0; t-- {
		acc := c[t]
		for _, e := range s.lcols[t] {
			acc -= e.Real * c[s.rowPos[e.Row]]
		}
		c[t] = acc
	}

	// Undo P and R.
	x := &Dense{N: n, Real: make([]float64, n), DType: Float64}
	for t := 0; t < n; t++ {
		r := s.rowPerm[t]
		x.Real[r] = c[t] / s.rowScale[r]
	}
	return x, nil
}

func (s *SparseLU) solveTransposedComplex(b *Dense) (*Dense, error) {
	n := s.rows
	c := make([]complex128, n)
	for t := 0; t < n; t++ {
		j := s.colPerm[t]
		im := 0.0
		if b.Imag != nil {
			im = b.Imag[j]
		}
		c[t] = complex(b.Real[j], im)
	}

	for t := 0; t < n; t++ {
		ucol := s.ucols[t]
		acc := c[t]
		for _, e := range ucol[:len(ucol)-1] {
			acc -= complex(e.Real, e.Imag) * c[e.Row]
		}
		d := ucol[len(ucol)-1]
		c[t] = acc / complex(d.Real, d.Imag)
	}

	for t := n - 1; t >= 0; t-- {
		acc := c[t]
		for _, e := range s.lcols[t] {
			acc -= complex(e.Real, e.Imag) * c[s.rowPos[e.Row]]
		}
		c[t] = acc
	}

	x := &Dense{N: n, Real: make([]float64, n), Imag: make([]float64, n), DType: Complex128}
	for t := 0; t < n; t++ {
		r := s.rowPerm[t]
		x.Real[r] = real(c[t]) / s.rowScale[r]
		x.Imag[r] = imag(c[t]) / s.rowScale[r]
	}
	return x, nil
}
