package linsolve

import (
	"fmt"
	"sort"
)

// LU recovers explicit factors from the completed factorization. The
// returned Factorization satisfies P·R·A·Q = L·U (see the type docs for
// how P, Q and R are rebuilt) for square and rectangular input alike.
// The factors are copies: they stay valid after Close.
func (s *SparseLU) LU() (*Factorization, error) {
	if s.closed {
		return nil, fmt.Errorf("%w: handle is closed", ErrState)
	}
	if !s.factored {
		return nil, fmt.Errorf("%w: numeric factorization not done", ErrState)
	}

	dtype := Float64
	if s.cplx {
		dtype = Complex128
	}

	// L: unit lower, rows x inner. Column t holds the implicit unit
	// diagonal plus the below-diagonal entries, remapped from original
	// row indices to pivot positions and sorted.
	l := &CSC{Rows: s.rows, Cols: s.inner, ColPtr: make([]int, s.inner+1), DType: dtype}
	for t := 0; t < s.inner; t++ {
		l.ColPtr[t+1] = l.ColPtr[t] + 1 + len(s.lcols[t])
	}
	l.RowIdx = make([]int, l.ColPtr[s.inner])
	l.Real = make([]float64, l.ColPtr[s.inner])
	if s.cplx {
		l.Imag = make([]float64, l.ColPtr[s.inner])
	}
	for t := 0; t < s.inner; t++ {
		col := append([]luEntry{{Row: t, Real: 1.0}}, s.lcols[t]...)
		for i := 1; i < len(col); i++ {
			col[i].Row = s.rowPos[col[i].Row]
		}
		sort.Slice(col, func(a, b int) bool { return col[a].Row < col[b].Row })
		base := l.ColPtr[t]
		for i, e := range col {
			l.RowIdx[base+i] = e.Row
			l.Real[base+i] = e.Real
			if s.cplx {
				l.Imag[base+i] = e.Imag
			}
		}
	}

	// U: upper, inner x cols. Stored entry rows are already pivot
	// positions in ascending order, diagonal last.
	u := &CSC{Rows: s.inner, Cols: s.cols, ColPtr: make([]int, s.cols+1), DType: dtype}
	for t := 0; t < s.cols; t++ {
		u.ColPtr[t+1] = u.ColPtr[t] + len(s.ucols[t])
	}
	u.RowIdx = make([]int, u.ColPtr[s.cols])
	u.Real = make([]float64, u.ColPtr[s.cols])
	if s.cplx {
		u.Imag = make([]float64, u.ColPtr[s.cols])
	}
	for t := 0; t < s.cols; t++ {
		base := u.ColPtr[t]
		for i, e := range s.ucols[t] {
			u.RowIdx[base+i] = e.Row
			u.Real[base+i] = e.Real
			if s.cplx {
				u.Imag[base+i] = e.Imag
			}
		}
	}

	return &Factorization{
		L:          l,
		U:          u,
		RowPerm:    append([]int(nil), s.rowPerm...),
		ColPerm:    append([]int(nil), s.colPerm...),
		RowScale:   append([]float64(nil), s.rowScale...),
		RecipScale: true,
	}, nil
}

// Det returns the determinant of the factored matrix: the product of the
// U diagonal, the permutation signs, and the undone row scaling. Square
// factorizations only.
func (s *SparseLU) Det() (complex128, error) {
	if s.closed {
		return 0, fmt.Errorf("%w: handle is closed", ErrState)
	}
	if !s.factored {
		return 0, fmt.Errorf("%w: numeric factorization not done", ErrState)
	}
	if s.rows != s.cols {
		return 0, fmt.Errorf("%w: factorization is %dx%d", ErrShape, s.rows, s.cols)
	}
	det := complex(permutationSign(s.rowPerm)*permutationSign(s.colPerm), 0)
	for t := 0; t < s.inner; t++ {
		d := s.ucols[t][len(s.ucols[t])-1]
		det *= complex(d.Real, d.Imag)
	}
	for _, sc := range s.rowScale {
		det *= complex(sc, 0)
	}
	return det, nil
}
