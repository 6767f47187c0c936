package linsolve

import (
	"fmt"
	"math"
)

// SparseLU is the primary backend: a left-looking sparse LU with row
// scaling, threshold partial pivoting with diagonal preference, and a
// fill-aware column preorder. It factors real and complex input, square
// or rectangular, and can recover explicit factors (see LU).
//
// A SparseLU owns at most one factorization and is not safe for
// concurrent use.
type SparseLU struct {
	opts options

	rows, cols, inner int
	cplx              bool

	lcols    [][]luEntry // below-diagonal L entries, keyed by original row
	ucols    [][]luEntry // U entries keyed by pivot position, diagonal last
	rowPerm  []int       // position -> original row
	rowPos   []int       // original row -> position
	colPerm  []int       // position -> original column
	rowScale []float64   // row 1-norms; applied as reciprocal

	factored bool
	closed   bool
}

func (s *SparseLU) Name() string { return KindSparseLU.String() }

func (s *SparseLU) Supports(d DType) bool { return d.Valid() }

// Close releases factor storage. Idempotent.
func (s *SparseLU) Close() error {
	s.lcols = nil
	s.ucols = nil
	s.rowPerm = nil
	s.rowPos = nil
	s.colPerm = nil
	s.rowScale = nil
	s.factored = false
	s.closed = true
	return nil
}

// Numeric factors a, replacing any factorization this handle held before.
// Fails with ErrFactorization when no usable pivot exists at some step;
// no partial factorization is kept in that case.
func (s *SparseLU) Numeric(a *CSC) error {
	if s.closed {
		return fmt.Errorf("%w: handle is closed", ErrState)
	}
	s.rows, s.cols = a.Rows, a.Cols
	s.inner = minOf(a.Rows, a.Cols)
	s.cplx = a.DType.IsComplex()
	s.factored = false

	s.scaleRows(a)
	s.orderColumns(a)

	var err error
	if s.cplx {
		err = s.factorComplex(a)
	} else {
		err = s.factorReal(a)
	}
	if err != nil {
		s.lcols, s.ucols = nil, nil
		return err
	}

	// Rows that never became pivotal (rows > cols) take the remaining
	// positions in ascending original order.
	next := s.inner
	for i := 0; i < s.rows; i++ {
		if s.rowPos[i] < 0 {
			s.rowPos[i] = next
			s.rowPerm[next] = i
			next++
		}
	}

	s.factored = true
	return nil
}

// scaleRows computes the row 1-norms used as reciprocal scaling factors.
// A structurally empty row scales by 1 so rectangular factorization can
// proceed; for square systems it surfaces later as a zero pivot.
func (s *SparseLU) scaleRows(a *CSC) {
	s.rowScale = make([]float64, a.Rows)
	for p, i := range a.RowIdx {
		im := 0.0
		if a.Imag != nil {
			im = a.Imag[p]
		}
		s.rowScale[i] += mag1(a.Real[p], im)
	}
	for i := range s.rowScale {
		if s.rowScale[i] == 0.0 {
			s.rowScale[i] = 1.0
		}
	}
}

// orderColumns sets the column permutation: columns sorted by ascending
// nonzero count, stable in original order. A cheap fill-reducing
// preorder in the spirit of Markowitz column counts.
func (s *SparseLU) orderColumns(a *CSC) {
	counts := make([]int, a.Cols)
	s.colPerm = make([]int, a.Cols)
	for j := 0; j < a.Cols; j++ {
		counts[j] = a.ColPtr[j+1] - a.ColPtr[j]
		s.colPerm[j] = j
	}
	// Insertion sort keeps equal-count columns in original order.
	for t := 1; t < a.Cols; t++ {
		j := s.colPerm[t]
		u := t
		for u > 0 && counts[s.colPerm[u-1]] > counts[j] {
			s.colPerm[u] = s.colPerm[u-1]
			u--
		}
		s.colPerm[u] = j
	}
}

func (s *SparseLU) factorReal(a *CSC) error {
	m := a.Rows
	s.lcols = make([][]luEntry, s.inner)
	s.ucols = make([][]luEntry, a.Cols)
	s.rowPerm = make([]int, m)
	s.rowPos = make([]int, m)
	for i := range s.rowPos {
		s.rowPos[i] = -1
	}

	x := make([]float64, m)
	steps := 0
	for t, j := range s.colPerm {
		for p := a.ColPtr[j]; p < a.ColPtr[j+1]; p++ {
			i := a.RowIdx[p]
			x[i] = a.Real[p] / s.rowScale[i]
		}

		// Eliminate against the pivots chosen so far.
		var ucol []luEntry
		for v := 0; v < steps; v++ {
			pr := s.rowPerm[v]
			xv := x[pr]
			if xv == 0.0 {
				continue
			}
			x[pr] = 0.0
			ucol = append(ucol, luEntry{Row: v, Real: xv})
			for _, e := range s.lcols[v] {
				x[e.Row] -= xv * e.Real
			}
		}

		if steps < s.inner {
			pr, pmag := s.selectPivotReal(x, j)
			if pr < 0 {
				return fmt.Errorf("%w: matrix is singular at step %d", ErrFactorization, steps+1)
			}
			if s.opts.annotate > 0 {
				s.writeStatus(steps+1, pr, j, pmag)
			}
			s.rowPos[pr] = steps
			s.rowPerm[steps] = pr
			piv := x[pr]
			x[pr] = 0.0
			ucol = append(ucol, luEntry{Row: steps, Real: piv})
			var lcol []luEntry
			for i := 0; i < m; i++ {
				if s.rowPos[i] >= 0 || x[i] == 0.0 {
					continue
				}
				lcol = append(lcol, luEntry{Row: i, Real: x[i] / piv})
				x[i] = 0.0
			}
			s.lcols[steps] = lcol
			steps++
		}
		s.ucols[t] = ucol
	}
	return nil
}

// selectPivotReal picks the pivot row for the current elimination step:
// the diagonal candidate when its magnitude is within the relative
// threshold of the column maximum, the largest remaining entry otherwise.
func (s *SparseLU) selectPivotReal(x []float64, col int) (int, float64) {
	best, bestMag := -1, 0.0
	for i := 0; i < len(x); i++ {
		if s.rowPos[i] >= 0 {
			continue
		}
		if mag := math.Abs(x[i]); mag > bestMag {
			best, bestMag = i, mag
		}
	}
	if bestMag == 0.0 {
		return -1, 0.0
	}
	if col < len(x) && s.rowPos[col] < 0 {
		if mag := math.Abs(x[col]); mag >= s.opts.relThreshold*bestMag && mag > 0.0 {
			return col, mag
		}
	}
	return best, bestMag
}

func (s *SparseLU) factorComplex(a *CSC) error {
	m := a.Rows
	s.lcols = make([][]luEntry, s.inner)
	s.ucols = make([][]luEntry, a.Cols)
	s.rowPerm = make([]int, m)
	s.rowPos = make([]int, m)
	for i := range s.rowPos {
		s.rowPos[i] = -1
	}

	x := make([]complex128, m)
	steps := 0
	for t, j := range s.colPerm {
		for p := a.ColPtr[j]; p < a.ColPtr[j+1]; p++ {
			i := a.RowIdx[p]
			x[i] = complex(a.Real[p]/s.rowScale[i], a.Imag[p]/s.rowScale[i])
		}

		var ucol []luEntry
		for v := 0; v < steps; v++ {
			pr := s.rowPerm[v]
			xv := x[pr]
			if xv == 0 {
				continue
			}
			x[pr] = 0
			ucol = append(ucol, luEntry{Row: v, Real: real(xv), Imag: imag(xv)})
			for _, e := range s.lcols[v] {
				x[e.Row] -= xv * complex(e.Real, e.Imag)
			}
		}

		if steps < s.inner {
			pr, pmag := s.selectPivotComplex(x, j)
			if pr < 0 {
				return fmt.Errorf("%w: matrix is singular at step %d", ErrFactorization, steps+1)
			}
			if s.opts.annotate > 0 {
				s.writeStatus(steps+1, pr, j, pmag)
			}
			s.rowPos[pr] = steps
			s.rowPerm[steps] = pr
			piv := x[pr]
			x[pr] = 0
			ucol = append(ucol, luEntry{Row: steps, Real: real(piv), Imag: imag(piv)})
			var lcol []luEntry
			for i := 0; i < m; i++ {
				if s.rowPos[i] >= 0 || x[i] == 0 {
					continue
				}
				q := x[i] / piv
				lcol = append(lcol, luEntry{Row: i, Real: real(q), Imag: imag(q)})
				x[i] = 0
			}
			s.lcols[steps] = lcol
			steps++
		}
		s.ucols[t] = ucol
	}
	return nil
}

func (s *SparseLU) selectPivotComplex(x []complex128, col int) (int, float64) {
	best, bestMag := -1, 0.0
	for i := 0; i < len(x); i++ {
		if s.rowPos[i] >= 0 {
			continue
		}
		if mag := mag1(real(x[i]), imag(x[i])); mag > bestMag {
			best, bestMag = i, mag
		}
	}
	if bestMag == 0.0 {
		return -1, 0.0
	}
	if col < len(x) && s.rowPos[col] < 0 {
		if mag := mag1(real(x[col]), imag(x[col])); mag >= s.opts.relThreshold*bestMag && mag > 0.0 {
			return col, mag
		}
	}
	return best, bestMag
}
