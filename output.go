package linsolve

import "fmt"

// writeStatus prints one factorization step when annotation is enabled.
func (s *SparseLU) writeStatus(step, row, col int, mag float64) {
	fmt.Printf("Step = %d   Pivot found at %d,%d   magnitude %.4g\n", step, row, col, mag)
	if s.opts.annotate < 2 {
		return
	}
	fmt.Printf("RowPerm = ")
	for t := 0; t < step; t++ {
		fmt.Printf("%2d  ", s.rowPerm[t])
	}
	fmt.Printf("\nColPerm = ")
	for t := 0; t < len(s.colPerm); t++ {
		fmt.Printf("%2d  ", s.colPerm[t])
	}
	fmt.Printf("\n\n")
}

// Print writes a dense rendering of the matrix to standard output, with
// an optional summary header.
func (a *CSC) Print(header bool) {
	if a == nil {
		return
	}
	if header {
		fmt.Printf("MATRIX SUMMARY\n\n")
		fmt.Printf("Size of matrix = %d x %d (%s), %d nonzeros.\n\n", a.Rows, a.Cols, a.DType, a.ColPtr[a.Cols])
	}

	dense := make([][]float64, a.Rows)
	var denseImag [][]float64
	for i := range dense {
		dense[i] = make([]float64, a.Cols)
	}
	if a.Imag != nil {
		denseImag = make([][]float64, a.Rows)
		for i := range denseImag {
			denseImag[i] = make([]float64, a.Cols)
		}
	}
	for j := 0; j < a.Cols; j++ {
		for p := a.ColPtr[j]; p < a.ColPtr[j+1]; p++ {
			dense[a.RowIdx[p]][j] = a.Real[p]
			if denseImag != nil {
				denseImag[a.RowIdx[p]][j] = a.Imag[p]
			}
		}
	}

	for i := 0; i < a.Rows; i++ {
		for j := 0; j < a.Cols; j++ {
			if denseImag != nil {
				fmt.Printf("%10.4g%+.4gi ", dense[i][j], denseImag[i][j])
			} else {
				fmt.Printf("%10.4g ", dense[i][j])
			}
		}
		fmt.Println()
	}
	fmt.Println()
}
