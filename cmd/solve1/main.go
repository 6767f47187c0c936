package main

import (
	"fmt"

	"linsolve"
)

func fromDense(d [][]float64) *linsolve.CSC {
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
	a, err := linsolve.NewCSC(rows, cols, colPtr, rowIdx, values, nil, linsolve.Float64)
	if err != nil {
		panic(err)
	}
	return a
}

func main() {
	A := fromDense([][]float64{
		{4, -2, 2, 1, 5},
		{2, 3, -1, 2, 3},
		{0, 1, 5, 7, 2},
		{1, 2, 0, 4, 1},
		{3, 1, 4, 2, 2},
	})
	b := linsolve.NewDense([]float64{1, 2, 3, 4, 5})

	A.Print(true)

	x, err := linsolve.Solve(A, b)
	if err != nil {
		panic(err)
	}

	fmt.Println("Solution:")
	for i := 0; i < x.N; i++ {
		fmt.Printf("x[%d] = %.6f\n", i, x.Real[i])
	}

	r, err := A.MulVec(x)
	if err != nil {
		panic(err)
	}
	fmt.Println("Residual A*x - b:")
	for i := 0; i < r.N; i++ {
		fmt.Printf("%12.3e\n", r.Real[i]-b.Real[i])
	}
}
