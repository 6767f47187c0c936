package main

import (
	"fmt"

	"linsolve"
)

func main() {
	// Banded 5x5: main diagonal 1..5, superdiagonal 5,8,9,10.
	colPtr := []int{0, 1, 3, 5, 7, 9}
	rowIdx := []int{0, 0, 1, 1, 2, 2, 3, 3, 4}
	values := []float64{1, 5, 2, 8, 3, 9, 4, 10, 5}

	A, err := linsolve.NewCSC(5, 5, colPtr, rowIdx, values, nil, linsolve.Float64)
	if err != nil {
		panic(err)
	}

	solver, err := linsolve.Factorized(A)
	if err != nil {
		panic(err)
	}
	defer solver.Close()

	for _, rhs := range [][]float64{
		{1, 2, 3, 4, 5},
		{5, 4, 3, 2, 1},
	} {
		x, err := solver.Solve(linsolve.NewDense(rhs))
		if err != nil {
			panic(err)
		}
		fmt.Printf("b = %v\n", rhs)
		for i := 0; i < x.N; i++ {
			fmt.Printf("x[%d] = %.6f\n", i, x.Real[i])
		}
		fmt.Println()
	}
}
