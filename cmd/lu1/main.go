package main

import (
	"fmt"

	"linsolve"
)

func main() {
	// Rectangular 4x5 band: diagonal 1..4, superdiagonal 5,8,9,10.
	colPtr := []int{0, 1, 3, 5, 7, 8}
	rowIdx := []int{0, 0, 1, 1, 2, 2, 3, 3}
	values := []float64{1, 5, 2, 8, 3, 9, 4, 10}

	A, err := linsolve.NewCSC(4, 5, colPtr, rowIdx, values, nil, linsolve.Float64)
	if err != nil {
		panic(err)
	}

	f, err := linsolve.LU(A)
	if err != nil {
		panic(err)
	}

	fmt.Println("L:")
	f.L.Print(false)
	fmt.Println("U:")
	f.U.Print(false)
	fmt.Printf("RowPerm    = %v\n", f.RowPerm)
	fmt.Printf("ColPerm    = %v\n", f.ColPerm)
	fmt.Printf("RowScale   = %v\n", f.RowScale)
	fmt.Printf("RecipScale = %v\n", f.RecipScale)
}
