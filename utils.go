package linsolve

import (
	"math"

	"golang.org/x/exp/constraints"
)

func minOf[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// mag1 returns the 1-norm of a complex number (|real| + |imag|), the
// magnitude measure used for pivot selection and row scaling.
func mag1(re, im float64) float64 {
	return math.Abs(re) + math.Abs(im)
}

// permutationSign returns +1 or -1 according to the parity of perm,
// counted by cycle decomposition.
func permutationSign(perm []int) float64 {
	visited := make([]bool, len(perm))
	sign := 1.0
	for i := range perm {
		if visited[i] {
			continue
		}
		length := 0
		for j := i; !visited[j]; j = perm[j] {
			visited[j] = true
			length++
		}
		if length%2 == 0 {
			sign = -sign
		}
	}
	return sign
}
