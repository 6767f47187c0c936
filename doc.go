// Package linsolve solves sparse linear systems Ax = b through a uniform
// interface over interchangeable direct-factorization backends.
//
// The sparse backend factors real and complex matrices in single or
// double precision and can recover the explicit factors of the identity
// P·R·A·Q = L·U; the dense fallback covers the real dtypes through
// gonum. Selection between them is per call: Solve and Factorized prefer
// the sparse backend unless told otherwise, and narrow-precision input
// is factored at double precision with the solution narrowed again on
// return.
//
// Solve is the one-shot entry point; Factorized factors once and solves
// against many right-hand sides; LU extracts factors. Handles and cached
// solvers are not safe for concurrent use without external
// synchronization.
package linsolve // import "linsolve"
