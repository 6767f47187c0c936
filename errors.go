package linsolve

import "errors"

var (
	// ErrDimension indicates a shape mismatch between the matrix and a
	// right-hand side, or between calls against one cached factorization.
	ErrDimension = errors.New("linsolve: dimension mismatch")
	// ErrShape indicates a non-square matrix where squareness is required.
	ErrShape = errors.New("linsolve: matrix must be square")
	// ErrState indicates an operation against a handle that is not in the
	// required state (not yet factored, or already closed).
	ErrState = errors.New("linsolve: invalid handle state")
	// ErrFactorization indicates the backend reported a singular or
	// structurally unusable matrix. No partial result is returned.
	ErrFactorization = errors.New("linsolve: factorization failed")
	// ErrUnsupportedType indicates a numeric type the selected backend
	// cannot serve, even after fallback.
	ErrUnsupportedType = errors.New("linsolve: unsupported numeric type")
	// ErrUnsupportedBackend indicates a backend kind that is not registered.
	ErrUnsupportedBackend = errors.New("linsolve: unsupported backend")
	// ErrInvalidMatrix indicates compressed-column input that violates the
	// storage invariants.
	ErrInvalidMatrix = errors.New("linsolve: invalid matrix structure")
)
