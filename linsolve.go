package linsolve

import "fmt"

// Solve solves the sparse linear system Ax = b in one shot: backend
// selection, numeric factorization, triangular solves, and narrowing of
// the solution back to the promoted precision of A and b. The sparse
// backend is preferred unless WithFallback or WithBackend says otherwise.
//
// A failed solve returns no partial solution.
func Solve(a *CSC, b *Dense, opts ...Option) (*Dense, error) {
	o := buildOptions(opts)
	if !a.IsSquare() {
		return nil, fmt.Errorf("%w: got %dx%d", ErrShape, a.Rows, a.Cols)
	}
	if b.N != a.Rows {
		return nil, fmt.Errorf("%w: matrix has %d rows, rhs has length %d", ErrDimension, a.Rows, b.N)
	}

	target := promoteDType(a.DType, b.DType)
	if target.IsComplex() && !a.DType.IsComplex() {
		a = a.asComplex()
	}

	be, err := pickBackend(a.DType, o)
	if err != nil {
		return nil, err
	}
	defer be.Close()

	if err := be.Numeric(a); err != nil {
		return nil, err
	}
	x, err := be.Solve(b)
	if err != nil {
		return nil, err
	}
	return demote(x, target), nil
}

// SolveCSC is Solve for a right-hand side given as a single-column sparse
// matrix. The column is densified before the backend call and the result
// is dense: output never carries more sparsity than a dense rhs implies.
func SolveCSC(a, b *CSC, opts ...Option) (*Dense, error) {
	if b.Cols != 1 {
		return nil, fmt.Errorf("%w: rhs must be a single column, got %d", ErrDimension, b.Cols)
	}
	if b.Rows != a.Rows {
		return nil, fmt.Errorf("%w: matrix has %d rows, rhs has %d", ErrDimension, a.Rows, b.Rows)
	}
	return Solve(a, denseColumn(b), opts...)
}

// CachedSolver binds repeated solves to one completed factorization. It
// exclusively owns its backend handle; Close releases the factor
// storage. Calls against a closed solver fail with ErrState, and all
// right-hand sides must match the factored matrix's row count.
//
// Not safe for concurrent use without external synchronization.
type CachedSolver struct {
	be    Backend
	rows  int
	dtype DType
}

// Factorized factors a once and returns a solver reusable against any
// number of right-hand sides. Mirrors Solve in selection and error
// behavior; only the triangular solves run per call afterwards.
func Factorized(a *CSC, opts ...Option) (*CachedSolver, error) {
	o := buildOptions(opts)
	if !a.IsSquare() {
		return nil, fmt.Errorf("%w: got %dx%d", ErrShape, a.Rows, a.Cols)
	}
	be, err := pickBackend(a.DType, o)
	if err != nil {
		return nil, err
	}
	if err := be.Numeric(a); err != nil {
		be.Close()
		return nil, err
	}
	return &CachedSolver{be: be, rows: a.Rows, dtype: a.DType}, nil
}

// Solve runs the substitution steps against the cached factorization.
func (c *CachedSolver) Solve(b *Dense) (*Dense, error) {
	if c.be == nil {
		return nil, fmt.Errorf("%w: solver is closed", ErrState)
	}
	if b.N != c.rows {
		return nil, fmt.Errorf("%w: factored matrix has %d rows, rhs has length %d", ErrDimension, c.rows, b.N)
	}
	x, err := c.be.Solve(b)
	if err != nil {
		return nil, err
	}
	return demote(x, promoteDType(c.dtype, b.DType)), nil
}

// Close releases the underlying factorization. Idempotent.
func (c *CachedSolver) Close() error {
	if c.be == nil {
		return nil
	}
	err := c.be.Close()
	c.be = nil
	return err
}

// LU factors a with the sparse backend and recovers its explicit
// factors. Works for rectangular input; options other than the backend
// choice are honored.
func LU(a *CSC, opts ...Option) (*Factorization, error) {
	o := buildOptions(opts)
	if o.forced == KindDenseLU {
		return nil, fmt.Errorf("%w: %s backend has no decomposition extraction", ErrUnsupportedBackend, KindDenseLU)
	}
	s := &SparseLU{opts: o}
	defer s.Close()
	if err := s.Numeric(a); err != nil {
		return nil, err
	}
	return s.LU()
}
