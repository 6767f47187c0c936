package linsolve

// DType tags the numeric type of a matrix or vector. Values are always
// stored widened to float64/complex128; the tag preserves the caller's
// precision so solutions can be narrowed again on return.
type DType int

const (
	Float32 DType = iota + 1
	Float64
	Complex64
	Complex128
)

func (d DType) IsComplex() bool { return d == Complex64 || d == Complex128 }

func (d DType) IsSingle() bool { return d == Float32 || d == Complex64 }

func (d DType) Valid() bool { return d >= Float32 && d <= Complex128 }

func (d DType) String() string {
	switch d {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	}
	return "invalid"
}

// BackendKind names a registered factorization backend.
type BackendKind int

const (
	KindAuto BackendKind = iota // resolved by SelectBackend at call time
	KindSparseLU
	KindDenseLU
)

func (k BackendKind) String() string {
	switch k {
	case KindAuto:
		return "auto"
	case KindSparseLU:
		return "sparselu"
	case KindDenseLU:
		return "denselu"
	}
	return "unknown"
}

// CSC is a compressed-column sparse matrix. Complex data is carried as
// separated real/imaginary vectors; Imag is nil for real dtypes.
//
// Invariants (enforced by NewCSC): ColPtr is non-decreasing with
// len(ColPtr) == Cols+1, and row indices within each column are sorted
// with no duplicates.
type CSC struct {
	Rows   int
	Cols   int
	ColPtr []int
	RowIdx []int
	Real   []float64
	Imag   []float64
	DType  DType
}

// Dense is a dense right-hand-side or solution vector, with the same
// separated real/imaginary representation as CSC.
type Dense struct {
	N     int
	Real  []float64
	Imag  []float64
	DType DType
}

// Factorization holds explicit factors recovered from a completed sparse
// factorization such that P·R·A·Q = L·U, where P reindexes identity rows
// by RowPerm, Q reindexes identity columns by ColPerm, and R is
// diag(RowScale), or diag(1/RowScale) element-wise when RecipScale is set.
// L is unit lower triangular with rows(A) rows, U is upper triangular with
// cols(A) columns; the shared inner dimension is min(rows, cols).
// Immutable after creation.
type Factorization struct {
	L          *CSC
	U          *CSC
	RowPerm    []int
	ColPerm    []int
	RowScale   []float64
	RecipScale bool
}

// Backend is the uniform capability surface over one factorization
// backend. A Backend instance owns the state of at most one numeric
// factorization and is not safe for concurrent use; sharing one across
// goroutines requires external synchronization.
type Backend interface {
	Name() string
	// Supports reports whether the backend can factor the given dtype,
	// by upcast where the dtype is narrower than the native precision.
	Supports(d DType) bool
	// Numeric factors A and binds the result to this handle.
	Numeric(a *CSC) error
	// Solve runs forward/backward substitution against the factorization.
	// The result is returned at full (float64/complex128) precision.
	Solve(b *Dense) (*Dense, error)
	// Close releases factor storage. Idempotent; any use after Close
	// fails with ErrState.
	Close() error
}

// Decomposer is the optional capability of recovering explicit factors
// from a completed factorization. Only the sparse backend provides it.
type Decomposer interface {
	LU() (*Factorization, error)
}

// luEntry is one stored factor element. For L columns Row is the original
// (unpermuted) row index; for U columns it is the pivot position.
type luEntry struct {
	Row  int
	Real float64
	Imag float64
}
