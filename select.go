package linsolve

import "fmt"

// options is the per-call configuration. There is no process-wide mutable
// preference; everything is threaded explicitly through each top-level
// call so behavior stays deterministic under concurrent use.
type options struct {
	preferSparse bool
	forced       BackendKind
	relThreshold float64
	annotate     int
}

// Option adjusts one solve or factorization call.
type Option func(*options)

// WithFallback disables the sparse-backend preference, selecting the
// dense fallback for the numeric types it supports.
func WithFallback() Option {
	return func(o *options) { o.preferSparse = false }
}

// WithBackend forces a specific backend, bypassing selection. Forcing a
// backend onto a dtype it cannot serve fails with ErrUnsupportedType.
func WithBackend(k BackendKind) Option {
	return func(o *options) { o.forced = k }
}

// WithPivotThreshold sets the relative threshold for accepting a diagonal
// pivot in the sparse backend. Values outside (0, 1] keep the default.
func WithPivotThreshold(t float64) Option {
	return func(o *options) {
		if t > 0.0 && t <= 1.0 {
			o.relThreshold = t
		}
	}
}

// WithAnnotate enables factorization status output: 0 none, 1 pivots,
// 2 full.
func WithAnnotate(level int) Option {
	return func(o *options) { o.annotate = level }
}

func buildOptions(opts []Option) options {
	o := options{
		preferSparse: true,
		forced:       KindAuto,
		relThreshold: 0.001,
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// SelectBackend chooses the backend for a matrix dtype. The sparse
// backend serves every supported dtype; the dense fallback serves only
// the real ones. Complex input with the sparse preference disabled is
// still routed to the sparse backend rather than rejected, since the
// fallback has no complex path. Pure: no state is read or written.
func SelectBackend(d DType, preferSparse bool) (BackendKind, error) {
	if !d.Valid() {
		return KindAuto, fmt.Errorf("%w: dtype tag %d", ErrUnsupportedType, d)
	}
	if preferSparse || d.IsComplex() {
		return KindSparseLU, nil
	}
	return KindDenseLU, nil
}

// NewBackend instantiates a registered backend. This is the whole
// registry: two concrete implementations selected by explicit policy,
// never by runtime feature probing.
func NewBackend(kind BackendKind, opts ...Option) (Backend, error) {
	o := buildOptions(opts)
	return newBackend(kind, o)
}

func newBackend(kind BackendKind, o options) (Backend, error) {
	switch kind {
	case KindSparseLU:
		return &SparseLU{opts: o}, nil
	case KindDenseLU:
		return &DenseLU{opts: o}, nil
	}
	return nil, fmt.Errorf("%w: kind %d", ErrUnsupportedBackend, kind)
}

// pickBackend resolves the configured choice for a dtype and builds the
// handle, verifying capability when a backend was forced.
func pickBackend(d DType, o options) (Backend, error) {
	kind := o.forced
	if kind == KindAuto {
		var err error
		kind, err = SelectBackend(d, o.preferSparse)
		if err != nil {
			return nil, err
		}
	}
	be, err := newBackend(kind, o)
	if err != nil {
		return nil, err
	}
	if !be.Supports(d) {
		return nil, fmt.Errorf("%w: %s backend cannot factor %s input", ErrUnsupportedType, be.Name(), d)
	}
	return be, nil
}
