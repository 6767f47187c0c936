package linsolve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"linsolve"
)

func TestSelectBackend(t *testing.T) {
	cases := []struct {
		name         string
		dtype        linsolve.DType
		preferSparse bool
		want         linsolve.BackendKind
	}{
		{"float64 preferred", linsolve.Float64, true, linsolve.KindSparseLU},
		{"float32 preferred", linsolve.Float32, true, linsolve.KindSparseLU},
		{"complex128 preferred", linsolve.Complex128, true, linsolve.KindSparseLU},
		{"complex64 preferred", linsolve.Complex64, true, linsolve.KindSparseLU},
		{"float64 fallback", linsolve.Float64, false, linsolve.KindDenseLU},
		{"float32 fallback", linsolve.Float32, false, linsolve.KindDenseLU},
		// No complex path in the fallback: routed to the sparse backend.
		{"complex128 fallback", linsolve.Complex128, false, linsolve.KindSparseLU},
		{"complex64 fallback", linsolve.Complex64, false, linsolve.KindSparseLU},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := linsolve.SelectBackend(tc.dtype, tc.preferSparse)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestSelectBackendInvalidDType(t *testing.T) {
	_, err := linsolve.SelectBackend(linsolve.DType(0), true)
	require.ErrorIs(t, err, linsolve.ErrUnsupportedType)
}

func TestNewBackend(t *testing.T) {
	for _, kind := range []linsolve.BackendKind{linsolve.KindSparseLU, linsolve.KindDenseLU} {
		be, err := linsolve.NewBackend(kind)
		require.NoError(t, err)
		require.Equal(t, kind.String(), be.Name())
	}

	_, err := linsolve.NewBackend(linsolve.KindAuto)
	require.ErrorIs(t, err, linsolve.ErrUnsupportedBackend)
}

func TestBackendSupports(t *testing.T) {
	sparse, err := linsolve.NewBackend(linsolve.KindSparseLU)
	require.NoError(t, err)
	dense, err := linsolve.NewBackend(linsolve.KindDenseLU)
	require.NoError(t, err)

	for _, d := range []linsolve.DType{linsolve.Float32, linsolve.Float64, linsolve.Complex64, linsolve.Complex128} {
		require.True(t, sparse.Supports(d), "sparse backend should support %s", d)
	}
	require.True(t, dense.Supports(linsolve.Float32))
	require.True(t, dense.Supports(linsolve.Float64))
	require.False(t, dense.Supports(linsolve.Complex64))
	require.False(t, dense.Supports(linsolve.Complex128))
}
