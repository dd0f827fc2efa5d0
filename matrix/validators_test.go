// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matrixtools/matrix"
)

func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(MustFromRows(t, [][]float64{{1}})))
}

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"1x1", MustFromRows(t, [][]float64{{1}}), nil},
		{"2x2", MustFromRows(t, [][]float64{{1, 2}, {3, 4}}), nil},
		{"2x3", MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}), matrix.ErrNonSquare},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquare(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidateSize(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, matrix.ValidateSize(m, 2))
	require.ErrorIs(t, matrix.ValidateSize(m, 3), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSize(nil, 3), matrix.ErrNilMatrix)
}

func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{1, 2, 3}})
	b := MustFromRows(t, [][]float64{{1}, {2}, {3}})
	require.NoError(t, matrix.ValidateSameShape(a, a))
	require.ErrorIs(t, matrix.ValidateSameShape(a, b), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameShape(nil, b), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSameShape(a, nil), matrix.ErrNilMatrix)
}

func TestValidateFinite(t *testing.T) {
	t.Parallel()

	ok := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, matrix.ValidateFinite(ok))
	require.NoError(t, matrix.ValidateFinite(hide{ok}))

	bad, err := matrix.NewFromRows([][]float64{{1, math.NaN()}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateFinite(bad), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateFinite(hide{bad}), matrix.ErrNaNInf)
}

func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	sym := MustFromRows(t, [][]float64{{2, 1}, {1, 2}})
	require.NoError(t, matrix.ValidateSymmetric(sym, 0))
	require.True(t, matrix.IsSymmetric(sym, 0))

	near := MustFromRows(t, [][]float64{{2, 1}, {1 + 1e-12, 2}})
	require.NoError(t, matrix.ValidateSymmetric(near, matrix.DefaultEpsilon))
	require.ErrorIs(t, matrix.ValidateSymmetric(near, 0), matrix.ErrAsymmetry)

	asym := MustFromRows(t, [][]float64{{0, -1}, {1, 0}})
	require.ErrorIs(t, matrix.ValidateSymmetric(asym, matrix.DefaultEpsilon), matrix.ErrAsymmetry)
	require.False(t, matrix.IsSymmetric(asym, matrix.DefaultEpsilon))

	rect := MustFromRows(t, [][]float64{{1, 2}})
	require.ErrorIs(t, matrix.ValidateSymmetric(rect, 0), matrix.ErrNonSquare)
}
