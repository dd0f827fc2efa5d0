// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matrixtools/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsColsShape verifies dimension accessors.
func TestRowsColsShape(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
	require.Contains(t, m.Set(2, 0, 1).Error(), "Dense.Set(2,0)")
}

// TestSetRejectsNonFinite covers the default numeric policy.
func TestSetRejectsNonFinite(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
	require.NoError(t, m.Set(0, 0, -0.5))
	require.Equal(t, -0.5, MustAt(t, m, 0, 0))
}

func TestNewFromRows(t *testing.T) {
	t.Parallel()

	src := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m := MustFromRows(t, src)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, 6.0, MustAt(t, m, 1, 2))

	// The matrix owns its buffer.
	src[0][0] = 100
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m.RowsData())
}

func TestNewFromRows_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]float64
		want error
	}{
		{"nil", nil, matrix.ErrInvalidDimensions},
		{"empty first row", [][]float64{{}}, matrix.ErrInvalidDimensions},
		{"ragged", [][]float64{{1, 2}, {3}}, matrix.ErrRaggedRows},
		{"nan", [][]float64{{1, math.NaN()}}, matrix.ErrNaNInf},
		{"inf", [][]float64{{math.Inf(1)}}, matrix.ErrNaNInf},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := matrix.NewFromRows(tc.rows)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewFromRows_NoValidate(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewFromRows([][]float64{{math.Inf(1)}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.True(t, math.IsInf(MustAt(t, m, 0, 0), 1))
	// The relaxed policy survives Clone.
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, math.NaN()))
}

// TestCloneIndependence verifies Clone produces a deep copy.
func TestCloneIndependence(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 9.0, MustAt(t, c, 0, 0))
}

func TestRow(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)
	row[0] = 42
	require.Equal(t, 3.0, MustAt(t, m, 1, 0))

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestString(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2.5}, {-3, 0}})
	require.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())
}
