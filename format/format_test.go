// SPDX-License-Identifier: MIT
package format_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/matrixtools/format"
	"github.com/katalvlaran/matrixtools/matrix"
)

func TestFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		opts []format.Option
		want string
	}{
		{3, nil, "3."},
		{2.5, nil, "2.5"},
		{1.0 / 3, nil, "0.3333"},
		{-0.00001, []format.Option{format.WithSuppressSmall(true)}, "0."},
		{math.Copysign(0, -1), nil, "0."},
		{1.23456, []format.Option{format.WithPrecision(2)}, "1.23"},
		{7, []format.Option{format.WithPrecision(0)}, "7."},
		{2.5e9, nil, "2.5e+09"},
		{math.NaN(), nil, "nan "},
		{math.Inf(-1), nil, "-inf "},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, format.Float(tc.in, tc.opts...), "in=%v", tc.in)
	}
}

func TestVector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []float64
		opts []format.Option
		want string
	}{
		{"integers", []float64{3, 1}, nil, "[3. 1.]"},
		{"negative aligns", []float64{-1, 3}, nil, "[-1.  3.]"},
		{"fraction pads right", []float64{1.5, 2}, nil, "[1.5 2. ]"},
		{"precision cap", []float64{1.0 / 3, 2.0 / 3}, nil, "[0.3333 0.6667]"},
		{"scientific on wide range", []float64{1, 2000}, nil, "[1.e+00 2.e+03]"},
		{"scientific pads mantissa with zeros", []float64{1.5e-5, 1}, nil, "[1.5e-05 1.0e+00]"},
		{"suppress keeps fixed", []float64{1e-9, 1}, []format.Option{format.WithSuppressSmall(true)}, "[0. 1.]"},
		{"zeros only", []float64{0, 0}, nil, "[0. 0.]"},
		{"separator", []float64{1, 2}, []format.Option{format.WithSeparator(", ")}, "[1., 2.]"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, format.Vector(tc.in, tc.opts...))
		})
	}
}

func TestMatrix(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewFromRows([][]float64{{2, 1}, {0, 3}})
	require.NoError(t, err)

	got, err := format.Matrix(m)
	require.NoError(t, err)
	require.Equal(t, "[[2. 1.]\n [0. 3.]]", got)

	got, err = format.Matrix(m, format.WithSeparator("  "), format.WithSuppressSmall(true))
	require.NoError(t, err)
	require.Equal(t, "[[2.  1.]\n [0.  3.]]", got)

	neg, err := matrix.NewFromRows([][]float64{{0.7071, -0.7071}, {0.7071, 0.7071}})
	require.NoError(t, err)
	got, err = format.Matrix(neg)
	require.NoError(t, err)
	require.Equal(t, "[[ 0.7071 -0.7071]\n [ 0.7071  0.7071]]", got)

	// Round-off noise from P·D·P⁻¹ is hidden with SuppressSmall.
	noisy, err := matrix.NewFromRows([][]float64{{2, 1e-16}, {-3e-17, 3}})
	require.NoError(t, err)
	got, err = format.Matrix(noisy, format.WithSuppressSmall(true))
	require.NoError(t, err)
	require.Equal(t, "[[2. 0.]\n [0. 3.]]", got)

	_, err = format.Matrix(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestComplexVector(t *testing.T) {
	t.Parallel()

	require.Equal(t, "[0.+1.j 0.-1.j]", format.ComplexVector([]complex128{complex(0, 1), complex(0, -1)}))
	require.Equal(t, "[ 1.5+2.j -1. -2.j]", format.ComplexVector([]complex128{complex(1.5, 2), complex(-1, -2)}))
	// Negligible imaginary parts collapse to real output.
	require.Equal(t, "[2. 3.]", format.ComplexVector([]complex128{complex(2, 1e-15), 3}))
}

func TestComplexMatrix(t *testing.T) {
	t.Parallel()

	re := mat.NewCDense(2, 2, []complex128{1, 0, 0, 1})
	require.Equal(t, "[[1. 0.]\n [0. 1.]]", format.ComplexMatrix(re))

	c := mat.NewCDense(1, 2, []complex128{complex(0.5, 0.5), complex(0.5, -0.5)})
	require.Equal(t, "[[0.5+0.5j 0.5-0.5j]]", format.ComplexMatrix(c))
}

func TestWithPrecision_Panics(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, "format: WithPrecision: precision must be in [0, 17]", func() { format.WithPrecision(-1) })
	require.Panics(t, func() { format.WithPrecision(18) })
}

func TestComplexMatrix_UnevenImaginaryWidths(t *testing.T) {
	t.Parallel()

	// Eigenvectors of the quarter-turn rotation [[0 -1] [1 0]].
	negZero := math.Copysign(0, -1)
	v := mat.NewCDense(2, 2, []complex128{
		complex(0.7071, 0), complex(0.7071, negZero),
		complex(0, -0.7071), complex(0, 0.7071),
	})
	require.Equal(t,
		"[[0.7071+0.j     0.7071-0.j    ]\n [0.    -0.7071j 0.    +0.7071j]]",
		format.ComplexMatrix(v))
	require.Equal(t,
		"[0.7071+0.j     0.    -0.7071j]",
		format.ComplexVector([]complex128{complex(0.7071, 0), complex(0, -0.7071)}))
}

func TestVector_SharedExponentWidth(t *testing.T) {
	t.Parallel()

	require.Equal(t, "[1.e-120 1.e+000]", format.Vector([]float64{1e-120, 1}))
	require.Equal(t, "[1.e-05 1.e+00]", format.Vector([]float64{1e-5, 1}))
}

func TestLineWrapping(t *testing.T) {
	t.Parallel()

	seq := func(n int) []float64 {
		out := make([]float64, n)
		for i := range out {
			out[i] = float64(i)
		}
		return out
	}

	require.Equal(t,
		"[ 0.  1.  2.  3.  4.  5.  6.  7.  8.  9. 10. 11. 12. 13. 14. 15. 16. 17.\n"+
			" 18. 19. 20. 21. 22. 23. 24. 25. 26. 27. 28. 29.]",
		format.Vector(seq(30)))

	m, err := matrix.NewDense(1, 20)
	require.NoError(t, err)
	for j := 0; j < 20; j++ {
		require.NoError(t, m.Set(0, j, float64(j)))
	}
	got, err := format.Matrix(m)
	require.NoError(t, err)
	require.Equal(t,
		"[[ 0.  1.  2.  3.  4.  5.  6.  7.  8.  9. 10. 11. 12. 13. 14. 15. 16. 17.\n"+
			"  18. 19.]]",
		got)

	require.Equal(t, "[1. 2.\n 3. 4.\n 5.]", format.Vector([]float64{1, 2, 3, 4, 5}, format.WithLineWidth(8)))
	// A single cell wider than the line still stays on the first line.
	require.Equal(t, "[1.5\n 2. ]", format.Vector([]float64{1.5, 2}, format.WithLineWidth(2)))
}

func TestWithLineWidth_Panics(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, "format: WithLineWidth: width must be >= 1", func() { format.WithLineWidth(0) })
}
