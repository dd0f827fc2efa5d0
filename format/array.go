// SPDX-License-Identifier: MIT

package format

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/matrixtools/matrix"
)

// Vector renders values as "[a b c]", wrapping at the line width.
func Vector(values []float64, opts ...Option) string {
	o := gatherOptions(opts...)
	f := newFloatFormat(values, o, false)

	cells := make([]string, len(values))
	for i, v := range values {
		cells[i] = f.format(v)
	}

	return row(cells, o.Separator, " ", o.LineWidth-1)
}

// Matrix renders m as nested rows:
//
//	[[a b]
//	 [c d]]
func Matrix(m matrix.Matrix, opts ...Option) (string, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return "", err
	}
	r, c := m.Rows(), m.Cols()
	vals := make([]float64, 0, r*c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return "", err
			}
			vals = append(vals, v)
		}
	}

	o := gatherOptions(opts...)
	f := newFloatFormat(vals, o, false)

	return nested(r, c, o, func(i, j int) string { return f.format(vals[i*c+j]) }), nil
}

// ComplexVector renders complex values as "[a+bj c-dj]", or as a real vector
// when every imaginary part is within the imaginary epsilon.
func ComplexVector(values []complex128, opts ...Option) string {
	o := gatherOptions(opts...)
	re, im := splitComplex(values)
	if allSmall(im, o.ImagEpsilon) {
		return Vector(re, opts...)
	}
	fr := newFloatFormat(re, o, false)
	fi := newFloatFormat(im, o, true)

	cells := make([]string, len(values))
	for i := range values {
		cells[i] = complexCell(fr, fi, re[i], im[i])
	}

	return row(cells, o.Separator, " ", o.LineWidth-1)
}

// ComplexMatrix renders a complex matrix with the same rules as ComplexVector.
func ComplexMatrix(m mat.CMatrix, opts ...Option) string {
	r, c := m.Dims()
	vals := make([]complex128, 0, r*c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			vals = append(vals, m.At(i, j))
		}
	}

	o := gatherOptions(opts...)
	re, im := splitComplex(vals)
	fr := newFloatFormat(re, o, false)
	if allSmall(im, o.ImagEpsilon) {
		return nested(r, c, o, func(i, j int) string { return fr.format(re[i*c+j]) })
	}
	fi := newFloatFormat(im, o, true)

	return nested(r, c, o, func(i, j int) string {
		k := i*c + j
		return complexCell(fr, fi, re[k], im[k])
	})
}

// complexCell joins the real and imaginary parts. The imaginary padding goes
// after the 'j' so the number stays contiguous: "0.+1.j  ".
func complexCell(fr, fi floatFormat, re, im float64) string {
	s := fi.format(im)
	sp := len(strings.TrimRight(s, " "))

	return fr.format(re) + s[:sp] + "j" + s[sp:]
}

// nested lays out r×c cells in the bracketed multi-line form. Each row wraps
// on its own, with continuation lines indented under the first element.
func nested(r, c int, o Options, cell func(i, j int) string) string {
	sep := strings.TrimRight(o.Separator, " ")
	var b strings.Builder
	b.WriteByte('[')
	cells := make([]string, c)
	for i := 0; i < r; i++ {
		if i > 0 {
			b.WriteString(sep)
			b.WriteString("\n ")
		}
		for j := 0; j < c; j++ {
			cells[j] = cell(i, j)
		}
		b.WriteString(row(cells, o.Separator, "  ", o.LineWidth-2))
	}
	b.WriteByte(']')

	return b.String()
}

// row brackets cells, starting a new line (prefixed by indent) whenever the
// next cell would reach past width. The first cell of a line never wraps.
func row(cells []string, sep, indent string, width int) string {
	var b strings.Builder
	line := indent
	for i, cell := range cells {
		if len(line)+len(cell) > width && len(line) > len(indent) {
			b.WriteString(strings.TrimRight(line, " "))
			b.WriteByte('\n')
			line = indent
		}
		line += cell
		if i < len(cells)-1 {
			line += sep
		}
	}
	b.WriteString(line)

	return "[" + b.String()[len(indent):] + "]"
}

func splitComplex(vals []complex128) (re, im []float64) {
	re = make([]float64, len(vals))
	im = make([]float64, len(vals))
	for i, v := range vals {
		re[i], im[i] = real(v), imag(v)
	}

	return re, im
}

func allSmall(vals []float64, eps float64) bool {
	for _, v := range vals {
		if math.Abs(v) > eps {
			return false
		}
	}

	return true
}
