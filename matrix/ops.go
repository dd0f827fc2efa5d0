// SPDX-License-Identifier: MIT

// Package matrix: structural helpers shared by the screens.
//
// Purpose:
//   - Build identity/diagonal matrices and transposes without going through gonum.
//   - Compare matrices within tolerance (AllClose) for round-trip checks.
//
// Heavy numerics (eigendecomposition, inversion, products) are NOT implemented
// here; see package eigen, which delegates them to gonum.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opIdentity  = "Identity"
	opDiag      = "Diag"
	opTranspose = "Transpose"
	opAllClose  = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// NewIdentity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions when n <= 0.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// NewDiag returns the square matrix D with D[i,i] = values[i].
//
// Errors:
//   - ErrInvalidDimensions for an empty slice.
//   - ErrNaNInf for non-finite values.
//
// Complexity:
//   - Time O(n²) (zero fill), Space O(n²).
func NewDiag(values []float64) (*Dense, error) {
	n := len(values)
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opDiag, err)
	}
	for i, v := range values {
		if isNonFinite(v) {
			return nil, matrixErrorf(opDiag, denseErrorf(ctxSet, i, i, ErrNaNInf))
		}
		m.data[i*n+i] = v
	}

	return m, nil
}

// Transpose returns a fresh Dense with out[j,i] = m[i,j].
//
// Implementation:
//   - Stage 1: ValidateNotNil; allocate c×r result.
//   - Stage 2: fast-path on *Dense (flat indexing); otherwise At-based fallback.
//
// Behavior highlights:
//   - The input is never mutated; the numeric policy of a *Dense input is kept.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	r, c := m.Rows(), m.Cols()
	out, err := NewDense(c, r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if d, ok := m.(*Dense); ok {
		out.validateNaNInf = d.validateNaNInf
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				out.data[j*r+i] = d.data[i*c+j]
			}
		}

		return out, nil
	}

	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			out.data[j*r+i] = v
		}
	}

	return out, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN never compares close; equal infinities do.
//
// Policy:
//   - a and b must be non-nil and have identical shapes (ErrDimensionMismatch).
//   - rtol, atol are treated as |rtol|, |atol|.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !closeTo(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// closeTo is the scalar relation behind AllClose.
func closeTo(a, b, rtol, atol float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}
