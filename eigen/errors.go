// SPDX-License-Identifier: MIT

package eigen

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matrixtools/matrix"
)

var (
	// ErrFactorization is returned when the eigensolver does not converge.
	ErrFactorization = errors.New("eigen: eigendecomposition failed")

	// ErrSingular is returned when the eigenvector matrix cannot be inverted.
	ErrSingular = errors.New("eigen: eigenvector matrix is singular")

	// ErrComplex is returned when a real view is requested of complex eigenpairs.
	ErrComplex = errors.New("eigen: eigenpairs are complex")
)

// DimensionError reports an eigenvalue count that does not match the
// eigenvector matrix. It unwraps to matrix.ErrDimensionMismatch.
type DimensionError struct {
	Count      int // number of eigenvalues entered
	Rows, Cols int // shape of the eigenvector matrix P
}

// Error implements error.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("eigen: %d eigenvalues but eigenvector matrix is %dx%d, want %dx%d",
		e.Count, e.Rows, e.Cols, e.Count, e.Count)
}

// Unwrap exposes the matrix sentinel to errors.Is.
func (e *DimensionError) Unwrap() error { return matrix.ErrDimensionMismatch }

// opErrorf tags err with the operation name.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
