// SPDX-License-Identifier: MIT

package eigen

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/matrixtools/matrix"
)

const (
	opDecompose   = "Decompose"
	opReconstruct = "Reconstruct"
	opVerify      = "Verify"
	opRealVectors = "RealVectors"
)

// Decomposition holds the eigenpairs of an n×n matrix.
// Values[k] belongs to column k of Vectors.
type Decomposition struct {
	Values  []complex128
	Vectors *mat.CDense

	// Symmetric reports whether the symmetric solver produced the result.
	Symmetric bool
}

// N returns the matrix order.
func (d *Decomposition) N() int { return len(d.Values) }

// IsReal reports whether every eigenvalue and eigenvector component has an
// imaginary part within eps.
func (d *Decomposition) IsReal(eps float64) bool {
	for _, v := range d.Values {
		if math.Abs(imag(v)) > eps {
			return false
		}
	}
	n := d.N()
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if math.Abs(imag(d.Vectors.At(i, j))) > eps {
				return false
			}
		}
	}

	return true
}

// RealValues returns the real parts of the eigenvalues.
func (d *Decomposition) RealValues() []float64 {
	out := make([]float64, len(d.Values))
	for i, v := range d.Values {
		out[i] = real(v)
	}

	return out
}

// RealVectors returns the real parts of the eigenvectors as a matrix whose
// columns are the eigenvectors. Complex eigenpairs (beyond DefaultEpsilon)
// yield ErrComplex.
func (d *Decomposition) RealVectors() (*matrix.Dense, error) {
	if !d.IsReal(matrix.DefaultEpsilon) {
		return nil, opErrorf(opRealVectors, ErrComplex)
	}
	n := d.N()
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, opErrorf(opRealVectors, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if err = out.Set(i, j, real(d.Vectors.At(i, j))); err != nil {
				return nil, opErrorf(opRealVectors, err)
			}
		}
	}

	return out, nil
}

// Decompose computes eigenvalues and right eigenvectors of a square matrix.
//
// Implementation:
//   - Stage 1: validate non-nil, square, finite input.
//   - Stage 2: with WithSymmetric and a symmetric input, factorize via
//     mat.EigenSym; otherwise via mat.Eigen(EigenRight).
//   - Stage 3: copy values/vectors into a Decomposition.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNaNInf.
//   - ErrFactorization when the solver does not converge.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Decompose(m matrix.Matrix, opts ...Option) (*Decomposition, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, opErrorf(opDecompose, err)
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return nil, opErrorf(opDecompose, err)
	}
	a, err := matrix.ToGonum(m)
	if err != nil {
		return nil, opErrorf(opDecompose, err)
	}
	n := m.Rows()

	if o.symmetric && matrix.IsSymmetric(m, o.eps) {
		d, err := decomposeSym(a, n)
		if err != nil {
			return nil, opErrorf(opDecompose, err)
		}
		o.logger.Debug("eigendecomposition", zap.Int("n", n), zap.Bool("symmetric", true))

		return d, nil
	}

	var eig mat.Eigen
	if ok := eig.Factorize(a, mat.EigenRight); !ok {
		return nil, opErrorf(opDecompose, ErrFactorization)
	}
	d := &Decomposition{
		Values:  eig.Values(nil),
		Vectors: mat.NewCDense(n, n, nil),
	}
	eig.VectorsTo(d.Vectors)
	o.logger.Debug("eigendecomposition",
		zap.Int("n", n),
		zap.Bool("symmetric", false),
		zap.Bool("real", d.IsReal(o.eps)))

	return d, nil
}

// decomposeSym runs the symmetric solver on the upper triangle of a.
func decomposeSym(a *mat.Dense, n int) (*Decomposition, error) {
	sym := mat.NewSymDense(n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			sym.SetSym(i, j, a.At(i, j))
		}
	}

	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return nil, ErrFactorization
	}
	vals := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	d := &Decomposition{
		Values:    make([]complex128, n),
		Vectors:   mat.NewCDense(n, n, nil),
		Symmetric: true,
	}
	for i = 0; i < n; i++ {
		d.Values[i] = complex(vals[i], 0)
		for j = 0; j < n; j++ {
			d.Vectors.Set(i, j, complex(vecs.At(i, j), 0))
		}
	}

	return d, nil
}

// Reconstruct returns A = P·D·P⁻¹ where D = diag(values) and the columns of p
// are the eigenvectors.
//
// Implementation:
//   - Stage 1: validate p (non-nil, finite) and len(values) == n == rows == cols.
//   - Stage 2: invert P with gonum; any mat.Condition error means singular.
//   - Stage 3: multiply P·D·P⁻¹ and copy back into a validating Dense.
//
// Errors:
//   - *DimensionError (matches matrix.ErrDimensionMismatch).
//   - ErrSingular for singular or numerically singular P.
//   - matrix.ErrNilMatrix, matrix.ErrNaNInf.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Reconstruct(values []float64, p matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateNotNil(p); err != nil {
		return nil, opErrorf(opReconstruct, err)
	}
	n := len(values)
	if n == 0 || p.Rows() != n || p.Cols() != n {
		return nil, opErrorf(opReconstruct, &DimensionError{Count: n, Rows: p.Rows(), Cols: p.Cols()})
	}
	if err := matrix.ValidateFinite(p); err != nil {
		return nil, opErrorf(opReconstruct, err)
	}
	diag, err := matrix.NewDiag(values)
	if err != nil {
		return nil, opErrorf(opReconstruct, err)
	}

	pg, err := matrix.ToGonum(p)
	if err != nil {
		return nil, opErrorf(opReconstruct, err)
	}
	var pinv mat.Dense
	if err = pinv.Inverse(pg); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			o.logger.Debug("eigenvector matrix not invertible", zap.Float64("condition", float64(cond)))
			return nil, opErrorf(opReconstruct, fmt.Errorf("condition number %g: %w", float64(cond), ErrSingular))
		}

		return nil, opErrorf(opReconstruct, err)
	}
	dg, err := matrix.ToGonum(diag)
	if err != nil {
		return nil, opErrorf(opReconstruct, err)
	}

	var a mat.Dense
	a.Product(pg, dg, &pinv)
	out, err := matrix.FromGonum(&a)
	if err != nil {
		return nil, opErrorf(opReconstruct, err)
	}
	o.logger.Debug("reconstructed matrix", zap.Int("n", n))

	return out, nil
}

// Verify checks A·v ≈ λ·v for every eigenpair of d, column by column.
// The residual max|A·v − λ·v| must not exceed tol·max(1, |λ|).
// Returns nil when every pair passes, or an error naming the first failure.
func Verify(a matrix.Matrix, d *Decomposition, tol float64) error {
	if err := matrix.ValidateSquare(a); err != nil {
		return opErrorf(opVerify, err)
	}
	if d == nil || d.N() != a.Rows() {
		return opErrorf(opVerify, matrix.ErrDimensionMismatch)
	}
	n := a.Rows()
	var i, j, k int
	for k = 0; k < n; k++ {
		lambda := d.Values[k]
		var worst float64
		for i = 0; i < n; i++ {
			var av complex128
			for j = 0; j < n; j++ {
				aij, err := a.At(i, j)
				if err != nil {
					return opErrorf(opVerify, err)
				}
				av += complex(aij, 0) * d.Vectors.At(j, k)
			}
			worst = math.Max(worst, cmplx.Abs(av-lambda*d.Vectors.At(i, k)))
		}
		if worst > tol*math.Max(1, cmplx.Abs(lambda)) {
			return opErrorf(opVerify, fmt.Errorf("eigenpair %d: residual %g exceeds %g: %w",
				k, worst, tol, ErrFactorization))
		}
	}

	return nil
}
