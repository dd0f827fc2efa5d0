// SPDX-License-Identifier: MIT

// Package eigen computes eigenpairs of small square matrices and rebuilds a
// matrix from its eigenpairs.
//
// The numerics are delegated to gonum.org/v1/gonum/mat:
//
//   - Decompose uses mat.Eigen (LAPACK dgeev semantics: right eigenvectors,
//     unit Euclidean norm, complex conjugate pairs for real non-symmetric
//     input), or mat.EigenSym when WithSymmetric is set and the input is
//     symmetric within eps.
//   - Reconstruct computes A = P·D·P⁻¹ with mat.Dense.Inverse and
//     mat.Dense.Product. A singular or near-singular P (gonum reports a
//     mat.Condition) is rejected with ErrSingular.
//
// Round trip:
//
//	d, _ := eigen.Decompose(a)
//	p, _ := d.RealVectors()
//	b, _ := eigen.Reconstruct(d.RealValues(), p) // b ≈ a when eigenvalues are real
package eigen
