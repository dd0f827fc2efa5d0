// SPDX-License-Identifier: MIT

// Package matrix provides the small, fixed-size numeric matrix used by every
// matrixtools screen.
//
// What & Why:
//
//	A Dense is a row-major float64 buffer that is rebuilt in full on every
//	user action: parsed from text, handed to a linear-algebra routine, then
//	discarded. The package keeps the safe surface (At/Set return errors,
//	NaN/Inf rejected under the default numeric policy), the shape validators
//	and a thin bridge to gonum.org/v1/gonum/mat, which performs the heavy
//	numerics (eigendecomposition, inversion, products).
//
// Complexity:
//
//	At/Set/Rows/Cols are O(1); Clone, Transpose and AllClose are O(r*c).
//	Matrices are at most a few dozen cells in practice.
package matrix
