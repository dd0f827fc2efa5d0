// SPDX-License-Identifier: MIT

// Package spectrum plots eigenvalues in the complex plane.
//
// Each eigenvalue λ becomes a point (Re λ, Im λ). A dashed unit circle and
// per-point labels are optional. Plots are written as PNG, SVG or PDF via
// gonum.org/v1/plot; the format follows the file extension.
//
//	d, _ := eigen.Decompose(a)
//	err := spectrum.Save(d.Values, "spectrum.svg", spectrum.WithUnitCircle(true))
package spectrum
