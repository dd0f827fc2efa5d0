// SPDX-License-Identifier: MIT

package spectrum

import "errors"

var (
	// ErrNoValues indicates an empty eigenvalue list.
	ErrNoValues = errors.New("spectrum: no eigenvalues to plot")

	// ErrNonFinite indicates a NaN or ±Inf real or imaginary part.
	ErrNonFinite = errors.New("spectrum: non-finite eigenvalue")

	// ErrUnsupportedFormat indicates an output format other than png, svg or pdf.
	ErrUnsupportedFormat = errors.New("spectrum: unsupported output format")
)
