// SPDX-License-Identifier: MIT

package spectrum

import "gonum.org/v1/plot/vg"

// Defaults.
const (
	DefaultTitle = "Eigenvalue spectrum"
	DefaultSize  = 4 * vg.Inch
)

// Option configures a plot.
type Option func(*options)

type options struct {
	title      string
	width      vg.Length
	height     vg.Length
	unitCircle bool
	labels     bool
	precision  int
}

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithSize sets the canvas size. Panics on non-positive dimensions.
func WithSize(w, h vg.Length) Option {
	if w <= 0 || h <= 0 {
		panic("spectrum: WithSize: width and height must be > 0")
	}

	return func(o *options) { o.width, o.height = w, h }
}

// WithUnitCircle draws the dashed unit circle |λ| = 1.
func WithUnitCircle(on bool) Option {
	return func(o *options) { o.unitCircle = on }
}

// WithLabels annotates each point with its value, printed with precision digits.
// Panics when precision is negative.
func WithLabels(precision int) Option {
	if precision < 0 {
		panic("spectrum: WithLabels: precision must be >= 0")
	}

	return func(o *options) { o.labels, o.precision = true, precision }
}

func gatherOptions(user ...Option) options {
	o := options{title: DefaultTitle, width: DefaultSize, height: DefaultSize}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
