// SPDX-License-Identifier: MIT

package format

import "github.com/katalvlaran/matrixtools/matrix"

// Defaults.
const (
	DefaultPrecision = 4
	DefaultSeparator = " "
	MaxPrecision     = 17
	DefaultLineWidth = 75
)

const (
	panicPrecisionInvalid = "format: WithPrecision: precision must be in [0, 17]"
	panicLineWidthInvalid = "format: WithLineWidth: width must be >= 1"
)

// Option configures rendering.
type Option func(*Options)

// Options holds the effective rendering settings.
type Options struct {
	Precision     int
	SuppressSmall bool
	Separator     string
	ImagEpsilon   float64
	LineWidth     int
}

// WithPrecision sets the maximum number of fractional digits.
// Panics when p is outside [0, MaxPrecision].
func WithPrecision(p int) Option {
	if p < 0 || p > MaxPrecision {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.Precision = p }
}

// WithSuppressSmall forces fixed notation; values that round to zero print as 0.
func WithSuppressSmall(on bool) Option {
	return func(o *Options) { o.SuppressSmall = on }
}

// WithSeparator sets the text placed between elements.
func WithSeparator(sep string) Option {
	return func(o *Options) { o.Separator = sep }
}

// WithImagEpsilon sets the tolerance under which imaginary parts are dropped.
func WithImagEpsilon(eps float64) Option {
	return func(o *Options) { o.ImagEpsilon = eps }
}

// WithLineWidth sets the column at which rows wrap onto continuation lines.
// Panics when n < 1.
func WithLineWidth(n int) Option {
	if n < 1 {
		panic(panicLineWidthInvalid)
	}

	return func(o *Options) { o.LineWidth = n }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		Precision:   DefaultPrecision,
		Separator:   DefaultSeparator,
		ImagEpsilon: matrix.DefaultEpsilon,
		LineWidth:   DefaultLineWidth,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
