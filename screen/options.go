// SPDX-License-Identifier: MIT

package screen

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/matrixtools/eigen"
	"github.com/katalvlaran/matrixtools/format"
	"github.com/katalvlaran/matrixtools/matrix"
)

// Defaults.
const (
	DefaultSize    = 2
	DefaultMaxSize = 10
)

// Option configures the screens and the shell.
type Option func(*settings)

type settings struct {
	maxSize       int
	precision     int
	suppressSmall bool
	symmetric     bool
	eps           float64
	logger        *zap.Logger
}

// WithMaxSize caps the calculator's matrix size. Panics when n < 1.
func WithMaxSize(n int) Option {
	if n < 1 {
		panic("screen: WithMaxSize: n must be >= 1")
	}

	return func(s *settings) { s.maxSize = n }
}

// WithPrecision sets the printed precision. Panics like format.WithPrecision.
func WithPrecision(p int) Option {
	format.WithPrecision(p) // validation only
	return func(s *settings) { s.precision = p }
}

// WithSuppressSmall prints round-off noise as zero on the calculator screen
// too. The generator always suppresses.
func WithSuppressSmall(on bool) Option {
	return func(s *settings) { s.suppressSmall = on }
}

// WithSymmetric routes symmetric inputs to the symmetric eigensolver.
func WithSymmetric(on bool) Option {
	return func(s *settings) { s.symmetric = on }
}

// WithEpsilon sets the numeric tolerance. Panics like matrix.WithEpsilon.
func WithEpsilon(eps float64) Option {
	matrix.WithEpsilon(eps) // validation only
	return func(s *settings) { s.eps = eps }
}

// WithLogger attaches a logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

func gatherSettings(user ...Option) settings {
	s := settings{
		maxSize:   DefaultMaxSize,
		precision: format.DefaultPrecision,
		eps:       matrix.DefaultEpsilon,
		logger:    zap.NewNop(),
	}
	for _, set := range user {
		if set != nil {
			set(&s)
		}
	}

	return s
}

func (s settings) eigenOptions() []eigen.Option {
	opts := []eigen.Option{eigen.WithEpsilon(s.eps), eigen.WithLogger(s.logger)}
	if s.symmetric {
		opts = append(opts, eigen.WithSymmetric())
	}

	return opts
}

func (s settings) formatOptions(suppress bool, sep string) []format.Option {
	return []format.Option{
		format.WithPrecision(s.precision),
		format.WithSuppressSmall(suppress),
		format.WithSeparator(sep),
		format.WithImagEpsilon(s.eps),
	}
}
