// SPDX-License-Identifier: MIT

package eigen

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/matrixtools/matrix"
)

// Option configures Decompose, Reconstruct and Verify.
type Option func(*options)

type options struct {
	eps       float64
	symmetric bool
	logger    *zap.Logger
}

// WithEpsilon sets the tolerance used for symmetry detection and for deciding
// whether eigenpairs are real. Panics on negative or non-finite eps (it reuses
// matrix.WithEpsilon validation).
func WithEpsilon(eps float64) Option {
	matrix.WithEpsilon(eps) // validation only
	return func(o *options) { o.eps = eps }
}

// WithSymmetric enables the symmetric solver for inputs that are symmetric
// within eps. Eigenvalues are then real and ascending, eigenvectors orthonormal.
func WithSymmetric() Option {
	return func(o *options) { o.symmetric = true }
}

// WithLogger attaches a logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(user ...Option) options {
	o := options{
		eps:    matrix.DefaultEpsilon,
		logger: zap.NewNop(),
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
