// SPDX-License-Identifier: MIT

package screen

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/matrixtools/eigen"
	"github.com/katalvlaran/matrixtools/format"
	"github.com/katalvlaran/matrixtools/matrix"
	"github.com/katalvlaran/matrixtools/parse"
)

// ExamplePlaceholder pre-fills the eigenvector field. Its first line carries
// parse.ExampleMarker and is ignored; the remaining rows are valid input.
const ExamplePlaceholder = parse.ExampleMarker + " for a 2x2 matrix:\n1 0.5\n0.5 1"

// GeneratedHeading labels the generator's output.
const GeneratedHeading = "Generated Matrix (A = PDP⁻¹):"

// generatedSeparator spaces the generated matrix a little wider than the
// calculator output.
const generatedSeparator = "  "

// GenerateResult is what the generator shows after a successful Generate.
type GenerateResult struct {
	Values []float64
	P      *matrix.Dense // eigenvectors as columns
	Matrix *matrix.Dense // A = P·D·P⁻¹
	Text   string
}

// MatrixGenerator is the "Matrix Generator" screen: an eigenvalue field, an
// eigenvector text area (one vector per line) and a Generate action.
type MatrixGenerator struct {
	s       settings
	values  string
	vectors string
}

// NewMatrixGenerator returns a generator with an empty eigenvalue field and
// the example placeholder in the eigenvector area.
func NewMatrixGenerator(opts ...Option) *MatrixGenerator {
	return &MatrixGenerator{s: gatherSettings(opts...), vectors: ExamplePlaceholder}
}

// SetEigenvalues replaces the eigenvalue text ("2, 3").
func (g *MatrixGenerator) SetEigenvalues(text string) { g.values = text }

// SetEigenvectors replaces the eigenvector text (one vector per line).
func (g *MatrixGenerator) SetEigenvectors(text string) { g.vectors = text }

// Eigenvalues returns the current eigenvalue text.
func (g *MatrixGenerator) Eigenvalues() string { return g.values }

// Eigenvectors returns the current eigenvector text.
func (g *MatrixGenerator) Eigenvectors() string { return g.vectors }

// Generate parses both fields and computes A = P·D·P⁻¹.
//
// Errors (always *Alert), checked in this order:
//   - "Input Error" for bad eigenvalues, then for bad eigenvectors.
//   - "Dimension Mismatch" when P is not n×n for n eigenvalues.
//   - "Calculation Error" when P is singular.
func (g *MatrixGenerator) Generate() (*GenerateResult, error) {
	values, err := parse.Values(g.values)
	if err != nil {
		return nil, g.alert(newAlert(TitleInputError, msgBadValues, err))
	}
	p, err := parse.Vectors(g.vectors)
	if err != nil {
		return nil, g.alert(newAlert(TitleInputError, msgBadVectors, err))
	}
	n := len(values)
	if err = matrix.ValidateSize(p, n); err != nil {
		return nil, g.alert(newAlert(TitleDimensionMismatch, fmt.Sprintf(msgDimensionFmt, n, n, n),
			&eigen.DimensionError{Count: n, Rows: p.Rows(), Cols: p.Cols()}))
	}

	a, err := eigen.Reconstruct(values, p, g.s.eigenOptions()...)
	if err != nil {
		if errors.Is(err, eigen.ErrSingular) {
			return nil, g.alert(newAlert(TitleCalculationError, msgSingular, err))
		}

		return nil, g.alert(newAlert(TitleCalculationError, msgGenerateFailed, err))
	}
	text, err := format.Matrix(a, g.s.formatOptions(true, generatedSeparator)...)
	if err != nil {
		return nil, g.alert(newAlert(TitleCalculationError, msgGenerateFailed, err))
	}
	g.s.logger.Debug("matrix generated", zap.Int("size", n))

	return &GenerateResult{Values: values, P: p, Matrix: a, Text: GeneratedHeading + "\n" + text}, nil
}

func (g *MatrixGenerator) alert(a *Alert) *Alert {
	g.s.logger.Info("alert", zap.String("screen", Generator.String()),
		zap.String("title", a.Title), zap.Error(a.Err))

	return a
}
