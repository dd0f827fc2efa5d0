// SPDX-License-Identifier: MIT

package screen

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/matrixtools/eigen"
	"github.com/katalvlaran/matrixtools/format"
	"github.com/katalvlaran/matrixtools/matrix"
	"github.com/katalvlaran/matrixtools/parse"
)

// ErrSizeOutOfRange is the cause behind the size alert.
var ErrSizeOutOfRange = errors.New("screen: matrix size out of range")

// Result headings.
const (
	headingEigenvalues  = "Eigenvalues:"
	headingEigenvectors = "Eigenvectors (as columns):"
)

// EigenResult is what the calculator shows after a successful Calculate.
type EigenResult struct {
	Matrix        *matrix.Dense
	Decomposition *eigen.Decomposition
	Text          string
}

// EigenCalculator is the "Eigenvalue Calculator" screen: an N×N grid of text
// cells and a Calculate action.
type EigenCalculator struct {
	s     settings
	size  int
	cells [][]string
}

// NewEigenCalculator returns a calculator with an empty DefaultSize grid.
func NewEigenCalculator(opts ...Option) *EigenCalculator {
	c := &EigenCalculator{s: gatherSettings(opts...)}
	c.resize(min(DefaultSize, c.s.maxSize))

	return c
}

// Size returns the current grid size N.
func (c *EigenCalculator) Size() int { return c.size }

// MaxSize returns the largest accepted N.
func (c *EigenCalculator) MaxSize() int { return c.s.maxSize }

// SetSize rebuilds an empty n×n grid. Previous cell text is discarded.
func (c *EigenCalculator) SetSize(n int) error {
	if n < 1 || n > c.s.maxSize {
		return newAlert(TitleInputError, fmt.Sprintf(msgSizeRangeFmt, c.s.maxSize),
			fmt.Errorf("size %d: %w", n, ErrSizeOutOfRange))
	}
	c.resize(n)

	return nil
}

func (c *EigenCalculator) resize(n int) {
	c.size = n
	c.cells = make([][]string, n)
	for i := range c.cells {
		c.cells[i] = make([]string, n)
	}
}

// SetCell stores the raw text of cell (i, j).
func (c *EigenCalculator) SetCell(i, j int, text string) error {
	if i < 0 || i >= c.size || j < 0 || j >= c.size {
		return fmt.Errorf("screen: cell (%d,%d): %w", i, j, matrix.ErrOutOfRange)
	}
	c.cells[i][j] = text

	return nil
}

// SetRow stores the raw text of row i; len(texts) must equal Size().
func (c *EigenCalculator) SetRow(i int, texts []string) error {
	if i < 0 || i >= c.size {
		return fmt.Errorf("screen: row %d: %w", i, matrix.ErrOutOfRange)
	}
	if len(texts) != c.size {
		return fmt.Errorf("screen: row %d has %d cells, want %d: %w",
			i, len(texts), c.size, matrix.ErrDimensionMismatch)
	}
	copy(c.cells[i], texts)

	return nil
}

// Load resizes the grid to fit row-per-line text and fills the cells.
// Cells are stored as raw tokens; number parsing happens in Calculate, so
// "1 x" loads fine and fails there with the usual alert.
func (c *EigenCalculator) Load(text string) error {
	var rows [][]string
	for _, line := range strings.Split(strings.ReplaceAll(text, ";", "\n"), "\n") {
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\r'
		})
		if len(fields) > 0 {
			rows = append(rows, fields)
		}
	}
	n := len(rows)
	if n == 0 {
		return newAlert(TitleInputError, msgBadCells, parse.ErrEmptyInput)
	}
	for _, r := range rows {
		if len(r) != n {
			return newAlert(TitleInputError, msgBadCells,
				fmt.Errorf("%d rows but a row has %d values: %w", n, len(r), matrix.ErrNonSquare))
		}
	}
	if err := c.SetSize(n); err != nil {
		return err
	}
	for i, r := range rows {
		copy(c.cells[i], r)
	}

	return nil
}

// Cells returns a copy of the grid text.
func (c *EigenCalculator) Cells() [][]string {
	out := make([][]string, c.size)
	for i := range c.cells {
		out[i] = append([]string(nil), c.cells[i]...)
	}

	return out
}

// Calculate parses the grid and computes its eigenpairs.
//
// Errors (always *Alert):
//   - "Input Error" when any cell is not a number.
//   - "Calculation Error" when the eigensolver fails.
func (c *EigenCalculator) Calculate() (*EigenResult, error) {
	m, err := parse.Grid(c.cells)
	if err != nil {
		return nil, c.alert(newAlert(TitleInputError, msgBadCells, err))
	}
	d, err := eigen.Decompose(m, c.s.eigenOptions()...)
	if err != nil {
		return nil, c.alert(newAlert(TitleCalculationError, msgEigenFailed, err))
	}

	opts := c.s.formatOptions(c.s.suppressSmall, format.DefaultSeparator)
	var b strings.Builder
	b.WriteString(headingEigenvalues)
	b.WriteByte('\n')
	b.WriteString(format.ComplexVector(d.Values, opts...))
	b.WriteString("\n\n")
	b.WriteString(headingEigenvectors)
	b.WriteByte('\n')
	b.WriteString(format.ComplexMatrix(d.Vectors, opts...))

	c.s.logger.Debug("eigenvalues calculated",
		zap.Int("size", c.size),
		zap.Bool("real", d.IsReal(c.s.eps)))

	return &EigenResult{Matrix: m, Decomposition: d, Text: b.String()}, nil
}

func (c *EigenCalculator) alert(a *Alert) *Alert {
	c.s.logger.Info("alert", zap.String("screen", Calculator.String()),
		zap.String("title", a.Title), zap.Error(a.Err))

	return a
}
