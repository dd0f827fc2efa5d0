// SPDX-License-Identifier: MIT

package parse

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/matrixtools/matrix"
)

// ExampleMarker flags placeholder lines in eigenvector text. Lines containing
// it are ignored by Vectors so the pre-filled hint never becomes data.
const ExampleMarker = "Example"

// Number parses a single token.
// Surrounding whitespace is ignored; the token must be a finite decimal number.
func Number(token string) (float64, error) {
	s := strings.TrimSpace(token)
	if s == "" || strings.ContainsAny(s, "xX_") {
		return 0, ErrInvalidNumber
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidNumber
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidNumber
	}

	return v, nil
}

// Values parses a flat list such as "2, 3" or "1 -1; 0.5".
// At least one value is required.
func Values(text string) ([]float64, error) {
	tokens := strings.FieldsFunc(text, isValueSep)
	if len(tokens) == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]float64, len(tokens))
	for i, tok := range tokens {
		v, err := Number(tok)
		if err != nil {
			return nil, &TokenError{Token: tok, Index: i + 1, Err: err}
		}
		out[i] = v
	}

	return out, nil
}

// Rows parses row-per-line text into row slices.
// Blank lines are skipped; rows may differ in length (callers decide).
func Rows(text string) ([][]float64, error) {
	return rows(text, false)
}

// Matrix parses row-per-line text into a square matrix.
//
// Errors:
//   - ErrEmptyInput, *TokenError (ErrInvalidNumber).
//   - matrix.ErrRaggedRows, matrix.ErrNonSquare.
func Matrix(text string) (*matrix.Dense, error) {
	rs, err := rows(text, false)
	if err != nil {
		return nil, err
	}
	m, err := matrix.NewFromRows(rs)
	if err != nil {
		return nil, err
	}
	if err = matrix.ValidateSquare(m); err != nil {
		return nil, err
	}

	return m, nil
}

// Vectors parses eigenvector text: one vector per line.
// The result is P, whose COLUMNS are the entered vectors. Lines containing
// ExampleMarker are skipped.
//
// Errors:
//   - ErrEmptyInput, *TokenError (ErrInvalidNumber), matrix.ErrRaggedRows.
func Vectors(text string) (*matrix.Dense, error) {
	rs, err := rows(text, true)
	if err != nil {
		return nil, err
	}
	vecs, err := matrix.NewFromRows(rs)
	if err != nil {
		return nil, err
	}

	return matrix.Transpose(vecs)
}

// Grid parses an n×n grid of cell texts, as entered cell by cell.
// Every cell must hold a number; an empty cell is an error.
func Grid(cells [][]string) (*matrix.Dense, error) {
	n := len(cells)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	out := make([][]float64, n)
	for i, row := range cells {
		if len(row) != n {
			return nil, fmt.Errorf("grid row %d has %d cells, want %d: %w",
				i+1, len(row), n, matrix.ErrNonSquare)
		}
		out[i] = make([]float64, n)
		for j, cell := range row {
			v, err := Number(cell)
			if err != nil {
				return nil, &TokenError{Token: cell, Line: i + 1, Index: j + 1, Err: err}
			}
			out[i][j] = v
		}
	}

	return matrix.NewFromRows(out)
}

func rows(text string, skipExample bool) ([][]float64, error) {
	lines := strings.Split(strings.ReplaceAll(text, ";", "\n"), "\n")

	var out [][]float64
	for li, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if skipExample && strings.Contains(line, ExampleMarker) {
			continue
		}
		tokens := strings.FieldsFunc(line, isRowSep)
		row := make([]float64, len(tokens))
		for i, tok := range tokens {
			v, err := Number(tok)
			if err != nil {
				return nil, &TokenError{Token: tok, Line: li + 1, Index: i + 1, Err: err}
			}
			row[i] = v
		}
		out = append(out, row)
	}
	if len(out) == 0 {
		return nil, ErrEmptyInput
	}

	return out, nil
}

func isValueSep(r rune) bool { return r == ',' || r == ';' || isSpace(r) }

func isRowSep(r rune) bool { return r == ',' || isSpace(r) }

func isSpace(r rune) bool { return r == ' ' || r == '\t' || r == '\r' || r == '\n' }

// IsInputError reports whether err came from user text rather than numerics.
func IsInputError(err error) bool {
	return errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, ErrInvalidNumber) ||
		errors.Is(err, matrix.ErrRaggedRows)
}
