// SPDX-License-Identifier: MIT

package parse

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when the text holds no values at all.
	ErrEmptyInput = errors.New("parse: no values entered")

	// ErrInvalidNumber is returned when a token is not a finite decimal number.
	ErrInvalidNumber = errors.New("parse: invalid number")
)

// TokenError describes one rejected token.
// Line and Index are 1-based; Line is 0 for single-line inputs.
type TokenError struct {
	Token string
	Line  int
	Index int
	Err   error
}

// Error implements error.
func (e *TokenError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d, value %d %q: %v", e.Line, e.Index, e.Token, e.Err)
	}

	return fmt.Sprintf("value %d %q: %v", e.Index, e.Token, e.Err)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *TokenError) Unwrap() error { return e.Err }
