// SPDX-License-Identifier: MIT

// Package parse turns freeform user text into numbers, vectors and square
// matrices.
//
// Grammar:
//
//	number  := any strconv.ParseFloat decimal literal that is finite
//	           ("3", "-0.25", "1e-3", "+2."); hex floats, NaN and Inf are rejected.
//	values  := number { sep number }          sep = ',' | ';' | whitespace
//	rows    := row { newline row }            newline = '\n' | ';'
//	row     := number { (',' | whitespace) number }
//
// Blank lines are skipped. Every token must parse: there is no "extract the
// numbers you can find" mode, so "1,2,x" is an error rather than [1 2].
// Failures are reported as *TokenError carrying the offending token and its
// position, wrapping ErrInvalidNumber.
package parse
