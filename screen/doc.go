// SPDX-License-Identifier: MIT

// Package screen holds the two matrixtools screens and the menu shell as
// plain, toolkit-free controllers.
//
// A front end (the CLI, an interactive prompt, a GUI) only moves text in and
// out: it fills cells or text fields, triggers Calculate/Generate, then shows
// either the result text or the *Alert. Each action rebuilds its matrix from
// scratch; nothing numeric is kept between actions.
//
//	Shell ──Show(Calculator)──▶ EigenCalculator  (N×N cells → eigenpairs)
//	      ──Show(Generator)───▶ MatrixGenerator  (eigenpairs → A = P·D·P⁻¹)
//	      ◀──────Back()────────
package screen
