// Package matrixtools is a small toolkit for the two everyday eigen-problems:
// find the eigenpairs of a matrix, and build a matrix from chosen eigenpairs.
//
// 🚀 What is in the box?
//
//	• Eigenvalue Calculator: N×N matrix (1 ≤ N ≤ 10) → eigenvalues and
//	  eigenvectors, complex pairs included
//	• Matrix Generator: eigenvalues + eigenvectors → A = P·D·P⁻¹, with
//	  dimension and singularity checks
//	• Batch runs over YAML job files, watch mode, spectrum plots
//
// Under the hood, everything is organized into small packages:
//
//	matrix/    Dense row-major matrix, sentinel errors, validators, gonum bridge
//	parse/     strict text → numbers / vectors / square matrices
//	eigen/     Decompose, Reconstruct and Verify on top of gonum
//	format/    fixed-precision, column-aligned array printing
//	screen/    headless calculator, generator and menu shell; errors as *screen.Alert
//	spectrum/  eigenvalues in the complex plane (PNG, SVG, PDF)
//	batch/     concurrent YAML jobs with a YAML report
//	watch/     re-run on input file change
//
// Quick example:
//
//	P columns: v1 = (1, 0), v2 = (1, 1); D = diag(2, 3)
//
//	    ⎡2 1⎤
//	A = ⎣0 3⎦
//
// The command-line front end lives in cmd/matrixtools:
//
//	go install github.com/katalvlaran/matrixtools/cmd/matrixtools@latest
package matrixtools
