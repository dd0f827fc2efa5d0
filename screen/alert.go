// SPDX-License-Identifier: MIT

package screen

// Alert titles.
const (
	TitleInputError        = "Input Error"
	TitleCalculationError  = "Calculation Error"
	TitleDimensionMismatch = "Dimension Mismatch"
)

// Alert messages.
const (
	msgBadCells       = "Please enter valid numbers in all matrix cells."
	msgEigenFailed    = "Could not compute eigenvalues for this matrix."
	msgBadValues      = "Please enter valid, comma or space-separated numbers for eigenvalues."
	msgBadVectors     = "Eigenvectors must be valid numbers separated by spaces and newlines."
	msgDimensionFmt   = "You entered %d eigenvalues, but the eigenvector matrix is not %dx%d. Please check your input."
	msgSingular       = "The eigenvector matrix is singular and cannot be inverted. Please provide a set of linearly independent eigenvectors."
	msgGenerateFailed = "Could not generate a matrix from these eigenvalues and eigenvectors."
	msgSizeRangeFmt   = "Matrix size must be between 1 and %d."
)

// Alert is a user-facing error: a titled message, like a modal dialog.
// Err keeps the underlying cause for errors.Is / errors.As and for logs.
type Alert struct {
	Title   string
	Message string
	Err     error
}

// Error implements error.
func (a *Alert) Error() string { return a.Title + ": " + a.Message }

// Unwrap exposes the cause.
func (a *Alert) Unwrap() error { return a.Err }

func newAlert(title, msg string, cause error) *Alert {
	return &Alert{Title: title, Message: msg, Err: cause}
}
