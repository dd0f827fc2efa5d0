// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/matrixtools/matrix"
)

// ExampleNewFromRows builds a matrix from literal rows and transposes it.
func ExampleNewFromRows() {
	m, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	if err != nil {
		fmt.Println(err)
		return
	}
	t, _ := matrix.Transpose(m)
	fmt.Print(t)

	// Output:
	// [1, 3]
	// [2, 4]
}

// ExampleValidateSize shows the declared-size invariant.
func ExampleValidateSize() {
	m, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	fmt.Println(matrix.ValidateSize(m, 3))

	// Output:
	// ValidateSize: got 2x2, want 3x3: matrix: dimension mismatch
}
