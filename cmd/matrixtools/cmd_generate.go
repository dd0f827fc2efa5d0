// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matrixtools/screen"
)

var (
	genValues      string
	genVectors     string
	genVectorsFile string
	genWatch       bool
)

// generateCmd builds A = P·D·P⁻¹ from eigenvalues and eigenvectors
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build a matrix from eigenvalues and eigenvectors",
	Long: `Builds A = P·D·P⁻¹ where D holds the eigenvalues on its diagonal and the
columns of P are the eigenvectors. Eigenvectors are entered one per line
(';' also ends a line); without --vectors or --vectors-file they are read
from stdin.

Example:
  matrixtools generate --values "2, 3" --vectors "1 0; 1 1"`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genValues, "values", "", "eigenvalues, e.g. \"2, 3\"")
	generateCmd.Flags().StringVar(&genVectors, "vectors", "", "eigenvectors, one per line or ';'-separated")
	generateCmd.Flags().StringVar(&genVectorsFile, "vectors-file", "", "read the eigenvectors from a file")
	generateCmd.Flags().BoolVarP(&genWatch, "watch", "w", false, "regenerate whenever --vectors-file changes")
	generateCmd.MarkFlagsMutuallyExclusive("vectors", "vectors-file")
	_ = generateCmd.MarkFlagRequired("values")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if genWatch {
		if genVectorsFile == "" {
			return errors.New("--watch requires --vectors-file")
		}
		return watchFile(cmd, genVectorsFile, func(context.Context) error { return generateOnce(cmd) })
	}

	return generateOnce(cmd)
}

func generateOnce(cmd *cobra.Command) error {
	vectors := genVectors
	if genVectorsFile != "" {
		data, err := os.ReadFile(genVectorsFile)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", genVectorsFile, err)
		}
		vectors = string(data)
	}
	if vectors == "" {
		text, err := readInput(cmd, "", "")
		if err != nil {
			return err
		}
		vectors = text
	}

	gen := screen.NewMatrixGenerator(screenOptions()...)
	gen.SetEigenvalues(genValues)
	gen.SetEigenvectors(vectors)
	res, err := gen.Generate()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Text)

	return nil
}
