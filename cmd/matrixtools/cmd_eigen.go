// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/matrixtools/screen"
	"github.com/katalvlaran/matrixtools/spectrum"
	"github.com/katalvlaran/matrixtools/watch"
)

var (
	eigenMatrix string
	eigenFile   string
	eigenPlot   string
	eigenWatch  bool
)

// eigenCmd runs the eigenvalue calculator once (or on every file change)
var eigenCmd = &cobra.Command{
	Use:   "eigen",
	Short: "Compute eigenvalues and eigenvectors of a square matrix",
	Long: `Reads a square matrix, one row per line (';' also ends a row), values
separated by spaces or commas, and prints its eigenvalues and eigenvectors.

The matrix comes from --matrix, --file or stdin.

Example:
  matrixtools eigen --matrix "4 1; 2 3"
  matrixtools eigen --file m.txt --plot spectrum.svg --watch`,
	Args: cobra.NoArgs,
	RunE: runEigen,
}

func init() {
	eigenCmd.Flags().StringVarP(&eigenMatrix, "matrix", "m", "", "matrix text, e.g. \"4 1; 2 3\"")
	eigenCmd.Flags().StringVarP(&eigenFile, "file", "f", "", "read the matrix from a file")
	eigenCmd.Flags().StringVar(&eigenPlot, "plot", "", "also plot the eigenvalues (.png, .svg or .pdf)")
	eigenCmd.Flags().BoolVarP(&eigenWatch, "watch", "w", false, "recompute whenever --file changes")
	eigenCmd.MarkFlagsMutuallyExclusive("matrix", "file")
}

func runEigen(cmd *cobra.Command, args []string) error {
	if eigenWatch {
		if eigenFile == "" {
			return errors.New("--watch requires --file")
		}
		return watchFile(cmd, eigenFile, func(context.Context) error { return eigenOnce(cmd) })
	}

	return eigenOnce(cmd)
}

func eigenOnce(cmd *cobra.Command) error {
	text, err := readInput(cmd, eigenMatrix, eigenFile)
	if err != nil {
		return err
	}
	calc := screen.NewEigenCalculator(screenOptions()...)
	if err = calc.Load(text); err != nil {
		return err
	}
	res, err := calc.Calculate()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Text)

	if eigenPlot != "" {
		if err = spectrum.Save(res.Decomposition.Values, eigenPlot, spectrum.WithUnitCircle(true)); err != nil {
			return err
		}
		logger.Info("spectrum plotted", zap.String("path", eigenPlot))
	}

	return nil
}

// watchFile runs action now and after every change to path until interrupted.
// Action errors are printed and watching continues.
func watchFile(cmd *cobra.Command, path string, action watch.Action) error {
	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.ErrOrStderr(), "watching %s (Ctrl+C to stop)\n", path)

	return watch.Watch(ctx, path, action,
		watch.WithLogger(logger),
		watch.WithErrorHandler(func(err error) { printAlert(cmd, err) }))
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
