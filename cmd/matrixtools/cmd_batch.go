// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matrixtools/batch"
)

var (
	batchOut     string
	batchWorkers int
)

// batchCmd runs a YAML job file
var batchCmd = &cobra.Command{
	Use:   "batch [jobs.yaml]",
	Short: "Run calculator and generator jobs from a YAML file",
	Long: `Runs every job in a YAML job file concurrently and writes a YAML report.

Job file:
  jobs:
    - name: shear
      kind: eigen
      matrix: "4 1; 2 3"
    - name: rebuild
      kind: generate
      eigenvalues: "2, 3"
      eigenvectors: "1 0; 1 1"

The command fails when any job fails; the report is written either way.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchOut, "out", "o", "", "write the report here instead of stdout")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "concurrent jobs (default from config)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	jobs, err := batch.Load(args[0])
	if err != nil {
		return err
	}
	workers := batchWorkers
	if workers < 1 {
		workers = cfg.Batch.Workers
	}
	runner := batch.NewRunner(
		batch.WithWorkers(workers),
		batch.WithLogger(logger),
		batch.WithScreenOptions(screenOptions()...))

	rep, err := runner.Run(cmdContext(cmd), jobs)
	if err != nil {
		return err
	}

	if batchOut != "" {
		err = writeReportFile(rep, batchOut)
	} else {
		err = rep.Write(cmd.OutOrStdout())
	}
	if err != nil {
		return err
	}
	if rep.Failed > 0 {
		return fmt.Errorf("%d of %d jobs failed", rep.Failed, len(rep.Results))
	}

	return nil
}

// writeReportFile writes rep to path, creating parent directories.
// Close errors are returned.
func writeReportFile(rep *batch.Report, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	if err = rep.Write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("failed to close report: %w", err)
	}

	return nil
}
