// SPDX-License-Identifier: MIT

// Command matrixtools is the command-line front end of the matrix tools:
// an eigenvalue calculator and a matrix generator (A = P·D·P⁻¹), usable one
// shot, in batch, in watch mode or through an interactive text menu.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/matrixtools/internal/config"
	"github.com/katalvlaran/matrixtools/internal/logging"
	"github.com/katalvlaran/matrixtools/screen"
)

var (
	// Global flags
	cfgPath   string
	verbose   bool
	precision int

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "matrixtools",
	Short: "Eigenvalue calculator and matrix generator",
	Long: `matrixtools computes eigenvalues and eigenvectors of square matrices and
builds matrices from chosen eigenpairs via A = P·D·P⁻¹.

Run without arguments to start the interactive menu.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("precision") {
			cfg.Display.Precision = precision
			if err = cfg.Validate(); err != nil {
				return err
			}
		}
		level := cfg.Logging.Level
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(level, cfg.Logging.Development)
		if err != nil {
			return err
		}
		logger.Debug("config loaded", zap.String("path", cfgPath))

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runInteractive,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().IntVar(&precision, "precision", 4, "digits printed after the decimal point")

	rootCmd.AddCommand(eigenCmd, generateCmd, batchCmd, interactiveCmd, configCmd)
}

// screenOptions maps the loaded config onto screen options.
func screenOptions() []screen.Option {
	c := cfg
	if c == nil {
		c = config.DefaultConfig()
	}
	l := logger
	if l == nil {
		l = zap.NewNop()
	}

	return append(c.ScreenOptions(), screen.WithLogger(l))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// printAlert writes an alert (or any error) the way a dialog would show it.
func printAlert(cmd *cobra.Command, err error) {
	fmt.Fprintln(cmd.ErrOrStderr(), err)
}
