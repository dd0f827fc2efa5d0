// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matrixtools/internal/config"
)

// configCmd shows or writes configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration after defaults, the --config file, environment
variables (MATRIXTOOLS_PRECISION, MATRIXTOOLS_MAX_SIZE, MATRIXTOOLS_LOG_LEVEL,
MATRIXTOOLS_WORKERS) and flags have been applied.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)

		return err
	},
}

// configInitCmd writes the built-in defaults to a file
var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default configuration to a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.DefaultConfig().Save(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])

		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
}
