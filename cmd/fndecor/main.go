package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "fndecor",
	Short:        "Decorators for TypeScript function declarations",
	Long:         `fndecor rewrites decorated function declarations into plain TypeScript and reports diagnostics with decorator noise filtered out`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(transformCmd)
	rootCmd.AddCommand(checkCmd)

	rootCmd.PersistentFlags().String("config", "", "configuration file (.yaml, .yml or .toml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug|info|warn|error), overrides the config")
	rootCmd.PersistentFlags().Bool("metrics", false, "print counters on exit")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
