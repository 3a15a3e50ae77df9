// Package main provides the duckspec CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/duckdialect/duckspec/internal/logger"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	// humanOutput controls whether to use human-readable output
	humanOutput bool
	verboseMode bool
	configPath  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "duckspec",
	Short: "Generate DuckDB dialect metadata for editor highlighting",
	Long: `duckspec introspects an in-process DuckDB catalog and writes the
keyword, type, and function metadata that a CodeMirror SQL dialect
consumes.

Each run produces two JSON files: a keywords document holding the
sorted keyword and type lists, and a functions document mapping a
curated set of function names to their descriptions and examples.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(verboseMode)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().BoolVar(&verboseMode, "verbose", false, "Print debug logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default $XDG_CONFIG_HOME/duckspec/config.yml)")
	rootCmd.Version = Version
}
