package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "xcodegen",
	Short: "Project spec validator",
	Long: `Xcodegen loads a declarative project specification from YAML and checks
that it is internally consistent and externally resolvable:

  - every target dependency names a declared target
  - every configuration reference resolves to a declared configuration
  - every settings group include resolves, to arbitrary depth
  - every source, config-file, file-group, and script path exists on disk
  - every scheme references declared targets and configurations

All defects are collected and reported together rather than failing on the
first one.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
