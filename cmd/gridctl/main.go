// Gridctl renders, checks, formats and edits grid documents.
//
// A grid document describes a grid through the RowCount, ColumnCount,
// StarRows and StarColumns properties, plus the text placed in its cells.
//
// Usage:
//
//	gridctl <command> [flags] [path...]
//
// Examples:
//
//	gridctl render layout.yaml          Draw a document at terminal width
//	gridctl check ./...                 Recursively check all grid documents
//	gridctl fmt --check ./layouts       Report YAML documents that need formatting
//	gridctl edit layout.yaml            Shape a grid interactively
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-grid/internal/logging"
	"github.com/grindlemire/go-grid/internal/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "gridctl",
		Short: "Work with grid layout documents",
		Long: `gridctl works with declarative grid documents (.yaml, .yml, .hcl).

A document sets the RowCount, ColumnCount, StarRows and StarColumns
properties of a grid and places text in its cells. Star indices are
matched exactly, so "01" never names row 1; use 'gridctl check' to find
tokens the grid will ignore.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Initialize(logLevel)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync()
		},
	}

	// Disable automatic completion command generation
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Log level (debug, info, warn, error); overrides "+logging.LogLevelEnvVar)

	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newFmtCmd())
	cmd.AddCommand(newEditCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gridctl %s (commit: %s)\n", version.Version, version.Commit)
		},
	}
}
