package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-grid/internal/markup"
)

func newCheckCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Check grid documents without rendering",
		Long: `Parse grid documents and report input the grid would silently ignore:
negative counts, star tokens that never match an index ("01", " 2", "x"),
star indices past the track count, and cells outside the grid.

Paths default to the current directory; "dir/..." walks recursively.`,
		Example: `  gridctl check layout.yaml
  gridctl check ./...`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 {
				paths = []string{"."}
			}

			files, err := collectFiles(paths, markup.IsGridFile)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no grid files found")
			}

			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
			if verbose {
				fmt.Fprintf(out, "Checking %d grid file(s)\n", len(files))
			}

			var errorCount int
			for _, path := range files {
				if verbose {
					fmt.Fprintf(out, "Checking %s\n", path)
				}

				issues, err := checkFile(path)
				if err != nil {
					fmt.Fprintf(errOut, "%s: %v\n", path, err)
					errorCount++
					continue
				}
				for _, issue := range issues {
					fmt.Fprintf(errOut, "%s: %s\n", path, issue)
				}
				if len(issues) > 0 {
					errorCount++
				}
			}

			if errorCount > 0 {
				return fmt.Errorf("%d file(s) had errors", errorCount)
			}

			if verbose {
				fmt.Fprintf(out, "All %d file(s) passed checks\n", len(files))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	return cmd
}

// checkFile loads a single document and returns its issues.
func checkFile(path string) ([]markup.Issue, error) {
	doc, err := markup.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return doc.Check(), nil
}
