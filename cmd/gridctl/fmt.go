package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-grid/internal/markup"
)

func newFmtCmd() *cobra.Command {
	var (
		stdout bool // print to stdout instead of modifying file
		check  bool // check mode (exit 1 if not formatted)
	)

	cmd := &cobra.Command{
		Use:   "fmt [path...]",
		Short: "Rewrite YAML grid documents in canonical form",
		Long: `Rewrite YAML grid documents in canonical form: fixed key order,
two-space indentation, unset counts and single spans omitted.

Comments are not preserved. HCL documents are left alone.`,
		Example: `  gridctl fmt ./...
  gridctl fmt --check ./layouts
  gridctl fmt --stdout layout.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 {
				paths = []string{"."}
			}

			files, err := collectFiles(paths, isYAMLFile)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no YAML grid files found")
			}

			results := formatFiles(files)

			switch {
			case check:
				return reportCheck(cmd.ErrOrStderr(), results)
			case stdout:
				return reportStdout(cmd.OutOrStdout(), cmd.ErrOrStderr(), results)
			default:
				return writeInPlace(cmd.OutOrStdout(), cmd.ErrOrStderr(), results)
			}
		},
	}

	cmd.Flags().BoolVar(&stdout, "stdout", false, "Print formatted output instead of rewriting files")
	cmd.Flags().BoolVar(&check, "check", false, "Report unformatted files and exit non-zero")

	return cmd
}

type fmtResult struct {
	path      string
	formatted []byte
	changed   bool
	err       error
}

// formatFiles formats files in parallel. Results keep the order of files.
func formatFiles(files []string) []fmtResult {
	results := make([]fmtResult, len(files))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, path := range files {
		g.Go(func() error {
			results[i] = formatFile(path)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func formatFile(path string) fmtResult {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmtResult{path: path, err: fmt.Errorf("reading file: %w", err)}
	}

	doc, err := markup.ParseYAML(source)
	if err != nil {
		return fmtResult{path: path, err: err}
	}

	formatted, err := doc.EncodeYAML()
	if err != nil {
		return fmtResult{path: path, err: err}
	}

	return fmtResult{
		path:      path,
		formatted: formatted,
		changed:   !bytes.Equal(source, formatted),
	}
}

func writeInPlace(out, errOut io.Writer, results []fmtResult) error {
	var errorCount int
	for _, res := range results {
		if res.err != nil {
			fmt.Fprintf(errOut, "%s: %v\n", res.path, res.err)
			errorCount++
			continue
		}
		if !res.changed {
			continue
		}
		if err := os.WriteFile(res.path, res.formatted, 0644); err != nil {
			fmt.Fprintf(errOut, "%s: writing file: %v\n", res.path, err)
			errorCount++
			continue
		}
		fmt.Fprintf(out, "Formatted: %s\n", res.path)
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}
	return nil
}

func reportStdout(out, errOut io.Writer, results []fmtResult) error {
	var errorCount int
	for _, res := range results {
		if res.err != nil {
			fmt.Fprintf(errOut, "%s: %v\n", res.path, res.err)
			errorCount++
			continue
		}
		if len(results) > 1 {
			fmt.Fprintf(out, "# %s\n", res.path)
		}
		if _, err := out.Write(res.formatted); err != nil {
			fmt.Fprintf(errOut, "%s: writing output: %v\n", res.path, err)
			errorCount++
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}
	return nil
}

func reportCheck(errOut io.Writer, results []fmtResult) error {
	var errorCount, notFormattedCount int
	for _, res := range results {
		if res.err != nil {
			fmt.Fprintf(errOut, "%s: %v\n", res.path, res.err)
			errorCount++
		} else if res.changed {
			fmt.Fprintf(errOut, "ERROR: %s is not formatted\n", res.path)
			notFormattedCount++
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}
	if notFormattedCount > 0 {
		return fmt.Errorf("%d file(s) not formatted", notFormattedCount)
	}
	return nil
}
