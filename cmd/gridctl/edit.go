package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-grid"
	"github.com/grindlemire/go-grid/internal/editor"
	"github.com/grindlemire/go-grid/internal/markup"
)

func newEditCmd() *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "edit [FILE]",
		Short: "Shape a grid interactively",
		Long: `Open a grid in the interactive editor. Keys change the row and column
counts and toggle star sizing on the selected row or column.

With --save, the final counts and star lists are written back to a YAML
document.`,
		Example: `  # Start from an empty grid
  gridctl edit

  # Edit a document and keep the result
  gridctl edit --save layout.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if save && (len(args) == 0 || !isYAMLFile(args[0])) {
				return fmt.Errorf("--save needs a .yaml or .yml file")
			}

			doc := markup.NewDocument()
			title := "untitled"
			if len(args) == 1 {
				title = filepath.Base(args[0])
				loaded, err := markup.LoadFile(args[0])
				switch {
				case err == nil:
					doc = loaded
				case save && errors.Is(err, fs.ErrNotExist):
					// --save creates the file
				default:
					return err
				}
			}

			model := editor.New(doc.Build(), title)
			final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			if err != nil {
				return fmt.Errorf("running editor: %w", err)
			}

			if !save {
				return nil
			}
			return saveDocument(args[0], doc, final.(editor.Model).Grid())
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Write the edited counts and star lists back to FILE")

	return cmd
}

// saveDocument copies the grid's properties into doc and writes it as YAML.
func saveDocument(path string, doc *markup.Document, g *grid.Grid) error {
	doc.Rows = grid.RowCount(g)
	doc.Columns = grid.ColumnCount(g)
	doc.StarRows = grid.StarRows(g)
	doc.StarColumns = grid.StarColumns(g)

	data, err := doc.EncodeYAML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}
	return nil
}
