package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/grindlemire/go-grid/internal/logging"
	"github.com/grindlemire/go-grid/internal/markup"
	"github.com/grindlemire/go-grid/internal/preview"
)

const (
	fallbackWidth = 78
	defaultHeight = 12
)

func newRenderCmd() *cobra.Command {
	var (
		width    int
		height   int
		noLegend bool
	)

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Draw a grid document",
		Long: `Lay out a grid document and draw it with its track legend.

The drawing area defaults to the terminal width (less the frame) and
` + fmt.Sprint(defaultHeight) + ` lines. Problems that 'gridctl check' reports are logged as
warnings; the grid is drawn the way the properties resolve them.`,
		Example: `  # Draw at terminal width
  gridctl render layout.yaml

  # Fixed drawing area
  gridctl render --width 40 --height 8 layout.hcl`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			doc, err := markup.LoadFile(path)
			if err != nil {
				return err
			}

			for _, issue := range doc.Check() {
				logging.Warn("document issue",
					zap.String("file", path),
					zap.String("field", issue.Field),
					zap.String("message", issue.Message),
				)
			}

			if width <= 0 {
				width = terminalWidth()
			}
			if height <= 0 {
				height = defaultHeight
			}

			out := preview.Render(doc.Build(), width, height, preview.Options{
				Title:  filepath.Base(path),
				Legend: !noLegend,
			})
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "Drawing width in cells (default: terminal width)")
	cmd.Flags().IntVar(&height, "height", defaultHeight, "Drawing height in lines")
	cmd.Flags().BoolVar(&noLegend, "no-legend", false, "Omit the track legend")

	return cmd
}

// terminalWidth returns the stdout width less the frame, with a fallback
// when stdout is not a terminal.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 2 {
		return fallbackWidth
	}
	return width - 2
}
