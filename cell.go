package grid

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cell is content placed in a grid at a row/column position.
// Positions past the last track are pinned to the last track.
type Cell struct {
	Content    string
	Row        int
	Column     int
	RowSpan    int
	ColumnSpan int

	rect Rect
}

// CellOption configures a Cell at placement time.
type CellOption func(*Cell)

// WithRowSpan makes the cell cover n rows.
func WithRowSpan(n int) CellOption {
	return func(c *Cell) {
		c.RowSpan = max(1, n)
	}
}

// WithColumnSpan makes the cell cover n columns.
func WithColumnSpan(n int) CellOption {
	return func(c *Cell) {
		c.ColumnSpan = max(1, n)
	}
}

// Size returns the natural size of the content: the widest line in
// terminal columns by the number of lines. Empty content is 0x0.
func (c *Cell) Size() (width, height int) {
	if c.Content == "" {
		return 0, 0
	}
	lines := strings.Split(c.Content, "\n")
	for _, line := range lines {
		width = max(width, runewidth.StringWidth(line))
	}
	return width, len(lines)
}

// Rect returns the cell's rectangle from the last Layout.
func (c *Cell) Rect() Rect {
	return c.rect
}
