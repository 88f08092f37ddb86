package grid

import "github.com/grindlemire/go-grid/internal/layout"

var _ Container = (*Grid)(nil)

// Grid is a layout container with ordered row and column definitions and
// cells placed at row/column positions.
type Grid struct {
	Attached

	rows    Definitions
	columns Definitions
	cells   []*Cell
	gap     int

	// Layout state
	dirty        bool
	laidOut      bool
	width        int
	height       int
	rowTracks    []Track
	columnTracks []Track
}

// Option configures a Grid.
type Option func(*Grid)

// WithGap sets the number of blank cells between adjacent tracks.
func WithGap(cells int) Option {
	return func(g *Grid) {
		g.gap = max(0, cells)
	}
}

// New creates an empty grid. Until definitions are added it lays out as a
// single star row and a single star column. The zero Grid is also ready
// to use.
func New(opts ...Option) *Grid {
	g := &Grid{dirty: true}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Rows returns the row definitions.
func (g *Grid) Rows() *Definitions {
	if g.rows.onChange == nil {
		g.rows.onChange = g.MarkDirty
	}
	return &g.rows
}

// Columns returns the column definitions.
func (g *Grid) Columns() *Definitions {
	if g.columns.onChange == nil {
		g.columns.onChange = g.MarkDirty
	}
	return &g.columns
}

// Properties returns the grid's attached property values. A nil grid has
// none, so property reads return defaults and writes are dropped.
func (g *Grid) Properties() *PropertyStore {
	if g == nil {
		return nil
	}
	return g.Attached.Properties()
}

// Gap returns the spacing between tracks.
func (g *Grid) Gap() int {
	return g.gap
}

// SetGap changes the spacing between tracks and marks the grid dirty.
func (g *Grid) SetGap(cells int) {
	g.gap = max(0, cells)
	g.MarkDirty()
}

// Place adds a cell with the given content at row, col.
func (g *Grid) Place(content string, row, col int, opts ...CellOption) *Cell {
	c := &Cell{
		Content:    content,
		Row:        max(0, row),
		Column:     max(0, col),
		RowSpan:    1,
		ColumnSpan: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	g.cells = append(g.cells, c)
	g.MarkDirty()
	return c
}

// Cells returns the placed cells in insertion order.
func (g *Grid) Cells() []*Cell {
	return g.cells
}

// RowTracks returns the row tracks computed by the last Layout.
func (g *Grid) RowTracks() []Track {
	return g.rowTracks
}

// ColumnTracks returns the column tracks computed by the last Layout.
func (g *Grid) ColumnTracks() []Track {
	return g.columnTracks
}

// Layout resolves track sizes within width x height cells and positions
// every cell. It is a no-op if nothing changed since the last call.
func (g *Grid) Layout(width, height int) {
	if g.laidOut && !g.dirty && width == g.width && height == g.height {
		return
	}

	rowDefs := effectiveDefinitions(&g.rows)
	colDefs := effectiveDefinitions(&g.columns)

	// Auto tracks size to content that sits in exactly one track
	rowContent := make([]int, len(rowDefs))
	colContent := make([]int, len(colDefs))
	for _, c := range g.cells {
		row, col := clampIndex(c.Row, len(rowDefs)), clampIndex(c.Column, len(colDefs))
		w, h := c.Size()
		if c.ColumnSpan <= 1 {
			colContent[col] = max(colContent[col], w)
		}
		if c.RowSpan <= 1 {
			rowContent[row] = max(rowContent[row], h)
		}
	}

	g.columnTracks = layout.ResolveTracks(trackSpecs(colDefs, colContent), width, g.gap)
	g.rowTracks = layout.ResolveTracks(trackSpecs(rowDefs, rowContent), height, g.gap)

	for _, c := range g.cells {
		row, col := clampIndex(c.Row, len(rowDefs)), clampIndex(c.Column, len(colDefs))
		xs := layout.Span(g.columnTracks, col, max(1, c.ColumnSpan))
		ys := layout.Span(g.rowTracks, row, max(1, c.RowSpan))
		c.rect = NewRect(xs.Offset, ys.Offset, xs.Size, ys.Size)
	}

	g.width, g.height = width, height
	g.laidOut = true
	g.dirty = false
}

// effectiveDefinitions substitutes one star track for an empty list.
func effectiveDefinitions(defs *Definitions) []Definition {
	if defs.Len() == 0 {
		return []Definition{{Size: Star(1)}}
	}
	return defs.All()
}

func trackSpecs(defs []Definition, content []int) []layout.TrackSpec {
	specs := make([]layout.TrackSpec, len(defs))
	for i, d := range defs {
		specs[i] = d.trackSpec(content[i])
	}
	return specs
}

// clampIndex pins out-of-range positions to the last track.
func clampIndex(i, n int) int {
	if i >= n {
		return n - 1
	}
	return max(0, i)
}
