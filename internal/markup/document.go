// Package markup loads declarative grid documents and applies them to grids.
//
// Documents are written in YAML or HCL. Applying a document goes through the
// grid's attachable properties, so a document behaves exactly like code that
// calls SetRowCount, SetStarRows and friends.
package markup

import (
	"github.com/grindlemire/go-grid"
)

// Document is a declarative grid description.
type Document struct {
	// Rows and Columns are track counts; -1 leaves the definitions alone.
	Rows    int
	Columns int

	// StarRows and StarColumns are comma-separated star indices, e.g. "0,2".
	StarRows    string
	StarColumns string

	Gap   int
	Cells []Cell
}

// Cell places text in the grid.
type Cell struct {
	Text       string `yaml:"text" hcl:"text"`
	Row        int    `yaml:"row" hcl:"row,optional"`
	Column     int    `yaml:"column" hcl:"column,optional"`
	RowSpan    int    `yaml:"row_span,omitempty" hcl:"row_span,optional"`
	ColumnSpan int    `yaml:"column_span,omitempty" hcl:"column_span,optional"`
}

// NewDocument returns a document with both counts unset.
func NewDocument() *Document {
	return &Document{Rows: -1, Columns: -1}
}

// Apply configures g from the document. Star lists are set before counts so
// the count change picks them up when it rebuilds the definitions.
func (d *Document) Apply(g *grid.Grid) {
	g.SetGap(d.Gap)
	grid.SetStarColumns(g, d.StarColumns)
	grid.SetStarRows(g, d.StarRows)
	grid.SetColumnCount(g, d.Columns)
	grid.SetRowCount(g, d.Rows)

	for _, c := range d.Cells {
		g.Place(c.Text, c.Row, c.Column,
			grid.WithRowSpan(c.RowSpan),
			grid.WithColumnSpan(c.ColumnSpan),
		)
	}
}

// Build returns a new grid configured from the document.
func (d *Document) Build() *grid.Grid {
	g := grid.New()
	d.Apply(g)
	return g
}
