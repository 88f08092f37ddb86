// Package preview draws laid-out grids for the terminal.
package preview

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/go-grid"
)

// Options controls Render.
type Options struct {
	Title  string
	Legend bool
}

const (
	vertical     = '│'
	horizontal   = '─'
	intersection = '┼'
)

// Render lays g out in width x height cells and returns it framed, with an
// optional title and track legend. The frame adds two cells on each axis.
func Render(g *grid.Grid, width, height int, opts Options) string {
	var parts []string
	if opts.Title != "" {
		parts = append(parts, TitleStyle.Render(opts.Title))
	}
	parts = append(parts, FrameStyle.Render(Draw(g, width, height)))
	if opts.Legend {
		parts = append(parts, Legend(g))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Draw lays g out in width x height cells and returns the plain drawing:
// grid lines in the gaps between tracks and each cell's content wrapped
// to its rectangle. Cells are drawn in placement order, so later cells
// cover earlier ones.
func Draw(g *grid.Grid, width, height int) string {
	width, height = max(0, width), max(0, height)
	g.Layout(width, height)
	c := newCanvas(width, height)

	if gap := g.Gap(); gap > 0 {
		cols, rows := g.ColumnTracks(), g.RowTracks()
		for i := 0; i < len(cols)-1; i++ {
			x := cols[i].End() + gap/2
			for y := range height {
				c.set(x, y, vertical)
			}
		}
		for i := 0; i < len(rows)-1; i++ {
			y := rows[i].End() + gap/2
			for x := range width {
				if c.get(x, y) == vertical {
					c.set(x, y, intersection)
				} else {
					c.set(x, y, horizontal)
				}
			}
		}
	}

	bounds := grid.NewRect(0, 0, width, height)
	for _, cell := range g.Cells() {
		r := cell.Rect().Intersect(bounds)
		if r.IsEmpty() {
			continue
		}
		block := lipgloss.NewStyle().
			Width(r.Width).
			Height(r.Height).
			MaxWidth(r.Width).
			MaxHeight(r.Height).
			Render(cell.Content)
		c.blit(r, block)
	}

	return c.String()
}

// Legend describes every resolved track, e.g. "rows     auto:1  *:8".
func Legend(g *grid.Grid) string {
	return strings.Join([]string{
		legendLine("rows", g.Rows(), g.RowTracks()),
		legendLine("columns", g.Columns(), g.ColumnTracks()),
	}, "\n")
}

func legendLine(label string, defs *grid.Definitions, tracks []grid.Track) string {
	sizes := defs.Sizes()
	if len(sizes) == 0 {
		sizes = []grid.Value{grid.Star(1)}
	}
	entries := make([]string, 0, len(tracks))
	for i, t := range tracks {
		if i >= len(sizes) {
			break
		}
		entry := sizes[i].String() + ":" + strconv.Itoa(t.Size)
		if sizes[i].IsStar() {
			entries = append(entries, StarTrackStyle.Render(entry))
		} else {
			entries = append(entries, TrackStyle.Render(entry))
		}
	}
	return LegendLabelStyle.Render(label) + strings.Join(entries, "  ")
}

// canvas is a fixed-size grid of terminal cells. A zero rune marks the
// trailing half of a wide character.
type canvas struct {
	bounds grid.Rect
	cells  [][]rune
}

func newCanvas(width, height int) *canvas {
	cells := make([][]rune, height)
	for y := range cells {
		row := make([]rune, width)
		for x := range row {
			row[x] = ' '
		}
		cells[y] = row
	}
	return &canvas{bounds: grid.NewRect(0, 0, width, height), cells: cells}
}

func (c *canvas) get(x, y int) rune {
	if !c.bounds.Contains(x, y) {
		return ' '
	}
	return c.cells[y][x]
}

func (c *canvas) set(x, y int, r rune) {
	if !c.bounds.Contains(x, y) {
		return
	}
	c.cells[y][x] = r
}

// blit copies a multi-line block into r, clipping to r.
func (c *canvas) blit(r grid.Rect, block string) {
	for dy, line := range strings.Split(block, "\n") {
		if dy >= r.Height {
			break
		}
		x := r.X
		for _, ch := range line {
			w := runewidth.RuneWidth(ch)
			if w == 0 {
				continue
			}
			if x+w > r.Right() {
				break
			}
			c.set(x, r.Y+dy, ch)
			if w == 2 {
				c.set(x+1, r.Y+dy, 0)
			}
			x += w
		}
	}
}

func (c *canvas) String() string {
	var b strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, ch := range row {
			if ch != 0 {
				b.WriteRune(ch)
			}
		}
	}
	return b.String()
}
