// Package editor is an interactive bubbletea program for shaping a grid.
//
// Every edit goes through the grid's attachable properties: counts are
// changed with SetRowCount/SetColumnCount and star toggles rewrite the
// StarRows/StarColumns strings, then re-set the count so that un-starring
// rebuilds the definitions.
package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/grindlemire/go-grid"
	"github.com/grindlemire/go-grid/internal/preview"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// title + frame + legend + status + help
	chromeHeight = 7
)

var statusStyle = lipgloss.NewStyle().Foreground(preview.MutedColor)

// Model is the editor state.
type Model struct {
	grid  *grid.Grid
	title string

	row, col      int
	width, height int

	keys keyMap
	help help.Model
}

// New creates an editor over g. The grid is edited in place.
func New(g *grid.Grid, title string) Model {
	return Model{
		grid:   g,
		title:  title,
		width:  defaultWidth,
		height: defaultHeight,
		keys:   newKeyMap(),
		help:   help.New(),
	}
}

// Grid returns the grid being edited.
func (m Model) Grid() *grid.Grid {
	return m.grid
}

// Cursor returns the selected row and column.
func (m Model) Cursor() (row, col int) {
	return m.row, m.col
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Up):
			m.row--
		case key.Matches(msg, m.keys.Down):
			m.row++
		case key.Matches(msg, m.keys.Left):
			m.col--
		case key.Matches(msg, m.keys.Right):
			m.col++
		case key.Matches(msg, m.keys.AddRow):
			grid.SetRowCount(m.grid, m.grid.Rows().Len()+1)
		case key.Matches(msg, m.keys.RemoveRow):
			if n := m.grid.Rows().Len(); n > 0 {
				grid.SetRowCount(m.grid, n-1)
			}
		case key.Matches(msg, m.keys.AddColumn):
			grid.SetColumnCount(m.grid, m.grid.Columns().Len()+1)
		case key.Matches(msg, m.keys.RemoveColumn):
			if n := m.grid.Columns().Len(); n > 0 {
				grid.SetColumnCount(m.grid, n-1)
			}
		case key.Matches(msg, m.keys.StarRow):
			if m.grid.Rows().Len() > 0 {
				grid.SetStarRows(m.grid, toggle(grid.StarRows(m.grid), m.row))
				grid.SetRowCount(m.grid, m.grid.Rows().Len())
			}
		case key.Matches(msg, m.keys.StarColumn):
			if m.grid.Columns().Len() > 0 {
				grid.SetStarColumns(m.grid, toggle(grid.StarColumns(m.grid), m.col))
				grid.SetColumnCount(m.grid, m.grid.Columns().Len())
			}
		}
		m.clampCursor()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	width := max(1, m.width-2)
	height := max(1, m.height-chromeHeight)

	body := preview.Render(m.grid, width, height, preview.Options{
		Title:  m.title,
		Legend: true,
	})

	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		statusStyle.Render(m.status()),
		m.help.View(m.keys),
	)
}

func (m Model) status() string {
	return fmt.Sprintf("row %d/%d  column %d/%d  StarRows=%q  StarColumns=%q",
		m.row, m.grid.Rows().Len(),
		m.col, m.grid.Columns().Len(),
		grid.StarRows(m.grid), grid.StarColumns(m.grid),
	)
}

func (m *Model) clampCursor() {
	m.row = min(max(0, m.row), max(0, m.grid.Rows().Len()-1))
	m.col = min(max(0, m.col), max(0, m.grid.Columns().Len()-1))
}

// toggle adds index i to a star string, or removes every token naming it.
func toggle(stars string, i int) string {
	token := strconv.Itoa(i)
	var kept []string
	found := false
	for _, t := range grid.ParseStarList(stars).Tokens() {
		if t == token {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		kept = append(kept, token)
	}
	return strings.Join(kept, ",")
}
