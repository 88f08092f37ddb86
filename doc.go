// Package grid provides row/column definitions for terminal grid layouts,
// driven by attachable properties.
//
// Users import this single package for the complete public API: the [Grid]
// container, its row and column [Definitions], the attachable property
// system, and the four convenience properties that shape a grid:
//
//	g := grid.New()
//	grid.SetStarRows(g, "1")
//	grid.SetRowCount(g, 3)      // rows: auto, *, auto
//	grid.SetColumnCount(g, 2)   // columns: auto, auto
//	g.Place("header", 0, 0, grid.WithColumnSpan(2))
//	g.Layout(80, 24)
//
// Setting a count rebuilds the definition list with that many auto-sized
// entries and then reapplies the matching star list. Invalid input (negative
// counts, hosts that are not grids, unknown or out-of-range star tokens) is
// ignored rather than reported.
//
// Grids are not safe for concurrent use; like the rest of a UI tree they are
// owned by a single goroutine.
package grid
