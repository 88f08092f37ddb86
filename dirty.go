package grid

// MarkDirty marks the grid as needing a new Layout pass.
// Called automatically when definitions, cells, or the gap change.
func (g *Grid) MarkDirty() {
	if g == nil {
		panic("grid: nil grid in MarkDirty")
	}
	g.dirty = true
}

// IsDirty reports whether the grid changed since the last Layout.
func (g *Grid) IsDirty() bool {
	return g.dirty
}
