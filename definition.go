package grid

import "github.com/grindlemire/go-grid/internal/layout"

// Definition describes one row or column of a grid.
type Definition struct {
	Size Value

	// Min and Max constrain the resolved size in cells. Max of 0 means unbounded.
	Min int
	Max int
}

// AutoDefinition returns an auto-sized definition.
func AutoDefinition() Definition {
	return Definition{Size: Auto()}
}

func (d Definition) trackSpec(content int) layout.TrackSpec {
	return layout.TrackSpec{Size: d.Size, Content: content, Min: d.Min, Max: d.Max}
}

// Definitions is the ordered row or column definition list of a grid.
// Every mutation marks the owning grid dirty.
type Definitions struct {
	items    []Definition
	onChange func()
}

// Len returns the number of definitions.
func (d *Definitions) Len() int {
	return len(d.items)
}

// At returns the definition at index i. It panics if i is out of range.
func (d *Definitions) At(i int) Definition {
	return d.items[i]
}

// All returns a copy of the definitions.
func (d *Definitions) All() []Definition {
	out := make([]Definition, len(d.items))
	copy(out, d.items)
	return out
}

// Sizes returns the sizing value of each definition in order.
func (d *Definitions) Sizes() []Value {
	out := make([]Value, len(d.items))
	for i, def := range d.items {
		out[i] = def.Size
	}
	return out
}

// Clear removes every definition.
func (d *Definitions) Clear() {
	d.items = d.items[:0]
	d.changed()
}

// Add appends definitions to the end of the list.
func (d *Definitions) Add(defs ...Definition) {
	d.items = append(d.items, defs...)
	d.changed()
}

// SetSize changes the sizing value of the definition at index i.
// Returns false if i is out of range.
func (d *Definitions) SetSize(i int, v Value) bool {
	if i < 0 || i >= len(d.items) {
		return false
	}
	d.items[i].Size = v
	d.changed()
	return true
}

func (d *Definitions) changed() {
	if d.onChange != nil {
		d.onChange()
	}
}
