// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package grid

import "github.com/grindlemire/go-grid/internal/layout"

// Value represents a track size (fixed, star, or auto).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto  = layout.UnitAuto
	UnitFixed = layout.UnitFixed
	UnitStar  = layout.UnitStar
)

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Track is the resolved offset and size of one row or column.
type Track = layout.Track

// Auto creates a Value that sizes to content.
func Auto() Value {
	return layout.Auto()
}

// Fixed creates a Value with a fixed character count.
func Fixed(n int) Value {
	return layout.Fixed(n)
}

// Star creates a Value that takes a weighted share of remaining space.
func Star(weight float64) Value {
	return layout.Star(weight)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}
