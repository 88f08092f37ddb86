package layout

import "strconv"

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto  Unit = iota // Size determined by content
	UnitFixed             // Absolute terminal cells
	UnitStar              // Weighted share of remaining space
)

// Value represents a track size that can be fixed, star, or auto.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value that should be computed from content.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute number of terminal cells.
func Fixed(n int) Value {
	return Value{Amount: float64(n), Unit: UnitFixed}
}

// Star returns a Value representing a proportional share of remaining space.
// weight is relative to the other star tracks on the same axis; Star(2) gets
// twice the space of Star(1).
func Star(weight float64) Value {
	return Value{Amount: weight, Unit: UnitStar}
}

// Resolve computes the actual integer value given available space.
// Fixed values ignore available; auto and star values return the fallback,
// since they can only be sized against their siblings.
func (v Value) Resolve(available, fallback int) int {
	switch v.Unit {
	case UnitFixed:
		return int(v.Amount)
	default:
		return fallback
	}
}

// IsAuto returns true if this value should be computed from content.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// IsStar returns true if this value takes a proportional share of free space.
func (v Value) IsStar() bool {
	return v.Unit == UnitStar
}

// String formats the value the way grid markup writes it: "auto", "12", "*", "2*".
func (v Value) String() string {
	switch v.Unit {
	case UnitFixed:
		return strconv.Itoa(int(v.Amount))
	case UnitStar:
		if v.Amount == 1 {
			return "*"
		}
		return strconv.FormatFloat(v.Amount, 'g', -1, 64) + "*"
	default:
		return "auto"
	}
}
