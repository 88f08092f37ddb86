package grid

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/grindlemire/go-grid/internal/logging"
)

// Container is a grid-like host: it owns row and column definitions.
// The grid properties only act on hosts that implement Container.
type Container interface {
	Host
	Rows() *Definitions
	Columns() *Definitions
}

// The four grid properties. Counts default to -1 (unset); star lists default
// to the empty string.
var (
	RowCountProperty    = NewProperty("RowCount", -1)
	ColumnCountProperty = NewProperty("ColumnCount", -1)
	StarRowsProperty    = NewProperty("StarRows", "")
	StarColumnsProperty = NewProperty("StarColumns", "")
)

func init() {
	RowCountProperty.OnChanged(onRowCountChanged)
	ColumnCountProperty.OnChanged(onColumnCountChanged)
	StarRowsProperty.OnChanged(onStarRowsChanged)
	StarColumnsProperty.OnChanged(onStarColumnsChanged)
}

// SetRowCount sets RowCount on h. A value >= 0 rebuilds the rows of a grid
// to n auto-sized definitions and reapplies StarRows.
func SetRowCount(h Host, n int) {
	RowCountProperty.Set(h, n)
}

// RowCount returns the RowCount attached to h, or -1.
func RowCount(h Host) int {
	return RowCountProperty.Get(h)
}

// SetColumnCount sets ColumnCount on h. A value >= 0 rebuilds the columns of
// a grid to n auto-sized definitions and reapplies StarColumns.
func SetColumnCount(h Host, n int) {
	ColumnCountProperty.Set(h, n)
}

// ColumnCount returns the ColumnCount attached to h, or -1.
func ColumnCount(h Host) int {
	return ColumnCountProperty.Get(h)
}

// SetStarRows sets StarRows on h, e.g. "0,2". Named rows that exist become Star(1).
func SetStarRows(h Host, s string) {
	StarRowsProperty.Set(h, s)
}

// StarRows returns the StarRows attached to h.
func StarRows(h Host) string {
	return StarRowsProperty.Get(h)
}

// SetStarColumns sets StarColumns on h. Named columns that exist become Star(1).
func SetStarColumns(h Host, s string) {
	StarColumnsProperty.Set(h, s)
}

// StarColumns returns the StarColumns attached to h.
func StarColumns(h Host) string {
	return StarColumnsProperty.Get(h)
}

func onRowCountChanged(h Host, n int) {
	c, ok := asContainer(h, RowCountProperty.Name())
	if !ok || n < 0 {
		return
	}
	rebuild(c.Rows(), n)
	applyStarRows(c)
}

func onColumnCountChanged(h Host, n int) {
	c, ok := asContainer(h, ColumnCountProperty.Name())
	if !ok || n < 0 {
		return
	}
	rebuild(c.Columns(), n)
	applyStarColumns(c)
}

func onStarRowsChanged(h Host, s string) {
	c, ok := asContainer(h, StarRowsProperty.Name())
	if !ok || s == "" {
		return
	}
	applyStarRows(c)
}

func onStarColumnsChanged(h Host, s string) {
	c, ok := asContainer(h, StarColumnsProperty.Name())
	if !ok || s == "" {
		return
	}
	applyStarColumns(c)
}

// applyStarRows reads StarRows back from the host rather than trusting the
// value passed to the handler, so the latest write always wins.
func applyStarRows(c Container) {
	applyStars(c.Rows(), ParseStarList(StarRows(c)), StarRowsProperty.Name())
}

func applyStarColumns(c Container) {
	applyStars(c.Columns(), ParseStarList(StarColumns(c)), StarColumnsProperty.Name())
}

func rebuild(defs *Definitions, n int) {
	defs.Clear()
	defs.Add(BuildDefinitions(n, StarList{})...)
}

func applyStars(defs *Definitions, stars StarList, property string) {
	for i, d := range ApplyStars(defs.All(), stars) {
		if d.Size != defs.At(i).Size {
			defs.SetSize(i, d.Size)
		}
	}
	if ignored := stars.Unmatched(defs.Len()); len(ignored) > 0 {
		logging.Debug("star tokens ignored",
			zap.String("property", property),
			zap.Strings("tokens", ignored),
			zap.Int("count", defs.Len()),
		)
	}
}

func asContainer(h Host, property string) (Container, bool) {
	c, ok := h.(Container)
	if !ok {
		logging.Debug("grid property set on a host that is not a grid",
			zap.String("property", property),
			zap.String("host", fmt.Sprintf("%T", h)),
		)
	}
	return c, ok
}
