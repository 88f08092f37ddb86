package markup

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grindlemire/go-grid"
)

// Issue is a document problem that the grid would silently ignore.
type Issue struct {
	Field   string
	Message string
}

func (i Issue) String() string {
	return i.Field + ": " + i.Message
}

// Check reports input the grid properties ignore: negative counts, star
// tokens that can never match, star indices past the track count, and cells
// outside the grid.
func (d *Document) Check() []Issue {
	var issues []Issue

	issues = append(issues, checkCount("rows", d.Rows)...)
	issues = append(issues, checkCount("columns", d.Columns)...)
	issues = append(issues, checkStars("star_rows", d.StarRows, "rows", d.Rows)...)
	issues = append(issues, checkStars("star_columns", d.StarColumns, "columns", d.Columns)...)

	if d.Gap < 0 {
		issues = append(issues, Issue{Field: "gap", Message: fmt.Sprintf("negative gap %d is treated as 0", d.Gap)})
	}

	rows, cols := max(1, d.Rows), max(1, d.Columns)
	for i, c := range d.Cells {
		field := fmt.Sprintf("cells[%d]", i)
		if c.Row < 0 || c.Column < 0 {
			issues = append(issues, Issue{Field: field, Message: fmt.Sprintf("negative position %d,%d is treated as 0", c.Row, c.Column)})
		}
		if c.Row >= rows {
			issues = append(issues, Issue{Field: field, Message: fmt.Sprintf("row %d is outside %d row(s); pinned to the last row", c.Row, rows)})
		}
		if c.Column >= cols {
			issues = append(issues, Issue{Field: field, Message: fmt.Sprintf("column %d is outside %d column(s); pinned to the last column", c.Column, cols)})
		}
		if c.Row+max(1, c.RowSpan) > rows && c.Row < rows {
			issues = append(issues, Issue{Field: field, Message: fmt.Sprintf("row_span %d runs past the last row", c.RowSpan)})
		}
		if c.Column+max(1, c.ColumnSpan) > cols && c.Column < cols {
			issues = append(issues, Issue{Field: field, Message: fmt.Sprintf("column_span %d runs past the last column", c.ColumnSpan)})
		}
	}

	return issues
}

func checkCount(field string, n int) []Issue {
	if n < -1 {
		return []Issue{{Field: field, Message: fmt.Sprintf("negative count %d is ignored", n)}}
	}
	return nil
}

func checkStars(field, value, countField string, count int) []Issue {
	if value == "" {
		return nil
	}
	if count < 0 {
		return []Issue{{Field: field, Message: fmt.Sprintf("has no effect while %s is unset", countField)}}
	}

	var issues []Issue
	for _, token := range grid.ParseStarList(value).Unmatched(count) {
		n, err := strconv.Atoi(strings.TrimSpace(token))
		switch {
		case err != nil:
			issues = append(issues, Issue{Field: field, Message: fmt.Sprintf("token %q is not an index", token)})
		case strconv.Itoa(n) != token:
			issues = append(issues, Issue{Field: field, Message: fmt.Sprintf("token %q never matches; write %q", token, strconv.Itoa(n))})
		default:
			issues = append(issues, Issue{Field: field, Message: fmt.Sprintf("index %d is out of range for %d %s", n, count, countField)})
		}
	}
	return issues
}
