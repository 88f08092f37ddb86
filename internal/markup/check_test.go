package markup

import (
	"strings"
	"testing"
)

func TestDocument_Check(t *testing.T) {
	type tc struct {
		doc      Document
		expected []string
	}

	tests := map[string]tc{
		"clean document": {
			doc: Document{
				Rows: 3, Columns: 2, StarRows: "0,2", StarColumns: "1",
				Cells: []Cell{{Text: "a", Row: 2, Column: 1}},
			},
			expected: nil,
		},
		"negative counts": {
			doc:      Document{Rows: -2, Columns: -1},
			expected: []string{"rows: negative count -2 is ignored"},
		},
		"stars without count": {
			doc:      Document{Rows: -1, Columns: -1, StarRows: "0"},
			expected: []string{"star_rows: has no effect while rows is unset"},
		},
		"star tokens": {
			doc: Document{Rows: 2, Columns: -1, StarRows: "01,x, 1,5"},
			expected: []string{
				`star_rows: token "01" never matches; write "1"`,
				`star_rows: token "x" is not an index`,
				`star_rows: token " 1" never matches; write "1"`,
				"star_rows: index 5 is out of range for 2 rows",
			},
		},
		"empty star token": {
			doc:      Document{Rows: -1, Columns: 2, StarColumns: "0,"},
			expected: []string{`star_columns: token "" is not an index`},
		},
		"negative gap": {
			doc:      Document{Rows: -1, Columns: -1, Gap: -1},
			expected: []string{"gap: negative gap -1 is treated as 0"},
		},
		"cells outside grid": {
			doc: Document{
				Rows: 2, Columns: 2,
				Cells: []Cell{
					{Text: "far", Row: 4, Column: 0},
					{Text: "wide", Row: 0, Column: 1, ColumnSpan: 3},
					{Text: "neg", Row: -1, Column: 0},
				},
			},
			expected: []string{
				"cells[0]: row 4 is outside 2 row(s); pinned to the last row",
				"cells[1]: column_span 3 runs past the last column",
				"cells[2]: negative position -1,0 is treated as 0",
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			issues := tt.doc.Check()
			got := make([]string, len(issues))
			for i, issue := range issues {
				got[i] = issue.String()
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("Check() = %d issues, want %d:\n%s", len(got), len(tt.expected), strings.Join(got, "\n"))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("issue[%d] = %q, want %q", i, got[i], tt.expected[i])
				}
			}
		})
	}
}
