package markup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/grindlemire/go-grid"
)

const dashboardYAML = `
rows: 3
columns: 2
star_rows: "1"
star_columns: "1"
gap: 1
cells:
  - text: header
    row: 0
    column: 0
    column_span: 2
  - text: nav
    row: 1
    column: 0
  - text: body
    row: 1
    column: 1
  - text: footer
    row: 2
    column: 0
    column_span: 2
`

const dashboardHCL = `
rows         = 3
columns      = 2
star_rows    = "1"
star_columns = "1"
gap          = 1

cell {
  text        = "header"
  column_span = 2
}

cell {
  text = "nav"
  row  = 1
}

cell {
  text   = "body"
  row    = 1
  column = 1
}

cell {
  text        = "footer"
  row         = 2
  column_span = 2
}
`

var dashboard = &Document{
	Rows:        3,
	Columns:     2,
	StarRows:    "1",
	StarColumns: "1",
	Gap:         1,
	Cells: []Cell{
		{Text: "header", ColumnSpan: 2},
		{Text: "nav", Row: 1},
		{Text: "body", Row: 1, Column: 1},
		{Text: "footer", Row: 2, ColumnSpan: 2},
	},
}

func assertDashboard(t *testing.T, doc *Document) {
	t.Helper()
	if diff := cmp.Diff(dashboard, doc); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestParseYAML(t *testing.T) {
	doc, err := ParseYAML([]byte(dashboardYAML))
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}
	assertDashboard(t, doc)
}

func TestParseHCL(t *testing.T) {
	doc, err := ParseHCL("dashboard.hcl", []byte(dashboardHCL))
	if err != nil {
		t.Fatalf("ParseHCL() error = %v", err)
	}
	assertDashboard(t, doc)
}

func TestParse_YAMLAndHCLAgree(t *testing.T) {
	fromYAML, err := ParseYAML([]byte(dashboardYAML))
	if err != nil {
		t.Fatal(err)
	}
	fromHCL, err := ParseHCL("dashboard.hcl", []byte(dashboardHCL))
	if err != nil {
		t.Fatal(err)
	}

	a, b := fromYAML.Build(), fromHCL.Build()
	a.Layout(40, 10)
	b.Layout(40, 10)

	if diff := cmp.Diff(a.Rows().Sizes(), b.Rows().Sizes()); diff != "" {
		t.Errorf("row sizes differ (-yaml +hcl):\n%s", diff)
	}
	if diff := cmp.Diff(a.Columns().Sizes(), b.Columns().Sizes()); diff != "" {
		t.Errorf("column sizes differ (-yaml +hcl):\n%s", diff)
	}
	if diff := cmp.Diff(a.RowTracks(), b.RowTracks()); diff != "" {
		t.Errorf("row tracks differ (-yaml +hcl):\n%s", diff)
	}
	if diff := cmp.Diff(a.ColumnTracks(), b.ColumnTracks()); diff != "" {
		t.Errorf("column tracks differ (-yaml +hcl):\n%s", diff)
	}
}

func TestParse_Defaults(t *testing.T) {
	type tc struct {
		parse func() (*Document, error)
	}

	tests := map[string]tc{
		"empty yaml": {parse: func() (*Document, error) { return ParseYAML(nil) }},
		"empty hcl":  {parse: func() (*Document, error) { return ParseHCL("empty.hcl", nil) }},
		"yaml without counts": {parse: func() (*Document, error) {
			return ParseYAML([]byte("star_rows: \"0\"\n"))
		}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			doc, err := tt.parse()
			if err != nil {
				t.Fatalf("parse error = %v", err)
			}
			if doc.Rows != -1 || doc.Columns != -1 {
				t.Errorf("counts = %d,%d, want unset -1,-1", doc.Rows, doc.Columns)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	type tc struct {
		parse   func() (*Document, error)
		wantMsg string
	}

	tests := map[string]tc{
		"yaml unknown key": {
			parse:   func() (*Document, error) { return ParseYAML([]byte("rowz: 3\n")) },
			wantMsg: "parsing YAML",
		},
		"yaml wrong type": {
			parse:   func() (*Document, error) { return ParseYAML([]byte("rows: many\n")) },
			wantMsg: "parsing YAML",
		},
		"hcl syntax": {
			parse:   func() (*Document, error) { return ParseHCL("bad.hcl", []byte("rows = = 3")) },
			wantMsg: "failed to parse HCL file bad.hcl",
		},
		"hcl unknown attribute": {
			parse:   func() (*Document, error) { return ParseHCL("bad.hcl", []byte("rowz = 3\n")) },
			wantMsg: "failed to decode HCL file bad.hcl",
		},
		"hcl cell without text": {
			parse:   func() (*Document, error) { return ParseHCL("bad.hcl", []byte("cell {\n  row = 1\n}\n")) },
			wantMsg: "failed to decode HCL file bad.hcl",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := tt.parse()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"dash.yaml": dashboardYAML,
		"dash.yml":  dashboardYAML,
		"dash.hcl":  dashboardHCL,
	}

	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				t.Fatal(err)
			}
			doc, err := LoadFile(path)
			if err != nil {
				t.Fatalf("LoadFile() error = %v", err)
			}
			assertDashboard(t, doc)
		})
	}
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()
	txt := filepath.Join(dir, "grid.txt")
	if err := os.WriteFile(txt, []byte("rows: 1"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFile(txt); err == nil || !strings.Contains(err.Error(), "unsupported grid file") {
		t.Errorf("LoadFile(.txt) error = %v", err)
	}
	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil || !strings.Contains(err.Error(), "reading file") {
		t.Errorf("LoadFile(missing) error = %v", err)
	}
}

func TestIsGridFile(t *testing.T) {
	tests := map[string]bool{
		"a.yaml":     true,
		"a.YML":      true,
		"dir/b.hcl":  true,
		"a.json":     false,
		"yaml":       false,
		"a.yaml.bak": false,
	}

	for path, expected := range tests {
		t.Run(path, func(t *testing.T) {
			if got := IsGridFile(path); got != expected {
				t.Errorf("IsGridFile(%q) = %v, want %v", path, got, expected)
			}
		})
	}
}

func TestDocument_Build(t *testing.T) {
	yamlDoc, err := ParseYAML([]byte(dashboardYAML))
	if err != nil {
		t.Fatal(err)
	}
	hclDoc, err := ParseHCL("dashboard.hcl", []byte(dashboardHCL))
	if err != nil {
		t.Fatal(err)
	}

	for name, doc := range map[string]*Document{"yaml": yamlDoc, "hcl": hclDoc} {
		t.Run(name, func(t *testing.T) {
			g := doc.Build()

			rows := g.Rows().Sizes()
			if len(rows) != 3 || !rows[0].IsAuto() || !rows[1].IsStar() || !rows[2].IsAuto() {
				t.Errorf("rows = %v, want [auto * auto]", rows)
			}
			cols := g.Columns().Sizes()
			if len(cols) != 2 || !cols[0].IsAuto() || !cols[1].IsStar() {
				t.Errorf("columns = %v, want [auto *]", cols)
			}
			if grid.RowCount(g) != 3 || grid.StarColumns(g) != "1" {
				t.Errorf("properties = %d,%q", grid.RowCount(g), grid.StarColumns(g))
			}
			if g.Gap() != 1 || len(g.Cells()) != 4 {
				t.Errorf("gap=%d cells=%d", g.Gap(), len(g.Cells()))
			}

			g.Layout(30, 10)
			footer := g.Cells()[3]
			if got := footer.Rect(); got != grid.NewRect(0, 9, 30, 1) {
				t.Errorf("footer Rect() = %+v", got)
			}
		})
	}
}

func TestDocument_ApplyUnsetCountsKeepDefinitions(t *testing.T) {
	g := grid.New()
	grid.SetRowCount(g, 2)

	NewDocument().Apply(g)

	if g.Rows().Len() != 2 {
		t.Errorf("Rows().Len() = %d, want 2", g.Rows().Len())
	}
}

func TestDocument_EncodeYAML(t *testing.T) {
	doc := &Document{
		Rows:     3,
		Columns:  -1,
		StarRows: "1",
		Cells: []Cell{
			{Text: "header", ColumnSpan: 2, RowSpan: 1},
		},
	}

	out, err := doc.EncodeYAML()
	if err != nil {
		t.Fatalf("EncodeYAML() error = %v", err)
	}
	text := string(out)

	for _, want := range []string{"rows: 3", "star_rows: \"1\"", "column_span: 2"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
	for _, unwanted := range []string{"columns:", "row_span", "star_columns", "gap"} {
		if strings.Contains(text, unwanted) {
			t.Errorf("output should omit %q:\n%s", unwanted, text)
		}
	}

	again, err := ParseYAML(out)
	if err != nil {
		t.Fatalf("ParseYAML(encoded) error = %v", err)
	}
	second, err := again.EncodeYAML()
	if err != nil {
		t.Fatal(err)
	}
	if string(second) != text {
		t.Errorf("canonical form is not stable:\n%s\nvs\n%s", text, second)
	}
}
