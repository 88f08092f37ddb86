package markup

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"
)

// Extensions lists the file extensions LoadFile understands.
var Extensions = []string{".yaml", ".yml", ".hcl"}

// yamlDocument is the YAML wire form of a Document.
type yamlDocument struct {
	Rows        *int   `yaml:"rows,omitempty"`
	Columns     *int   `yaml:"columns,omitempty"`
	StarRows    string `yaml:"star_rows,omitempty"`
	StarColumns string `yaml:"star_columns,omitempty"`
	Gap         int    `yaml:"gap,omitempty"`
	Cells       []Cell `yaml:"cells,omitempty"`
}

// hclDocument is the HCL wire form of a Document.
type hclDocument struct {
	Rows        *int   `hcl:"rows,optional"`
	Columns     *int   `hcl:"columns,optional"`
	StarRows    string `hcl:"star_rows,optional"`
	StarColumns string `hcl:"star_columns,optional"`
	Gap         int    `hcl:"gap,optional"`
	Cells       []Cell `hcl:"cell,block"`
}

// IsGridFile reports whether path has a grid document extension.
func IsGridFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// LoadFile reads a grid document, choosing the format by extension.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".hcl":
		return ParseHCL(filepath.Base(path), data)
	default:
		return nil, fmt.Errorf("unsupported grid file %s: want one of %s", path, strings.Join(Extensions, ", "))
	}
}

// ParseYAML decodes a YAML grid document. Unknown keys are rejected.
func ParseYAML(data []byte) (*Document, error) {
	var raw yamlDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	return newDocument(raw.Rows, raw.Columns, raw.StarRows, raw.StarColumns, raw.Gap, raw.Cells), nil
}

// ParseHCL decodes an HCL grid document. filename is used in diagnostics.
func ParseHCL(filename string, data []byte) (*Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var raw hclDocument
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	return newDocument(raw.Rows, raw.Columns, raw.StarRows, raw.StarColumns, raw.Gap, raw.Cells), nil
}

// newDocument converts a decoded wire form; nil counts stay unset.
func newDocument(rows, columns *int, starRows, starColumns string, gap int, cells []Cell) *Document {
	doc := NewDocument()
	if rows != nil {
		doc.Rows = *rows
	}
	if columns != nil {
		doc.Columns = *columns
	}
	doc.StarRows = starRows
	doc.StarColumns = starColumns
	doc.Gap = gap
	doc.Cells = cells
	return doc
}

// EncodeYAML writes the document in canonical YAML form: unset counts and
// single spans are omitted, two-space indentation.
func (d *Document) EncodeYAML() ([]byte, error) {
	raw := yamlDocument{
		StarRows:    d.StarRows,
		StarColumns: d.StarColumns,
		Gap:         d.Gap,
	}
	if d.Rows >= 0 {
		rows := d.Rows
		raw.Rows = &rows
	}
	if d.Columns >= 0 {
		cols := d.Columns
		raw.Columns = &cols
	}
	for _, c := range d.Cells {
		if c.RowSpan == 1 {
			c.RowSpan = 0
		}
		if c.ColumnSpan == 1 {
			c.ColumnSpan = 0
		}
		raw.Cells = append(raw.Cells, c)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(raw); err != nil {
		return nil, fmt.Errorf("encoding YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding YAML: %w", err)
	}
	return buf.Bytes(), nil
}
