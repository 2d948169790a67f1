package output

import (
	"io"
	"text/tabwriter"

	"github.com/yndnr/perfconf/internal/core/service"
)

// TableFormatter formats lines as an aligned table.
type TableFormatter struct {
	NoHeaders bool
}

// Format formats lines as a table.
func (f *TableFormatter) Format(w io.Writer, lines []service.Line) error {
	return LinesTable(lines).RenderWithOptions(w, f.NoHeaders)
}

// LinesTable converts resolved lines to a table.
func LinesTable(lines []service.Line) *Table {
	t := &Table{}
	t.SetHeaders("SECTION", "KEY", "VALUE", "SOURCE")
	for _, l := range lines {
		t.AddRow(l.Section, l.Key, cell(l.Value), string(l.Source))
	}
	return t
}

func cell(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// Table represents tabular data.
type Table struct {
	Headers []string
	Rows    [][]string
}

// RenderWithOptions renders the table with options.
func (t *Table) RenderWithOptions(w io.Writer, noHeaders bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if !noHeaders && len(t.Headers) > 0 {
		writeRow(tw, t.Headers)
	}
	for _, row := range t.Rows {
		writeRow(tw, row)
	}

	return tw.Flush()
}

func writeRow(w io.Writer, cells []string) {
	for i, c := range cells {
		if i > 0 {
			io.WriteString(w, "\t")
		}
		io.WriteString(w, c)
	}
	io.WriteString(w, "\n")
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// SetHeaders sets the table headers.
func (t *Table) SetHeaders(headers ...string) {
	t.Headers = headers
}
