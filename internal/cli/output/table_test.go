package output

import (
	"bytes"
	"slices"
	"strings"
	"testing"
)

func TestTableFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TableFormatter{}).Format(&buf, sampleLines()); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	if got := strings.Fields(lines[0]); !slices.Equal(got, []string{"SECTION", "KEY", "VALUE", "SOURCE"}) {
		t.Errorf("header = %v", got)
	}
	if !strings.HasPrefix(lines[1], "colors ") || !strings.Contains(lines[1], "red, default") {
		t.Errorf("row 1 = %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], "default") {
		t.Errorf("row 2 = %q, want source default", lines[2])
	}
	if strings.Contains(buf.String(), "(default)") {
		t.Error("table output should not carry the (default) marker")
	}
}

func TestTableFormatter_NoHeaders(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TableFormatter{NoHeaders: true}).Format(&buf, sampleLines()); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if strings.Contains(buf.String(), "SECTION") {
		t.Errorf("output %q should not carry headers", buf.String())
	}
	if n := strings.Count(buf.String(), "\n"); n != 2 {
		t.Errorf("got %d lines, want 2", n)
	}
}

func TestLinesTable_EmptyValue(t *testing.T) {
	lines := sampleLines()[:1]
	lines[0].Value = ""

	tbl := LinesTable(lines)
	if len(tbl.Rows) != 1 {
		t.Fatalf("len(Rows) = %d, want 1", len(tbl.Rows))
	}
	if want := []string{"colors", "top", "-", "user"}; !slices.Equal(tbl.Rows[0], want) {
		t.Errorf("Rows[0] = %v, want %v", tbl.Rows[0], want)
	}
}

func TestTable_RenderWithOptions(t *testing.T) {
	tbl := &Table{}
	tbl.SetHeaders("A", "B")
	tbl.AddRow("long-cell", "x")
	tbl.AddRow("y", "z")

	var buf bytes.Buffer
	if err := tbl.RenderWithOptions(&buf, false); err != nil {
		t.Fatalf("RenderWithOptions() error = %v", err)
	}

	want := "A          B\nlong-cell  x\ny          z\n"
	if buf.String() != want {
		t.Errorf("RenderWithOptions() = %q, want %q", buf.String(), want)
	}
}
