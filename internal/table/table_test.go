package table

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tbl, err := Parse("a,b\n1,2\n2,4\n3,6")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got := len(tbl.Columns); got != 2 {
		t.Fatalf("columns: got %d, want 2", got)
	}
	if got := tbl.RowCount(); got != 3 {
		t.Errorf("rows: got %d, want 3", got)
	}

	a, ok := tbl.Column("a")
	if !ok {
		t.Fatal("column a not found")
	}
	if a.Kind != Numeric {
		t.Errorf("column a kind: got %s, want numeric", a.Kind)
	}
	if a.Floats[2] != 3 {
		t.Errorf("a[2]: got %v, want 3", a.Floats[2])
	}
}

func TestParse_TypeInference(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want Kind
	}{
		{"integers", "v\n1\n2\n3", Numeric},
		{"floats", "v\n1.5\n-2.25\n0.0", Numeric},
		{"scientific", "v\n1e3\n-2.5e-2\n3E2", Numeric},
		{"dates", "v\n2024-01-01\n2024-06-15\n2024-12-31", Temporal},
		{"datetimes", "v\n2024-01-01 10:00:00\n2024-01-02 11:30:00", Temporal},
		{"rfc3339", "v\n2024-01-01T10:00:00Z\n2024-01-02T11:00:00Z", Temporal},
		{"slash dates", "v\n2024/01/01\n2024/02/01", Temporal},
		{"plain text", "v\nnorth\nsouth\neast", Text},
		{"mixed numeric and text", "v\n1\ntwo\n3", Text},
		{"mixed date and text", "v\n2024-01-01\nyesterday", Text},
		{"year-only is numeric", "v\n2023\n2024\n2025", Numeric},
		{"all empty cells", "v,w\n,1\n,2", Text},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := Parse(tt.csv)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if got := tbl.Columns[0].Kind; got != tt.want {
				t.Errorf("kind: got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParse_MissingCells(t *testing.T) {
	tbl, err := Parse("n,d,s\n1,2024-01-01,x\n,,\n3,2024-01-03,z")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	n := tbl.Columns[0]
	if n.Kind != Numeric {
		t.Fatalf("column n kind: got %s, want numeric", n.Kind)
	}
	if !math.IsNaN(n.Floats[1]) {
		t.Errorf("n[1]: got %v, want NaN", n.Floats[1])
	}
	if n.Valid(1) {
		t.Error("n[1] should be invalid")
	}
	if !n.Valid(0) || !n.Valid(2) {
		t.Error("n[0] and n[2] should be valid")
	}

	d := tbl.Columns[1]
	if d.Kind != Temporal {
		t.Fatalf("column d kind: got %s, want temporal", d.Kind)
	}
	if !d.Times[1].IsZero() {
		t.Errorf("d[1]: got %v, want zero time", d.Times[1])
	}
	if d.Valid(1) {
		t.Error("d[1] should be invalid")
	}

	s := tbl.Columns[2]
	if s.Valid(1) {
		t.Error("s[1] should be invalid")
	}
}

func TestParse_QuotedFields(t *testing.T) {
	tbl, err := Parse("name,value\n\"Smith, Jane\",10\n\"with \"\"quotes\"\"\",20")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	name := tbl.Columns[0]
	if name.Strings[0] != "Smith, Jane" {
		t.Errorf("name[0]: got %q, want %q", name.Strings[0], "Smith, Jane")
	}
	if name.Strings[1] != `with "quotes"` {
		t.Errorf("name[1]: got %q, want %q", name.Strings[1], `with "quotes"`)
	}
	if tbl.Columns[1].Kind != Numeric {
		t.Errorf("value kind: got %s, want numeric", tbl.Columns[1].Kind)
	}
}

func TestParse_BOM(t *testing.T) {
	tbl, err := Parse("\ufeffa,b\n1,2")
	if err != nil {
		t.Fatalf("Parse with BOM failed: %v", err)
	}
	if _, ok := tbl.Column("a"); !ok {
		t.Error("column a not found after BOM strip")
	}
}

func TestParse_TrimmedHeaderNames(t *testing.T) {
	tbl, err := Parse("a, b\n1,2")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	b, ok := tbl.Column("b")
	if !ok {
		t.Fatal(`column "b" not found; header names should be trimmed`)
	}
	if b.Floats[0] != 2 {
		t.Errorf("b[0]: got %v, want 2", b.Floats[0])
	}
}

func TestParse_HeaderOnly(t *testing.T) {
	tbl, err := Parse("a,b,c")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := tbl.RowCount(); got != 0 {
		t.Errorf("rows: got %d, want 0", got)
	}
	if got := len(tbl.Columns); got != 3 {
		t.Errorf("columns: got %d, want 3", got)
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{"empty", ""},
		{"whitespace only", "  \n\t\n"},
		{"duplicate header", "a,a\n1,2"},
		{"blank header name", "a,,c\n1,2,3"},
		{"short row", "a,b,c\n1,2"},
		{"long row", "a,b\n1,2,3"},
		{"unterminated quote", "a,b\n\"unclosed,2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.csv)
			if err == nil {
				t.Fatal("Parse should fail")
			}
			if !errors.Is(err, ErrMalformedInput) {
				t.Errorf("error %v should wrap ErrMalformedInput", err)
			}
		})
	}
}

func TestNames(t *testing.T) {
	tbl, err := Parse("c,a,b\n1,2,3")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	got := tbl.Names()
	want := []string{"c", "a", "b"}
	if len(got) != len(want) {
		t.Fatalf("names: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("name %d: got %q, want %q (table order)", i, got[i], want[i])
		}
	}
}

func TestParse_CaseSensitiveNames(t *testing.T) {
	tbl, err := Parse("Value,value\n1,2")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	upper, ok := tbl.Column("Value")
	if !ok {
		t.Fatal("column Value not found")
	}
	lower, ok := tbl.Column("value")
	if !ok {
		t.Fatal("column value not found")
	}
	if upper.Floats[0] != 1 || lower.Floats[0] != 2 {
		t.Errorf("columns resolved wrong: Value[0]=%v value[0]=%v", upper.Floats[0], lower.Floats[0])
	}
	if _, ok := tbl.Column("VALUE"); ok {
		t.Error("lookup should be case-sensitive")
	}
}

func TestParse_TemporalValues(t *testing.T) {
	tbl, err := Parse("ts\n2024-03-01\n2024-03-02")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	ts := tbl.Columns[0]
	want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if !ts.Times[0].Equal(want) {
		t.Errorf("ts[0]: got %v, want %v", ts.Times[0], want)
	}
}

func TestParse_RowOrderPreserved(t *testing.T) {
	tbl, err := Parse("x\n3\n1\n2")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	got := tbl.Columns[0].Floats
	want := []float64{3, 1, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("x[%d]: got %v, want %v (row order must be preserved)", i, got[i], want[i])
		}
	}
}
