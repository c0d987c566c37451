package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrMalformedInput reports CSV text that cannot be parsed into a table:
// empty input, duplicate or blank header names, or a row whose field count
// disagrees with the header.
var ErrMalformedInput = errors.New("malformed input")

// Kind identifies the inferred scalar type of a column.
type Kind int

const (
	// Numeric columns hold float64 values; missing cells are NaN.
	Numeric Kind = iota
	// Temporal columns hold timestamps; missing cells are the zero time.
	Temporal
	// Text columns hold the raw cell strings; missing cells are "".
	Text
)

// String returns the lowercase name of the kind, suitable for error text.
func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Temporal:
		return "temporal"
	default:
		return "text"
	}
}

// timeLayouts are tried in order when inferring a temporal column.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
}

// Column is a single named, typed column of a Table.
//
// Strings always holds the trimmed cell text for every row. Floats is
// populated only when Kind is Numeric, Times only when Kind is Temporal;
// both are row-aligned with Strings.
type Column struct {
	Name string
	Kind Kind

	Strings []string
	Floats  []float64
	Times   []time.Time
}

// Valid reports whether the cell at row i holds a usable value. Missing
// cells, NaN and infinite numeric cells are all considered invalid.
func (c *Column) Valid(i int) bool {
	switch c.Kind {
	case Numeric:
		return !math.IsNaN(c.Floats[i]) && !math.IsInf(c.Floats[i], 0)
	case Temporal:
		return !c.Times[i].IsZero()
	default:
		return c.Strings[i] != ""
	}
}

// Table is an ordered set of named columns parsed from CSV text.
//
// Column names are unique and case-sensitive. Row order is preserved from
// the input. A Table is never mutated after Parse returns it.
type Table struct {
	Columns []Column
}

// RowCount returns the number of data rows (the header does not count).
func (t *Table) RowCount() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Strings)
}

// Names returns the column names in table order.
func (t *Table) Names() []string {
	names := make([]string, len(t.Columns))
	for i := range t.Columns {
		names[i] = t.Columns[i].Name
	}
	return names
}

// Column returns the column with the given name (case-sensitive), or false
// when no such column exists.
func (t *Table) Column(name string) (*Column, bool) {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i], true
		}
	}
	return nil, false
}

// Parse reads comma-separated text into a typed Table.
//
// The first record is the header; it must be non-empty and free of duplicate
// or blank names. Every data row must have exactly as many fields as the
// header (strict policy: short or long rows are rejected, not padded).
// Header names and cell values are whitespace-trimmed, and a leading UTF-8
// BOM is ignored. A header-only input yields a table with zero rows.
//
// All failures wrap ErrMalformedInput with the offending detail.
func Parse(csvText string) (*Table, error) {
	text := strings.TrimPrefix(csvText, "\ufeff")
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty CSV text", ErrMalformedInput)
	}

	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = 0 // every record must match the header width
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no header row", ErrMalformedInput)
	}

	header := records[0]
	seen := make(map[string]bool, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		header[i] = name
		if name == "" {
			return nil, fmt.Errorf("%w: blank column name in header", ErrMalformedInput)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrMalformedInput, name)
		}
		seen[name] = true
	}

	rows := records[1:]
	t := &Table{Columns: make([]Column, len(header))}
	for i, name := range header {
		cells := make([]string, len(rows))
		for j, row := range rows {
			cells[j] = strings.TrimSpace(row[i])
		}
		t.Columns[i] = buildColumn(name, cells)
	}
	return t, nil
}

// buildColumn infers the type of one column and materializes its values.
func buildColumn(name string, cells []string) Column {
	col := Column{Name: name, Kind: Text, Strings: cells}

	nonEmpty := 0
	allFloat, allTime := true, true
	for _, cell := range cells {
		if cell == "" {
			continue
		}
		nonEmpty++
		if allFloat {
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				allFloat = false
			}
		}
		if allTime {
			if _, ok := parseTime(cell); !ok {
				allTime = false
			}
		}
	}
	if nonEmpty == 0 {
		return col
	}

	switch {
	case allFloat:
		col.Kind = Numeric
		col.Floats = make([]float64, len(cells))
		for i, cell := range cells {
			if cell == "" {
				col.Floats[i] = math.NaN()
				continue
			}
			v, _ := strconv.ParseFloat(cell, 64)
			col.Floats[i] = v
		}
	case allTime:
		col.Kind = Temporal
		col.Times = make([]time.Time, len(cells))
		for i, cell := range cells {
			if cell == "" {
				continue
			}
			ts, _ := parseTime(cell)
			col.Times[i] = ts
		}
	}
	return col
}

// parseTime tries each supported layout in order.
func parseTime(cell string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, cell); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
