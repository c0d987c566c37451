package plot

import (
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/ironsheep/plot-tools-mcp/internal/table"
)

// renderPie draws one slice per row, labeled from the first text column
// and sized from the first numeric column. Slice order follows row order.
func renderPie(t *table.Table, opts Options) ([]byte, error) {
	if err := opts.rejectUnknown(Pie); err != nil {
		return nil, err
	}
	slices, err := pieSlices(t)
	if err != nil {
		return nil, err
	}

	ch := chart.PieChart{
		Width:  pieSize,
		Height: pieSize,
		Values: slices,
	}
	return encodePNG(ch)
}

// pieSlices reduces the table to slice values: one per row with both a
// usable label and a usable value, in row order.
func pieSlices(t *table.Table) ([]chart.Value, error) {
	var labels, values *table.Column
	for i := range t.Columns {
		c := &t.Columns[i]
		switch {
		case labels == nil && c.Kind == table.Text:
			labels = c
		case values == nil && c.Kind == table.Numeric:
			values = c
		}
	}
	if labels == nil {
		return nil, fmt.Errorf("%w: no text column for slice labels", ErrAmbiguousShape)
	}
	if values == nil {
		return nil, fmt.Errorf("%w: no numeric column for slice values", ErrAmbiguousShape)
	}

	var slices []chart.Value
	for i := 0; i < t.RowCount(); i++ {
		if !labels.Valid(i) || !values.Valid(i) {
			continue
		}
		v := values.Floats[i]
		if v <= 0 {
			return nil, fmt.Errorf("%w: non-positive value in column %q (row %d)", ErrInvalidValue, values.Name, i+1)
		}
		slices = append(slices, chart.Value{Label: labels.Strings[i], Value: v})
	}
	if len(slices) == 0 {
		return nil, fmt.Errorf("%w: no plottable rows", table.ErrMalformedInput)
	}
	return slices, nil
}
