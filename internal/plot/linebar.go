package plot

import (
	"fmt"
	"math"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/ironsheep/plot-tools-mcp/internal/table"
)

// axes holds the resolved columns for a line or bar render. hue is nil when
// no grouping was requested.
type axes struct {
	x, y, hue *table.Column
}

// resolveAxes validates the x/y/hue options against the table and applies
// the default column policy: x falls back to the first column, y to the
// second, both in table order. Lookup is case-sensitive.
func resolveAxes(t *table.Table, kind Kind, opts Options) (axes, error) {
	if err := opts.rejectUnknown(kind, "x", "y", "hue"); err != nil {
		return axes{}, err
	}

	var ax axes
	xName, xGiven, err := opts.stringOption("x")
	if err != nil {
		return axes{}, err
	}
	yName, yGiven, err := opts.stringOption("y")
	if err != nil {
		return axes{}, err
	}
	hueName, hueGiven, err := opts.stringOption("hue")
	if err != nil {
		return axes{}, err
	}

	if xGiven {
		col, ok := t.Column(xName)
		if !ok {
			return axes{}, fmt.Errorf("%w: x column %q (have %s)", ErrColumnNotFound, xName, columnList(t))
		}
		ax.x = col
	} else {
		if len(t.Columns) < 1 {
			return axes{}, fmt.Errorf("%w: table has no column to use as x", ErrColumnNotFound)
		}
		ax.x = &t.Columns[0]
	}

	if yGiven {
		col, ok := t.Column(yName)
		if !ok {
			return axes{}, fmt.Errorf("%w: y column %q (have %s)", ErrColumnNotFound, yName, columnList(t))
		}
		ax.y = col
	} else {
		if len(t.Columns) < 2 {
			return axes{}, fmt.Errorf("%w: table has no second column to use as y", ErrColumnNotFound)
		}
		ax.y = &t.Columns[1]
	}

	if hueGiven {
		col, ok := t.Column(hueName)
		if !ok {
			return axes{}, fmt.Errorf("%w: hue column %q (have %s)", ErrColumnNotFound, hueName, columnList(t))
		}
		ax.hue = col
	}

	if ax.y.Kind != table.Numeric {
		return axes{}, fmt.Errorf("%w: y column %q is %s, need numeric", ErrInvalidValue, ax.y.Name, ax.y.Kind)
	}
	return ax, nil
}

// columnList names the table's columns for error text, so a caller can see
// what it could have asked for.
func columnList(t *table.Table) string {
	return strings.Join(t.Names(), ", ")
}

// keptRows returns the indices of rows where every involved column holds a
// valid value. Incomplete rows are dropped before rendering.
func keptRows(t *table.Table, ax axes) []int {
	n := t.RowCount()
	rows := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if !ax.x.Valid(i) || !ax.y.Valid(i) {
			continue
		}
		if ax.hue != nil && !ax.hue.Valid(i) {
			continue
		}
		rows = append(rows, i)
	}
	return rows
}

// group is one hue value's slice of kept row indices, in row order.
type group struct {
	name string
	rows []int
}

// groupByHue splits the kept rows into one group per distinct hue value, in
// first-appearance order. Without hue there is a single group named after
// the y column.
func groupByHue(ax axes, rows []int) []group {
	if ax.hue == nil {
		return []group{{name: ax.y.Name, rows: rows}}
	}

	index := make(map[string]int)
	var groups []group
	for _, i := range rows {
		key := ax.hue.Strings[i]
		gi, ok := index[key]
		if !ok {
			gi = len(groups)
			index[key] = gi
			groups = append(groups, group{name: key})
		}
		groups[gi].rows = append(groups[gi].rows, i)
	}
	return groups
}

// categoryIndex assigns ordinal positions to the distinct values of a text
// x column, in first-appearance order over the kept rows. The returned tick
// list labels each position.
func categoryIndex(col *table.Column, rows []int) (map[string]float64, []chart.Tick) {
	pos := make(map[string]float64)
	var ticks []chart.Tick
	for _, i := range rows {
		v := col.Strings[i]
		if _, ok := pos[v]; ok {
			continue
		}
		p := float64(len(ticks))
		pos[v] = p
		ticks = append(ticks, chart.Tick{Value: p, Label: v})
	}
	return pos, ticks
}

// axisBounds pads [lo, hi] by 5% and rounds outward, one decade below the
// span's order of magnitude. The result always has a non-zero delta, which
// the chart backend requires of every axis range.
func axisBounds(lo, hi float64) (float64, float64) {
	if hi <= lo {
		hi = lo + 1
	}
	span := hi - lo
	pad := span * 0.05
	a := lo - pad
	b := hi + pad
	mag := math.Pow(10, math.Floor(math.Log10(span))-1)
	if !math.IsInf(mag, 0) && mag > 0 {
		a = math.Floor(a/mag) * mag
		b = math.Ceil(b/mag) * mag
	}
	if b <= a {
		b = a + 1
	}
	return a, b
}

// valueBounds returns the min and max of the y values across the kept rows.
func valueBounds(y *table.Column, rows []int) (float64, float64) {
	lo, hi := math.MaxFloat64, -math.MaxFloat64
	for _, i := range rows {
		v := y.Floats[i]
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// seriesStyle colors one series from the backend's default palette.
func seriesStyle(i int) chart.Style {
	return chart.Style{
		StrokeColor: chart.GetDefaultColor(i),
		StrokeWidth: 2.0,
	}
}
