package plot

import (
	"fmt"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/ironsheep/plot-tools-mcp/internal/table"
)

// renderLine draws one connected polyline per hue group, in raw row order
// (x values are not re-sorted). The x axis follows the column's kind:
// linear for numeric, a time scale for temporal, ordinal categories for
// text. Groups with a single surviving point get an emphasized dot so a
// degenerate series still shows up.
func renderLine(t *table.Table, opts Options) ([]byte, error) {
	ax, err := resolveAxes(t, Line, opts)
	if err != nil {
		return nil, err
	}
	rows := keptRows(t, ax)
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no plottable rows", table.ErrMalformedInput)
	}
	groups := groupByHue(ax, rows)

	xAxis := chart.XAxis{Name: ax.x.Name}
	var series []chart.Series

	switch ax.x.Kind {
	case table.Temporal:
		lo, hi := timeBounds(ax.x, rows)
		xAxis.Range = &chart.ContinuousRange{Min: lo, Max: hi}
		for gi, g := range groups {
			xs := make([]time.Time, len(g.rows))
			ys := make([]float64, len(g.rows))
			for j, i := range g.rows {
				xs[j] = ax.x.Times[i]
				ys[j] = ax.y.Floats[i]
			}
			series = append(series, chart.TimeSeries{
				Name:    g.name,
				XValues: xs,
				YValues: ys,
				Style:   lineStyle(gi, len(g.rows)),
			})
		}

	case table.Text:
		pos, ticks := categoryIndex(ax.x, rows)
		xAxis.Ticks = ticks
		xAxis.Range = &chart.ContinuousRange{Min: -0.5, Max: float64(len(ticks)) - 0.5}
		for gi, g := range groups {
			xs := make([]float64, len(g.rows))
			ys := make([]float64, len(g.rows))
			for j, i := range g.rows {
				xs[j] = pos[ax.x.Strings[i]]
				ys[j] = ax.y.Floats[i]
			}
			series = append(series, chart.ContinuousSeries{
				Name:    g.name,
				XValues: xs,
				YValues: ys,
				Style:   lineStyle(gi, len(g.rows)),
			})
		}

	default: // numeric
		xLo, xHi := valueBounds(ax.x, rows)
		a, b := axisBounds(xLo, xHi)
		xAxis.Range = &chart.ContinuousRange{Min: a, Max: b}
		for gi, g := range groups {
			xs := make([]float64, len(g.rows))
			ys := make([]float64, len(g.rows))
			for j, i := range g.rows {
				xs[j] = ax.x.Floats[i]
				ys[j] = ax.y.Floats[i]
			}
			series = append(series, chart.ContinuousSeries{
				Name:    g.name,
				XValues: xs,
				YValues: ys,
				Style:   lineStyle(gi, len(g.rows)),
			})
		}
	}

	yLo, yHi := valueBounds(ax.y, rows)
	a, b := axisBounds(yLo, yHi)
	ch := chart.Chart{
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis:      xAxis,
		YAxis:      chart.YAxis{Name: ax.y.Name, Range: &chart.ContinuousRange{Min: a, Max: b}},
		Series:     series,
	}
	if ax.hue != nil {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}
	return encodePNG(ch)
}

// lineStyle is seriesStyle plus a visible dot for single-point groups.
func lineStyle(i, points int) chart.Style {
	st := seriesStyle(i)
	if points == 1 {
		st.DotWidth = 5
		st.DotColor = st.StrokeColor
	}
	return st
}

// timeBounds returns the float range spanning the temporal x cells of the
// kept rows, widened by half a second each way when every timestamp is
// identical so the axis never has a zero delta.
func timeBounds(col *table.Column, rows []int) (float64, float64) {
	minT, maxT := col.Times[rows[0]], col.Times[rows[0]]
	for _, i := range rows[1:] {
		if col.Times[i].Before(minT) {
			minT = col.Times[i]
		}
		if col.Times[i].After(maxT) {
			maxT = col.Times[i]
		}
	}
	lo := chart.TimeToFloat64(minT)
	hi := chart.TimeToFloat64(maxT)
	if hi <= lo {
		lo -= 5e8
		hi += 5e8
	}
	return lo, hi
}
