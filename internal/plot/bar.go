package plot

import (
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/ironsheep/plot-tools-mcp/internal/table"
)

// renderBar draws one bar per distinct x value, aggregating duplicate x
// values by mean. With hue, each hue-within-x combination becomes its own
// bar labeled "x (hue)" and colored per hue; combinations keep
// first-appearance order, x-major.
func renderBar(t *table.Table, opts Options) ([]byte, error) {
	ax, err := resolveAxes(t, Bar, opts)
	if err != nil {
		return nil, err
	}
	rows := keptRows(t, ax)
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no plottable rows", table.ErrMalformedInput)
	}
	return encodePNG(barFigure(ax, rows))
}

// barFigure assembles the chart. Bars anchor at zero: positive values grow
// upward and negative values hang downward. The y range always contains
// zero, padded on the data ends.
func barFigure(ax axes, rows []int) chart.BarChart {
	bars := aggregateBars(ax, rows)

	lo, hi := math.MaxFloat64, -math.MaxFloat64
	for _, b := range bars {
		if b.Value < lo {
			lo = b.Value
		}
		if b.Value > hi {
			hi = b.Value
		}
	}
	base := math.Min(0, lo)
	top := math.Max(0, hi)
	paddedLo, paddedHi := axisBounds(base, top)
	// Keep the zero end flush with the canvas edge when every bar has the
	// same sign, so the baseline doubles as the axis line.
	if base == 0 && top > 0 {
		paddedLo = 0
	}
	if top == 0 && base < 0 {
		paddedHi = 0
	}

	return chart.BarChart{
		Width:        chartWidth,
		Height:       chartHeight,
		Background:   chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 40}},
		BarWidth:     barWidth(len(bars)),
		BarSpacing:   barGap,
		UseBaseValue: true,
		BaseValue:    0,
		YAxis:        chart.YAxis{Name: ax.y.Name, Range: &chart.ContinuousRange{Min: paddedLo, Max: paddedHi}},
		Bars:         bars,
	}
}

// aggregateBars reduces the kept rows to bar values. Category keys are the
// raw cell strings of the x (and hue) columns.
func aggregateBars(ax axes, rows []int) []chart.Value {
	type bucket struct {
		sum float64
		n   int
	}

	var xOrder, hueOrder []string
	seenX := make(map[string]bool)
	seenHue := make(map[string]bool)
	sums := make(map[[2]string]*bucket)

	for _, i := range rows {
		xv := ax.x.Strings[i]
		hv := ""
		if ax.hue != nil {
			hv = ax.hue.Strings[i]
		}
		if !seenX[xv] {
			seenX[xv] = true
			xOrder = append(xOrder, xv)
		}
		if ax.hue != nil && !seenHue[hv] {
			seenHue[hv] = true
			hueOrder = append(hueOrder, hv)
		}
		key := [2]string{xv, hv}
		bk := sums[key]
		if bk == nil {
			bk = &bucket{}
			sums[key] = bk
		}
		bk.sum += ax.y.Floats[i]
		bk.n++
	}

	if ax.hue == nil {
		hueOrder = []string{""}
	}

	var bars []chart.Value
	for _, xv := range xOrder {
		for hueIdx, hv := range hueOrder {
			bk := sums[[2]string{xv, hv}]
			if bk == nil {
				continue
			}
			label := xv
			if ax.hue != nil {
				label = fmt.Sprintf("%s (%s)", xv, hv)
			}
			col := chart.GetDefaultColor(hueIdx)
			bars = append(bars, chart.Value{
				Label: label,
				Value: bk.sum / float64(bk.n),
				Style: chart.Style{FillColor: col, StrokeColor: col},
			})
		}
	}
	return bars
}

// barGap is the spacing between adjacent bars in pixels.
const barGap = 12

// barWidth sizes bars so the whole group fits the canvas, within sane
// bounds for readability.
func barWidth(n int) int {
	if n == 0 {
		return 40
	}
	w := (chartWidth-120)/n - barGap
	if w > 80 {
		w = 80
	}
	if w < 8 {
		w = 8
	}
	return w
}
