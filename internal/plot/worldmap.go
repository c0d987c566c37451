package plot

import (
	"bytes"
	"fmt"
	"image/png"
	"math"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog/log"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ironsheep/plot-tools-mcp/internal/table"
)

// superSample is the factor the map is rendered above its output size
// before the Lanczos downsample. Stroke widths and padding are specified
// at the supersampled scale; font sizes follow the DPI.
const superSample = 2

// geoPoint is one marker position in degrees.
type geoPoint struct {
	lon, lat float64
}

// Coordinate column candidates, in priority order.
var (
	latCandidates = []string{"lat", "latitude", "y"}
	lonCandidates = []string{"lon", "lng", "long", "longitude", "x"}
)

var (
	coastColor     = drawing.ColorFromHex("6e7b8b")
	graticuleColor = drawing.ColorFromHex("d4dadf")
)

// renderWorldMap draws an equirectangular world outline and scatters one
// marker per row with usable coordinates. Rows without them are skipped, so
// a map with zero markers is still a valid render.
func renderWorldMap(t *table.Table, opts Options) ([]byte, error) {
	mo, err := markerOptionsFrom(opts)
	if err != nil {
		return nil, err
	}

	latCol, ok := resolveCoordinate(t, latCandidates)
	if !ok {
		return nil, fmt.Errorf("%w: no latitude column (tried %s)", ErrMissingCoordinates, strings.Join(latCandidates, ", "))
	}
	lonCol, ok := resolveCoordinate(t, lonCandidates)
	if !ok {
		return nil, fmt.Errorf("%w: no longitude column (tried %s)", ErrMissingCoordinates, strings.Join(lonCandidates, ", "))
	}

	points := collectPoints(latCol, lonCol, t.RowCount())

	ch := baseMap()
	ch.Elements = append(ch.Elements, markerLayer(points, mo))

	raw, err := encodePNG(ch)
	if err != nil {
		return nil, err
	}
	return downsample(raw, mapWidth, mapHeight)
}

// resolveCoordinate finds the column for one axis of the map. Candidates
// are tried in priority order against every column name, case-insensitively,
// so a "lat" column wins over a "y" column whenever both are present.
func resolveCoordinate(t *table.Table, candidates []string) (*table.Column, bool) {
	for _, cand := range candidates {
		for i := range t.Columns {
			if strings.EqualFold(t.Columns[i].Name, cand) {
				return &t.Columns[i], true
			}
		}
	}
	return nil, false
}

// collectPoints extracts the usable coordinate pairs. Cells that do not
// parse as numbers or fall outside the degree ranges drop their row.
func collectPoints(latCol, lonCol *table.Column, rows int) []geoPoint {
	points := make([]geoPoint, 0, rows)
	skipped := 0
	for i := 0; i < rows; i++ {
		lat, ok := coordValue(latCol, i)
		if !ok {
			skipped++
			continue
		}
		lon, ok := coordValue(lonCol, i)
		if !ok {
			skipped++
			continue
		}
		if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
			skipped++
			continue
		}
		points = append(points, geoPoint{lon: lon, lat: lat})
	}
	if skipped > 0 {
		log.Debug().
			Int("skipped", skipped).
			Int("kept", len(points)).
			Msg("Dropped rows without usable coordinates")
	}
	return points
}

// coordValue reads one cell as a coordinate. The column may have been
// inferred as text when other rows hold junk, so cells are parsed
// individually rather than trusting the column kind.
func coordValue(c *table.Column, i int) (float64, bool) {
	if c.Kind == table.Numeric {
		if !c.Valid(i) {
			return 0, false
		}
		return c.Floats[i], true
	}
	v, err := strconv.ParseFloat(c.Strings[i], 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// baseMap assembles the supersampled world outline: coastline polylines
// over a 60°/30° graticule, axes pinned to the full degree ranges.
func baseMap() chart.Chart {
	series := make([]chart.Series, 0, len(coastlines))
	for _, line := range coastlines {
		xs := make([]float64, len(line))
		ys := make([]float64, len(line))
		for i, pt := range line {
			xs[i] = pt[0]
			ys[i] = pt[1]
		}
		series = append(series, chart.ContinuousSeries{
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: coastColor,
				StrokeWidth: 1.2 * superSample,
			},
		})
	}

	grid := chart.Style{
		StrokeColor: graticuleColor,
		StrokeWidth: 1.0 * superSample,
	}
	return chart.Chart{
		Width:  mapWidth * superSample,
		Height: mapHeight * superSample,
		DPI:    chart.DefaultDPI * superSample,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    14 * superSample,
				Left:   16 * superSample,
				Right:  12 * superSample,
				Bottom: 28 * superSample,
			},
		},
		XAxis: chart.XAxis{
			Range:          &chart.ContinuousRange{Min: -180, Max: 180},
			Ticks:          degreeTicks(-180, 180, 60),
			GridMajorStyle: grid,
		},
		YAxis: chart.YAxis{
			Range:          &chart.ContinuousRange{Min: -90, Max: 90},
			Ticks:          degreeTicks(-90, 90, 30),
			GridMajorStyle: grid,
		},
		Series: series,
	}
}

// degreeTicks labels every step degrees across [lo, hi].
func degreeTicks(lo, hi, step float64) []chart.Tick {
	var ticks []chart.Tick
	for v := lo; v <= hi; v += step {
		ticks = append(ticks, chart.Tick{Value: v, Label: fmt.Sprintf("%.0f°", v)})
	}
	return ticks
}

// downsample decodes the supersampled render and scales it to the target
// size with a Lanczos filter.
func downsample(raw []byte, width, height int) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode rendered image: %w", err)
	}
	small := imaging.Resize(img, width, height, imaging.Lanczos)

	var buf bytes.Buffer
	if err := png.Encode(&buf, small); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
