package plot

import (
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// markerOptions styles the world map markers. The knobs follow the usual
// scatter-plot conventions: s is the marker area in points squared, c a
// named or "#rrggbb" hex color, alpha the opacity, marker the glyph.
type markerOptions struct {
	size  float64
	color drawing.Color
	glyph string
}

const (
	defaultMarkerSize  = 50.0
	defaultMarkerColor = "red"
	defaultMarkerAlpha = 0.7
	defaultMarkerGlyph = "o"
)

// markerGlyphs is the supported glyph vocabulary.
var markerGlyphs = map[string]bool{
	"o": true, ".": true, "s": true, "D": true,
	"^": true, "v": true, "x": true, "+": true, "*": true,
}

// namedColors maps color names to hex. Single letters carry the classic
// MATLAB shades, full names the CSS values.
var namedColors = map[string]string{
	"b": "#0000ff", "g": "#008000", "r": "#ff0000", "c": "#00bfbf",
	"m": "#bf00bf", "y": "#bfbf00", "k": "#000000", "w": "#ffffff",

	"black": "#000000", "white": "#ffffff", "red": "#ff0000",
	"green": "#008000", "blue": "#0000ff", "cyan": "#00ffff",
	"magenta": "#ff00ff", "yellow": "#ffff00", "orange": "#ffa500",
	"purple": "#800080", "brown": "#a52a2a", "pink": "#ffc0cb",
	"gray": "#808080", "grey": "#808080", "olive": "#808000",
	"navy": "#000080", "teal": "#008080", "maroon": "#800000",
	"lime": "#00ff00", "aqua": "#00ffff", "silver": "#c0c0c0",
	"gold": "#ffd700", "indigo": "#4b0082", "violet": "#ee82ee",
	"coral": "#ff7f50", "salmon": "#fa8072", "crimson": "#dc143c",
	"turquoise": "#40e0d0", "chocolate": "#d2691e", "tomato": "#ff6347",
	"orchid": "#da70d6", "plum": "#dda0dd", "khaki": "#f0e68c",
	"skyblue": "#87ceeb", "steelblue": "#4682b4", "slategray": "#708090",
	"darkred": "#8b0000", "darkgreen": "#006400", "darkblue": "#00008b",
	"lightgray": "#d3d3d3", "lightblue": "#add8e6", "lightgreen": "#90ee90",
}

// markerOptionsFrom resolves the marker styling for a world map render,
// applying defaults for anything the caller left out.
func markerOptionsFrom(opts Options) (markerOptions, error) {
	if err := opts.rejectUnknown(WorldMap, "s", "c", "alpha", "marker"); err != nil {
		return markerOptions{}, err
	}

	size := defaultMarkerSize
	if v, ok, err := opts.floatOption("s"); err != nil {
		return markerOptions{}, err
	} else if ok {
		size = v
	}
	if size <= 0 {
		return markerOptions{}, fmt.Errorf("%w: marker size must be positive, got %v", ErrInvalidOptions, size)
	}

	alpha := defaultMarkerAlpha
	if v, ok, err := opts.floatOption("alpha"); err != nil {
		return markerOptions{}, err
	} else if ok {
		alpha = v
	}
	if alpha < 0 || alpha > 1 {
		return markerOptions{}, fmt.Errorf("%w: alpha must be within [0, 1], got %v", ErrInvalidOptions, alpha)
	}

	name := defaultMarkerColor
	if v, ok, err := opts.stringOption("c"); err != nil {
		return markerOptions{}, err
	} else if ok {
		name = v
	}
	col, err := parseMarkerColor(name)
	if err != nil {
		return markerOptions{}, err
	}
	col.A = uint8(math.Round(alpha * 255))

	glyph := defaultMarkerGlyph
	if v, ok, err := opts.stringOption("marker"); err != nil {
		return markerOptions{}, err
	} else if ok {
		glyph = v
	}
	if !markerGlyphs[glyph] {
		return markerOptions{}, fmt.Errorf("%w: unsupported marker %q", ErrInvalidOptions, glyph)
	}

	return markerOptions{size: size, color: col, glyph: glyph}, nil
}

// parseMarkerColor resolves a color name or hex spec to a fully opaque
// color. Name lookup is case-insensitive.
func parseMarkerColor(name string) (drawing.Color, error) {
	spec := name
	if hex, ok := namedColors[strings.ToLower(name)]; ok {
		spec = hex
	}
	c, err := colorful.Hex(spec)
	if err != nil {
		return drawing.Color{}, fmt.Errorf("%w: unknown color %q", ErrInvalidOptions, name)
	}
	r, g, b := c.RGB255()
	return drawing.Color{R: r, G: g, B: b, A: 255}, nil
}

// markerLayer draws the data markers over the finished map. It runs as a
// chart element so it receives the final canvas box, which is what turns
// longitude and latitude into pixel positions.
func markerLayer(points []geoPoint, mo markerOptions) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		radius := math.Sqrt(mo.size/math.Pi) * superSample
		if mo.glyph == "." {
			radius /= 2
		}
		if radius < 1 {
			radius = 1
		}
		for _, p := range points {
			x := canvasBox.Left + int(math.Round((p.lon+180)/360*float64(canvasBox.Width())))
			y := canvasBox.Bottom - int(math.Round((p.lat+90)/180*float64(canvasBox.Height())))
			drawGlyph(r, mo.glyph, x, y, radius, mo.color)
		}
	}
}

// Vertex factors for glyphs inscribed in the marker circle.
const (
	sin45 = 0.7071
	sin60 = 0.8660
)

func drawGlyph(r chart.Renderer, glyph string, x, y int, radius float64, col drawing.Color) {
	switch glyph {
	case "o", ".":
		r.SetFillColor(col)
		r.Circle(radius, x, y)
		r.Fill()
	case "s":
		h := int(math.Round(radius * sin45))
		r.SetFillColor(col)
		r.MoveTo(x-h, y-h)
		r.LineTo(x+h, y-h)
		r.LineTo(x+h, y+h)
		r.LineTo(x-h, y+h)
		r.Close()
		r.Fill()
	case "D":
		d := int(math.Round(radius))
		r.SetFillColor(col)
		r.MoveTo(x, y-d)
		r.LineTo(x+d, y)
		r.LineTo(x, y+d)
		r.LineTo(x-d, y)
		r.Close()
		r.Fill()
	case "^":
		w := int(math.Round(radius * sin60))
		r.SetFillColor(col)
		r.MoveTo(x, y-int(math.Round(radius)))
		r.LineTo(x+w, y+int(math.Round(radius/2)))
		r.LineTo(x-w, y+int(math.Round(radius/2)))
		r.Close()
		r.Fill()
	case "v":
		w := int(math.Round(radius * sin60))
		r.SetFillColor(col)
		r.MoveTo(x, y+int(math.Round(radius)))
		r.LineTo(x+w, y-int(math.Round(radius/2)))
		r.LineTo(x-w, y-int(math.Round(radius/2)))
		r.Close()
		r.Fill()
	case "x":
		d := int(math.Round(radius * sin45))
		strokeGlyph(r, col, radius, [][4]int{
			{x - d, y - d, x + d, y + d},
			{x - d, y + d, x + d, y - d},
		})
	case "+":
		d := int(math.Round(radius))
		strokeGlyph(r, col, radius, [][4]int{
			{x - d, y, x + d, y},
			{x, y - d, x, y + d},
		})
	case "*":
		d := int(math.Round(radius))
		s := int(math.Round(radius * sin45))
		strokeGlyph(r, col, radius, [][4]int{
			{x - d, y, x + d, y},
			{x, y - d, x, y + d},
			{x - s, y - s, x + s, y + s},
			{x - s, y + s, x + s, y - s},
		})
	}
}

func strokeGlyph(r chart.Renderer, col drawing.Color, radius float64, segments [][4]int) {
	r.SetStrokeColor(col)
	r.SetStrokeWidth(math.Max(radius/3, 1.5))
	for _, s := range segments {
		r.MoveTo(s[0], s[1])
		r.LineTo(s[2], s[3])
		r.Stroke()
	}
}
