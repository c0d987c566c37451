package plot

import (
	"fmt"

	"github.com/ironsheep/plot-tools-mcp/internal/table"
)

// Kind selects one of the supported chart kinds. The set is closed and
// matched case-sensitively: "Line" is not a kind.
type Kind string

const (
	Line     Kind = "line"
	Bar      Kind = "bar"
	Pie      Kind = "pie"
	WorldMap Kind = "worldmap"
)

// Output dimensions in pixels, fixed per kind so repeated renders of the
// same request always produce identically sized images.
const (
	chartWidth  = 1024 // line and bar
	chartHeight = 512
	pieSize     = 768
	mapWidth    = 1024
	mapHeight   = 576
)

// ParseKind validates a kind string against the closed set.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case Line, Bar, Pie, WorldMap:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedPlotKind, s)
}

// Render runs the pipeline for one request: validates the kind, hands the
// table and decoded options to the selected renderer and returns the
// finished PNG bytes. The table is never mutated, and nothing is returned
// on failure; a failed render cannot produce a partial image.
func Render(t *table.Table, kind string, opts Options) ([]byte, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return nil, err
	}

	switch k {
	case Line:
		return renderLine(t, opts)
	case Bar:
		return renderBar(t, opts)
	case Pie:
		return renderPie(t, opts)
	case WorldMap:
		return renderWorldMap(t, opts)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedPlotKind, kind)
}
