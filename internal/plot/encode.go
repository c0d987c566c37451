package plot

import (
	"bytes"
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
)

// figure is the renderable surface shared by every go-chart chart type.
type figure interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// encodePNG renders fig to an in-memory PNG.
func encodePNG(fig figure) ([]byte, error) {
	var buf bytes.Buffer
	if err := fig.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buf.Bytes(), nil
}
