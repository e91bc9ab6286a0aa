package charts

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/iWorld-y/text_radar/pkg/view"
)

// SVG 基于 go-chart 的 SVG 图表库
type SVG struct {
	surfaces
	Width  int
	Height int
}

// NewSVG 创建 SVG 图表库
func NewSVG(width, height int) *SVG {
	if width <= 0 {
		width = 800
	}
	if height <= 0 {
		height = 400
	}
	return &SVG{Width: width, Height: height}
}

// New 在 surface 上创建图表实例
func (s *SVG) New(surface string, kind Kind, ds view.ChartDataset) (Chart, error) {
	h, err := newHandle(&s.surfaces, surface, kind, ds)
	if err != nil {
		return nil, err
	}
	return &svgChart{handle: h, width: s.Width, height: s.Height}, nil
}

var _ Library = (*SVG)(nil)

type svgChart struct {
	*handle
	width  int
	height int
}

func (c *svgChart) Render(w io.Writer) error {
	return c.live(func() error {
		switch c.kind {
		case Bar:
			return c.barChart().Render(chart.SVG, w)
		default:
			return c.donutChart().Render(chart.SVG, w)
		}
	})
}

func (c *svgChart) barChart() chart.BarChart {
	n := c.ds.Len()
	barWidth := (c.width - 120) / (2 * n)
	if barWidth > 50 {
		barWidth = 50
	}
	if barWidth < 4 {
		barWidth = 4
	}

	bars := make([]chart.Value, n)
	for i := range bars {
		color := toDrawing(c.ds.Colors[i])
		bars[i] = chart.Value{
			Label: c.ds.Labels[i],
			Value: float64(c.ds.Values[i]),
			Style: chart.Style{
				FillColor:   color,
				StrokeColor: toDrawing(c.ds.Colors[i].Opaque()),
				StrokeWidth: 2,
			},
		}
	}

	return chart.BarChart{
		Title:    "Word Frequency",
		Width:    c.width,
		Height:   c.height,
		BarWidth: barWidth,
		YAxis: chart.YAxis{
			// 显式给出范围，避免所有计数相同时 go-chart 计算出零宽度区间
			Range: &chart.ContinuousRange{Min: 0, Max: float64(c.ds.Max())},
		},
		Bars: bars,
	}
}

func (c *svgChart) donutChart() chart.DonutChart {
	values := make([]chart.Value, c.ds.Len())
	for i := range values {
		values[i] = chart.Value{
			Label: fmt.Sprintf("%s (%s)", c.ds.Labels[i], c.ds.PercentLabel(i)),
			Value: float64(c.ds.Values[i]),
			Style: chart.Style{
				FillColor:   toDrawing(c.ds.Colors[i]),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 3,
			},
		}
	}

	return chart.DonutChart{
		Title:  "Word Distribution",
		Width:  c.height,
		Height: c.height,
		Values: values,
	}
}

func toDrawing(c view.Color) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: uint8(c.A*255 + 0.5)}
}
