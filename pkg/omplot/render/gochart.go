package render

import (
	"image/color"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// goChartPainter draws figures with go-chart. go-chart scales fonts by DPI
// but takes sizes and stroke widths in pixels, so point sizes are converted.
type goChartPainter struct {
	style Style
}

func (g goChartPainter) paint(fig Figure, w io.Writer) error {
	ch, err := g.build(fig)
	if err != nil {
		return err
	}
	return ch.Render(chart.PNG, w)
}

func (g goChartPainter) build(fig Figure) (*chart.Chart, error) {
	s := g.style
	dpi := float64(s.DPI)
	px := func(points float64) float64 { return points * dpi / 72 }
	text := drawingColor(s.TextColor)

	gridStyle := chart.Style{StrokeColor: drawingColor(s.GridColor), StrokeWidth: px(1)}
	tickStyle := chart.Style{FontSize: s.FontSize, FontColor: text}
	nameStyle := chart.Style{FontSize: s.LabelSize, FontColor: text}

	var series, named []chart.Series
	yMin, yMax, haveY := 0.0, 0.0, false
	for _, l := range fig.Lines {
		col, err := ResolveColor(l.Color)
		if err != nil {
			return nil, err
		}
		style := chart.Style{
			StrokeColor: drawingColor(col),
			StrokeWidth: px(s.LineWidth),
		}
		runs := finiteRuns(l.X, l.Y)
		labelled := false
		for _, run := range runs {
			xs, ys := l.X[run[0]:run[1]], l.Y[run[0]:run[1]]
			if len(xs) == 1 {
				// A continuous series needs two points. A lone sample is widened
				// into a flat segment only when it is the whole line.
				if len(runs) > 1 {
					continue
				}
				xs = []float64{xs[0], xs[0] + 1}
				ys = []float64{ys[0], ys[0]}
			}
			for _, y := range ys {
				if !haveY {
					yMin, yMax, haveY = y, y, true
				}
				yMin, yMax = min(yMin, y), max(yMax, y)
			}
			cs := chart.ContinuousSeries{XValues: xs, YValues: ys, Style: style}
			if !labelled {
				cs.Name = l.Legend
				named = append(named, cs)
				labelled = true
			}
			series = append(series, cs)
		}
	}

	pad := int(px(s.TitleSize * 2))
	ch := &chart.Chart{
		Title:      fig.Title,
		TitleStyle: chart.Style{FontSize: s.TitleSize, FontColor: text},
		Width:      int(fig.Width * dpi),
		Height:     int(fig.Height * dpi),
		DPI:        dpi,
		Background: chart.Style{
			FillColor: drawingColor(s.Background),
			Padding:   chart.Box{Top: pad, Left: pad / 2, Right: pad / 2, Bottom: pad / 2},
		},
		Canvas: chart.Style{FillColor: drawingColor(s.PlotBackground)},
		XAxis: chart.XAxis{
			Name:           fig.XLabel,
			NameStyle:      nameStyle,
			Style:          tickStyle,
			GridMajorStyle: gridStyle,
		},
		YAxis: chart.YAxis{
			Name:           fig.YLabel,
			NameStyle:      nameStyle,
			Style:          tickStyle,
			GridMajorStyle: gridStyle,
		},
		Series: series,
	}
	// go-chart cannot tick a zero-height range.
	if haveY && yMin == yMax {
		ch.YAxis.Range = &chart.ContinuousRange{Min: yMin - 1, Max: yMax + 1}
	}
	if fig.Legend {
		// One legend entry per line, not per run.
		legend := *ch
		legend.Series = named
		ch.Elements = []chart.Renderable{chart.Legend(&legend)}
	}
	return ch, nil
}

func drawingColor(c color.Color) drawing.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return drawing.Color{R: n.R, G: n.G, B: n.B, A: n.A}
}
