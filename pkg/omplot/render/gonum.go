package render

import (
	"image/color"
	"io"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// gonumPainter draws figures with gonum/plot on a raster canvas at the style's DPI.
type gonumPainter struct {
	style Style
}

func (g gonumPainter) paint(fig Figure, w io.Writer) error {
	p, err := g.build(fig)
	if err != nil {
		return err
	}

	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(fig.Width)*vg.Inch, vg.Length(fig.Height)*vg.Inch),
		vgimg.UseDPI(g.style.DPI),
		vgimg.UseBackgroundColor(g.style.Background),
	)
	p.Draw(draw.New(c))

	_, err = vgimg.PngCanvas{Canvas: c}.WriteTo(w)
	return err
}

// build assembles the plot for fig without drawing it.
func (g gonumPainter) build(fig Figure) (*plot.Plot, error) {
	s := g.style

	p := plot.New()
	p.BackgroundColor = s.Background

	p.Title.Text = fig.Title
	p.Title.TextStyle.Font = g.font(s.TitleSize, true)
	p.Title.TextStyle.Color = s.TextColor
	p.Title.Padding = vg.Points(s.TitleSize / 2)

	for _, axis := range []*plot.Axis{&p.X, &p.Y} {
		axis.Label.TextStyle.Font = g.font(s.LabelSize, true)
		axis.Label.TextStyle.Color = s.TextColor
		axis.Tick.Label.Font = g.font(s.FontSize, false)
		axis.Tick.Label.Color = s.TextColor
		axis.LineStyle.Color = s.TextColor
	}
	p.X.Label.Text = fig.XLabel
	p.Y.Label.Text = fig.YLabel

	p.Add(areaFill{color: s.PlotBackground})

	grid := plotter.NewGrid()
	grid.Vertical.Color = s.GridColor
	grid.Horizontal.Color = s.GridColor
	grid.Vertical.Width = vg.Points(1)
	grid.Horizontal.Width = vg.Points(1)
	p.Add(grid)

	for _, l := range fig.Lines {
		col, err := ResolveColor(l.Color)
		if err != nil {
			return nil, err
		}
		for i, run := range finiteRuns(l.X, l.Y) {
			xys := make(plotter.XYs, run[1]-run[0])
			for j := range xys {
				xys[j].X = l.X[run[0]+j]
				xys[j].Y = l.Y[run[0]+j]
			}
			line, err := plotter.NewLine(xys)
			if err != nil {
				return nil, err
			}
			line.LineStyle.Width = vg.Points(s.LineWidth)
			line.LineStyle.Color = col
			p.Add(line)
			if i == 0 && fig.Legend && l.Legend != "" {
				p.Legend.Add(l.Legend, line)
			}
		}
	}

	if fig.Legend {
		p.Legend.Top = true
		p.Legend.TextStyle.Font = g.font(s.FontSize, false)
		p.Legend.TextStyle.Color = s.TextColor
	}
	return p, nil
}

func (g gonumPainter) font(size float64, bold bool) font.Font {
	f := font.Font{Typeface: "Liberation", Variant: "Sans", Size: vg.Points(size)}
	if bold {
		f.Weight = xfont.WeightBold
	}
	return f
}

// areaFill paints the data area of a plot.
type areaFill struct {
	color color.Color
}

func (a areaFill) Plot(c draw.Canvas, _ *plot.Plot) {
	c.SetColor(a.color)
	c.Fill(c.Rectangle.Path())
}
