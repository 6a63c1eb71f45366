package render

import (
	"fmt"
	"image/color"
)

// Style holds the rendering defaults shared by every figure.
type Style struct {
	// DPI is the output resolution.
	DPI int
	// FigureWidth and FigureHeight are the default figure size in inches.
	FigureWidth  float64
	FigureHeight float64
	// FontSize is the base font size in points (tick labels, legend).
	FontSize float64
	// LabelSize is the axis label size in points; labels are bold.
	LabelSize float64
	// TitleSize is the title size in points; titles are bold.
	TitleSize float64
	// LineWidth is the series line width in points.
	LineWidth float64
	// Background fills the whole image.
	Background color.Color
	// PlotBackground fills the data area.
	PlotBackground color.Color
	// GridColor is the grid line color, alpha included.
	GridColor color.Color
	// TextColor is used for titles, labels and ticks.
	TextColor color.Color
}

// DefaultStyle returns the report theme: a darkgrid look with a light grid,
// 10x6 inch figures and 300 dpi output.
func DefaultStyle() Style {
	return Style{
		DPI:            300,
		FigureWidth:    10,
		FigureHeight:   6,
		FontSize:       11,
		LabelSize:      12,
		TitleSize:      14,
		LineWidth:      2.5,
		Background:     color.White,
		PlotBackground: color.RGBA{R: 0xea, G: 0xea, B: 0xf2, A: 0xff},
		GridColor:      color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x4d}, // alpha 0.3
		TextColor:      color.RGBA{R: 0x26, G: 0x26, B: 0x26, A: 0xff},
	}
}

// Validate checks that the style can be rendered.
func (s Style) Validate() error {
	if s.DPI <= 0 {
		return fmt.Errorf("dpi must be positive, got %d", s.DPI)
	}
	if s.FigureWidth <= 0 || s.FigureHeight <= 0 {
		return fmt.Errorf("figure size must be positive, got %gx%g", s.FigureWidth, s.FigureHeight)
	}
	if s.FontSize <= 0 || s.LabelSize <= 0 || s.TitleSize <= 0 {
		return fmt.Errorf("font sizes must be positive")
	}
	if s.LineWidth <= 0 {
		return fmt.Errorf("line width must be positive, got %g", s.LineWidth)
	}
	return nil
}
