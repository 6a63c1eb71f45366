package models

// ChartSpec describes one single-series time-series chart.
type ChartSpec struct {
	// File is the output file name (no directory).
	File string `json:"file"`
	// Series is the source series name in the SeriesMap.
	Series string `json:"series"`
	// YLabel is the Y-axis label, including the display unit.
	YLabel string `json:"y_label"`
	// Title is the chart title.
	Title string `json:"title"`
	// Color is the line color (short code like "b" or a color name).
	Color string `json:"color"`
}

// LineSpec describes one line of a multi-series chart.
type LineSpec struct {
	// Series is the source series name in the SeriesMap.
	Series string `json:"series"`
	// Legend is the legend entry text.
	Legend string `json:"legend"`
	// Color is the line color.
	Color string `json:"color"`
}

// CompositeChart describes a chart overlaying several series on shared axes.
type CompositeChart struct {
	// File is the output file name (no directory).
	File string `json:"file"`
	// YLabel is the shared Y-axis label.
	YLabel string `json:"y_label"`
	// Title is the chart title.
	Title string `json:"title"`
	// Lines lists the overlaid series in drawing order.
	Lines []LineSpec `json:"lines"`
}
