package models

// Report holds the converted series of the fixed chart report.
type Report struct {
	// Source is the result file name the report was built from.
	Source string
	// Time is the shared X axis.
	Time []float64
	// Series maps source series name to its converted samples.
	Series SeriesMap
	// Charts lists the single-series charts in output order.
	Charts []ChartSpec
	// Composite is the multi-series comparison chart.
	Composite CompositeChart
}
