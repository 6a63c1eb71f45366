package omplot

import (
	"github.com/ukaji3/omplot-go/pkg/omplot/models"
	"github.com/ukaji3/omplot-go/pkg/omplot/units"
)

// Series names read from the result file.
const (
	SeriesTime            = "time"
	SeriesNetPower        = "netPower"
	SeriesEfficiency      = "thermalEfficiency"
	SeriesFuelFlow        = "fuelFlow"
	SeriesExhaustTemp     = "T_exhaust"
	SeriesLoadPercent     = "loadPercent"
	SeriesTurbinePower    = "turbinePower"
	SeriesCompressorPower = "compressorPower"
)

// TimeLabel is the X-axis label of every chart.
const TimeLabel = "Time [s]"

// RequiredSeries lists every series the report reads, time first.
var RequiredSeries = []string{
	SeriesTime,
	SeriesNetPower,
	SeriesEfficiency,
	SeriesFuelFlow,
	SeriesExhaustTemp,
	SeriesLoadPercent,
	SeriesTurbinePower,
	SeriesCompressorPower,
}

// Conversions maps a series to the conversion applied before plotting.
// Series not listed are plotted as stored.
var Conversions = map[string]units.Conversion{
	SeriesNetPower:        units.WattsToMegawatts,
	SeriesTurbinePower:    units.WattsToMegawatts,
	SeriesCompressorPower: units.WattsToMegawatts,
	SeriesEfficiency:      units.FractionToPercent,
	SeriesExhaustTemp:     units.KelvinToCelsius,
}

// DefaultCharts lists the single-series charts in output order.
var DefaultCharts = []models.ChartSpec{
	{File: "Load_Trend.png", Series: SeriesLoadPercent, YLabel: "Load [%]", Title: "Gas Turbine Load Profile", Color: "b"},
	{File: "NetPower_Trend.png", Series: SeriesNetPower, YLabel: "Net Power [MW]", Title: "Net Power Output vs Time", Color: "r"},
	{File: "Efficiency_Trend.png", Series: SeriesEfficiency, YLabel: "Efficiency [%]", Title: "Thermal Efficiency vs Time", Color: "g"},
	{File: "FuelFlow_Trend.png", Series: SeriesFuelFlow, YLabel: "Fuel Flow [kg/s]", Title: "Fuel Flow Rate vs Time", Color: "m"},
	{File: "ExhaustTemp_Trend.png", Series: SeriesExhaustTemp, YLabel: "Temperature [°C]", Title: "Exhaust Temperature vs Time", Color: "orange"},
}

// PowerAnalysisChart overlays turbine, compressor and net power.
var PowerAnalysisChart = models.CompositeChart{
	File:   "PowerAnalysis_Trend.png",
	YLabel: "Power [MW]",
	Title:  "Power Analysis - Turbine, Compressor, and Net Output",
	Lines: []models.LineSpec{
		{Series: SeriesTurbinePower, Legend: "Turbine Power", Color: "b"},
		{Series: SeriesCompressorPower, Legend: "Compressor Power", Color: "r"},
		{Series: SeriesNetPower, Legend: "Net Power", Color: "g"},
	},
}

// Composite figures are larger than single-series ones.
const (
	compositeWidth  = 12
	compositeHeight = 7
)
