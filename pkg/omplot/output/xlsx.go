package output

import (
	"fmt"
	"math"

	"github.com/ukaji3/omplot-go/pkg/omplot/models"
	"github.com/ukaji3/omplot-go/pkg/omplot/render"
	"github.com/xuri/excelize/v2"
)

const (
	// SeriesSheet holds the time column and one column per report series.
	SeriesSheet = "Series"
	// ChartsSheet holds one native chart per report chart.
	ChartsSheet = "Charts"
)

// chartRowSpan is the number of rows between chart anchors on ChartsSheet.
const chartRowSpan = 24

// column is one data column of the series sheet.
type column struct {
	header string
	series string
}

// WriteWorkbook writes report as an xlsx workbook with its data and native charts.
func WriteWorkbook(path string, report *models.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SeriesSheet); err != nil {
		return err
	}

	cols, index := workbookColumns(report)
	if err := writeSeriesSheet(f, report, cols); err != nil {
		return err
	}

	if _, err := f.NewSheet(ChartsSheet); err != nil {
		return err
	}
	last := len(report.Time) + 1
	categories := rangeRef(1, 2, last)

	anchor := 1
	for _, spec := range report.Charts {
		c := trendChart(spec.Title, spec.YLabel, false)
		ser, err := chartSeries(index[spec.Series], categories, last, spec.Color)
		if err != nil {
			return err
		}
		c.Series = append(c.Series, ser)
		if err := addChart(f, anchor, c); err != nil {
			return fmt.Errorf("chart %s: %w", spec.File, err)
		}
		anchor += chartRowSpan
	}

	comp := report.Composite
	c := trendChart(comp.Title, comp.YLabel, true)
	for _, l := range comp.Lines {
		ser, err := chartSeries(index[l.Series], categories, last, l.Color)
		if err != nil {
			return err
		}
		c.Series = append(c.Series, ser)
	}
	if err := addChart(f, anchor, c); err != nil {
		return fmt.Errorf("chart %s: %w", comp.File, err)
	}

	return f.SaveAs(path)
}

// workbookColumns lists the report series in chart order, each once, and
// returns the 1-based column of each series name.
func workbookColumns(report *models.Report) ([]column, map[string]int) {
	var cols []column
	index := make(map[string]int)
	add := func(series, header string) {
		if _, ok := index[series]; ok {
			return
		}
		cols = append(cols, column{header: header, series: series})
		index[series] = len(cols) + 1 // column A is time
	}
	for _, spec := range report.Charts {
		add(spec.Series, spec.YLabel)
	}
	for _, l := range report.Composite.Lines {
		add(l.Series, fmt.Sprintf("%s %s", l.Legend, unitSuffix(report.Composite.YLabel)))
	}
	return cols, index
}

func writeSeriesSheet(f *excelize.File, report *models.Report, cols []column) error {
	header := make([]interface{}, 0, len(cols)+1)
	header = append(header, "Time [s]")
	for _, c := range cols {
		header = append(header, c.header)
	}
	if err := f.SetSheetRow(SeriesSheet, "A1", &header); err != nil {
		return err
	}

	for i, t := range report.Time {
		row := make([]interface{}, 0, len(cols)+1)
		row = append(row, cellValue(t))
		for _, c := range cols {
			row = append(row, cellValue(report.Series[c.series][i]))
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SeriesSheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// cellValue leaves non-finite samples blank; charts show them as gaps.
func cellValue(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}

// trendChart returns a scatter chart drawn with lines, so time is a numeric
// axis and uneven sample spacing is kept.
func trendChart(title, yLabel string, legend bool) *excelize.Chart {
	position := "none"
	if legend {
		position = "bottom"
	}
	return &excelize.Chart{
		Type:   excelize.Scatter,
		Title:  []excelize.RichTextRun{{Text: title}},
		XAxis:  excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Time [s]"}}},
		YAxis:  excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: yLabel}}},
		Legend: excelize.ChartLegend{Position: position},
		Dimension: excelize.ChartDimension{
			Width:  720,
			Height: 432,
		},
	}
}

func chartSeries(col int, categories string, last int, colorName string) (excelize.ChartSeries, error) {
	c, err := render.ResolveColor(colorName)
	if err != nil {
		return excelize.ChartSeries{}, err
	}
	return excelize.ChartSeries{
		Name:       rangeRef(col, 1, 1),
		Categories: categories,
		Values:     rangeRef(col, 2, last),
		Line:       excelize.ChartLine{Width: 2.5},
		Fill:       excelize.Fill{Type: "pattern", Color: []string{render.HexColor(c)}, Pattern: 1},
		Marker:     excelize.ChartMarker{Symbol: "none"},
	}, nil
}

func addChart(f *excelize.File, anchorRow int, c *excelize.Chart) error {
	cell, err := excelize.CoordinatesToCellName(1, anchorRow)
	if err != nil {
		return err
	}
	return f.AddChart(ChartsSheet, cell, c)
}

// rangeRef returns an absolute reference like Series!$B$2:$B$10.
func rangeRef(col, first, last int) string {
	name, _ := excelize.ColumnNumberToName(col)
	if first == last {
		return fmt.Sprintf("%s!$%s$%d", SeriesSheet, name, first)
	}
	return fmt.Sprintf("%s!$%s$%d:$%s$%d", SeriesSheet, name, first, name, last)
}

// unitSuffix returns the trailing "[unit]" of an axis label, or "".
func unitSuffix(label string) string {
	for i := len(label) - 1; i >= 0; i-- {
		if label[i] == '[' {
			return label[i:]
		}
	}
	return ""
}
