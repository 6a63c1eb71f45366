package output

import (
	"archive/zip"
	"encoding/json"
	"io"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/omplot-go/pkg/omplot/models"
	"github.com/xuri/excelize/v2"
)

func sampleReport() *models.Report {
	return &models.Report{
		Source: "res.mat",
		Time:   []float64{0, 1, 2},
		Series: models.SeriesMap{
			"time":            {0, 1, 2},
			"loadPercent":     {50, 75, 100},
			"netPower":        {1, 2, 3},
			"turbinePower":    {3, 4, 5},
			"compressorPower": {2, 2, 2},
		},
		Charts: []models.ChartSpec{
			{File: "Load_Trend.png", Series: "loadPercent", YLabel: "Load [%]", Title: "Gas Turbine Load Profile", Color: "b"},
			{File: "NetPower_Trend.png", Series: "netPower", YLabel: "Net Power [MW]", Title: "Net Power Output vs Time", Color: "r"},
		},
		Composite: models.CompositeChart{
			File:   "PowerAnalysis_Trend.png",
			YLabel: "Power [MW]",
			Title:  "Power Analysis",
			Lines: []models.LineSpec{
				{Series: "turbinePower", Legend: "Turbine Power", Color: "b"},
				{Series: "compressorPower", Legend: "Compressor Power", Color: "r"},
				{Series: "netPower", Legend: "Net Power", Color: "g"},
			},
		},
	}
}

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Report.xlsx")
	if err := WriteWorkbook(path, sampleReport()); err != nil {
		t.Fatalf("WriteWorkbook failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Failed to open workbook: %v", err)
	}
	defer f.Close()

	if diff := cmp.Diff([]string{SeriesSheet, ChartsSheet}, f.GetSheetList()); diff != "" {
		t.Errorf("sheet list mismatch (-want +got):\n%s", diff)
	}

	rows, err := f.GetRows(SeriesSheet)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("Expected 4 rows, got %d", len(rows))
	}
	expectedHeader := []string{"Time [s]", "Load [%]", "Net Power [MW]", "Turbine Power [MW]", "Compressor Power [MW]"}
	if diff := cmp.Diff(expectedHeader, rows[0]); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"2", "100", "3", "5", "2"}, rows[3]); diff != "" {
		t.Errorf("last row mismatch (-want +got):\n%s", diff)
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("open xlsx as zip: %v", err)
	}
	defer zr.Close()
	charts := 0
	for _, zf := range zr.File {
		if strings.HasPrefix(zf.Name, "xl/charts/chart") && strings.HasSuffix(zf.Name, ".xml") {
			charts++
			if !strings.Contains(readZipFile(t, zf), "scatterChart") {
				t.Errorf("%s is not a scatter chart", zf.Name)
			}
		}
	}
	if charts != 3 {
		t.Errorf("Expected 3 chart parts, got %d", charts)
	}
}

func readZipFile(t *testing.T, zf *zip.File) string {
	t.Helper()
	rc, err := zf.Open()
	if err != nil {
		t.Fatalf("open %s: %v", zf.Name, err)
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read %s: %v", zf.Name, err)
	}
	return string(b)
}

func TestWriteWorkbookNonFiniteSamples(t *testing.T) {
	report := sampleReport()
	report.Series["netPower"] = []float64{1, math.NaN(), 3}
	path := filepath.Join(t.TempDir(), "gaps.xlsx")
	if err := WriteWorkbook(path, report); err != nil {
		t.Fatalf("WriteWorkbook failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Failed to open workbook: %v", err)
	}
	defer f.Close()
	got, err := f.GetCellValue(SeriesSheet, "C3")
	if err != nil {
		t.Fatalf("GetCellValue failed: %v", err)
	}
	if got != "" {
		t.Errorf("NaN sample written as %q, expected a blank cell", got)
	}
}

func TestWriteWorkbookUnknownColor(t *testing.T) {
	report := sampleReport()
	report.Charts[0].Color = "chartreuse-ish"
	if err := WriteWorkbook(filepath.Join(t.TempDir(), "bad.xlsx"), report); err == nil {
		t.Errorf("expected error for unknown color")
	}
}

func TestRangeRef(t *testing.T) {
	tests := []struct {
		col, first, last int
		expected         string
	}{
		{1, 2, 10, "Series!$A$2:$A$10"},
		{3, 1, 1, "Series!$C$1"},
		{28, 2, 5, "Series!$AB$2:$AB$5"},
	}
	for _, tt := range tests {
		if got := rangeRef(tt.col, tt.first, tt.last); got != tt.expected {
			t.Errorf("rangeRef(%d, %d, %d) = %q, expected %q", tt.col, tt.first, tt.last, got, tt.expected)
		}
	}
}

func TestUnitSuffix(t *testing.T) {
	tests := []struct {
		label    string
		expected string
	}{
		{"Power [MW]", "[MW]"},
		{"Temperature [°C]", "[°C]"},
		{"Power", ""},
	}
	for _, tt := range tests {
		if got := unitSuffix(tt.label); got != tt.expected {
			t.Errorf("unitSuffix(%q) = %q, expected %q", tt.label, got, tt.expected)
		}
	}
}

func TestToJSON(t *testing.T) {
	summary := models.ResultSummary{
		FileName:  "res.mat",
		Variables: 1,
		Samples:   2,
		Series:    []models.SeriesSummary{{Name: "time", Samples: 2, Max: 1, Mean: 0.5, StdDev: 0.7}},
	}

	compact, err := ToJSON(summary, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if strings.Contains(string(compact), "\n") {
		t.Errorf("compact output should be a single line")
	}

	pretty, err := ToJSON(summary, true)
	if err != nil {
		t.Fatalf("ToJSON(pretty) failed: %v", err)
	}
	var decoded models.ResultSummary
	if err := json.Unmarshal(pretty, &decoded); err != nil {
		t.Fatalf("pretty output is not valid JSON: %v", err)
	}
	if diff := cmp.Diff(summary, decoded); diff != "" {
		t.Errorf("decoded summary mismatch (-want +got):\n%s", diff)
	}
}
