package omplot

import (
	"os"
	"path/filepath"

	"github.com/ukaji3/omplot-go/pkg/omplot/models"
	"github.com/ukaji3/omplot-go/pkg/omplot/render"
	"github.com/ukaji3/omplot-go/pkg/omplot/units"
	"go.uber.org/zap"
)

// FigureJob pairs a figure with its output file name.
type FigureJob struct {
	File   string
	Figure render.Figure
}

// BuildReport looks up every required series and applies its unit conversion.
// A missing series fails the whole report.
func BuildReport(data *models.ResultData) (*models.Report, error) {
	series := make(models.SeriesMap, len(RequiredSeries))
	for _, name := range RequiredSeries {
		samples, ok := data.Series.Get(name)
		if !ok {
			return nil, &LookupError{Name: name}
		}
		conv, ok := Conversions[name]
		if !ok {
			conv = units.Identity
		}
		series[name] = conv.Apply(samples)
	}

	return &models.Report{
		Source:    data.FileName,
		Time:      series[SeriesTime],
		Series:    series,
		Charts:    append([]models.ChartSpec(nil), DefaultCharts...),
		Composite: PowerAnalysisChart,
	}, nil
}

// Figures expands a report into its figures in output order: the single-series
// charts followed by the composite chart.
func Figures(report *models.Report) []FigureJob {
	jobs := make([]FigureJob, 0, len(report.Charts)+1)
	for _, spec := range report.Charts {
		jobs = append(jobs, FigureJob{
			File: spec.File,
			Figure: render.Figure{
				Title:  spec.Title,
				XLabel: TimeLabel,
				YLabel: spec.YLabel,
				Lines: []render.Line{
					{X: report.Time, Y: report.Series[spec.Series], Color: spec.Color},
				},
			},
		})
	}

	c := report.Composite
	lines := make([]render.Line, len(c.Lines))
	for i, l := range c.Lines {
		lines[i] = render.Line{X: report.Time, Y: report.Series[l.Series], Color: l.Color, Legend: l.Legend}
	}
	jobs = append(jobs, FigureJob{
		File: c.File,
		Figure: render.Figure{
			Title:  c.Title,
			XLabel: TimeLabel,
			YLabel: c.YLabel,
			Width:  compositeWidth,
			Height: compositeHeight,
			Lines:  lines,
			Legend: true,
		},
	})
	return jobs
}

// Render writes the chart report for data into opts.OutputDir and returns the
// written paths in order. It stops at the first failure; files already written
// are left in place.
func Render(data *models.ResultData, opts Options) ([]string, error) {
	log := opts.logger()

	report, err := BuildReport(data)
	if err != nil {
		return nil, err
	}

	r, err := render.New(opts.Style, opts.Backend)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, &IOError{Op: "create", Path: opts.OutputDir, Err: err}
	}

	log.Info("creating plots",
		zap.Int("samples", len(report.Time)),
		zap.String("backend", string(r.Backend())),
		zap.String("dir", opts.OutputDir),
	)

	var written []string
	for _, job := range Figures(report) {
		path := filepath.Join(opts.OutputDir, job.File)
		if err := r.Render(job.Figure, path); err != nil {
			return written, &IOError{Op: "write", Path: path, Err: err}
		}
		written = append(written, path)
		log.Info("created chart", zap.String("file", path))
	}
	return written, nil
}
