package omplot

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ukaji3/omplot-go/pkg/omplot/models"
)

// Summarize computes descriptive statistics for every decoded variable, in
// name-table order. Names without a data row are skipped, as are repeats.
func Summarize(data *models.ResultData) models.ResultSummary {
	summary := models.ResultSummary{
		FileName: data.FileName,
		Class:    data.Class,
		Samples:  data.Samples,
	}

	seen := make(map[string]bool, len(data.Series))
	for _, name := range data.Names {
		samples, ok := data.Series.Get(name)
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		summary.Series = append(summary.Series, summarizeSeries(name, samples))
	}
	summary.Variables = len(summary.Series)
	return summary
}

// summarizeSeries computes statistics over the finite samples only; Samples
// still counts every stored value.
func summarizeSeries(name string, samples []float64) models.SeriesSummary {
	s := models.SeriesSummary{Name: name, Samples: len(samples)}
	finite := make([]float64, 0, len(samples))
	for _, v := range samples {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return s
	}
	s.Min = floats.Min(finite)
	s.Max = floats.Max(finite)
	s.Mean = stat.Mean(finite, nil)
	if len(finite) > 1 {
		s.StdDev = stat.StdDev(finite, nil)
	}
	return s
}
