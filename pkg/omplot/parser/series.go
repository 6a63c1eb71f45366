package parser

import (
	"github.com/ukaji3/omplot-go/pkg/omplot/matfile"
	"github.com/ukaji3/omplot-go/pkg/omplot/models"
)

// BuildSeries pairs names with data rows by position: the i-th name receives
// the i-th row, for i < min(len(names), data.Rows). Rows without a name and
// names without a row are dropped. A repeated name keeps its last row.
func BuildSeries(names []string, data *matfile.Matrix) models.SeriesMap {
	n := min(len(names), data.Rows)
	series := make(models.SeriesMap, n)
	for i := 0; i < n; i++ {
		series[names[i]] = data.Row(i)
	}
	return series
}
