// Package omplot turns OpenModelica simulation result files into chart reports.
package omplot

import (
	"github.com/ukaji3/omplot-go/pkg/omplot/render"
	"go.uber.org/zap"
)

const (
	// DefaultInputPath is the result file read when no input is given.
	DefaultInputPath = "../results/BraytonCycle_Dynamic_res.mat"
	// DefaultOutputDir is the directory the report is written to.
	DefaultOutputDir = "../plots"
)

// Options configures loading and rendering.
type Options struct {
	// OutputDir is the directory chart files are written to.
	OutputDir string
	// Backend selects the drawing library.
	Backend render.Backend
	// Style holds the shared rendering defaults.
	Style render.Style
	// Logger receives progress and diagnostics. If nil, logging is disabled.
	Logger *zap.Logger
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		OutputDir: DefaultOutputDir,
		Backend:   render.BackendGonum,
		Style:     render.DefaultStyle(),
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
