// Package render draws report figures to image files.
package render

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
)

// Backend names a drawing library.
type Backend string

const (
	// BackendGonum renders with gonum.org/v1/plot.
	BackendGonum Backend = "gonum"
	// BackendGoChart renders with github.com/wcharczuk/go-chart.
	BackendGoChart Backend = "gochart"
)

// ParseBackend resolves a backend name. The empty string selects BackendGonum.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case "":
		return BackendGonum, nil
	case BackendGonum, BackendGoChart:
		return b, nil
	}
	return "", fmt.Errorf("unknown render backend %q (must be gonum or gochart)", s)
}

// Line is one plotted series.
type Line struct {
	X []float64
	Y []float64
	// Color is a short color code ("b", "r", ...) or a color name.
	Color string
	// Legend is the legend entry; lines without one are left out of the legend.
	Legend string
}

// Figure is a backend-neutral description of one chart.
type Figure struct {
	Title  string
	XLabel string
	YLabel string
	// Width and Height are in inches. Zero selects the style's figure size.
	Width  float64
	Height float64
	Lines  []Line
	// Legend enables the legend box.
	Legend bool
}

// finiteRuns splits a line into maximal [start, end) index ranges whose
// points are finite. Non-finite samples become gaps.
func finiteRuns(x, y []float64) [][2]int {
	var runs [][2]int
	start := -1
	for i := range x {
		ok := isFinite(x[i]) && isFinite(y[i])
		switch {
		case ok && start < 0:
			start = i
		case !ok && start >= 0:
			runs = append(runs, [2]int{start, i})
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, [2]int{start, len(x)})
	}
	return runs
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// painter draws a figure as PNG to w.
type painter interface {
	paint(fig Figure, w io.Writer) error
}

// Renderer writes figures using one style and backend. Its style is fixed at
// construction and shared by every figure it renders.
type Renderer struct {
	style   Style
	backend Backend
	painter painter
}

// New returns a renderer for the given style and backend.
func New(style Style, backend Backend) (*Renderer, error) {
	if err := style.Validate(); err != nil {
		return nil, err
	}

	r := &Renderer{style: style, backend: backend}
	switch backend {
	case BackendGonum, "":
		r.backend = BackendGonum
		r.painter = gonumPainter{style: style}
	case BackendGoChart:
		r.painter = goChartPainter{style: style}
	default:
		return nil, fmt.Errorf("unknown render backend %q", backend)
	}
	return r, nil
}

// Style returns the renderer's style.
func (r *Renderer) Style() Style { return r.style }

// Backend returns the renderer's backend.
func (r *Renderer) Backend() Backend { return r.backend }

// Render draws fig and writes it to path as PNG. The figure is drawn in
// memory first, so a drawing failure leaves no file behind.
func (r *Renderer) Render(fig Figure, path string) error {
	if fig.Width <= 0 || fig.Height <= 0 {
		fig.Width, fig.Height = r.style.FigureWidth, r.style.FigureHeight
	}
	for i, l := range fig.Lines {
		if len(l.X) != len(l.Y) {
			return fmt.Errorf("line %d: %d x values for %d y values", i, len(l.X), len(l.Y))
		}
	}

	var buf bytes.Buffer
	if err := r.painter.paint(fig, &buf); err != nil {
		return fmt.Errorf("draw %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}
