// Package render draws scatter charts from pipeline output. It is a
// presentation adapter: it consumes the enriched point set and the
// regression summary and never re-derives analysis.
package render

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"autoscatter/pkg/contracts/domain"
)

// Options controls chart appearance.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	Width  vg.Length
	Height vg.Length
}

// ScatterRenderer renders point sets with per-category glyph colors and
// the fitted regression line.
type ScatterRenderer struct {
	logger *slog.Logger
}

// NewScatterRenderer creates a chart renderer.
func NewScatterRenderer(logger *slog.Logger) *ScatterRenderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScatterRenderer{logger: logger}
}

// Render draws the chart and saves it to path. The output format follows
// the file extension (.png, .svg, .pdf). The fit line is drawn only when
// the summary is computable.
func (r *ScatterRenderer) Render(points []domain.ScatterPoint, summary domain.RegressionSummary, opts Options, path string) error {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.Add(plotter.NewGrid())

	groups, order := groupByCategory(points)
	for i, category := range order {
		xys := make(plotter.XYs, 0, len(groups[category]))
		for _, pt := range groups[category] {
			xys = append(xys, plotter.XY{X: pt.X, Y: pt.Y})
		}

		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return fmt.Errorf("build scatter series %q: %w", category, err)
		}
		scatter.GlyphStyle.Color = plotutil.Color(i)
		scatter.GlyphStyle.Radius = vg.Points(3)
		p.Add(scatter)
		if category != "" {
			p.Legend.Add(category, scatter)
		}
	}

	if summary.Computable {
		fit := plotter.NewFunction(summary.PredictY)
		fit.Color = plotutil.Color(len(order))
		fit.Width = vg.Points(1.5)
		p.Add(fit)
		p.Legend.Add(summary.Equation(), fit)
	}

	width := opts.Width
	if width == 0 {
		width = 20 * vg.Centimeter
	}
	height := opts.Height
	if height == 0 {
		height = 16 * vg.Centimeter
	}

	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("save chart to %s: %w", path, err)
	}

	r.logger.Info("chart rendered",
		slog.String("path", path),
		slog.Int("points", len(points)),
		slog.Int("categories", len(order)))
	return nil
}

// groupByCategory splits points into per-category series, preserving
// first-appearance order so colors stay stable across renders.
func groupByCategory(points []domain.ScatterPoint) (map[string][]domain.ScatterPoint, []string) {
	groups := make(map[string][]domain.ScatterPoint)
	var order []string
	for _, p := range points {
		if _, seen := groups[p.Category]; !seen {
			order = append(order, p.Category)
		}
		groups[p.Category] = append(groups[p.Category], p)
	}
	return groups, order
}
