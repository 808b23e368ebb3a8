// Command analyzer runs the scatter analysis pipeline from the command
// line: load, cleanse, join, analyze, then print the regression summary
// and optionally export the enriched points and the rendered chart.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"autoscatter/internal/analysis"
	"autoscatter/internal/config"
	"autoscatter/internal/exporter"
	"autoscatter/internal/pipeline"
	"autoscatter/internal/render"
)

func main() {
	scatterPath := flag.String("scatter", "", "path to the scatter data file (csv or xlsx)")
	categoryPath := flag.String("category", "", "path to the category file, or a directory holding one")
	categoryColumn := flag.String("category-column", "", "category column to join (required with -category)")
	xColumn := flag.String("x", "", "numeric X column name (default from config)")
	yColumn := flag.String("y", "", "numeric Y column name (default from config)")
	labelColumn := flag.String("label", "", "label column name (default from config)")
	outDir := flag.String("out", "", "directory for CSV exports (defaults to configured output dir)")
	chart := flag.Bool("chart", false, "render the scatter chart as PNG next to the CSV exports")
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Logging)
	slog.SetDefault(logger)

	if *scatterPath == "" {
		slog.Error("Missing required -scatter flag")
		flag.Usage()
		os.Exit(1)
	}

	req := pipeline.Request{
		ScatterPath:    *scatterPath,
		CategoryPath:   *categoryPath,
		CategoryColumn: firstNonEmpty(*categoryColumn, cfg.Data.CategoryColumn),
		XColumn:        firstNonEmpty(*xColumn, cfg.Data.XColumn),
		YColumn:        firstNonEmpty(*yColumn, cfg.Data.YColumn),
		LabelColumn:    firstNonEmpty(*labelColumn, cfg.Data.LabelColumn),
	}
	if req.CategoryPath == "" && cfg.Paths.CategoryDir != "" {
		req.CategoryPath = cfg.Paths.CategoryDir
	}

	runner := pipeline.NewRunner(pipeline.Options{
		Encodings: cfg.Data.Encodings,
		Delimiter: cfg.Data.DelimiterRune(),
	}, analysis.NewLeastSquares(logger), logger)

	result, err := runner.Run(context.Background(), req)
	if err != nil {
		slog.Error("Analysis failed", "error", err)
		os.Exit(1)
	}

	printSummary(result, req)

	output := *outDir
	if output == "" {
		output = cfg.Paths.OutputDir
	}

	writer := exporter.NewCSVWriter(output, logger)
	if _, err := writer.WritePoints("points.csv", result.Points); err != nil {
		slog.Error("Failed to export points", "error", err)
		os.Exit(1)
	}
	if _, err := writer.WriteSummary("summary.csv", result.Summary, result.DroppedRows); err != nil {
		slog.Error("Failed to export summary", "error", err)
		os.Exit(1)
	}

	if *chart {
		if err := renderChart(result, req, output, logger); err != nil {
			slog.Error("Failed to render chart", "error", err)
			os.Exit(1)
		}
	}
}

func renderChart(result *pipeline.Result, req pipeline.Request, outDir string, logger *slog.Logger) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	name := exporter.ChartFilename(req.XColumn, req.YColumn, req.CategoryColumn)
	name, err := exporter.UniqueFilename(outDir, name)
	if err != nil {
		return err
	}

	renderer := render.NewScatterRenderer(logger)
	return renderer.Render(result.Points, result.Summary, render.Options{
		Title:  fmt.Sprintf("%s vs %s", req.XColumn, req.YColumn),
		XLabel: req.XColumn,
		YLabel: req.YColumn,
	}, filepath.Join(outDir, name))
}

func printSummary(result *pipeline.Result, req pipeline.Request) {
	fmt.Printf("Points analyzed: %d (dropped %d invalid rows)\n", len(result.Points), result.DroppedRows)
	if result.Summary.Computable {
		fmt.Printf("Regression:      %s\n", result.Summary.Equation())
		fmt.Printf("R-squared:       %.4f\n", result.Summary.RSquared)
	} else {
		fmt.Println("Regression:      not computable (need at least 2 points with varying x)")
	}
	if len(result.CategoryCounts) > 0 && req.CategoryColumn != "" {
		fmt.Println("Categories:")
		for _, c := range result.CategoryCounts {
			fmt.Printf("  %-20s %d\n", c.Category, c.Points)
		}
	}
	for _, warning := range result.Warnings {
		fmt.Printf("Warning: %s\n", warning)
	}
}

func newLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
