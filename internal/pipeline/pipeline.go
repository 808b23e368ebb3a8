// Package pipeline composes reading, cleansing, joining, and analysis
// into a single load-and-analyze operation for the application layer.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"autoscatter/internal/analysis"
	"autoscatter/internal/dataset"
	apperrors "autoscatter/internal/errors"
	"autoscatter/pkg/contracts/domain"
)

// Request describes one analysis run. CategoryPath may name a file or a
// directory (first CSV in lexical order); empty means no category join.
type Request struct {
	ScatterPath    string `json:"scatter_path" validate:"required"`
	CategoryPath   string `json:"category_path,omitempty"`
	CategoryColumn string `json:"category_column,omitempty"`
	XColumn        string `json:"x_column" validate:"required"`
	YColumn        string `json:"y_column" validate:"required"`
	LabelColumn    string `json:"label_column,omitempty"`
}

// Result carries everything a presentation surface needs: the enriched
// point set, the regression summary derived from it, and the per-run
// bookkeeping counts. Each run owns its Result; nothing is shared
// between invocations.
type Result struct {
	RunID          string                   `json:"run_id"`
	Points         []domain.ScatterPoint    `json:"points"`
	Summary        domain.RegressionSummary `json:"summary"`
	DroppedRows    int                      `json:"dropped_rows"`
	CategoryCounts []domain.CategoryCount   `json:"category_counts,omitempty"`
	Warnings       []string                 `json:"warnings,omitempty"`
}

// Options configures source reading for a Runner.
type Options struct {
	Encodings []string
	Delimiter rune
}

// Runner orchestrates the pipeline stages. Safe for repeated use: every
// run reads its own sources and builds its own result.
type Runner struct {
	opts     Options
	analyzer analysis.Analyzer
	logger   *slog.Logger
}

// NewRunner creates a pipeline runner using the given analysis strategy.
func NewRunner(opts Options, analyzer analysis.Analyzer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if analyzer == nil {
		analyzer = analysis.NewLeastSquares(logger)
	}
	return &Runner{opts: opts, analyzer: analyzer, logger: logger}
}

// Run executes Reader → Cleanser → Joiner → Analyzer for one request.
// A data-load failure on the primary source is fatal. A data-load
// failure on the category source degrades to a warning and the run
// proceeds without categories; a bad category column selection is fatal.
func (r *Runner) Run(ctx context.Context, req Request) (*Result, error) {
	const op = "pipeline.Run"

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	logger := r.logger.With(slog.String("run_id", runID))
	result := &Result{RunID: runID}

	logger.InfoContext(ctx, "starting analysis run",
		slog.String("scatter_path", req.ScatterPath),
		slog.String("category_path", req.CategoryPath),
		slog.String("x_column", req.XColumn),
		slog.String("y_column", req.YColumn))

	source := r.sourceFor(req.ScatterPath, logger)
	table, err := source.Read(ctx, req.ScatterPath)
	if err != nil {
		return nil, fmt.Errorf("%s: read scatter source: %w", op, err)
	}

	points, dropped := dataset.Cleanse(table, dataset.CleanseOptions{
		XColumn:     req.XColumn,
		YColumn:     req.YColumn,
		LabelColumn: req.LabelColumn,
	})
	result.DroppedRows = dropped
	if dropped > 0 {
		warning := fmt.Sprintf("dropped %d rows with invalid numeric values", dropped)
		result.Warnings = append(result.Warnings, warning)
		logger.WarnContext(ctx, "rows dropped during cleansing",
			slog.Int("dropped", dropped),
			slog.Int("kept", len(points)))
	}

	idx, warning, err := r.loadCategories(ctx, req, logger)
	if err != nil {
		return nil, err
	}
	if warning != "" {
		result.Warnings = append(result.Warnings, warning)
	}

	result.Points = dataset.Join(points, idx)
	result.CategoryCounts = analysis.CountCategories(result.Points)

	summary, err := r.analyzer.Analyze(ctx, result.Points)
	if err != nil {
		return nil, fmt.Errorf("%s: analyze points: %w", op, err)
	}
	result.Summary = summary

	logger.InfoContext(ctx, "analysis run completed",
		slog.Int("points", len(result.Points)),
		slog.Int("dropped_rows", result.DroppedRows),
		slog.Bool("computable", summary.Computable))

	return result, nil
}

// loadCategories reads and indexes the category source. Data-load
// failures degrade to a returned warning with a nil index; a bad column
// selection propagates as a fatal analysis error.
func (r *Runner) loadCategories(ctx context.Context, req Request, logger *slog.Logger) (*dataset.CategoryIndex, string, error) {
	if req.CategoryPath == "" {
		return nil, "", nil
	}

	degrade := func(err error) (*dataset.CategoryIndex, string, error) {
		logger.WarnContext(ctx, "category source unavailable, continuing without categories",
			slog.String("category_path", req.CategoryPath),
			slog.String("error", err.Error()))
		return nil, "category source unavailable: " + err.Error(), nil
	}

	path, err := dataset.FindCategoryFile(req.CategoryPath, logger)
	if err != nil {
		return degrade(err)
	}

	table, err := r.sourceFor(path, logger).Read(ctx, path)
	if err != nil {
		return degrade(err)
	}

	labelColumn := req.LabelColumn
	if labelColumn == "" || !table.HasColumn(labelColumn) {
		labelColumn = "label"
	}

	idx, err := dataset.BuildCategoryIndex(table, labelColumn, req.CategoryColumn)
	if err != nil {
		return nil, "", fmt.Errorf("pipeline.Run: index category source: %w", err)
	}
	return idx, "", nil
}

func (r *Runner) sourceFor(path string, logger *slog.Logger) dataset.Source {
	if r.opts.Delimiter != 0 {
		switch s := dataset.ForPath(path, r.opts.Encodings, logger).(type) {
		case *dataset.CSVSource:
			return dataset.NewCSVSource(r.opts.Encodings, logger, dataset.WithDelimiter(r.opts.Delimiter))
		default:
			return s
		}
	}
	return dataset.ForPath(path, r.opts.Encodings, logger)
}

func validateRequest(req Request) error {
	const op = "pipeline.Run"
	switch {
	case req.ScatterPath == "":
		return apperrors.Analysisf(op, "scatter path is required")
	case req.XColumn == "":
		return apperrors.Analysisf(op, "x column name is required")
	case req.YColumn == "":
		return apperrors.Analysisf(op, "y column name is required")
	case req.CategoryPath != "" && req.CategoryColumn == "":
		return apperrors.Analysisf(op, "category column must be selected when a category source is given")
	}
	return nil
}
