package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"autoscatter/internal/config"
	"autoscatter/internal/pipeline"
)

// AnalyzeHandler serves analysis runs over the JSON API.
type AnalyzeHandler struct {
	runner   *pipeline.Runner
	defaults config.DataConfig
	metrics  *Metrics
	validate *validator.Validate
	logger   *slog.Logger
}

// NewAnalyzeHandler creates the analyze handler. Column names missing
// from a request fall back to the configured defaults.
func NewAnalyzeHandler(runner *pipeline.Runner, defaults config.DataConfig, metrics *Metrics, logger *slog.Logger) *AnalyzeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyzeHandler{
		runner:   runner,
		defaults: defaults,
		metrics:  metrics,
		validate: validator.New(),
		logger:   logger.With(slog.String("handler", "analyze")),
	}
}

// Analyze handles POST /api/analyze.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req pipeline.Request
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.logger.WarnContext(ctx, "malformed analyze request",
			slog.String("error", err.Error()))
		render.Render(w, r, invalidRequest("request body must be valid JSON"))
		return
	}

	h.applyDefaults(&req)

	if err := h.validate.Struct(req); err != nil {
		h.logger.WarnContext(ctx, "invalid analyze request",
			slog.String("error", err.Error()))
		render.Render(w, r, invalidRequest(err.Error()))
		return
	}

	result, err := h.runner.Run(ctx, req)
	if err != nil {
		h.metrics.AnalysesTotal.WithLabelValues("error").Inc()
		h.logger.ErrorContext(ctx, "analysis run failed",
			slog.String("scatter_path", req.ScatterPath),
			slog.String("error", err.Error()))
		render.Render(w, r, errorResponse(err))
		return
	}

	h.metrics.AnalysesTotal.WithLabelValues("ok").Inc()
	h.metrics.RowsDroppedTotal.Add(float64(result.DroppedRows))

	render.JSON(w, r, result)
}

func (h *AnalyzeHandler) applyDefaults(req *pipeline.Request) {
	if req.XColumn == "" {
		req.XColumn = h.defaults.XColumn
	}
	if req.YColumn == "" {
		req.YColumn = h.defaults.YColumn
	}
	if req.LabelColumn == "" {
		req.LabelColumn = h.defaults.LabelColumn
	}
	if req.CategoryColumn == "" {
		req.CategoryColumn = h.defaults.CategoryColumn
	}
}
