package http

import (
	"net/http"

	"github.com/go-chi/render"

	apperrors "autoscatter/internal/errors"
)

// apiError is the JSON error body returned by the API.
type apiError struct {
	StatusCode int    `json:"-"`
	ErrorCode  string `json:"error_code"`
	Message    string `json:"message"`
}

// Render implements render.Renderer.
func (e *apiError) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

// errorResponse maps pipeline errors onto the API contract: data-load
// failures are unprocessable input (422), analysis/config failures are
// caller mistakes (400), anything unclassified is a 500.
func errorResponse(err error) *apiError {
	switch apperrors.KindOf(err) {
	case apperrors.KindDataLoad:
		return &apiError{StatusCode: http.StatusUnprocessableEntity, ErrorCode: "DATA_LOAD_FAILED", Message: err.Error()}
	case apperrors.KindAnalysis, apperrors.KindConfig:
		return &apiError{StatusCode: http.StatusBadRequest, ErrorCode: "INVALID_ANALYSIS_REQUEST", Message: err.Error()}
	default:
		return &apiError{StatusCode: http.StatusInternalServerError, ErrorCode: "INTERNAL_ERROR", Message: "internal server error"}
	}
}

// invalidRequest builds a 400 for malformed or invalid request bodies.
func invalidRequest(message string) *apiError {
	return &apiError{StatusCode: http.StatusBadRequest, ErrorCode: "INVALID_REQUEST", Message: message}
}
