package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoscatter/internal/config"
	"autoscatter/internal/pipeline"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Server.RateLimitRPS = 1000
	cfg.Server.RateLimitBurst = 1000

	runner := pipeline.NewRunner(pipeline.Options{Encodings: cfg.Data.Encodings}, nil, nil)
	server := httptest.NewServer(NewRouter(runner, cfg, nil))
	t.Cleanup(server.Close)
	return server
}

func postAnalyze(t *testing.T, server *httptest.Server, body map[string]any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(server.URL+"/api/analyze", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestAnalyzeHandler_Analyze(t *testing.T) {
	server := newTestServer(t)

	dir := t.TempDir()
	scatter := filepath.Join(dir, "points.csv")
	require.NoError(t, os.WriteFile(scatter, []byte("label,x,y\nA,1,2\nB,bad,4\nC,3,6\n"), 0644))

	resp := postAnalyze(t, server, map[string]any{"scatter_path": scatter})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result pipeline.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	assert.Len(t, result.Points, 2)
	assert.Equal(t, 1, result.DroppedRows)
	assert.True(t, result.Summary.Computable)
	assert.Equal(t, 2, result.Summary.SampleCount)
	assert.NotEmpty(t, result.RunID)
}

func TestAnalyzeHandler_Analyze_MissingSource(t *testing.T) {
	server := newTestServer(t)

	resp := postAnalyze(t, server, map[string]any{
		"scatter_path": filepath.Join(t.TempDir(), "absent.csv"),
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var body struct {
		ErrorCode string `json:"error_code"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "DATA_LOAD_FAILED", body.ErrorCode)
}

func TestAnalyzeHandler_Analyze_BadCategoryColumn(t *testing.T) {
	server := newTestServer(t)

	dir := t.TempDir()
	scatter := filepath.Join(dir, "points.csv")
	categories := filepath.Join(dir, "categories.csv")
	require.NoError(t, os.WriteFile(scatter, []byte("label,x,y\nA,1,2\nB,2,4\n"), 0644))
	require.NoError(t, os.WriteFile(categories, []byte("label,region\nA,north\n"), 0644))

	resp := postAnalyze(t, server, map[string]any{
		"scatter_path":    scatter,
		"category_path":   categories,
		"category_column": "sector",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAnalyzeHandler_Analyze_MissingScatterPath(t *testing.T) {
	server := newTestServer(t)
	resp := postAnalyze(t, server, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAnalyzeHandler_Analyze_MalformedBody(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Post(server.URL+"/api/analyze", "application/json", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealthAndMetricsEndpoints(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "healthy", health["status"])

	metricsResp, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer metricsResp.Body.Close()
	assert.Equal(t, http.StatusOK, metricsResp.StatusCode)
}

func TestAnalyzeHandler_RequestIDPropagated(t *testing.T) {
	server := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/api/health", server.URL), nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "test-trace")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "test-trace", resp.Header.Get("X-Request-ID"))
}
