package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perf-bench/analyzer/analysis"
	"github.com/perf-bench/analyzer/types"
)

const cudaPayload = `Benchmarking 4096x4096 matrices...
CUDA: 2939.45 GFLOPS (2.939 TFLOPS)
CPU: 45.2 GFLOPS
Best time: 46.76ms`

func newTestServer(t *testing.T) *server {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	analyzer := analysis.NewPerformanceAnalyzer(analysis.NewHistory(10), logger)
	s, ok := NewServer(":0", analyzer, logger).(*server)
	require.True(t, ok)
	return s
}

func doRequest(s *server, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	rec := httptest.NewRecorder()
	s.setupRoutes().ServeHTTP(rec, req)
	return rec
}

func TestHandleAnalyze(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, http.MethodPost, "/api/v1/analyze", strings.NewReader(cudaPayload))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var report types.AnalysisReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))

	assert.Equal(t, "CUDA Benchmark Suite", report.SuiteName)
	assert.Len(t, report.Results, 4)
	assert.NotEmpty(t, report.RunID)
	assert.Contains(t, report.Metrics, "GFLOPS")
}

func TestHandleAnalyzeFormatAndSuiteParams(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, http.MethodPost,
		"/api/v1/analyze?format=kv&suite=Custom+Suite",
		strings.NewReader("latency: 12.5 ms"))
	require.Equal(t, http.StatusOK, rec.Code)

	var report types.AnalysisReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))

	assert.Equal(t, "Custom Suite", report.SuiteName)
	require.Len(t, report.Results, 1)
	assert.Equal(t, "latency", report.Results[0].Name)
}

func TestHandleAnalyzeComparesRuns(t *testing.T) {
	s := newTestServer(t)

	doRequest(s, http.MethodPost, "/api/v1/analyze?format=kv", strings.NewReader("throughput: 100"))
	rec := doRequest(s, http.MethodPost, "/api/v1/analyze?format=kv", strings.NewReader("throughput: 120"))
	require.Equal(t, http.StatusOK, rec.Code)

	var report types.AnalysisReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))

	require.Len(t, report.Comparisons, 1)
	assert.True(t, report.Comparisons[0].IsImprovement)
}

func TestHandleHistory(t *testing.T) {
	s := newTestServer(t)

	for i := 0; i < 3; i++ {
		doRequest(s, http.MethodPost, "/api/v1/analyze?format=kv", strings.NewReader("throughput: 100"))
	}

	rec := doRequest(s, http.MethodGet, "/api/v1/history", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Count  int                     `json:"count"`
		Suites []*types.BenchmarkSuite `json:"suites"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, 3, payload.Count)
	assert.Len(t, payload.Suites, 3)
}

func TestHandleHistoryLimit(t *testing.T) {
	s := newTestServer(t)

	for i := 0; i < 3; i++ {
		doRequest(s, http.MethodPost, "/api/v1/analyze?format=kv", strings.NewReader("throughput: 100"))
	}

	rec := doRequest(s, http.MethodGet, "/api/v1/history?limit=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, 2, payload.Count)
}

func TestHandleHistoryInvalidLimit(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, http.MethodGet, "/api/v1/history?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleLatestReport(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, http.MethodGet, "/api/v1/reports/latest", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	doRequest(s, http.MethodPost, "/api/v1/analyze", strings.NewReader(cudaPayload))

	rec = doRequest(s, http.MethodGet, "/api/v1/reports/latest", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var report types.AnalysisReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "CUDA Benchmark Suite", report.SuiteName)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "healthy", payload["status"])
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, http.MethodOptions, "/api/v1/analyze", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
