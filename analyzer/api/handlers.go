package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/perf-bench/analyzer/metrics"
	"github.com/perf-bench/analyzer/parsers"
	"github.com/perf-bench/analyzer/types"
)

// maxAnalyzeBody caps accepted benchmark text at 8 MiB.
const maxAnalyzeBody = 8 << 20

// handleAnalyze parses the posted benchmark text (optional ?format= hint),
// runs the analysis, and returns the report. Fresh reports are broadcast to
// WebSocket subscribers.
func (s *server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxAnalyzeBody))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	formatHint := r.URL.Query().Get("format")
	suite := parsers.Parse(string(body), formatHint)
	if name := r.URL.Query().Get("suite"); name != "" {
		suite.Name = name
	}

	metrics.ParsesTotal.WithLabelValues(suite.Name).Inc()
	metrics.ResultsParsed.WithLabelValues(suite.Name).Add(float64(len(suite.Results)))

	start := time.Now()
	s.analyzeMu.Lock()
	report := s.analyzer.Analyze(suite)
	s.analyzeMu.Unlock()
	metrics.AnalyzeDuration.Observe(time.Since(start).Seconds())
	metrics.HistorySize.Set(float64(s.analyzer.History().Len()))
	for _, b := range report.Bottlenecks {
		metrics.BottlenecksDetected.WithLabelValues(b.Severity).Inc()
	}

	s.reportMu.Lock()
	s.lastReport = report
	s.reportMu.Unlock()

	s.broadcastReport(report)
	s.writeJSON(w, http.StatusOK, report)
}

// handleHistory returns the retained suite history, oldest first. ?limit=
// trims to the most recent N suites.
func (s *server) handleHistory(w http.ResponseWriter, r *http.Request) {
	suites := s.analyzer.History().Snapshot()

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			s.writeError(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		if limit < len(suites) {
			suites = suites[len(suites)-limit:]
		}
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"count":  len(suites),
		"suites": suites,
	})
}

// handleLatestReport returns the most recent analysis report.
func (s *server) handleLatestReport(w http.ResponseWriter, r *http.Request) {
	s.reportMu.RLock()
	report := s.lastReport
	s.reportMu.RUnlock()

	if report == nil {
		s.writeError(w, http.StatusNotFound, "No analysis has been run yet")
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":       "healthy",
		"history_size": s.analyzer.History().Len(),
		"timestamp":    time.Now(),
	})
}

func (s *server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.WithError(err).Error("Failed to encode JSON response")
	}
}

func (s *server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

// broadcastReport fans a fresh report out to WebSocket subscribers. Slow or
// stopped hubs drop the message rather than block the request.
func (s *server) broadcastReport(report *types.AnalysisReport) {
	data, err := json.Marshal(wsMessage{
		Type:      wsMessageAnalysisComplete,
		Timestamp: time.Now(),
		Data:      report,
	})
	if err != nil {
		s.log.WithError(err).Error("Failed to marshal report for broadcast")
		return
	}

	select {
	case s.wsBroadcast <- data:
	default:
		s.log.Warn("WebSocket broadcast channel full, dropping report")
	}
}
