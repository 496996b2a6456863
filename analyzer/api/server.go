// Package api exposes the analyzer over HTTP: one-shot analysis of posted
// benchmark text, history access, and a WebSocket stream of fresh reports.
package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/perf-bench/analyzer/analysis"
	"github.com/perf-bench/analyzer/types"
)

// Server provides the HTTP API over a performance analyzer.
type Server interface {
	Start(ctx context.Context) error
	Stop() error
}

// server implements the API server.
type server struct {
	addr     string
	analyzer *analysis.PerformanceAnalyzer
	log      logrus.FieldLogger

	httpServer *http.Server
	upgrader   websocket.Upgrader

	// analyzeMu serializes Analyze calls; the analyzer itself is not safe
	// for concurrent use.
	analyzeMu  sync.Mutex
	reportMu   sync.RWMutex
	lastReport *types.AnalysisReport

	wsMu        sync.Mutex
	wsClients   map[*websocket.Conn]bool
	wsBroadcast chan []byte
	wsDone      chan struct{}
}

// NewServer creates an API server around an analyzer.
func NewServer(addr string, analyzer *analysis.PerformanceAnalyzer, log logrus.FieldLogger) Server {
	return &server{
		addr:     addr,
		analyzer: analyzer,
		log:      log.WithField("component", "api-server"),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow connections from any origin
			},
		},
		wsClients:   make(map[*websocket.Conn]bool),
		wsBroadcast: make(chan []byte, 16),
		wsDone:      make(chan struct{}),
	}
}

// Start initializes and starts the HTTP API server.
func (s *server) Start(ctx context.Context) error {
	s.log.Info("Starting API server")

	s.httpServer = &http.Server{
		Addr:         s.addr,
		Handler:      s.setupRoutes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go s.runBroadcastHub()

	go func() {
		s.log.WithField("addr", s.httpServer.Addr).Info("API server listening")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.WithError(err).Error("API server failed")
		}
	}()

	return nil
}

// Stop gracefully shuts down the HTTP API server.
func (s *server) Stop() error {
	s.log.Info("Stopping API server")

	close(s.wsDone)

	s.wsMu.Lock()
	for conn := range s.wsClients {
		conn.Close()
	}
	s.wsClients = make(map[*websocket.Conn]bool)
	s.wsMu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.log.WithError(err).Error("Failed to shutdown API server gracefully")
		return err
	}

	s.log.Info("API server stopped")
	return nil
}

// setupRoutes configures all HTTP routes and middleware.
func (s *server) setupRoutes() *mux.Router {
	router := mux.NewRouter()

	router.Use(s.enableCORS)
	router.Use(s.loggingMiddleware)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/analyze", s.handleAnalyze).Methods("POST", "OPTIONS")
	api.HandleFunc("/history", s.handleHistory).Methods("GET", "OPTIONS")
	api.HandleFunc("/reports/latest", s.handleLatestReport).Methods("GET", "OPTIONS")
	api.HandleFunc("/ws", s.handleWebSocket)

	router.HandleFunc("/health", s.handleHealth).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return router
}

// enableCORS adds CORS headers to responses.
func (s *server) enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request with timing.
func (s *server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		}).Debug("Handled request")
	})
}
