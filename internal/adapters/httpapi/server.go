package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/navneetjaguri/phishing-detection-portal/internal/core"
	"go.uber.org/zap"
)

// Server exposes the analyzer service as a JSON HTTP API
type Server struct {
	service         *core.AnalyzerService
	logger          *zap.Logger
	listenAddr      string
	shutdownTimeout time.Duration
	httpServer      *http.Server
}

// NewServer creates a new HTTP API server
func NewServer(service *core.AnalyzerService, logger *zap.Logger, listenAddr string, shutdownTimeout time.Duration) *Server {
	return &Server{
		service:         service,
		logger:          logger,
		listenAddr:      listenAddr,
		shutdownTimeout: shutdownTimeout,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/analyze-email", s.handleAnalyzeEmail)
	mux.HandleFunc("/api/check-homograph", s.handleCheckHomograph)
	mux.HandleFunc("/api/check-spf-dkim", s.handleCheckSPFDKIM)
	mux.HandleFunc("/api/health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         s.listenAddr,
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	s.logger.Info("HTTP API starting", zap.String("address", s.listenAddr))

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	return nil
}

// Stop gracefully shuts down the HTTP server
func (s *Server) Stop() error {
	if s.httpServer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
