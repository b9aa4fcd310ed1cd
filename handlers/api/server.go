package api

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ytbrief/ytbrief/config"
	"github.com/ytbrief/ytbrief/middleware"
	"github.com/ytbrief/ytbrief/pipeline"
	"github.com/ytbrief/ytbrief/summary"
	"github.com/ytbrief/ytbrief/validation"
)

type Server struct {
	video     *VideoHandler
	summary   *SummaryHandler
	config    *config.Config
	logger    *logrus.Logger
	server    *http.Server
	startTime time.Time
}

type ServerOption func(*Server)

// NewServer creates the API server with the provided options.
func NewServer(cfg *config.Config, opts ...ServerOption) *Server {
	s := &Server{
		config:    cfg,
		logger:    logrus.StandardLogger(),
		startTime: time.Now(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.server = &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      s.routes(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s
}

// WithPipelines wires the handlers. The transcribe endpoint reports a
// direct-source failure to the caller, so transcriber normally carries
// no fallback; the summary endpoint owns the full fallback chain.
func WithPipelines(transcriber, full *pipeline.Pipeline, summarizer summary.Service) ServerOption {
	return func(s *Server) {
		validator := validation.NewValidator()
		s.video = NewVideoHandler(transcriber, validator)
		s.summary = NewSummaryHandler(full, summarizer, validator)
	}
}

// WithLogger sets a custom logger for the server.
func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.logger.WithField("port", s.config.ServerPort).Info("Starting server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	return s.server.Shutdown(ctx)
}

// routes sets up the API routes. Method patterns make the mux answer
// 405 for wrong-method requests on known paths.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/transcribe", s.video.HandleTranscribe)
	mux.HandleFunc("POST /api/summarize", s.summary.HandleSummarize)
	mux.HandleFunc("POST /api/summary", s.summary.HandleSummary)

	mux.HandleFunc("GET /health", s.handleHealth)

	return s.middleware(mux)
}

// middleware sets up the middleware chain.
func (s *Server) middleware(handler http.Handler) http.Handler {
	var rateLimiter middleware.RateLimiter
	if s.config.RateLimit.Enabled {
		rateLimiter = middleware.NewRateLimiter(
			s.config.RateLimit.RequestsPerMinute,
			s.config.RateLimit.BurstSize,
		)
	}

	middlewares := []func(http.Handler) http.Handler{
		middleware.Recovery(s.logger),
		middleware.RequestID(),
		middleware.Logging(s.logger),
		middleware.CORS(s.config.CORS),
		middleware.Timeout(s.config.RequestTimeout),
	}

	if rateLimiter != nil {
		middlewares = append(middlewares, rateLimiter.Middleware)
	}

	return middleware.Chain(handler, middlewares...)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
		"version":   s.config.Version,
		"uptime":    time.Since(s.startTime).String(),
	})
}
