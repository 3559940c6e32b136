package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/firecalc/fire-calculator/internal/calculation"
	"github.com/firecalc/fire-calculator/internal/config"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// maxBodyBytes caps request bodies; the largest request is a scenario plus grid ranges.
const maxBodyBytes = 1 << 20

// Server exposes the calculator over a JSON HTTP API.
type Server struct {
	engine *calculation.CalculationEngine
	parser *config.InputParser
	logger *logrus.Logger
}

// NewServer wires the engine, config validation and logger. A nil logger
// discards output.
func NewServer(engine *calculation.CalculationEngine, parser *config.InputParser, logger *logrus.Logger) *Server {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	engine.SetLogger(logger)
	return &Server{engine: engine, parser: parser, logger: logger}
}

const apiPrefix = "/api/v1"

// Router builds the route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	// Full paths on the root router so a wrong method answers 405, not 404.
	r.HandleFunc(apiPrefix+"/taxes", s.handleTaxes).Methods(http.MethodPost)
	r.HandleFunc(apiPrefix+"/projection", s.handleProjection).Methods(http.MethodPost)
	r.HandleFunc(apiPrefix+"/grid", s.handleGrid).Methods(http.MethodPost)
	r.HandleFunc(apiPrefix+"/grid/cell", s.handleGridCell).Methods(http.MethodPost)
	r.HandleFunc(apiPrefix+"/breakeven", s.handleBreakEven).Methods(http.MethodPost)
	return r
}

// ListenAndServe runs the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, cfg config.ServerConfig) error {
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		BaseContext:  func(_ net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("Starting server on %s", cfg.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start).String(),
		}).Info("request")
	})
}
