package network

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/leengari/space-missions/internal/engine"
)

// Options configures the HTTP server
type Options struct {
	Addr            string
	CORSOrigins     []string
	ShutdownTimeout time.Duration
	Logger          *slog.Logger
}

// Server exposes the query engine over HTTP
type Server struct {
	engine  *engine.Engine
	opts    Options
	logger  *slog.Logger
	handler http.Handler
}

// NewServer builds the route table and middleware chain
func NewServer(eng *engine.Engine, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 5 * time.Second
	}

	s := &Server{
		engine: eng,
		opts:   opts,
		logger: logger,
	}
	s.handler = Chain(s.routes(),
		RequestID(),
		RecoverPanic(logger),
		AccessLog(logger),
		CORS(opts.CORSOrigins),
	)
	return s
}

// Handler returns the fully wrapped HTTP handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens on the configured address and serves until ctx is cancelled
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w", s.opts.Addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve accepts connections on listener until ctx is cancelled
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Running on address", "addr", listener.Addr().String())
		errCh <- srv.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/summary", s.handleSummary)
	mux.HandleFunc("GET /api/companies", s.handleCompanies)
	mux.HandleFunc("GET /api/companies/top", s.handleTopCompanies)
	mux.HandleFunc("GET /api/companies/{company}/missions", s.handleCompanyMissions)
	mux.HandleFunc("GET /api/companies/{company}/success-rate", s.handleCompanySuccessRate)
	mux.HandleFunc("GET /api/missions/search", s.handleSearchMissions)
	mux.HandleFunc("GET /api/missions/year/{year}", s.handleMissionsByYear)
	mux.HandleFunc("GET /api/missions/average-per-year", s.handleAveragePerYear)
	mux.HandleFunc("GET /api/missions/timeline", s.handleTimeline)
	mux.HandleFunc("GET /api/status-distribution", s.handleStatusDistribution)
	mux.HandleFunc("GET /api/raw-data", s.handleRawData)
	mux.HandleFunc("GET /api/rockets/most-used", s.handleMostUsedRocket)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	return mux
}
