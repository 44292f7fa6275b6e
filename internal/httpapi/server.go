// Package httpapi exposes the planner over JSON HTTP.
package httpapi

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexanderramin/fuelplan/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

const requestIDHeader = "X-Request-ID"

type Options struct {
	CORSOrigins     []string
	ShutdownTimeout time.Duration
	// Logger receives one line per request. Nil discards.
	Logger *slog.Logger
}

// Server routes planner requests. Build it with New.
type Server struct {
	planner service.PlannerService
	opts    Options
	logger  *slog.Logger
	handler http.Handler
}

func New(planner service.PlannerService, opts Options) *Server {
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 5 * time.Second
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Server{planner: planner, opts: opts, logger: logger}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), s.requestID(), s.accessLog())
	s.registerRoutes(router)

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{requestIDHeader},
	})
	s.handler = c.Handler(router)
	return s
}

func (s *Server) registerRoutes(router *gin.Engine) {
	router.GET("/healthz", s.healthz)

	api := router.Group("/api")
	api.POST("/targets", s.computeTargets)
	api.POST("/skeleton", s.generateSkeleton)
	api.POST("/plan", s.plan)
	api.POST("/verify", s.verifyNaming)
}

// Handler returns the CORS-wrapped router.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully within the configured timeout.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http_listen", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("http_shutdown", "addr", addr)
	return nil
}
