// Package api serves the appointment store over a JSON REST API.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/javiermolinar/dayview/internal/appointment"
	"github.com/javiermolinar/dayview/internal/config"
)

// BasePath prefixes every resource route.
const BasePath = "/api/v1"

// Server wires the store into a gin engine.
type Server struct {
	store           appointment.Store
	logger          *zap.Logger
	engine          *gin.Engine
	addr            string
	shutdownTimeout time.Duration
	hourHeight      float64
	now             func() time.Time
}

// New builds a Server with routes and middleware registered.
// A nil logger discards all output.
func New(store appointment.Store, cfg *config.Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		store:           store,
		logger:          logger,
		addr:            cfg.Server.Addr,
		shutdownTimeout: cfg.Server.ShutdownTimeout.Duration,
		hourHeight:      cfg.Layout.HourHeight,
		now:             time.Now,
	}

	engine := gin.New()
	// rate limiting keys on RemoteAddr unless proxies are configured
	_ = engine.SetTrustedProxies(nil)
	engine.Use(s.recovery())
	engine.Use(requestID())
	engine.Use(s.accessLog())
	if cfg.Server.RateLimitPerMinute > 0 {
		engine.Use(newRateLimiter(cfg.Server.RateLimitPerMinute, cfg.Server.RateBurst, logger).middleware())
	}
	if len(cfg.Server.AllowedOrigins) > 0 {
		engine.Use(corsMiddleware(cfg.Server.AllowedOrigins))
	}
	s.engine = engine
	s.registerRoutes()

	return s
}

// Handler returns the HTTP handler for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully within the
// configured timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("server is shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	s.logger.Info("server stopped gracefully")
	return nil
}
