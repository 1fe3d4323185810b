// Package mockserver is an in-memory implementation of the console
// backend's HTTP contract, used for local development and tests.
package mockserver

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// Backend serves the fleet over HTTP.
type Backend struct {
	cfg     Config
	fleet   *Fleet
	logger  *zap.Logger
	metrics *metrics
	engine  *gin.Engine
}

// Option configures a Backend.
type Option func(*Backend)

// WithLogger sets the request logger.
func WithLogger(l *zap.Logger) Option {
	return func(b *Backend) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithFleet serves an existing fleet instead of generating one.
func WithFleet(f *Fleet) Option {
	return func(b *Backend) { b.fleet = f }
}

// New builds a Backend. Unless WithFleet is given, cfg.Servers servers
// are generated from cfg.Seed.
func New(cfg Config, opts ...Option) *Backend {
	b := &Backend{
		cfg:     cfg,
		logger:  zap.NewNop(),
		metrics: newMetrics(),
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.fleet == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed))
		b.fleet = NewFleet(GenerateServers(cfg.Servers, rng, time.Now()))
	}

	b.engine = b.routes()
	return b
}

func (b *Backend) routes() *gin.Engine {
	h := &handlers{fleet: b.fleet, metrics: b.metrics}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(b.logger))
	r.Use(b.metrics.middleware())

	r.GET("/health", health)
	r.GET("/metrics", gin.WrapH(b.metrics.handler()))
	r.NoRoute(h.notFound)

	api := r.Group("/api")
	if b.cfg.Secret != "" {
		api.Use(requireBearer(b.cfg.Secret))
	}
	api.Use(simulateLatency(b.cfg.Latency))

	api.GET("/servers", h.listServers)
	api.GET("/servers/:id", h.getServer)
	api.PUT("/servers/:id", h.updateServer)
	api.POST("/servers/:id/flush-pages", h.flushPages)
	api.GET("/servers/:id/mods", h.listMods)
	api.GET("/servers/:id/mods/configs", h.listConfigs)
	api.GET("/servers/:id/mods/:modId/config", h.getConfig)
	api.PUT("/servers/:id/mods/:modId/config", h.updateConfig)
	api.GET("/servers/:id/logs", h.logs)
	api.POST("/servers/:id/execute", h.execute)

	return r
}

// Handler returns the HTTP handler, for use with httptest.
func (b *Backend) Handler() http.Handler { return b.engine }

// Fleet returns the state the backend serves.
func (b *Backend) Fleet() *Fleet { return b.fleet }

// ListenAndServe serves on cfg.Addr until ctx is cancelled, then shuts
// down gracefully.
func (b *Backend) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              b.cfg.Addr,
		Handler:           b.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		b.logger.Info("mock backend listening",
			zap.String("addr", b.cfg.Addr),
			zap.Int("servers", len(b.fleet.Servers())),
			zap.Bool("auth", b.cfg.Secret != ""),
			zap.Duration("latency", b.cfg.Latency),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("mockserver: listen failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("mockserver: shutdown failed: %w", err)
	}
	b.logger.Info("mock backend stopped")
	return nil
}
