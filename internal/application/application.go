package application

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/eugenenazirov/toppings/internal/api"
	"github.com/eugenenazirov/toppings/internal/config"
	"github.com/eugenenazirov/toppings/internal/input"
	"github.com/eugenenazirov/toppings/internal/metrics"
	"github.com/eugenenazirov/toppings/internal/storage"
	"github.com/eugenenazirov/toppings/internal/toppings"
)

// App encapsulates the application dependencies and HTTP server.
type App struct {
	storage    storage.Storage
	aggregator toppings.Aggregator
	metrics    *metrics.Recorder
	handler    *api.Handler
	router     http.Handler
	logger     *zap.Logger
	server     *http.Server
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	store := storage.NewMemoryStorage()
	if cfg.PizzasFile != "" {
		pizzas, err := input.LoadPizzas(cfg.PizzasFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load initial pizzas: %w", err)
		}
		if err := store.SetPizzas(pizzas); err != nil {
			return nil, fmt.Errorf("failed to apply initial pizzas: %w", err)
		}
		logger.Info("loaded pizzas", zap.String("path", cfg.PizzasFile), zap.Int("count", len(pizzas)))
	}

	var recorder *metrics.Recorder
	if cfg.EnableMetrics {
		recorder = metrics.New()
	}

	agg := toppings.New()
	handler := api.NewHandler(agg, store,
		api.WithMetrics(recorder),
		api.WithDefaultLimit(cfg.TopLimit),
	)
	apiRouter := api.NewRouter(handler, logger,
		api.WithLogging(cfg.EnableRequestLogging),
		api.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
		api.WithRequestMetrics(recorder),
	)

	return &App{
		storage:    store,
		aggregator: agg,
		metrics:    recorder,
		handler:    handler,
		router:     apiRouter,
		logger:     logger,
		server:     NewServer(cfg, BuildRootHandler(apiRouter, recorder)),
	}, nil
}

// BuildRootHandler mounts the API under /api/ and, when metrics are enabled, the
// Prometheus endpoint under /metrics.
func BuildRootHandler(apiHandler http.Handler, recorder *metrics.Recorder) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/api/", apiHandler)
	if recorder != nil {
		mux.Handle("GET /metrics", recorder.Handler())
	}
	return mux
}

// NewServer creates and configures an HTTP server from the provided configuration.
func NewServer(cfg config.Config, handler http.Handler) *http.Server {
	addr := cfg.Port
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// Start starts the HTTP server in a goroutine and logs the listening address.
func (a *App) Start() error {
	go func() {
		a.logger.Info("server listening", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("server error", zap.Error(err))
		}
	}()
	return nil
}

// Server returns the HTTP server instance for shutdown handling.
func (a *App) Server() *http.Server {
	return a.server
}
