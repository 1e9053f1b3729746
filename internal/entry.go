// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tahmid/folio/internal/activity"
	"github.com/tahmid/folio/internal/assets"
	"github.com/tahmid/folio/internal/mcpserver"
	"github.com/tahmid/folio/internal/portfolio"
	"github.com/tahmid/folio/internal/session"
	"github.com/tahmid/folio/internal/sse"
	"github.com/tahmid/folio/internal/web"
)

// Run starts the web application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("api_base_url", cfg.API.BaseURL),
		slog.String("assets_path", cfg.Assets.Path),
		slog.String("log_level", cfg.App.LogLevel.String()))

	client, store, log, err := buildBackends(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	sessionStore, err := session.NewFileStore(cfg.Session.Path)
	if err != nil {
		return fmt.Errorf("init session store: %w", err)
	}
	gate := session.NewGate(sessionStore, cfg.Session.TTL(), []session.Account{
		{
			Username: cfg.Session.Admin.Username,
			Password: cfg.Session.Admin.Password,
			Name:     cfg.Session.Admin.Name,
		},
	})

	broker := sse.NewBroker()
	defer broker.Close()

	handlers := web.NewHandlers(logger, gate, client, store, log, broker)

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: web.NewRouter(handlers),
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	// Watch the assets directory so externally added files show up in the
	// image pickers.
	g.Go(func() error {
		if err := assets.Watch(gCtx, store, logger); err != nil {
			logger.Warn("assets watcher stopped", slog.String("error", err.Error()))
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}

// RunMCP serves the MCP tools over stdio. Logs go to stderr so they do not
// corrupt the protocol stream.
func RunMCP(_ context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	client, store, log, err := buildBackends(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	logger.Info("MCP server starting on stdio")
	return mcpserver.New(client, store, log).ServeStdio()
}

// buildBackends constructs the shared upstream client, asset store, and
// activity log.
func buildBackends(cfg *Config) (*portfolio.Client, *assets.Store, *activity.DB, error) {
	client := portfolio.New(cfg.API.BaseURL, cfg.API.ContactID, cfg.API.Timeout())

	store, err := assets.NewStore(cfg.Assets.Path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("init assets: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Activity.SQLitePath), 0o755); err != nil {
		return nil, nil, nil, fmt.Errorf("create data dir: %w", err)
	}
	log, err := activity.Open(cfg.Activity.SQLitePath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("init activity log: %w", err)
	}
	return client, store, log, nil
}
