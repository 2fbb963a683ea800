package main

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/randomtoy/tarot-reader/internal/adapters/decks"
	httpadapter "github.com/randomtoy/tarot-reader/internal/adapters/http"
	"github.com/randomtoy/tarot-reader/internal/adapters/llm/openrouter"
	"github.com/randomtoy/tarot-reader/internal/adapters/storage/memory"
	"github.com/randomtoy/tarot-reader/internal/adapters/storage/postgres"
	"github.com/randomtoy/tarot-reader/internal/app"
	"github.com/randomtoy/tarot-reader/internal/config"
	"github.com/randomtoy/tarot-reader/internal/monitor"
	"github.com/randomtoy/tarot-reader/internal/ports"
	"github.com/randomtoy/tarot-reader/internal/session"
)

// stdRNG delegates to math/rand/v2 (auto-seeded).
type stdRNG struct{}

func (stdRNG) Intn(n int) int { return rand.IntN(n) }

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	catalog := decks.NewEmbeddedStore()
	cards, err := catalog.Cards(context.Background())
	if err != nil {
		logger.Error("failed to load card catalog", "error", err)
		os.Exit(1)
	}
	results := decks.Validate(cards)
	for _, w := range results.Warnings {
		logger.Warn("card catalog warning", "warning", w)
	}
	if !results.OK() {
		logger.Error("card catalog is invalid", "errors", results.Errors)
		os.Exit(1)
	}

	readings, closeStore, err := openReadingStore(cfg)
	if err != nil {
		logger.Error("failed to open reading store", "driver", cfg.StorageDriver, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	mon := monitor.New(cfg.MonitorCapacity)
	sessions := session.NewStore()

	opts := []app.Option{app.WithLogger(logger), app.WithMonitor(mon)}
	if cfg.LLMProvider == config.LLMOpenRouter {
		narrator := openrouter.NewClient(
			&http.Client{Timeout: cfg.LLMTimeout},
			cfg.OpenRouterAPIKey,
			cfg.OpenRouterBaseURL,
			cfg.LLMModel,
			cfg.LLMFallbackModels,
			logger,
		)
		opts = append(opts, app.WithNarrator(narrator))
	}

	svc := app.NewTarotService(catalog, readings, sessions, stdRNG{}, opts...)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(logger))
	e.Use(httpadapter.RecoverMiddleware(logger, mon))
	e.Use(httpadapter.CORSMiddleware(cfg.CORSOrigins))

	handler := httpadapter.NewHandler(svc, mon)
	handler.Register(e)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go pruneSessions(ctx, svc, cfg.SessionTTL, logger)

	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr, "storage", cfg.StorageDriver, "llm", cfg.LLMProvider)
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func openReadingStore(cfg config.Config) (ports.ReadingStore, func(), error) {
	if cfg.StorageDriver != config.StoragePostgres {
		return memory.NewStore(), func() {}, nil
	}
	store, err := postgres.Open(cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}
	return store, func() { _ = store.Close() }, nil
}

// pruneSessions drops idle sessions until ctx is done.
func pruneSessions(ctx context.Context, svc *app.TarotService, ttl time.Duration, logger *slog.Logger) {
	if ttl <= 0 {
		return
	}
	ticker := time.NewTicker(ttl / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := svc.PruneSessions(ttl); n > 0 {
				logger.Debug("pruned idle sessions", "count", n)
			}
		}
	}
}
