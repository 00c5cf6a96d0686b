package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/handler"
	"github.com/vaultpass/passgen/internal/repository"
	"github.com/vaultpass/passgen/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()
	slog.SetDefault(cfg.NewLogger())

	source := crypto.NewSource()
	if cfg.GeneratorSecure {
		source = crypto.NewSecureSource()
	}

	routes := handler.RouterConfig{
		Strength:       handler.NewStrengthHandler(service.NewStrengthService()),
		JWTSecret:      cfg.JWTSecret,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	}

	// Generation statistics are optional: without a database the API still
	// generates and rates passwords.
	var recorder service.Recorder
	db, err := repository.NewDB(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database unavailable, generation stats disabled", "driver", cfg.DatabaseDriver, "error", err)
	} else {
		defer db.Close()

		events := repository.NewEventRepository(db, cfg.DatabaseDriver)
		schemaCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := events.EnsureSchema(schemaCtx)
		cancel()
		if err != nil {
			slog.Warn("creating stats schema failed, generation stats disabled", "error", err)
		} else {
			statsService := service.NewStatsService(events, cfg.FingerprintKey)
			recorder = statsService
			routes.Stats = handler.NewStatsHandler(statsService)
		}
	}

	genService := service.NewGeneratorService(source, recorder)
	routes.Generator = handler.NewGeneratorHandler(genService)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.NewRouter(routes),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "stats", routes.Stats != nil, "secure_source", cfg.GeneratorSecure)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
