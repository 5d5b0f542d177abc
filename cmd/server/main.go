package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/maxviazov/cricket-records-service/internal/app"
	"github.com/maxviazov/cricket-records-service/internal/config"
	"github.com/maxviazov/cricket-records-service/internal/handler"
	"github.com/maxviazov/cricket-records-service/internal/logger"
)

func main() {
	configPath := flag.String("config", envOr("APP_CONFIG", "config.yaml"), "path to the YAML config")
	migrate := flag.Bool("migrate", false, "apply pending migrations before serving")
	flag.Parse()

	// .env is optional: in containers the environment is already set
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("⚠️ .env not loaded: %v", err)
	}

	// Load application config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}
	appLogger.Info().Msg("✅ Logger initialized successfully")

	if err := run(cfg, appLogger, *migrate); err != nil {
		appLogger.Fatal().Err(err).Msg("❌ Service stopped with error")
	}
	appLogger.Info().Msg("👋 Service stopped")
}

func run(cfg *config.Config, appLogger zerolog.Logger, migrate bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := app.Open(ctx, cfg, appLogger)
	if err != nil {
		return fmt.Errorf("open %s backend: %w", cfg.App.Backend, err)
	}
	defer backend.Close()

	if migrate {
		n, v, err := backend.Migrate(ctx)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		appLogger.Info().Int("applied", n).Int64("version", v).Msg("📦 Migrations applied")
	}

	if cfg.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(appLogger))
	handler.Register(r, backend.Pinger, backend.Services(cfg.Records, appLogger))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info().
			Str("addr", srv.Addr).
			Str("backend", backend.Name).
			Str("version", cfg.App.Version).
			Msg("🚀 Service started")
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

	appLogger.Info().Dur("timeout", cfg.App.ShutdownTimeout).Msg("🛑 Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// requestLogger logs one line per request through zerolog instead of gin's default writer.
func requestLogger(l zerolog.Logger) gin.HandlerFunc {
	l = l.With().Str("module", "http").Logger()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		ev := l.Info()
		if c.Writer.Status() >= http.StatusInternalServerError {
			ev = l.Error()
		}
		ev.Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", c.Writer.Status()).
			Dur("took", time.Since(start)).
			Msg("request")
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
