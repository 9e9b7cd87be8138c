package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heptiolabs/healthcheck"
	"github.com/lmittmann/tint"

	"github.com/mixelka/tempmailbot/internal/config"
	"github.com/mixelka/tempmailbot/internal/notify"
	"github.com/mixelka/tempmailbot/internal/parser"
	"github.com/mixelka/tempmailbot/internal/session"
	"github.com/mixelka/tempmailbot/internal/telegram"
	"github.com/mixelka/tempmailbot/internal/tempmail"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup logger
	logger := setupLogger(cfg.LogLevel, cfg.LogFormat)
	logger.Info("starting tempmail bot", "admin_id", cfg.AdminID)

	// Create components
	provider := tempmail.NewClient(tempmail.Config{
		BaseURL:       cfg.APIBaseURL,
		DefaultDomain: cfg.DefaultDomain,
		Timeout:       cfg.HTTPTimeout,
	}, logger)
	sessions := session.NewStore()
	domains := session.NewRegistry()
	stripper := parser.NewHTMLStripper()
	scheduler := notify.NewScheduler(cfg.NotifyDelay, sessions, provider, logger)

	// Create bot
	bot, err := telegram.NewBot(telegram.BotDeps{
		Config:    cfg,
		Sessions:  sessions,
		Domains:   domains,
		Provider:  provider,
		Scheduler: scheduler,
		Stripper:  stripper,
		Logger:    logger,
	})
	if err != nil {
		logger.Error("failed to create bot", "error", err)
		os.Exit(1)
	}
	bot.SetupNotifications()

	// Keep-alive endpoint for the hosting platform
	go serveHealth(cfg.Port, logger)

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh

		logger.Info("received shutdown signal", "signal", sig)
		logger.Info("shutting down...")

		scheduler.Close()
		cancel()
	}()

	// Start bot
	logger.Info("bot is running, press Ctrl+C to stop")
	bot.Start(ctx)

	logger.Info("bot stopped")
}

// serveHealth exposes liveness on the configured port.
func serveHealth(port int, logger *slog.Logger) {
	health := healthcheck.NewHandler()
	health.AddLivenessCheck("goroutine-count", healthcheck.GoroutineCountCheck(500))

	addr := fmt.Sprintf(":%d", port)
	logger.Info("health endpoint listening", "addr", addr)
	if err := http.ListenAndServe(addr, health); err != nil {
		logger.Error("health listener stopped", "error", err)
	}
}

func setupLogger(level, format string) *slog.Logger {
	var handler slog.Handler
	logLevel := parseLevel(level)

	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: logLevel,
		})
	} else {
		// Pretty colored output for console
		handler = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.DateTime,
			NoColor:    false,
		})
	}

	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
