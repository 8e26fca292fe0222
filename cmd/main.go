package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"htmldigest/internal/config"
	"htmldigest/internal/database"
	"htmldigest/internal/server"
	"htmldigest/internal/summarizer"
	"htmldigest/internal/sweeper"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	start := time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.ErrorContext(ctx, "Failed to load config",
			"error", err)

		return
	}

	db, err := database.New(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.ErrorContext(ctx, "Failed to initialize db",
			"error", err,
			"databaseURL", cfg.DatabaseURL)

		return
	}
	defer func() {
		if err = db.Close(); err != nil {
			log.ErrorContext(ctx, "Failed to close db",
				"error", err,
				"databaseURL", cfg.DatabaseURL)
		}
	}()
	log.InfoContext(ctx, "DB is initialized",
		"databaseURL", cfg.DatabaseURL)

	llm := summarizer.NewOllamaSummarizer(cfg.OllamaURL, cfg.ModelName, cfg.LLMTimeout())
	log.InfoContext(ctx, "Summarizer is initialized",
		"model", cfg.ModelName,
		"ollamaURL", cfg.OllamaURL,
		"timeoutSeconds", cfg.LLMTimeoutSeconds)

	srv := server.New(db, llm, cfg.Retention(), log)

	sweep := sweeper.New(ctx, db, cfg.Retention(), cfg.SweepInterval(), log)
	if err = sweep.Start(); err != nil {
		log.ErrorContext(ctx, "Failed to start sweeper",
			"error", err,
			"retentionSeconds", cfg.RetentionSeconds,
			"sweepIntervalSeconds", cfg.SweepIntervalSeconds)

		return
	}
	defer sweep.Stop()
	log.InfoContext(ctx, "Sweeper is started",
		"retentionSeconds", cfg.RetentionSeconds,
		"sweepIntervalSeconds", cfg.SweepIntervalSeconds)

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if listenErr := httpServer.ListenAndServe(); listenErr != nil &&
			!errors.Is(listenErr, http.ErrServerClosed) {
			log.ErrorContext(ctx, "HTTP server failed",
				"error", listenErr,
				"addr", cfg.Addr)
			cancel()
		}
	}()
	log.InfoContext(ctx, "HTTP server is started",
		"addr", cfg.Addr)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-c:
		log.InfoContext(ctx, "Shutdown signal is received",
			"signal", sig.String())
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err = httpServer.Shutdown(shutdownCtx); err != nil {
		log.ErrorContext(ctx, "Failed to shut down HTTP server",
			"error", err,
			"addr", cfg.Addr)
	}

	log.InfoContext(ctx, "Exiting...",
		"uptimeSeconds", time.Since(start).Seconds())
}
