// Package main потребитель очередей напоминаний: письма reminder и offer
// уходят пользователям пробного периода через SMTP.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/magabrotheeeer/trial-tracker/internal/app/sender"
	"github.com/magabrotheeeer/trial-tracker/internal/config"
	"github.com/magabrotheeeer/trial-tracker/internal/lib/sl"
)

func main() {
	cfg := config.MustLoad()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With(slog.String("component", "reminder-sender"))

	if err := run(cfg, logger); err != nil {
		logger.Error("reminder delivery aborted", sl.Err(err))
		os.Exit(1)
	}
	logger.Info("reminder queues drained, exiting")
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("connecting to reminder queues",
		slog.String("env", cfg.Env),
		slog.String("smtp_host", cfg.SMTP.SMTPHost),
	)
	app, err := sender.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	if err = app.Run(ctx); err != nil {
		return fmt.Errorf("consume: %w", err)
	}
	return nil
}
