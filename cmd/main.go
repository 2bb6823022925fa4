package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"rating-service/internal/application"
	"rating-service/internal/config"
	"rating-service/pkg/contextx"
	"rating-service/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config.Load", logx.Error(err))
		os.Exit(1)
	}

	log, err := logx.New(os.Stdout, cfg.App.LogLevel, cfg.App.LogFormat)
	if err != nil {
		slog.Error("logx.New", logx.Error(err))
		os.Exit(1)
	}

	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)

	if err := application.Run(ctx, cfg); err != nil {
		log.Error("application.Run", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}
}
