package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Samarth-Subramani/RAG-Application/internal/app"
	"github.com/Samarth-Subramani/RAG-Application/internal/cli"
	"github.com/Samarth-Subramani/RAG-Application/internal/config"
	"github.com/Samarth-Subramani/RAG-Application/internal/logger"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	build := func(ctx context.Context, configPath string) (cli.App, error) {
		a, err := app.Build(ctx, configPath)
		if err != nil {
			return nil, err
		}
		return a, nil
	}

	if err := cli.NewRootCommand(build).ExecuteContext(ctx); err != nil {
		log, lerr := logger.New(config.LogConfig{Level: "error", Format: "console"})
		if lerr == nil {
			log.Error("rag failed", zap.Error(err))
			_ = log.Sync()
		}
		stop()
		os.Exit(1)
	}
}
