package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"ArticlesRate/internal/app"
	"ArticlesRate/internal/config"
	"ArticlesRate/internal/logging"
	"ArticlesRate/internal/server"
)

func main() {
	_ = godotenv.Load()

	urls := flag.String("urls", "", "analyze a comma-separated url list once and exit instead of serving HTTP")
	flag.Parse()

	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}

	if *urls != "" {
		ctx := context.Background()
		results := application.Pipeline().HandleURLs(ctx, server.ParseURLList(*urls))

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(results); err != nil {
			logger.Error("encode results", "error", err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		logger.Error("application stopped", "error", err)
		os.Exit(1)
	}
}
