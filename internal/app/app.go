package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"ArticlesRate/internal/adapters"
	"ArticlesRate/internal/charged"
	"ArticlesRate/internal/config"
	"ArticlesRate/internal/fetch"
	"ArticlesRate/internal/logging"
	"ArticlesRate/internal/morph"
	"ArticlesRate/internal/ports"
	"ArticlesRate/internal/server"
	"ArticlesRate/internal/usecase"
)

// Application wires configs to the pipeline and HTTP lifecycle.
type Application struct {
	cfg      config.Config
	logger   *slog.Logger
	pipeline *usecase.Pipeline
	server   *server.Server
}

// New builds a runnable application. Misconfiguration (unreadable lexicon or
// lemma dictionary) aborts here, before any worker is spawned.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	chargedWords, err := charged.LoadDir(cfg.Analysis.ChargedDictDir)
	if err != nil {
		return nil, fmt.Errorf("load charged words: %w", err)
	}

	normalizer, err := buildNormalizer(cfg.Analysis.MorphDictPath)
	if err != nil {
		return nil, fmt.Errorf("load lemma dictionary: %w", err)
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Fetcher:      fetch.New(&http.Client{Timeout: 30 * time.Second}),
		Registry:     adapters.NewRegistry(),
		Normalizer:   normalizer,
		ChargedWords: chargedWords,
		Timeout:      cfg.Analysis.Timeout(),
		Logger:       baseLogger.With("component", "pipeline"),
	})

	srv := server.New(pipeline, cfg.Analysis.MaxURLs, baseLogger.With("component", "server"))

	return &Application{
		cfg:      cfg,
		logger:   baseLogger,
		pipeline: pipeline,
		server:   srv,
	}, nil
}

// Pipeline exposes the batch orchestrator for one-shot CLI runs.
func (a *Application) Pipeline() *usecase.Pipeline {
	return a.pipeline
}

// Run serves the HTTP API until ctx is cancelled, then shuts down gracefully.
func (a *Application) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:    a.cfg.Server.Address,
		Handler: a.server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("listening", "address", a.cfg.Server.Address)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

func buildNormalizer(dictPath string) (ports.Normalizer, error) {
	if dictPath == "" {
		return morph.NewDictionary(nil), nil
	}
	return morph.LoadDictionary(dictPath)
}
