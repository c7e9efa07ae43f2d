package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/recruitkit/cvparse/internal/api"
	"github.com/recruitkit/cvparse/internal/config"
	"github.com/recruitkit/cvparse/internal/llm"
	"github.com/recruitkit/cvparse/internal/merge"
	"github.com/recruitkit/cvparse/internal/parse"
	"github.com/recruitkit/cvparse/internal/pipeline"
	"github.com/recruitkit/cvparse/internal/store"
	"github.com/recruitkit/cvparse/internal/vocab"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load the skill vocabulary, seeding defaults on first run.
	vocabStore, err := vocab.Bootstrap(cfg.VocabPath)
	if err != nil {
		log.Error("vocabulary bootstrap failed", "path", cfg.VocabPath, "error", err)
		os.Exit(1)
	}
	vocabCtx := vocab.NewContext(vocabStore)

	policy, err := merge.ParseProjectPolicy(cfg.ProjectPolicy)
	if err != nil {
		log.Error("invalid project policy", "value", cfg.ProjectPolicy, "error", err)
		os.Exit(1)
	}

	// Initialize clients. A missing LLM key degrades every parse to
	// heuristics-only rather than blocking startup.
	llmClient := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMTimeout)
	if cfg.LLMAPIKey == "" {
		log.Warn("LLM_API_KEY not set, running heuristics-only")
	}
	records := store.NewClient(cfg.StoreURL, cfg.StoreAPIKey)

	parser := parse.NewParser(vocabCtx, llm.NewExtractor(llmClient, log), policy, log)

	// Initialize pipeline.
	orch := pipeline.NewOrchestrator(cfg, parser, records, log)
	orch.Start(ctx)

	// Initialize HTTP server.
	srv := api.NewServer(orch, parser, records, llmClient, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		orch.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		llmClient.Close()
		records.Close()
	}()

	log.Info("starting cvparse", "port", cfg.Port, "model", llmClient.Model(), "project_policy", policy.String())
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
