package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/lecture-digest/internal/config"
	"github.com/nguyentantai21042004/lecture-digest/internal/logger"
	"github.com/nguyentantai21042004/lecture-digest/internal/pipeline"
	"github.com/nguyentantai21042004/lecture-digest/internal/summarizer"
	"github.com/nguyentantai21042004/lecture-digest/internal/transcriber"
	"github.com/nguyentantai21042004/lecture-digest/internal/watcher"
	"github.com/nguyentantai21042004/lecture-digest/pkg/executor"
	"github.com/sashabaranov/go-openai"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	secrets := config.LoadSecrets()

	// Initialize logger
	log := logger.New(cfg.Logging.Level)
	log.Debug(ctx, "Transcription backend: %s, summarization backend: %s",
		cfg.Transcription.Backend, cfg.Summarization.Backend)

	// Initialize dependencies
	var client *openai.Client
	if secrets.OpenAIAPIKey != "" {
		client = newOpenAIClient(secrets)
	}

	tr, err := transcriber.New(cfg, client, executor.New(), log)
	if err != nil {
		log.Error(ctx, "Failed to create transcriber: %v", err)
		os.Exit(1)
	}
	sum, err := summarizer.New(cfg, secrets, client, log)
	if err != nil {
		log.Error(ctx, "Failed to create summarizer: %v", err)
		os.Exit(1)
	}
	p := pipeline.New(cfg, tr, sum, log)
	log.Info(ctx, "Using Model: %s", cfg.TranscriptionModel())

	if cfg.Watch.Enabled {
		if err := runWatch(ctx, cfg, p, log); err != nil {
			log.Error(ctx, "Watcher error: %v", err)
			os.Exit(1)
		}
		return
	}

	in := bufio.NewReader(os.Stdin)
	if err := runInteractive(ctx, p, in, os.Stdout); err != nil {
		log.Error(ctx, "Run failed: %v", err)
		os.Exit(1)
	}
}

func newOpenAIClient(secrets config.Secrets) *openai.Client {
	clientCfg := openai.DefaultConfig(secrets.OpenAIAPIKey)
	if secrets.OpenAIBaseURL != "" {
		clientCfg.BaseURL = secrets.OpenAIBaseURL
	}
	return openai.NewClientWithConfig(clientCfg)
}

// runWatch processes every audio file dropped into the input directory
// until SIGINT/SIGTERM.
func runWatch(ctx context.Context, cfg *config.Config, p pipeline.Pipeline, log logger.Logger) error {
	if err := os.MkdirAll(cfg.Watch.InputDir, 0755); err != nil {
		return fmt.Errorf("create input dir %s: %w", cfg.Watch.InputDir, err)
	}

	handler := func(ctx context.Context, path string) error {
		_, err := p.Run(ctx, path)
		return err
	}

	w, err := watcher.New(cfg.Watch.InputDir, handler, log, cfg.Watch.MaxConcurrent)
	if err != nil {
		return err
	}
	defer w.Stop()

	// Create context with cancellation on shutdown signals
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info(ctx, "Monitoring: %s", cfg.Watch.InputDir)
	log.Info(ctx, "Press Ctrl+C to stop")

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info(ctx, "Lecture digest stopped")
	return nil
}
