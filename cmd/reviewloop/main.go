package main

import (
	"context"
	"log/slog"
	"os"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	githubadapter "github.com/reviewloop/reviewloop/internal/adapter/driven/github"
	openaiadapter "github.com/reviewloop/reviewloop/internal/adapter/driven/openai"
	"github.com/reviewloop/reviewloop/internal/adapter/driving/action"
	"github.com/reviewloop/reviewloop/internal/application"
	"github.com/reviewloop/reviewloop/internal/config"
	"github.com/reviewloop/reviewloop/internal/domain/model"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration (fail fast on missing required env vars), then
	// merge the optional per-repository override file.
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := config.ApplyRepoFile(cfg); err != nil {
		return err
	}
	slog.Info("config loaded",
		"model", cfg.Model,
		"bot_name", cfg.BotName,
		"exclude", cfg.Exclude,
	)

	// 2. Read and classify the workflow event. An unreadable payload is
	// fatal; an event the reviewer does not handle ends the run cleanly.
	trigger, err := action.ParseEventFile(cfg.EventPath)
	if err != nil {
		return err
	}
	if trigger.Action == model.TriggerUnsupported {
		slog.Info("unsupported event, nothing to do",
			"repo", trigger.Owner+"/"+trigger.Repo,
			"pr", trigger.Number,
		)
		return nil
	}

	// 3. Wire adapters and run the pipeline. A run proceeds to completion
	// once started; there is no cancellation or retry.
	host := githubadapter.NewClient(cfg.GitHubToken)
	provider := openaiadapter.NewProvider(cfg.OpenAIAPIKey, cfg.Model)

	svc := application.NewReviewService(host, provider, application.Options{
		BotName:         cfg.BotName,
		Rules:           cfg.Rules,
		Persona:         cfg.Persona,
		ExcludePatterns: application.SplitPatterns(cfg.Exclude),
	}, slog.Default())

	return svc.Run(context.Background(), trigger)
}
