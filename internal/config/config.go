// Package config loads application configuration from environment variables
// and an optional per-repository YAML override file.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the reviewer configuration for one run.
type Config struct {
	GitHubToken  string
	EventPath    string
	OpenAIAPIKey string
	Model        string
	BotName      string
	Rules        string
	Persona      string
	Exclude      string // Comma-separated glob patterns.
	Workspace    string // Checkout root; where the repo override file lives.
}

// Load reads configuration from environment variables and returns a
// validated Config. A .env file is honored for local runs. Required:
// GITHUB_TOKEN, GITHUB_EVENT_PATH, OPENAI_API_KEY. Optional with defaults:
// REVIEWLOOP_MODEL (gpt-4o-mini), REVIEWLOOP_BOT_NAME (reviewloop).
// Optional: REVIEWLOOP_RULES, REVIEWLOOP_PERSONA, REVIEWLOOP_EXCLUDE,
// GITHUB_WORKSPACE.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		GitHubToken:  os.Getenv("GITHUB_TOKEN"),
		EventPath:    os.Getenv("GITHUB_EVENT_PATH"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		Model:        getEnvDefault("REVIEWLOOP_MODEL", "gpt-4o-mini"),
		BotName:      getEnvDefault("REVIEWLOOP_BOT_NAME", "reviewloop"),
		Rules:        os.Getenv("REVIEWLOOP_RULES"),
		Persona:      os.Getenv("REVIEWLOOP_PERSONA"),
		Exclude:      os.Getenv("REVIEWLOOP_EXCLUDE"),
		Workspace:    os.Getenv("GITHUB_WORKSPACE"),
	}

	if cfg.GitHubToken == "" {
		return nil, fmt.Errorf("GITHUB_TOKEN is required")
	}
	if cfg.EventPath == "" {
		return nil, fmt.Errorf("GITHUB_EVENT_PATH is required")
	}
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}

	return cfg, nil
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
