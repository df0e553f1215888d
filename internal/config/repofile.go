package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RepoFileName is the per-repository override file, read from the checkout
// root when present. It lets a repository tune the reviewer without touching
// the workflow definition.
const RepoFileName = ".reviewloop.yml"

// repoFile mirrors the YAML shape of the override file. Only set fields
// override the environment configuration.
type repoFile struct {
	BotName string `yaml:"bot_name"`
	Rules   string `yaml:"rules"`
	Persona string `yaml:"persona"`
	Exclude string `yaml:"exclude"`
}

// ApplyRepoFile merges the repository override file into cfg. A missing file
// or empty workspace is not an error; a present but invalid file is, so a
// broken override is surfaced instead of silently ignored.
func ApplyRepoFile(cfg *Config) error {
	if cfg.Workspace == "" {
		return nil
	}

	data, err := os.ReadFile(filepath.Join(cfg.Workspace, RepoFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", RepoFileName, err)
	}

	var rf repoFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return fmt.Errorf("parsing %s: %w", RepoFileName, err)
	}

	if rf.BotName != "" {
		cfg.BotName = rf.BotName
	}
	if rf.Rules != "" {
		cfg.Rules = rf.Rules
	}
	if rf.Persona != "" {
		cfg.Persona = rf.Persona
	}
	if rf.Exclude != "" {
		cfg.Exclude = rf.Exclude
	}

	return nil
}
