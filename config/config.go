package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// FileName is the configuration file looked up in the working directory and $HOME.
const FileName = ".commitdeck.json"

// Config is the root configuration structure.
type Config struct {
	Selection SelectionConfig `json:"selection"`
	Deck      DeckConfig      `json:"deck"`
	Summary   SummaryConfig   `json:"summary"`
	Filters   FilterConfig    `json:"filters"`
}

// SelectionConfig holds commit range defaults.
type SelectionConfig struct {
	DefaultBaseRef string `json:"defaultBaseRef"` // Default: "origin/main"
	Until          string `json:"until"`          // Default: "HEAD"
}

// DeckConfig holds document rendering options.
type DeckConfig struct {
	MaxPatchLines int    `json:"maxPatchLines"` // Default: 600
	TopFiles      int    `json:"topFiles"`      // Default: 10
	Format        string `json:"format"`        // Default: "html"
}

// SummaryConfig holds summary generation defaults.
type SummaryConfig struct {
	Mode     string `json:"mode"`     // none, template, ai or manual
	Dir      string `json:"dir"`      // manual summaries; empty means <repo>/.commit-summaries
	Provider string `json:"provider"` // anthropic or gemini
	Model    string `json:"model"`    // empty means the provider default
}

// FilterConfig holds file path filtering options.
type FilterConfig struct {
	Exclude []string `json:"exclude"` // doublestar globs left out of the top-file ranking
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Selection: SelectionConfig{
			DefaultBaseRef: "origin/main",
			Until:          "HEAD",
		},
		Deck: DeckConfig{
			MaxPatchLines: 600,
			TopFiles:      10,
			Format:        "html",
		},
		Summary: SummaryConfig{
			Mode:     "none",
			Provider: "anthropic",
		},
		Filters: FilterConfig{
			Exclude: []string{},
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		// Try default locations
		candidates := []string{FileName}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, FileName))
		} else if envHome := os.Getenv("HOME"); envHome != "" {
			candidates = append(candidates, filepath.Join(envHome, FileName))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// LoadEnv loads <dir>/.env into the process environment without overriding
// variables that are already set. A missing file is not an error.
func LoadEnv(dir string) error {
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
