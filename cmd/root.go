package cmd

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/commitdeck/config"
	"github.com/masmgr/commitdeck/internal/logging"
	"github.com/masmgr/commitdeck/internal/output"
	"github.com/masmgr/commitdeck/internal/summary"
)

func init() {
	// -v belongs to --verbose; the version flag keeps only its long name.
	cli.VersionFlag = &cli.BoolFlag{
		Name:               "version",
		Usage:              "print the version",
		DisableDefaultText: true,
	}
}

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:      "commitdeck",
		Usage:     "Turn a range of git commits into a Quarto reveal.js slide deck",
		UsageText: "commitdeck --out slides.qmd [--task ID] [--since REV] [--until REV] [options]",
		Version:   "1.0.0",
		Flags:     deckFlags(),
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				logging.SetLevel("debug")
			}
			return nil
		},
		Action: generateAction,
	}
}

func deckFlags() []cli.Flag {
	defaults := config.DefaultConfig()

	return []cli.Flag{
		&cli.StringFlag{
			Name:  "task",
			Usage: "Task id; commits whose message matches it (case-insensitive) are selected",
		},
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository",
			Value:   ".",
		},
		&cli.StringFlag{
			Name:  "since",
			Usage: "Start revision, exclusive (default: merge-base with --base-ref)",
		},
		&cli.StringFlag{
			Name:  "until",
			Usage: "End revision, inclusive",
			Value: defaults.Selection.Until,
		},
		&cli.StringFlag{
			Name:  "paths",
			Usage: "Comma separated path filters",
		},
		&cli.StringFlag{
			Name:  "grep",
			Usage: "Extra message filter, combined with --task",
		},
		&cli.BoolFlag{
			Name:  "include-diff",
			Usage: "Append an appendix with the patch of every commit",
		},
		&cli.IntFlag{
			Name:  "max-patch-lines",
			Usage: "Truncate appendix patches after this many lines (0 disables)",
			Value: defaults.Deck.MaxPatchLines,
		},
		&cli.StringFlag{
			Name:  "title",
			Usage: "Deck title (default: \"Task Report: <task>\" or \"Commit Report\")",
		},
		&cli.StringFlag{
			Name:     "out",
			Aliases:  []string{"o"},
			Usage:    "Output .qmd path (parent directories are created)",
			Required: true,
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Target presentation format (html, pdf)",
			Value:   defaults.Deck.Format,
		},
		&cli.StringFlag{
			Name:  "summary",
			Usage: "Per-commit summary mode (" + joinModes() + ")",
			Value: defaults.Summary.Mode,
		},
		&cli.StringFlag{
			Name:  "api-key",
			Usage: "API key for --summary ai (default: provider environment variable)",
		},
		&cli.StringFlag{
			Name:  "summary-dir",
			Usage: "Directory of manual summaries (default: <repo>/" + summary.DefaultDirName + ")",
		},
		&cli.StringFlag{
			Name:  "ai-provider",
			Usage: "AI provider for --summary ai (anthropic, gemini)",
			Value: defaults.Summary.Provider,
		},
		&cli.StringFlag{
			Name:  "ai-model",
			Usage: "AI model id (default: provider default)",
		},
		&cli.StringFlag{
			Name:  "base-ref",
			Usage: "Branch whose merge-base is the default start revision",
			Value: defaults.Selection.DefaultBaseRef,
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Glob patterns left out of the top-file ranking (can be specified multiple times)",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file (default: ./" + config.FileName + " or ~/" + config.FileName + ")",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Log git commands",
		},
	}
}

func joinModes() string {
	names := make([]string, len(summary.Modes))
	for i, m := range summary.Modes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

// parsePaths splits the comma separated --paths value, dropping blanks.
func parsePaths(s string) []string {
	var paths []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// loadConfig loads configuration from file or defaults and applies CLI overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if c.IsSet("until") {
		cfg.Selection.Until = c.String("until")
	}
	if c.IsSet("base-ref") {
		cfg.Selection.DefaultBaseRef = c.String("base-ref")
	}
	if c.IsSet("max-patch-lines") {
		cfg.Deck.MaxPatchLines = c.Int("max-patch-lines")
	}
	if c.IsSet("format") {
		cfg.Deck.Format = c.String("format")
	}
	if c.IsSet("summary") {
		cfg.Summary.Mode = c.String("summary")
	}
	if c.IsSet("summary-dir") {
		cfg.Summary.Dir = c.String("summary-dir")
	}
	if c.IsSet("ai-provider") {
		cfg.Summary.Provider = c.String("ai-provider")
	}
	if c.IsSet("ai-model") {
		cfg.Summary.Model = c.String("ai-model")
	}
	if excludes := c.StringSlice("exclude"); len(excludes) > 0 {
		cfg.Filters.Exclude = excludes
	}

	if cfg.Deck.MaxPatchLines < 0 {
		return nil, fmt.Errorf("invalid max-patch-lines %d (must be >= 0)", cfg.Deck.MaxPatchLines)
	}
	if _, err := output.ParseFormat(cfg.Deck.Format); err != nil {
		return nil, err
	}
	if _, err := summary.ParseMode(cfg.Summary.Mode); err != nil {
		return nil, err
	}

	return cfg, nil
}
