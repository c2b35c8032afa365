package cmd

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/commitdeck/config"
	"github.com/masmgr/commitdeck/internal/deck"
	"github.com/masmgr/commitdeck/internal/git"
	"github.com/masmgr/commitdeck/internal/logging"
	"github.com/masmgr/commitdeck/internal/output"
	"github.com/masmgr/commitdeck/internal/summary"
)

// CommandContext holds the validated state of one run.
type CommandContext struct {
	Config   *config.Config
	RepoPath string // absolute
	Filter   git.FilterConfig
	BaseRef  string
	Summary  summary.Config
	Deck     deck.Options
	Output   output.OutputOptions
}

// NewCommandContext creates a context from CLI flags.
// It loads configuration and .env, validates flags and verifies the repository.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	repoPath, err := git.OpenRepository(c.String("repo"))
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	if err := config.LoadEnv(repoPath); err != nil {
		logging.Log.Warnf("ignoring .env: %v", err)
	}

	format, err := output.ParseFormat(cfg.Deck.Format)
	if err != nil {
		return nil, err
	}
	mode, err := summary.ParseMode(cfg.Summary.Mode)
	if err != nil {
		return nil, err
	}

	filter := git.FilterConfig{
		Task:  c.String("task"),
		Grep:  c.String("grep"),
		Since: c.String("since"),
		Until: cfg.Selection.Until,
		Paths: parsePaths(c.String("paths")),
	}

	return &CommandContext{
		Config:   cfg,
		RepoPath: repoPath,
		Filter:   filter,
		BaseRef:  cfg.Selection.DefaultBaseRef,
		Summary: summary.Config{
			Mode:     mode,
			APIKey:   c.String("api-key"),
			Dir:      cfg.Summary.Dir,
			Provider: cfg.Summary.Provider,
			Model:    cfg.Summary.Model,
		},
		Deck: deck.Options{
			Title:         c.String("title"),
			RepoPath:      repoPath,
			IncludeDiff:   c.Bool("include-diff"),
			MaxPatchLines: cfg.Deck.MaxPatchLines,
			TopFiles:      cfg.Deck.TopFiles,
			Exclude:       cfg.Filters.Exclude,
			Now:           time.Now,
		},
		Output: output.OutputOptions{
			Format:     format,
			OutputPath: c.String("out"),
		},
	}, nil
}
