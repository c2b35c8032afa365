// Package summary produces the optional per-commit blurb shown on each slide.
package summary

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/masmgr/commitdeck/internal/git"
)

// Mode selects a summary strategy.
type Mode string

const (
	ModeNone     Mode = "none"
	ModeTemplate Mode = "template"
	ModeAI       Mode = "ai"
	ModeManual   Mode = "manual"
)

// Modes lists the accepted modes in help order.
var Modes = []Mode{ModeNone, ModeTemplate, ModeAI, ModeManual}

// DefaultDirName is the manual summary directory under the repository root.
const DefaultDirName = ".commit-summaries"

// Warning prefix used for every degraded summary.
const warningMarker = "⚠️"

// ParseMode validates a mode name. An empty name means ModeNone.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if m == "" {
		return ModeNone, nil
	}
	for _, known := range Modes {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid summary mode %q (expected none, template, ai or manual)", s)
}

// Config selects and parameterizes the summary strategy.
type Config struct {
	Mode     Mode
	APIKey   string
	Dir      string // manual summary directory; empty means <repo>/.commit-summaries
	Provider string // AI provider name
	Model    string // AI model id; empty means the provider default
}

// Input is the per-commit data a strategy may use.
type Input struct {
	Commit git.CommitRecord
	Body   string
	Stat   string
	Patch  string
}

// Summarizer turns one commit into a short text. Failures are reported
// inline as warning text, never as errors.
type Summarizer interface {
	Mode() Mode
	Summarize(ctx context.Context, in Input) string
}

// Needs reports which optional inputs a strategy reads.
func (m Mode) Needs() (body, patch bool) {
	switch m {
	case ModeTemplate:
		return true, false
	case ModeAI:
		return true, true
	default:
		return false, false
	}
}

// New creates the one strategy selected by cfg.
func New(cfg Config, repoRoot string) (Summarizer, error) {
	mode, err := ParseMode(string(cfg.Mode))
	if err != nil {
		return nil, err
	}

	switch mode {
	case ModeTemplate:
		return Template{}, nil
	case ModeAI:
		return NewAI(cfg.Provider, cfg.Model, cfg.APIKey), nil
	case ModeManual:
		dir := cfg.Dir
		if dir == "" {
			dir = filepath.Join(repoRoot, DefaultDirName)
		}
		return NewManual(dir), nil
	default:
		return None{}, nil
	}
}

func warning(format string, args ...any) string {
	return warningMarker + " " + fmt.Sprintf(format, args...)
}

func shortOf(c git.CommitRecord) string {
	if c.ShortSHA != "" {
		return c.ShortSHA
	}
	return git.ShortID(c.SHA)
}
