package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/masmgr/commitdeck/internal/aggregation"
	"github.com/masmgr/commitdeck/internal/git"
)

// Compile-time interface conformance checks.
var (
	_ DeckWriter = (*QMDWriter)(nil)
	_ DeckWriter = (*ConsoleStatusWriter)(nil)
)

// OutputFormat is the presentation format the deck is meant to be rendered to.
// It only affects the render hint printed to the console.
type OutputFormat string

const (
	FormatHTML OutputFormat = "html"
	FormatPDF  OutputFormat = "pdf"
)

// ParseFormat validates a format name. An empty name means html.
func ParseFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatHTML:
		return FormatHTML, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("invalid format %q (expected html or pdf)", s)
	}
}

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	OutputPath string
}

// CommitSlide holds everything shown for one commit.
type CommitSlide struct {
	Commit  git.CommitRecord
	Summary string // empty means no summary block
	Stat    string
	Patch   string // already truncated; only rendered when the appendix is on
}

// Deck is the data the document is rendered from.
type Deck struct {
	Title       string
	Task        string
	RepoPath    string
	Range       string
	GeneratedAt time.Time
	Authors     []string
	TopFiles    []aggregation.FileCount
	Slides      []CommitSlide
	IncludeDiff bool
}

// DeckWriter writes a deck somewhere.
type DeckWriter interface {
	Write(deck *Deck, options OutputOptions) error
}

// DeckTitle picks the document title: explicit title, then task, then a generic one.
func DeckTitle(title, task string) string {
	if title != "" {
		return title
	}
	if task != "" {
		return "Task Report: " + task
	}
	return "Commit Report"
}
