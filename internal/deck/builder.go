// Package deck gathers per-commit data for the slide document.
package deck

import (
	"context"
	"fmt"
	"time"

	"github.com/masmgr/commitdeck/internal/aggregation"
	"github.com/masmgr/commitdeck/internal/git"
	"github.com/masmgr/commitdeck/internal/logging"
	"github.com/masmgr/commitdeck/internal/output"
	"github.com/masmgr/commitdeck/internal/selector"
	"github.com/masmgr/commitdeck/internal/summary"
)

// DefaultTopFiles is the number of paths listed in the overview.
const DefaultTopFiles = 10

// Options controls what the builder collects.
type Options struct {
	Title         string
	RepoPath      string // absolute repository path shown in the header
	IncludeDiff   bool
	MaxPatchLines int
	TopFiles      int
	Exclude       []string // globs dropped from the top-file ranking
	Now           func() time.Time
}

// Builder turns a commit selection into an output.Deck.
type Builder struct {
	q          git.Querier
	summarizer summary.Summarizer
	opts       Options
}

// NewBuilder creates a builder. A nil summarizer means no summaries.
func NewBuilder(q git.Querier, s summary.Summarizer, opts Options) *Builder {
	if s == nil {
		s = summary.None{}
	}
	if opts.TopFiles <= 0 {
		opts.TopFiles = DefaultTopFiles
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Builder{q: q, summarizer: s, opts: opts}
}

// Build queries every selected commit in order. Any VCS error is returned;
// summary problems only show up as text inside the deck.
func (b *Builder) Build(ctx context.Context, sel selector.Selection) (*output.Deck, error) {
	filter := sel.Filter
	needBody, needPatchForSummary := b.summarizer.Mode().Needs()
	needPatch := b.opts.IncludeDiff || needPatchForSummary

	counter := aggregation.NewFileCounter(b.opts.Exclude)
	slides := make([]output.CommitSlide, 0, len(sel.Commits))

	for i, c := range sel.Commits {
		logging.Log.Debugf("collecting %d/%d %s", i+1, len(sel.Commits), c.ShortSHA)

		files, err := b.q.Files(ctx, c.SHA, filter.Paths)
		if err != nil {
			return nil, fmt.Errorf("list files of %s: %w", c.ShortSHA, err)
		}
		counter.Add(files)

		stat, err := b.q.Stat(ctx, c.SHA, filter.Paths)
		if err != nil {
			return nil, fmt.Errorf("diff statistics of %s: %w", c.ShortSHA, err)
		}

		in := summary.Input{Commit: c, Stat: stat}
		if needBody {
			if in.Body, err = b.q.Body(ctx, c.SHA); err != nil {
				return nil, fmt.Errorf("message body of %s: %w", c.ShortSHA, err)
			}
		}
		if needPatch {
			if in.Patch, err = b.q.Patch(ctx, c.SHA, filter.Paths); err != nil {
				return nil, fmt.Errorf("patch of %s: %w", c.ShortSHA, err)
			}
		}

		slide := output.CommitSlide{
			Commit:  c,
			Summary: b.summarizer.Summarize(ctx, in),
			Stat:    stat,
		}
		if b.opts.IncludeDiff {
			slide.Patch = git.TruncatePatch(in.Patch, b.opts.MaxPatchLines)
		}
		slides = append(slides, slide)
	}

	return &output.Deck{
		Title:       output.DeckTitle(b.opts.Title, filter.Task),
		Task:        filter.Task,
		RepoPath:    b.opts.RepoPath,
		Range:       filter.RangeSpec(),
		GeneratedAt: b.opts.Now(),
		Authors:     aggregation.UniqueAuthors(sel.Commits),
		TopFiles:    counter.Top(b.opts.TopFiles),
		Slides:      slides,
		IncludeDiff: b.opts.IncludeDiff,
	}, nil
}
