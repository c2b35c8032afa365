package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/masmgr/commitdeck/internal/deck"
	"github.com/masmgr/commitdeck/internal/git"
	"github.com/masmgr/commitdeck/internal/logging"
	"github.com/masmgr/commitdeck/internal/output"
	"github.com/masmgr/commitdeck/internal/selector"
	"github.com/masmgr/commitdeck/internal/summary"
)

// generateAction selects commits, builds the deck and writes it.
// Nothing is written when any git query fails.
func generateAction(c *cli.Context) error {
	cmdCtx, err := NewCommandContext(c)
	if err != nil {
		return err
	}
	ctx := c.Context

	q := git.NewCLIQuerier(cmdCtx.RepoPath)

	sel, err := selector.Select(ctx, q, cmdCtx.Filter, cmdCtx.BaseRef)
	if err != nil {
		return err
	}
	logging.Log.Debugf("selected %d commit(s) in %s", len(sel.Commits), sel.Filter.RangeSpec())

	summarizer, err := summary.New(cmdCtx.Summary, cmdCtx.RepoPath)
	if err != nil {
		return err
	}

	d, err := deck.NewBuilder(q, summarizer, cmdCtx.Deck).Build(ctx, sel)
	if err != nil {
		return err
	}

	writers := []output.DeckWriter{
		&output.QMDWriter{},
		&output.ConsoleStatusWriter{Out: c.App.ErrWriter},
	}
	for _, w := range writers {
		if err := w.Write(d, cmdCtx.Output); err != nil {
			return err
		}
	}
	return nil
}
