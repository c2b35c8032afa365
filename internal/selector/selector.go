// Package selector resolves the commit range of a report and lists its commits.
package selector

import (
	"context"

	"github.com/masmgr/commitdeck/internal/git"
	"github.com/masmgr/commitdeck/internal/logging"
)

// DefaultBaseRef is the branch the start boundary defaults to.
const DefaultBaseRef = "origin/main"

// Selection is the outcome of commit selection.
type Selection struct {
	// Filter is the filter actually used, with the effective start boundary.
	Filter git.FilterConfig
	// Commits in git log order (most recent first).
	Commits []git.CommitRecord
}

// Select lists the commits matching filter. When filter.Since is empty the
// start boundary defaults to the merge base of baseRef and filter.Until; if
// that cannot be resolved the range starts at the beginning of history.
// Log errors are returned unchanged.
func Select(ctx context.Context, q git.Querier, filter git.FilterConfig, baseRef string) (Selection, error) {
	if filter.Until == "" {
		filter.Until = "HEAD"
	}
	if baseRef == "" {
		baseRef = DefaultBaseRef
	}

	if filter.Since == "" {
		if sha, ok := q.MergeBase(ctx, baseRef, filter.Until); ok {
			logging.Log.Debugf("range starts at merge-base of %s: %s", baseRef, git.ShortID(sha))
			filter.Since = sha
		} else {
			logging.Log.Debugf("no merge-base with %s, using full history", baseRef)
		}
	}

	commits, err := q.Log(ctx, filter)
	if err != nil {
		return Selection{}, err
	}

	return Selection{Filter: filter, Commits: commits}, nil
}
