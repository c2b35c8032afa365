package git

import "context"

// Querier defines the read-only queries the report needs from a repository.
// This abstraction allows the selector and deck builder to run against a fake.
type Querier interface {
	// MergeBase returns the common ancestor of ref and head. ok is false when
	// the lookup fails for any reason (e.g. the remote branch does not exist).
	MergeBase(ctx context.Context, ref, head string) (sha string, ok bool)
	// Log lists non-merge commits matching the filter, most recent first.
	Log(ctx context.Context, filter FilterConfig) ([]CommitRecord, error)
	// Files lists the paths touched by a commit.
	Files(ctx context.Context, sha string, paths []string) ([]string, error)
	// Stat returns the diff statistic of a commit.
	Stat(ctx context.Context, sha string, paths []string) (string, error)
	// Patch returns the full patch text of a commit.
	Patch(ctx context.Context, sha string, paths []string) (string, error)
	// Body returns the commit message without its subject line.
	Body(ctx context.Context, sha string) (string, error)
}

// Compile-time interface conformance checks.
var (
	_ Querier = (*CLIQuerier)(nil)
	_ Querier = (*MockQuerier)(nil)
)
