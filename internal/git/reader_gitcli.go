package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/masmgr/commitdeck/internal/logging"
)

// logFormat prints the five tab-separated fields of a CommitRecord.
const logFormat = "%H%x09%h%x09%ad%x09%an%x09%s"

// CLIQuerier answers repository queries by shelling out to the git binary.
type CLIQuerier struct {
	RepoPath string
	// Binary overrides the git executable; empty means "git" from PATH.
	Binary string
}

// NewCLIQuerier creates a querier bound to a repository path.
func NewCLIQuerier(repoPath string) *CLIQuerier {
	return &CLIQuerier{RepoPath: repoPath}
}

// MergeBase resolves the common ancestor of ref and head.
// Any failure is reported as ok=false rather than an error.
func (q *CLIQuerier) MergeBase(ctx context.Context, ref, head string) (string, bool) {
	if head == "" {
		head = "HEAD"
	}
	out, err := q.run(ctx, "merge-base", ref, head)
	if err != nil {
		logging.Log.Debugf("merge-base %s %s unavailable: %v", ref, head, err)
		return "", false
	}
	sha := strings.TrimSpace(out)
	return sha, sha != ""
}

// Log lists non-merge commits in the filter's range, most recent first.
func (q *CLIQuerier) Log(ctx context.Context, filter FilterConfig) ([]CommitRecord, error) {
	out, err := q.run(ctx, logArgs(filter)...)
	if err != nil {
		return nil, err
	}
	return parseLog(out), nil
}

// Files lists the paths touched by a commit, without rename detection.
func (q *CLIQuerier) Files(ctx context.Context, sha string, paths []string) ([]string, error) {
	args := withPaths([]string{"show", "--name-only", "--pretty=format:", "--no-renames", sha}, paths)
	out, err := q.run(ctx, args...)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) != "" {
			files = append(files, strings.TrimRight(line, "\r"))
		}
	}
	return files, nil
}

// Stat returns the --stat summary of a commit, without the commit header.
func (q *CLIQuerier) Stat(ctx context.Context, sha string, paths []string) (string, error) {
	out, err := q.run(ctx, withPaths([]string{"show", "--stat", "--format=", sha}, paths)...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Patch returns the unified diff of a commit.
func (q *CLIQuerier) Patch(ctx context.Context, sha string, paths []string) (string, error) {
	return q.run(ctx, withPaths([]string{"show", "--patch", "--unified=3", sha}, paths)...)
}

// Body returns the commit message body (everything after the subject).
func (q *CLIQuerier) Body(ctx context.Context, sha string) (string, error) {
	out, err := q.run(ctx, "show", "-s", "--format=%b", sha)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (q *CLIQuerier) run(ctx context.Context, args ...string) (string, error) {
	bin := q.Binary
	if bin == "" {
		bin = "git"
	}

	full := append([]string{"-C", q.RepoPath}, args...)
	logging.Log.Debugf("git %s", strings.Join(full, " "))

	cmd := exec.CommandContext(ctx, bin, full...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", &CommandError{Args: full, Stderr: stderr.String(), Err: err}
	}
	return stdout.String(), nil
}

// logArgs builds the git log invocation for a filter.
func logArgs(filter FilterConfig) []string {
	args := []string{
		"log",
		"--no-color",
		"--date=iso",
		"--pretty=format:" + logFormat,
		"--no-merges",
		filter.RangeSpec(),
	}

	var greps []string
	if filter.Task != "" {
		greps = append(greps, filter.Task)
	}
	if filter.Grep != "" {
		greps = append(greps, filter.Grep)
	}
	if len(greps) > 0 {
		args = append(args, "--regexp-ignore-case")
		for _, g := range greps {
			args = append(args, "--grep", g)
		}
		// git ORs multiple --grep patterns unless told otherwise.
		if len(greps) > 1 {
			args = append(args, "--all-match")
		}
	}

	return withPaths(args, filter.Paths)
}

func withPaths(args []string, paths []string) []string {
	var kept []string
	for _, p := range paths {
		if p != "" {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return args
	}
	args = append(args, "--")
	return append(args, kept...)
}

// parseLog parses tab-separated log lines; lines with fewer than five fields are skipped.
func parseLog(out string) []CommitRecord {
	var commits []CommitRecord
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		fields := strings.SplitN(line, "\t", 5)
		if len(fields) < 5 {
			continue
		}
		commits = append(commits, CommitRecord{
			SHA:      fields[0],
			ShortSHA: fields[1],
			Date:     fields[2],
			Author:   fields[3],
			Subject:  fields[4],
		})
	}
	return commits
}
