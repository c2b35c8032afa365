package git

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// MockCommit is one commit held by MockQuerier.
type MockCommit struct {
	Record CommitRecord
	Body   string
	Files  []string
	Stat   string
	Patch  string
}

// message returns the full commit message searched by the grep emulation.
func (c MockCommit) message() string {
	if c.Body == "" {
		return c.Record.Subject
	}
	return c.Record.Subject + "\n\n" + c.Body
}

// MockQuerier is a test double for Querier.
// It allows tests to provide predefined commit data without needing a real Git repository.
// Commits are ordered most recent first, as git log prints them.
type MockQuerier struct {
	Commits []MockCommit
	// MergeBases maps a base ref to the commit id MergeBase resolves it to.
	MergeBases map[string]string
	// LogErr, when set, is returned by Log.
	LogErr error

	mu    sync.Mutex
	calls []string
}

// NewMockQuerier creates a new MockQuerier with the given commits.
func NewMockQuerier(commits ...MockCommit) *MockQuerier {
	return &MockQuerier{Commits: commits}
}

// Calls returns the recorded queries, e.g. "log", "patch <sha>".
func (m *MockQuerier) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// CallCount returns how many recorded queries start with prefix.
func (m *MockQuerier) CallCount(prefix string) int {
	n := 0
	for _, c := range m.Calls() {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (m *MockQuerier) record(call string) {
	m.mu.Lock()
	m.calls = append(m.calls, call)
	m.mu.Unlock()
}

// MergeBase returns the configured merge base for ref.
func (m *MockQuerier) MergeBase(_ context.Context, ref, head string) (string, bool) {
	m.record("merge-base " + ref + " " + head)
	sha, ok := m.MergeBases[ref]
	return sha, ok && sha != ""
}

// Log emulates git log over the in-memory history.
func (m *MockQuerier) Log(_ context.Context, filter FilterConfig) ([]CommitRecord, error) {
	m.record("log " + filter.RangeSpec())
	if m.LogErr != nil {
		return nil, m.LogErr
	}

	matcher, err := NewMessageMatcher(filter.Task, filter.Grep)
	if err != nil {
		return nil, &CommandError{Args: []string{"log"}, Stderr: err.Error(), Err: err}
	}

	start := 0
	if filter.Until != "" && filter.Until != "HEAD" {
		idx := m.indexOf(filter.Until)
		if idx < 0 {
			return nil, unknownRevision(filter.Until)
		}
		start = idx
	}
	end := len(m.Commits)
	if filter.Since != "" {
		idx := m.indexOf(filter.Since)
		if idx < 0 {
			return nil, unknownRevision(filter.Since)
		}
		end = idx
	}

	var records []CommitRecord
	for i := start; i < end; i++ {
		c := m.Commits[i]
		if !matcher.Match(c.message()) {
			continue
		}
		if len(filter.Paths) > 0 && len(filterPaths(c.Files, filter.Paths)) == 0 {
			continue
		}
		records = append(records, c.Record)
	}
	return records, nil
}

// Files returns the commit's files restricted to paths.
func (m *MockQuerier) Files(_ context.Context, sha string, paths []string) ([]string, error) {
	m.record("files " + sha)
	c, err := m.find(sha)
	if err != nil {
		return nil, err
	}
	return filterPaths(c.Files, paths), nil
}

// Stat returns the stored diff statistic.
func (m *MockQuerier) Stat(_ context.Context, sha string, _ []string) (string, error) {
	m.record("stat " + sha)
	c, err := m.find(sha)
	if err != nil {
		return "", err
	}
	return c.Stat, nil
}

// Patch returns the stored patch.
func (m *MockQuerier) Patch(_ context.Context, sha string, _ []string) (string, error) {
	m.record("patch " + sha)
	c, err := m.find(sha)
	if err != nil {
		return "", err
	}
	return c.Patch, nil
}

// Body returns the stored message body.
func (m *MockQuerier) Body(_ context.Context, sha string) (string, error) {
	m.record("body " + sha)
	c, err := m.find(sha)
	if err != nil {
		return "", err
	}
	return c.Body, nil
}

func (m *MockQuerier) indexOf(rev string) int {
	for i, c := range m.Commits {
		if c.Record.SHA == rev || (c.Record.ShortSHA != "" && c.Record.ShortSHA == rev) {
			return i
		}
	}
	return -1
}

func (m *MockQuerier) find(sha string) (MockCommit, error) {
	idx := m.indexOf(sha)
	if idx < 0 {
		return MockCommit{}, unknownRevision(sha)
	}
	return m.Commits[idx], nil
}

func unknownRevision(rev string) error {
	return &CommandError{
		Args:   []string{"rev-parse", rev},
		Stderr: fmt.Sprintf("fatal: bad revision '%s'", rev),
		Err:    errors.New("exit status 128"),
	}
}

// filterPaths keeps the files that equal one of paths or live beneath it.
func filterPaths(files, paths []string) []string {
	if len(paths) == 0 {
		return files
	}
	var kept []string
	for _, f := range files {
		for _, p := range paths {
			p = strings.TrimSuffix(p, "/")
			if p == "" || p == "." || f == p || strings.HasPrefix(f, p+"/") {
				kept = append(kept, f)
				break
			}
		}
	}
	return kept
}
