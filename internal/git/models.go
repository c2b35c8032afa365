package git

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotRepository is returned when the target path is not a git work tree.
var ErrNotRepository = errors.New("not a git repository")

// CommitRecord represents the identifying metadata of one commit as listed by git log.
type CommitRecord struct {
	SHA      string
	ShortSHA string
	Date     string // ISO-like date as printed by --date=iso
	Author   string
	Subject  string
}

// FilterConfig selects the commits that go into a report.
type FilterConfig struct {
	Task  string   // optional task id, matched case-insensitively against messages
	Grep  string   // optional extra free-text filter, AND-combined with Task
	Since string   // exclusive start boundary; empty means from the beginning of history
	Until string   // inclusive end boundary
	Paths []string // optional path prefixes
}

// RangeSpec returns the revision range passed to git log.
func (f FilterConfig) RangeSpec() string {
	until := f.Until
	if until == "" {
		until = "HEAD"
	}
	if f.Since == "" {
		return until
	}
	return f.Since + ".." + until
}

// CommandError reports a failed git invocation.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command failed: git %s: %v", strings.Join(e.Args, " "), e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ShortID returns the 7-character abbreviation of a commit id.
func ShortID(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}
