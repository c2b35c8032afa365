package aggregation

import (
	"sort"
	"strings"

	"github.com/masmgr/commitdeck/internal/git"
)

// UniqueAuthors returns the distinct author names of commits, sorted.
// Blank names are ignored.
func UniqueAuthors(commits []git.CommitRecord) []string {
	seen := make(map[string]struct{})
	for _, c := range commits {
		name := strings.TrimSpace(c.Author)
		if name == "" {
			continue
		}
		seen[name] = struct{}{}
	}

	authors := make([]string, 0, len(seen))
	for name := range seen {
		authors = append(authors, name)
	}
	sort.Strings(authors)
	return authors
}
