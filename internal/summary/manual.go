package summary

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/masmgr/commitdeck/internal/git"
)

// Manual reads hand-written summaries from a directory.
type Manual struct {
	Dir string
}

// NewManual creates a manual strategy reading from dir.
func NewManual(dir string) *Manual {
	return &Manual{Dir: dir}
}

func (m *Manual) Mode() Mode { return ModeManual }

// Summarize returns the trimmed content of the first candidate file found.
func (m *Manual) Summarize(_ context.Context, in Input) string {
	for _, name := range candidateNames(in.Commit) {
		data, err := os.ReadFile(filepath.Join(m.Dir, name))
		if err == nil {
			return strings.TrimSpace(string(data))
		}
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return warning("Manual summary unreadable for %s: %v", shortOf(in.Commit), err)
	}
	return warning("No manual summary found for %s", shortOf(in.Commit))
}

// candidateNames lists lookup names: full id then short id, as .md, bare and .txt.
func candidateNames(c git.CommitRecord) []string {
	ids := []string{c.SHA}
	if short := git.ShortID(c.SHA); short != "" && short != c.SHA {
		ids = append(ids, short)
	}

	var names []string
	for _, ext := range []string{".md", "", ".txt"} {
		for _, id := range ids {
			if id != "" {
				names = append(names, id+ext)
			}
		}
	}
	return names
}
