package aggregation

import (
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FileCount is the number of selected commits that touched a path.
type FileCount struct {
	Path  string
	Count int
}

// FileCounter aggregates touched paths across commits.
type FileCounter struct {
	counts  map[string]int
	order   []string // first-encountered order, used as the ranking tie-break
	exclude []string
}

// NewFileCounter creates a counter. Paths matching any exclude glob
// (doublestar syntax) are not counted.
func NewFileCounter(exclude []string) *FileCounter {
	return &FileCounter{
		counts:  make(map[string]int),
		exclude: exclude,
	}
}

// Add records the files touched by one commit.
func (c *FileCounter) Add(files []string) {
	for _, path := range files {
		if path == "" || c.isExcluded(path) {
			continue
		}
		if _, seen := c.counts[path]; !seen {
			c.order = append(c.order, path)
		}
		c.counts[path]++
	}
}

// Len returns the number of distinct counted paths.
func (c *FileCounter) Len() int {
	return len(c.order)
}

// Top returns up to n paths ordered by count descending.
// Equal counts keep first-encountered order. n <= 0 returns all paths.
func (c *FileCounter) Top(n int) []FileCount {
	ranked := make([]FileCount, 0, len(c.order))
	for _, path := range c.order {
		ranked = append(ranked, FileCount{Path: path, Count: c.counts[path]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// isExcluded checks a path against the exclude globs.
func (c *FileCounter) isExcluded(path string) bool {
	// Normalize path separators
	path = strings.ReplaceAll(path, "\\", "/")

	for _, pattern := range c.exclude {
		matched, _ := doublestar.Match(pattern, path)
		if matched {
			return true
		}
	}
	return false
}
