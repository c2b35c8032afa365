package git

import "strings"

// Truncation marker lines appended to a shortened patch.
const (
	truncationEllipsis = "..."
	truncationNote     = "(truncated)"
)

// TruncatePatch keeps the first max lines of patch and appends the truncation
// markers when the patch is longer. A single final newline terminates the last
// line and is not counted; any further blank lines are. max <= 0 disables
// truncation.
func TruncatePatch(patch string, max int) string {
	if max <= 0 {
		return patch
	}
	lines := strings.Split(strings.TrimSuffix(patch, "\n"), "\n")
	if len(lines) <= max {
		return patch
	}
	kept := append(lines[:max:max], truncationEllipsis, truncationNote)
	return strings.Join(kept, "\n")
}
