package git

import (
	"errors"
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
)

// OpenRepository resolves path to an absolute directory and verifies that it
// lies inside a git work tree. The returned path is the work-tree root, which
// is what the CLI querier runs git in. A bare repository returns its own path.
func OpenRepository(path string) (string, error) {
	if path == "" {
		path = "."
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve repository path %q: %w", path, err)
	}

	repo, err := gogit.PlainOpenWithOptions(abs, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return "", fmt.Errorf("%s: %w", abs, ErrNotRepository)
		}
		return "", fmt.Errorf("%s: %w: %v", abs, ErrNotRepository, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, gogit.ErrIsBareRepository) {
			return abs, nil
		}
		return "", fmt.Errorf("%s: open work tree: %w", abs, err)
	}
	return wt.Filesystem.Root(), nil
}
