package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// findRepos returns every directory beneath the immediate children of root
// that directly contains a .git directory. The root itself is never a
// candidate. Matched subtrees are not pruned, so repositories nested inside
// another repository's working tree are found too. Unreadable directories
// are skipped with a warning on warn.
func findRepos(root string, warn io.Writer) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", root, err)
	}

	found := make(map[string]bool)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(root, entry.Name())
		filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				fmt.Fprintf(warn, "Warning: skipping %s: %v\n", path, err)
				return nil
			}
			if !d.IsDir() {
				return nil
			}
			if d.Name() == ".git" {
				if parent := filepath.Dir(path); parent != root {
					found[parent] = true
				}
				// The metadata directory is not part of the working tree.
				return filepath.SkipDir
			}
			return nil
		})
	}

	repos := make([]string, 0, len(found))
	for p := range found {
		repos = append(repos, p)
	}
	sort.Strings(repos)
	return repos, nil
}

// isRepo reports whether dir directly contains a .git directory.
func isRepo(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil && info.IsDir()
}
