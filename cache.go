package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// cache persists the discovered repository list as an indented JSON array of
// absolute paths.
type cache struct {
	path string
}

// rebuild scans root for repositories and writes the result to the cache
// file. A write failure is reported but does not fail the rebuild; the
// freshly scanned list is returned either way.
func (c cache) rebuild(root string, out io.Writer) ([]string, error) {
	fmt.Fprintln(out, "Scanning all directories to find Git repositories...")
	repos, err := findRepos(root, out)
	if err != nil {
		return nil, err
	}
	if err := c.write(repos); err != nil {
		fmt.Fprintf(out, "Error: could not write to cache file: %v\n", err)
		return repos, nil
	}
	fmt.Fprintf(out, "Found %d repositories. Cache file created/updated at: %s\n", len(repos), filepath.Base(c.path))
	return repos, nil
}

// load reads the cached list and drops entries that are no longer valid
// repositories, rewriting the file when anything was dropped. An unreadable
// or malformed cache yields an empty list; the user has to refresh, there is
// no automatic fallback to rescanning.
func (c cache) load(out io.Writer) []string {
	fmt.Fprintf(out, "Loading repository list from cache: %s\n", filepath.Base(c.path))

	data, err := os.ReadFile(c.path)
	if err != nil {
		fmt.Fprintf(out, "Error: could not read cache file (%v). Run with --refresh to rebuild it.\n", err)
		return nil
	}
	var cached []string
	if err := json.Unmarshal(data, &cached); err != nil {
		fmt.Fprintf(out, "Error: could not read cache file (%v). Run with --refresh to rebuild it.\n", err)
		return nil
	}

	valid := make([]string, 0, len(cached))
	for _, p := range cached {
		if isRepo(p) {
			valid = append(valid, p)
		} else {
			fmt.Fprintf(out, "Warning: cached path is no longer a valid git repo, removing: %s\n", p)
		}
	}

	if len(valid) != len(cached) {
		fmt.Fprintln(out, "Cleaning invalid paths from cache file...")
		if err := c.write(valid); err != nil {
			fmt.Fprintf(out, "Error: could not update cache file: %v\n", err)
		} else {
			fmt.Fprintln(out, "Cache file has been cleaned.")
		}
	}

	fmt.Fprintf(out, "Loaded %d valid repositories from cache.\n", len(valid))
	return valid
}

func (c cache) write(repos []string) error {
	data, err := json.MarshalIndent(repos, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, append(data, '\n'), 0o644)
}

func (c cache) exists() bool {
	info, err := os.Stat(c.path)
	return err == nil && !info.IsDir()
}
