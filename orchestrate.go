package main

import (
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"
)

// orchestrate resolves the repository list and updates every repository with
// bounded parallelism, reporting outcomes in completion order. Individual
// repository failures never abort the run.
func orchestrate(cfg Config, out io.Writer) error {
	c := cache{path: cfg.CacheFile}

	var repos []string
	if cfg.Refresh || !c.exists() {
		if !c.exists() {
			fmt.Fprintln(out, "Cache file not found. Performing initial scan...")
		} else {
			fmt.Fprintln(out, "Forcing cache refresh...")
		}
		var err error
		repos, err = c.rebuild(cfg.Root, out)
		if err != nil {
			return err
		}
	} else {
		repos = c.load(out)
	}

	total := len(repos)
	if total == 0 {
		fmt.Fprintln(out, "No repositories to update.")
		return nil
	}

	fmt.Fprintf(out, "\nStarting updates for %d repositories with up to %d parallel workers...\n", total, cfg.Workers)

	u := updater{runner: execRunner{}, timeout: cfg.Timeout}
	results := make(chan UpdateResult)

	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	go func() {
		for _, repo := range repos {
			repo := repo
			g.Go(func() error {
				results <- u.update(repo)
				return nil
			})
		}
		g.Wait()
		close(results)
	}()

	r := &reporter{out: out, root: cfg.Root, total: total}
	r.separator()
	for res := range results {
		r.report(res)
	}

	fmt.Fprintln(out, "All tasks completed.")
	return nil
}
