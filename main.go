package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/cobra"
)

const cacheFileName = ".git_repo_cache.json"

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	defaultWorkers := max(1, runtime.NumCPU()/2)

	var cfg Config

	rootCmd := &cobra.Command{
		Use:          "mygitpuller",
		Short:        "Update local git repositories in parallel, using a cache for speed",
		Long:         "Discover git repositories under a root directory, cache their locations, and run git pull plus a recursive submodule sync on each with bounded parallelism.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateWorkers(cfg.Workers, 1, 64); err != nil {
				return err
			}
			if err := checkWorkerCapacity(cfg.Workers, runtime.NumCPU()); err != nil {
				return err
			}
			if cfg.Root == "" {
				exe, err := os.Executable()
				if err != nil {
					return fmt.Errorf("failed to locate executable: %w", err)
				}
				cfg.Root = filepath.Dir(exe)
			}
			// Cached entries are identified by absolute path; a relative
			// root would tie their validity to the caller's cwd.
			root, err := filepath.Abs(cfg.Root)
			if err != nil {
				return fmt.Errorf("failed to resolve root %s: %w", cfg.Root, err)
			}
			cfg.Root = root
			cfg.CacheFile = filepath.Join(cfg.Root, cacheFileName)
			return orchestrate(cfg, stdout)
		},
	}

	rootCmd.Flags().IntVarP(&cfg.Workers, "max-workers", "w", defaultWorkers, "maximum number of parallel workers (1-64)")
	rootCmd.Flags().BoolVarP(&cfg.Refresh, "refresh", "r", false, "force a full rescan of directories to refresh the repository cache")
	rootCmd.Flags().StringVar(&cfg.Root, "root", "", "directory to scan for repositories (default: the executable's directory)")
	rootCmd.Flags().DurationVar(&cfg.Timeout, "timeout", 60*time.Second, "timeout applied to each git command")

	rootCmd.SetArgs(args[1:])
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

// validateWorkers checks that n lies within [lo, hi]. Explicit bounds keep
// the check reusable and testable.
func validateWorkers(n, lo, hi int) error {
	if n < lo || n > hi {
		return fmt.Errorf("--max-workers must be between %d and %d, got %d", lo, hi, n)
	}
	return nil
}

// checkWorkerCapacity rejects worker counts above the machine's core count.
// Oversubscribing the CPU only slows the updates down, so this is a hard
// usage error rather than a warning.
func checkWorkerCapacity(n, cpus int) error {
	if n > cpus {
		return fmt.Errorf("--max-workers is set to %d, which exceeds the number of available CPU cores (%d)", n, cpus)
	}
	return nil
}
