package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readStored(t *testing.T, c cache) []string {
	t.Helper()
	data, err := os.ReadFile(c.path)
	require.NoError(t, err)
	var stored []string
	require.NoError(t, json.Unmarshal(data, &stored))
	return stored
}

func TestCacheRebuildWritesScannedList(t *testing.T) {
	root := t.TempDir()
	mkRepo(t, filepath.Join(root, "one"))
	mkRepo(t, filepath.Join(root, "two"))
	c := cache{path: filepath.Join(root, cacheFileName)}

	var out bytes.Buffer
	repos, err := c.rebuild(root, &out)
	require.NoError(t, err)

	want := []string{filepath.Join(root, "one"), filepath.Join(root, "two")}
	assert.Equal(t, want, repos)
	assert.Equal(t, want, readStored(t, c))
	assert.Contains(t, out.String(), "Found 2 repositories")
}

func TestCacheRebuildEmptyScanWritesEmptyArray(t *testing.T) {
	root := t.TempDir()
	c := cache{path: filepath.Join(root, cacheFileName)}

	repos, err := c.rebuild(root, io.Discard)
	require.NoError(t, err)
	assert.Empty(t, repos)
	assert.Empty(t, readStored(t, c))
}

func TestCacheRebuildWriteFailureNonFatal(t *testing.T) {
	root := t.TempDir()
	mkRepo(t, filepath.Join(root, "one"))
	// A cache path whose parent does not exist cannot be written.
	c := cache{path: filepath.Join(root, "missing", cacheFileName)}

	var out bytes.Buffer
	repos, err := c.rebuild(root, &out)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "one")}, repos)
	assert.Contains(t, out.String(), "could not write to cache file")
}

func TestCacheLoadPrunesStaleEntries(t *testing.T) {
	root := t.TempDir()
	kept := filepath.Join(root, "kept")
	mkRepo(t, kept)
	gone := filepath.Join(root, "gone")
	notARepo := filepath.Join(root, "plain")
	require.NoError(t, os.MkdirAll(notARepo, 0o755))

	c := cache{path: filepath.Join(root, cacheFileName)}
	require.NoError(t, c.write([]string{kept, gone, notARepo}))

	var out bytes.Buffer
	repos := c.load(&out)
	assert.Equal(t, []string{kept}, repos)
	assert.Equal(t, []string{kept}, readStored(t, c))
	assert.Contains(t, out.String(), "no longer a valid git repo, removing: "+gone)
	assert.Contains(t, out.String(), "no longer a valid git repo, removing: "+notARepo)
	assert.Contains(t, out.String(), "Cache file has been cleaned.")
}

func TestCacheLoadIdempotent(t *testing.T) {
	root := t.TempDir()
	kept := filepath.Join(root, "kept")
	mkRepo(t, kept)
	c := cache{path: filepath.Join(root, cacheFileName)}
	require.NoError(t, c.write([]string{kept, filepath.Join(root, "gone")}))

	first := c.load(io.Discard)

	var out bytes.Buffer
	second := c.load(&out)
	assert.Equal(t, first, second)
	assert.NotContains(t, out.String(), "Cleaning invalid paths")
}

func TestCacheLoadMissingFile(t *testing.T) {
	c := cache{path: filepath.Join(t.TempDir(), cacheFileName)}

	var out bytes.Buffer
	repos := c.load(&out)
	assert.Empty(t, repos)
	assert.Contains(t, out.String(), "Run with --refresh to rebuild it.")
}

func TestCacheLoadMalformedFile(t *testing.T) {
	c := cache{path: filepath.Join(t.TempDir(), cacheFileName)}
	require.NoError(t, os.WriteFile(c.path, []byte("{not json"), 0o644))

	var out bytes.Buffer
	repos := c.load(&out)
	assert.Empty(t, repos)
	assert.Contains(t, out.String(), "Run with --refresh to rebuild it.")
}

func TestCacheExists(t *testing.T) {
	dir := t.TempDir()
	c := cache{path: filepath.Join(dir, cacheFileName)}
	assert.False(t, c.exists())

	require.NoError(t, c.write(nil))
	assert.True(t, c.exists())
}
