package fileutil

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func walkNames(t *testing.T, opts WalkOptions) []string {
	t.Helper()
	var names []string
	res, err := Walk(context.Background(), opts, func(path string) {
		rel, err := filepath.Rel(opts.Root, path)
		require.NoError(t, err)
		names = append(names, filepath.ToSlash(rel))
	})
	require.NoError(t, err)
	assert.Equal(t, len(names), res.Files)
	sort.Strings(names)
	return names
}

func TestWalk_CustomIgnoreFile(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"main.go":            "package main",
		"vendor/lib.go":      "package lib",
		"docs/notes.md":      "notes",
		"docs/skip.md":       "skip",
		".remindignore":      "vendor/\n",
		"docs/.remindignore": "skip.md\n",
	})

	names := walkNames(t, WalkOptions{
		Root:           root,
		IgnoreFileName: ".remindignore",
		IncludeHidden:  false,
	})

	assert.Contains(t, names, "main.go")
	assert.Contains(t, names, "docs/notes.md")
	assert.NotContains(t, names, "vendor/lib.go")
	assert.NotContains(t, names, "docs/skip.md")
}

func TestWalk_GitignoreHonored(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		".gitignore":   "build/\n*.log\n",
		"app.go":       "package app",
		"build/out.go": "package out",
		"debug.log":    "log",
	})

	names := walkNames(t, WalkOptions{Root: root})

	assert.Contains(t, names, "app.go")
	assert.NotContains(t, names, "build/out.go")
	assert.NotContains(t, names, "debug.log")
}

func TestWalk_HiddenFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"visible.txt":        "a",
		".config/hidden.txt": "b",
		".git/HEAD":          "ref: refs/heads/main",
	})

	withHidden := walkNames(t, WalkOptions{Root: root, IncludeHidden: true, ExcludeDirs: DefaultExcludeDirs})
	assert.Contains(t, withHidden, "visible.txt")
	assert.Contains(t, withHidden, ".config/hidden.txt")
	assert.NotContains(t, withHidden, ".git/HEAD")

	withoutHidden := walkNames(t, WalkOptions{Root: root, IncludeHidden: false})
	assert.Contains(t, withoutHidden, "visible.txt")
	assert.NotContains(t, withoutHidden, ".config/hidden.txt")
}

func TestWalk_InvalidRoot(t *testing.T) {
	_, err := Walk(context.Background(), WalkOptions{Root: filepath.Join(t.TempDir(), "missing")}, func(string) {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to access directory")

	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	_, err = Walk(context.Background(), WalkOptions{Root: file}, func(string) {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path is not a directory")
}

func TestWalk_CancelledContext(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.txt": "a", "b.txt": "b"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	visited := 0
	_, err := Walk(ctx, WalkOptions{Root: root}, func(string) { visited++ })
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, visited)
}
