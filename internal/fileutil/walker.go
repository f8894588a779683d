package fileutil

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/boyter/gocodewalker"
)

// DefaultExcludeDirs are version control directories never worth searching
var DefaultExcludeDirs = []string{".git", ".hg", ".svn"}

// walkQueueSize bounds how far the walker may run ahead of the consumer
const walkQueueSize = 256

// WalkOptions configures the ignore-aware tree walk
type WalkOptions struct {
	// Root is the directory to search
	Root string
	// IgnoreFileName is an extra gitignore-syntax file name honored in every directory (e.g. ".remindignore")
	IgnoreFileName string
	// IncludeHidden walks dot files and dot directories
	IncludeHidden bool
	// ExcludeDirs lists directory names that are never entered
	ExcludeDirs []string
}

// WalkResult collects the non-fatal errors reported while walking
type WalkResult struct {
	// Files is the number of files handed to the visitor
	Files int
	// Errors contains entries the walker could not read; the walk continued past them
	Errors []error
}

// Walk visits every file under opts.Root that is not excluded by .gitignore, .ignore
// or opts.IgnoreFileName rules. visit is called sequentially in walker order.
//
// Unreadable entries are recorded in WalkResult.Errors and skipped. Cancelling ctx
// stops the walk and returns ctx.Err().
func Walk(ctx context.Context, opts WalkOptions, visit func(path string)) (*WalkResult, error) {
	info, err := os.Stat(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", opts.Root)
	}

	result := &WalkResult{Errors: make([]error, 0)}
	var errMu sync.Mutex

	queue := make(chan *gocodewalker.File, walkQueueSize)
	walker := gocodewalker.NewFileWalker(opts.Root, queue)
	walker.IncludeHidden = opts.IncludeHidden
	walker.ExcludeDirectory = opts.ExcludeDirs
	if opts.IgnoreFileName != "" {
		walker.CustomIgnore = []string{opts.IgnoreFileName}
	}
	walker.SetErrorHandler(func(e error) bool {
		errMu.Lock()
		result.Errors = append(result.Errors, e)
		errMu.Unlock()
		return true // keep walking
	})

	done := make(chan error, 1)
	go func() {
		done <- walker.Start()
	}()

	cancelled := false
	for f := range queue {
		if cancelled {
			continue // drain so the walker goroutine can exit
		}
		if ctx.Err() != nil {
			cancelled = true
			walker.Terminate()
			continue
		}
		result.Files++
		visit(f.Location)
	}

	if err := <-done; err != nil {
		return result, fmt.Errorf("failed to walk directory: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}
