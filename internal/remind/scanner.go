// Package remind finds reminder comments in a source tree and turns them into
// typed records.
//
// A Scanner walks the tree, hands every readable text file to a LineScanner and
// merges the per-file results. Aggregate then applies the no-date filter and the
// optional deadline sort. Classification into expired and upcoming is a derived
// view on models.Reminders.
package remind

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/harrison/reminder-lint/internal/fileutil"
	"github.com/harrison/reminder-lint/internal/logger"
	"github.com/harrison/reminder-lint/internal/models"
)

// ScanOptions configures a Scanner
type ScanOptions struct {
	CommentRegex    string // Comment pattern, may contain ${name} placeholders
	DateFormat      string // strftime subset used to locate and parse dates
	SearchDirectory string // Root of the walk
	IgnoreFileName  string // Extra gitignore-syntax file name, e.g. ".remindignore"
	Workers         int    // Concurrent file scans; <= 0 means runtime.NumCPU()
}

// Scanner drives one scan of a tree
type Scanner struct {
	opts  ScanOptions
	lines *LineScanner
	log   Logger
}

// NewScanner compiles the patterns in opts.
func NewScanner(opts ScanOptions, log Logger) (*Scanner, error) {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	lines, err := NewLineScanner(opts.CommentRegex, opts.DateFormat, log)
	if err != nil {
		return nil, err
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	return &Scanner{opts: opts, lines: lines, log: log}, nil
}

// Scan walks the search directory and returns every reminder found, in discovery order.
// Entries the walker cannot read are logged at ERROR, per-file read errors at DEBUG
// and binary files at TRACE; all are skipped. Only an unusable
// search directory or a cancelled ctx fails the scan.
func (s *Scanner) Scan(ctx context.Context) ([]models.Remind, error) {
	var (
		mu      sync.Mutex
		perFile = make(map[int][]models.Remind)
		next    int
	)

	g := new(errgroup.Group)
	g.SetLimit(s.opts.Workers)

	walkOpts := fileutil.WalkOptions{
		Root:           s.opts.SearchDirectory,
		IgnoreFileName: s.opts.IgnoreFileName,
		IncludeHidden:  true,
		ExcludeDirs:    fileutil.DefaultExcludeDirs,
	}
	res, walkErr := fileutil.Walk(ctx, walkOpts, func(path string) {
		index := next
		next++
		g.Go(func() error {
			found := s.ScanFile(path)
			if len(found) == 0 {
				return nil
			}
			mu.Lock()
			perFile[index] = found
			mu.Unlock()
			return nil
		})
	})
	// Workers never fail; Wait only joins them.
	_ = g.Wait()

	if walkErr != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", s.opts.SearchDirectory, walkErr)
	}
	for _, err := range res.Errors {
		s.log.LogError(fmt.Sprintf("Skipping unreadable entry: %v", err))
	}
	s.log.LogDebug(fmt.Sprintf("Walked %s: %d files", s.opts.SearchDirectory, res.Files))

	reminds := make([]models.Remind, 0)
	for i := 0; i < next; i++ {
		reminds = append(reminds, perFile[i]...)
	}
	return reminds, nil
}

// ScanFile returns the reminders of a single file. Unreadable and binary files yield nil.
func (s *Scanner) ScanFile(path string) []models.Remind {
	var found []models.Remind
	err := fileutil.ReadLines(path, func(lineNumber int, line string) {
		if remind, ok := s.lines.ScanLine(path, lineNumber, line); ok {
			found = append(found, remind)
		}
	})
	if err != nil {
		if errors.Is(err, fileutil.ErrBinaryFile) {
			s.log.LogTrace(fmt.Sprintf("Skipping binary file %s", path))
		} else {
			s.log.LogDebug(fmt.Sprintf("Skipping %s: %v", path, err))
		}
		return nil
	}
	return found
}
