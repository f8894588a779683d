// Package filelock provides file locking and atomic writes for files that
// reminder-lint creates on the user's behalf, such as the config written by init.
package filelock

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// ErrExists is returned by WriteFile when the target exists and overwriting was not requested.
var ErrExists = errors.New("file already exists")

// lockRetryDelay is the poll interval of LockContext.
const lockRetryDelay = 50 * time.Millisecond

// FileLock wraps a flock file lock for coordinating access to files.
type FileLock struct {
	flock *flock.Flock
	path  string
}

// NewFileLock creates a new file lock for the given path.
func NewFileLock(path string) *FileLock {
	return &FileLock{
		flock: flock.New(path),
		path:  path,
	}
}

// LockContext retries until the lock is acquired or ctx is done.
func (fl *FileLock) LockContext(ctx context.Context) error {
	acquired, err := fl.flock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", fl.path, err)
	}
	if !acquired {
		return fmt.Errorf("failed to acquire lock on %s", fl.path)
	}
	return nil
}

// Unlock releases the lock.
func (fl *FileLock) Unlock() error {
	if err := fl.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", fl.path, err)
	}
	return nil
}

// AtomicWrite writes data to path through a temp file in the same directory and a
// rename, so readers never see a partial file. Missing parent directories are created.
func AtomicWrite(path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	defer func() {
		if tempFile != nil {
			tempFile.Close()
			os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tempPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}

	tempFile = nil
	return nil
}

// WriteOptions controls WriteFile
type WriteOptions struct {
	Overwrite bool        // Replace an existing file instead of failing with ErrExists
	Perm      fs.FileMode // Mode of the written file; 0 means 0644
}

// WriteFile writes data to path while holding "<path>.lock". The existence check and
// the write happen under the same lock, so two concurrent writers without Overwrite
// cannot both succeed. The lock file is removed afterwards.
func WriteFile(ctx context.Context, path string, data []byte, opts WriteOptions) (err error) {
	if opts.Perm == 0 {
		opts.Perm = 0644
	}

	lockPath := path + ".lock"
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(path), err)
	}
	lock := NewFileLock(lockPath)
	if err := lock.LockContext(ctx); err != nil {
		return err
	}
	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil && err == nil {
			err = unlockErr
		}
		os.Remove(lockPath)
	}()

	if !opts.Overwrite {
		if _, statErr := os.Stat(path); statErr == nil {
			return fmt.Errorf("%s: %w", path, ErrExists)
		} else if !errors.Is(statErr, fs.ErrNotExist) {
			return fmt.Errorf("failed to access %s: %w", path, statErr)
		}
	}

	return AtomicWrite(path, data, opts.Perm)
}
