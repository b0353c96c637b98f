package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockFileName is created inside the directory being guarded.
const LockFileName = ".datclean.lock"

// ErrLocked reports that another process holds the directory lock.
var ErrLocked = errors.New("another datclean run is writing to this directory")

// DirLock is an exclusive advisory lock over a directory's output files.
type DirLock struct {
	path string
	lock *flock.Flock
}

// LockDir takes the lock for dir without blocking. The caller must Unlock.
func LockDir(dir string) (*DirLock, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}
	path := filepath.Join(dir, LockFileName)
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (lock %s)", ErrLocked, path)
	}
	// A finishing run removes the file before releasing it; holding a lock on
	// the unlinked file guards nothing.
	if _, err := os.Stat(path); err != nil {
		_ = fl.Unlock()
		return nil, fmt.Errorf("%w (lock %s)", ErrLocked, path)
	}
	return &DirLock{path: path, lock: fl}, nil
}

// Path returns the lock file location.
func (l *DirLock) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Unlock removes the lock file and releases the lock, leaving nothing behind
// in the guarded directory. It is safe to call on a nil lock and more than once.
func (l *DirLock) Unlock() error {
	if l == nil || l.lock == nil {
		return nil
	}
	var removeErr error
	if err := os.Remove(l.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		removeErr = fmt.Errorf("remove lock file: %w", err)
	}
	err := l.lock.Unlock()
	l.lock = nil
	return errors.Join(removeErr, err)
}
