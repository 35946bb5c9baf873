package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

const lockFile = "tasklist.lock"

// ErrLocked is returned by Open when another process owns the base path.
var ErrLocked = errors.New("store: locked")

type dirLock struct {
	f *flock.Flock
}

// acquire takes an exclusive lock on basePath so one process owns the list.
func acquire(basePath string) (*dirLock, error) {
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	f := flock.New(filepath.Join(basePath, lockFile))
	ok, err := f.TryLock()
	if err != nil {
		return nil, fmt.Errorf("store: acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: another tasklist is using %s", ErrLocked, basePath)
	}
	return &dirLock{f: f}, nil
}

func (l *dirLock) release() error {
	if l == nil || l.f == nil {
		return nil
	}
	return l.f.Unlock()
}
