// Package store provides the string-keyed key-value persistence the task list
// is mirrored into.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// KV is an opaque string-keyed store with whole-value replacement.
type KV interface {
	// Get returns the value stored at key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set replaces the value stored at key.
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
	Close() error
}

const (
	DriverDiskv  = "diskv"
	DriverSQLite = "sqlite"
)

var ErrUnknownDriver = errors.New("store: unknown driver")

// Open locks the configured base path and opens the configured driver on it.
// Closing the returned KV releases the lock.
func Open(cfg Config) (KV, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig(Overrides{})
		if err != nil {
			return nil, err
		}
	}

	lock, err := acquire(cfg.BasePath())
	if err != nil {
		return nil, err
	}

	var kv KV
	switch driver := strings.ToLower(cfg.Driver()); driver {
	case "", DriverDiskv:
		kv, err = openDiskv(cfg.BasePath())
	case DriverSQLite:
		kv, err = openSQLite(cfg.BasePath())
	default:
		err = fmt.Errorf("%w %q", ErrUnknownDriver, driver)
	}
	if err != nil {
		_ = lock.release()
		return nil, err
	}
	return &locked{KV: kv, lock: lock}, nil
}

type locked struct {
	KV
	lock *dirLock
}

func (l *locked) Close() error {
	err := l.KV.Close()
	if rerr := l.lock.release(); err == nil {
		err = rerr
	}
	return err
}
