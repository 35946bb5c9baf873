package store

import (
	"context"
	"errors"
	"io/fs"

	"github.com/peterbourgon/diskv/v3"
)

// openDiskv stores every key as one file directly under basePath.
func openDiskv(basePath string) (KV, error) {
	return &diskvStore{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	})}, nil
}

type diskvStore struct {
	d *diskv.Diskv
}

func (s *diskvStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	val, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(val), true, nil
}

func (s *diskvStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.d.Write(key, []byte(value))
}

func (s *diskvStore) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.d.Has(key) {
		return nil
	}
	return s.d.Erase(key)
}

// Close is a no-op; diskv holds no open handles between calls.
func (s *diskvStore) Close() error {
	return nil
}

func keyToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: s,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
