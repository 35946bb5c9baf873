package tasks

import (
	"bytes"
	"context"
	"log"
	"sync"
)

type memoryStore struct {
	mu      sync.Mutex
	values  map[string]string
	writes  []string
	getErr  error
	setErr  error
	failSet int // number of upcoming Set calls that fail with setErr
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: make(map[string]string)}
}

func (m *memoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSet > 0 {
		m.failSet--
		return m.setErr
	}
	m.values[key] = value
	m.writes = append(m.writes, value)
	return nil
}

func (m *memoryStore) value(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *memoryStore) written() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.writes...)
}

// recorder keeps every snapshot handed to Persist, synchronously.
type recorder struct {
	snapshots [][]string
}

func (r *recorder) Persist(list []string) {
	r.snapshots = append(r.snapshots, append([]string(nil), list...))
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func testLogger() (*log.Logger, *syncBuffer) {
	buf := &syncBuffer{}
	return log.New(buf, "", 0), buf
}
