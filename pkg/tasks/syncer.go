package tasks

import (
	"context"
	"log"
	"sync"
)

// Syncer mirrors list snapshots into a store from a single writer goroutine,
// so writes land in the order they were handed in. A snapshot superseded
// before the writer reaches it is skipped. Failed writes are logged, never
// retried.
type Syncer struct {
	store Writer
	key   string
	log   *log.Logger

	mu      sync.Mutex
	pending []string
	dirty   bool
	queued  uint64
	settled uint64
	waiters []waiter
	closed  bool

	wake      chan struct{}
	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

type waiter struct {
	seq uint64
	ch  chan struct{}
}

// NewSyncer starts the writer goroutine. Call Close to drain and stop it.
func NewSyncer(w Writer, key string, logger *log.Logger) *Syncer {
	if key == "" {
		key = defaultKey
	}
	if logger == nil {
		logger = log.Default()
	}
	s := &Syncer{
		store: w,
		key:   key,
		log:   logger,
		wake:  make(chan struct{}, 1),
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	go s.run()
	return s
}

// Persist queues a snapshot of list and returns without waiting for the store.
func (s *Syncer) Persist(list []string) {
	snapshot := append([]string(nil), list...)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.log.Printf("persist: %q: syncer closed, dropping %d task(s)", s.key, len(snapshot))
		return
	}
	s.pending = snapshot
	s.dirty = true
	s.queued++
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Flush waits until every snapshot queued so far has been written or dropped
// after a failed write.
func (s *Syncer) Flush(ctx context.Context) error {
	s.mu.Lock()
	if s.settled >= s.queued {
		s.mu.Unlock()
		return nil
	}
	w := waiter{seq: s.queued, ch: make(chan struct{})}
	s.waiters = append(s.waiters, w)
	s.mu.Unlock()

	select {
	case <-w.ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close writes whatever is still queued and stops the writer.
func (s *Syncer) Close() error {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
		close(s.stop)
	})
	<-s.done
	return nil
}

func (s *Syncer) run() {
	defer close(s.done)
	for {
		select {
		case <-s.wake:
			s.drain()
		case <-s.stop:
			s.drain()
			return
		}
	}
}

func (s *Syncer) drain() {
	for {
		s.mu.Lock()
		if !s.dirty {
			s.mu.Unlock()
			return
		}
		snapshot, seq := s.pending, s.queued
		s.pending, s.dirty = nil, false
		s.mu.Unlock()

		s.write(snapshot)

		s.mu.Lock()
		s.settled = seq
		kept := s.waiters[:0]
		for _, w := range s.waiters {
			if w.seq <= seq {
				close(w.ch)
				continue
			}
			kept = append(kept, w)
		}
		s.waiters = kept
		s.mu.Unlock()
	}
}

func (s *Syncer) write(snapshot []string) {
	value, err := Encode(snapshot)
	if err != nil {
		s.log.Printf("persist: %q: encode: %v", s.key, err)
		return
	}
	if err := s.store.Set(context.Background(), s.key, value); err != nil {
		s.log.Printf("persist: %q: write: %v", s.key, err)
	}
}

// Attach builds a hydrated controller over st whose mutations flow through a
// new Syncer. The caller closes the Syncer when done.
func Attach(ctx context.Context, st Store, key string, logger *log.Logger) (*Controller, *Syncer) {
	s := NewSyncer(st, key, logger)
	c := NewController(Options{
		Store:     st,
		Key:       key,
		Persister: s,
		Log:       logger,
	})
	c.Hydrate(ctx)
	return c, s
}
