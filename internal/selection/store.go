package selection

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/daytally/internal/storage"
)

const saveTimeout = 2 * time.Second

// Store is the set of selected date keys. Every mutating call persists the
// whole set through the KV adapter; calls made inside Batch persist once when
// the outermost batch returns. Persistence errors are logged, never returned.
type Store struct {
	kv        storage.KV
	namespace string
	logger    *log.Logger
	keys      map[string]struct{}
	depth     int
	dirty     bool
	saves     int
	dropped   int
}

func NewStore(kv storage.KV, namespace string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{
		kv:        kv,
		namespace: namespace,
		logger:    logger,
		keys:      make(map[string]struct{}),
	}
}

func (s *Store) Namespace() string { return s.namespace }

// Load replaces the in-memory set with the persisted one. Keys rejected by
// valid are dropped and counted. Read failures and malformed data leave the
// set empty.
func (s *Store) Load(valid func(string) bool) int {
	s.keys = make(map[string]struct{})
	s.dropped = 0
	if s.kv == nil {
		return 0
	}
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	raw, err := s.kv.Load(ctx, s.namespace)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("could not load selection", "namespace", s.namespace, "err", err)
		}
		return 0
	}
	var persisted []string
	if err := json.Unmarshal(raw, &persisted); err != nil {
		s.logger.Warn("discarding malformed selection", "namespace", s.namespace, "err", err)
		return 0
	}
	for _, key := range persisted {
		key = strings.TrimSpace(key)
		if key == "" || (valid != nil && !valid(key)) {
			s.dropped++
			continue
		}
		s.keys[key] = struct{}{}
	}
	if s.dropped > 0 {
		s.logger.Info("dropped unknown selection keys", "namespace", s.namespace, "dropped", s.dropped)
	}
	return s.dropped
}

// Dropped reports how many persisted keys the last Load rejected.
func (s *Store) Dropped() int { return s.dropped }

func (s *Store) Contains(key string) bool {
	_, ok := s.keys[key]
	return ok
}

func (s *Store) Count() int { return len(s.keys) }

// Keys returns the selection sorted chronologically.
func (s *Store) Keys() []string {
	out := make([]string, 0, len(s.keys))
	for k := range s.keys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (s *Store) Select(key string) {
	s.Batch(func() { s.keys[key] = struct{}{} })
}

func (s *Store) Deselect(key string) {
	s.Batch(func() { delete(s.keys, key) })
}

func (s *Store) Clear() {
	s.Batch(func() { s.keys = make(map[string]struct{}) })
}

func (s *Store) SelectRange(keys []string) {
	s.Batch(func() {
		for _, k := range keys {
			s.keys[k] = struct{}{}
		}
	})
}

func (s *Store) DeselectRange(keys []string) {
	s.Batch(func() {
		for _, k := range keys {
			delete(s.keys, k)
		}
	})
}

// SelectAll adds every key in validKeys.
func (s *Store) SelectAll(validKeys []string) {
	s.SelectRange(validKeys)
}

func (s *Store) DeselectAll() {
	s.Clear()
}

// Batch runs fn and persists once afterwards. Nested batches defer to the
// outermost one.
func (s *Store) Batch(fn func()) {
	s.depth++
	s.dirty = true
	defer func() {
		s.depth--
		if s.depth == 0 && s.dirty {
			s.dirty = false
			s.flush()
		}
	}()
	fn()
}

// Saves counts attempted writes.
func (s *Store) Saves() int { return s.saves }

func (s *Store) flush() {
	if s.kv == nil {
		return
	}
	s.saves++
	payload, err := json.Marshal(s.Keys())
	if err != nil {
		s.logger.Warn("could not encode selection", "namespace", s.namespace, "err", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := s.kv.Save(ctx, s.namespace, payload); err != nil {
		s.logger.Warn("could not save selection", "namespace", s.namespace, "err", err)
	}
}
