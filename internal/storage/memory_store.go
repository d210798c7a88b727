package storage

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"
)

type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]Entry)}
}

func (s *MemoryStore) Save(_ context.Context, namespace string, value []byte) error {
	if strings.TrimSpace(namespace) == "" {
		return errors.New("storage: namespace is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	buf := make([]byte, len(value))
	copy(buf, value)
	s.entries[namespace] = Entry{Namespace: namespace, Value: buf, UpdatedAt: time.Now().UTC()}
	return nil
}

func (s *MemoryStore) Load(_ context.Context, namespace string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[namespace]
	if !ok {
		return nil, ErrNotFound
	}
	buf := make([]byte, len(e.Value))
	copy(buf, e.Value)
	return buf, nil
}

func (s *MemoryStore) Delete(_ context.Context, namespace string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[namespace]; !ok {
		return ErrNotFound
	}
	delete(s.entries, namespace)
	return nil
}

func (s *MemoryStore) Entries(_ context.Context, filter EntryListFilter) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		if strings.HasPrefix(name, filter.Prefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	out := make([]Entry, 0, len(names))
	for _, name := range paginate(names, filter.Limit, filter.Offset) {
		out = append(out, s.entries[name])
	}
	return out, nil
}

func (s *MemoryStore) Close() error { return nil }
