package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	backupSuffix  = ".backup"
	corruptSuffix = ".corrupt"
)

var errDecode = errors.New("decode store")

type fileDocument struct {
	Entries map[string]fileEntry `json:"entries"`
}

type fileEntry struct {
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FileStore keeps every namespace in one JSON document. Writes go through a
// temp file and rename; the previous document is kept as path+".backup".
type FileStore struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

func NewFileStore(path string) (*FileStore, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, errors.New("storage: empty file path")
	}
	if dir := filepath.Dir(trimmed); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
	}
	return &FileStore{path: trimmed, now: time.Now}, nil
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Save(_ context.Context, namespace string, value []byte) error {
	if strings.TrimSpace(namespace) == "" {
		return errors.New("storage: namespace is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.readForWrite()
	if err != nil {
		return err
	}
	doc.Entries[namespace] = fileEntry{Value: string(value), UpdatedAt: s.now().UTC()}
	return s.write(doc)
}

func (s *FileStore) Load(_ context.Context, namespace string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	entry, ok := doc.Entries[namespace]
	if !ok {
		return nil, ErrNotFound
	}
	return []byte(entry.Value), nil
}

func (s *FileStore) Delete(_ context.Context, namespace string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.readForWrite()
	if err != nil {
		return err
	}
	if _, ok := doc.Entries[namespace]; !ok {
		return ErrNotFound
	}
	delete(doc.Entries, namespace)
	return s.write(doc)
}

func (s *FileStore) Entries(_ context.Context, filter EntryListFilter) ([]Entry, error) {
	s.mu.Lock()
	doc, err := s.read()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(doc.Entries))
	for name := range doc.Entries {
		if strings.HasPrefix(name, filter.Prefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	out := make([]Entry, 0, len(names))
	for _, name := range paginate(names, filter.Limit, filter.Offset) {
		e := doc.Entries[name]
		out = append(out, Entry{Namespace: name, Value: []byte(e.Value), UpdatedAt: e.UpdatedAt})
	}
	return out, nil
}

func (s *FileStore) Close() error { return nil }

func (s *FileStore) read() (fileDocument, error) {
	doc := fileDocument{Entries: make(map[string]fileEntry)}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return doc, nil
		}
		return doc, fmt.Errorf("read store: %w", err)
	}
	return decodeDocument(raw)
}

// readForWrite is read for callers about to write the document back. A
// document that no longer decodes is moved to path+".corrupt" and replaced by
// the backup when that decodes, or by an empty document.
func (s *FileStore) readForWrite() (fileDocument, error) {
	doc, err := s.read()
	if err == nil || !errors.Is(err, errDecode) {
		return doc, err
	}
	if err := os.Rename(s.path, s.path+corruptSuffix); err != nil {
		return doc, fmt.Errorf("move corrupt store aside: %w", err)
	}
	if raw, err := os.ReadFile(s.path + backupSuffix); err == nil {
		if backup, err := decodeDocument(raw); err == nil {
			return backup, nil
		}
	}
	return fileDocument{Entries: make(map[string]fileEntry)}, nil
}

func decodeDocument(raw []byte) (fileDocument, error) {
	doc := fileDocument{Entries: make(map[string]fileEntry)}
	if strings.TrimSpace(string(raw)) == "" {
		return doc, nil
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return doc, fmt.Errorf("%w: %w", errDecode, err)
	}
	if doc.Entries == nil {
		doc.Entries = make(map[string]fileEntry)
	}
	return doc, nil
}

func (s *FileStore) write(doc fileDocument) error {
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(payload, '\n'), 0o644); err != nil {
		return err
	}
	if _, err := os.Stat(s.path); err == nil {
		// A failed backup must not block the write itself.
		_ = copyFile(s.path, s.path+backupSuffix)
	}
	return os.Rename(tmp, s.path)
}

func copyFile(src, dst string) error {
	raw, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, raw, 0o644)
}

func paginate(items []string, limit, offset int) []string {
	if offset > 0 {
		if offset >= len(items) {
			return nil
		}
		items = items[offset:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
