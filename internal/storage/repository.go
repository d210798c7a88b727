package storage

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("storage: not found")

// KV is the persistence surface used by the selection store and the theme
// controller. Load returns ErrNotFound for an absent namespace.
type KV interface {
	Save(ctx context.Context, namespace string, value []byte) error
	Load(ctx context.Context, namespace string) ([]byte, error)
}

// Backend is a KV that owns resources.
type Backend interface {
	KV
	Delete(ctx context.Context, namespace string) error
	Entries(ctx context.Context, filter EntryListFilter) ([]Entry, error)
	Close() error
}

type Entry struct {
	Namespace string
	Value     []byte
	UpdatedAt time.Time
}

type EntryListFilter struct {
	Prefix string
	Limit  int
	Offset int
}
