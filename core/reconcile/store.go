package reconcile

import (
	"context"
	"slices"
	"strings"
	"sync"

	"catalog-manager/core/catalog"
)

// IdentifierStore persists the marked record ids.
//
// Read returns an empty slice for an absent or unreadable document; an error is
// reserved for failing to reach the store at all. Writes replace the whole set.
// The store is not locked between Read and Write, so concurrent writers race and
// the last write wins.
type IdentifierStore interface {
	Read(ctx context.Context) ([]string, error)
	Write(ctx context.Context, ids []string) error
}

// RecordProvider supplies a source's record set.
type RecordProvider interface {
	Get(ctx context.Context, source string) (*catalog.RecordSet, error)
}

// MemoryStore is an in-process IdentifierStore.
type MemoryStore struct {
	mu  sync.Mutex
	ids []string
}

// NewMemoryStore creates a store holding ids.
func NewMemoryStore(ids ...string) *MemoryStore {
	return &MemoryStore{ids: cloneIDs(ids)}
}

func (s *MemoryStore) Read(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := slices.Clone(s.ids)
	if out == nil {
		out = []string{}
	}
	return out, nil
}

func (s *MemoryStore) Write(_ context.Context, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = cloneIDs(ids)
	return nil
}

// cloneIDs deep-copies ids so that no stored id shares bytes with the caller.
func cloneIDs(ids []string) []string {
	if ids == nil {
		return nil
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = strings.Clone(id)
	}
	return out
}
