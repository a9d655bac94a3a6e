package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/stockroom/items-api/internal/domain"
	"github.com/stockroom/items-api/internal/store"
)

// MemoryItemStore implements the store.ItemStore interface with an
// in-process ordered collection. Items are kept in insertion order; lookups
// are linear scans, which is fine at the scale this store is meant for.
//
// A single RWMutex guards the collection, so every mutation is atomic with
// respect to its own read-modify-write. Concurrent updates to the same id
// serialize; the last write wins.
type MemoryItemStore struct {
	mu     sync.RWMutex
	items  []*domain.Item
	logger *slog.Logger
}

// NewMemoryItemStore creates a new in-memory implementation of the
// ItemStore interface. If logger is nil, a default logger will be used.
func NewMemoryItemStore(logger *slog.Logger) *MemoryItemStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &MemoryItemStore{
		items:  make([]*domain.Item, 0),
		logger: logger.With(slog.String("component", "item_store")),
	}
}

// Ensure MemoryItemStore implements store.ItemStore interface
var _ store.ItemStore = (*MemoryItemStore)(nil)

// List implements store.ItemStore.List
// It returns copies of every stored item in insertion order. The result is
// never nil, so an empty collection serializes as an empty JSON array.
func (s *MemoryItemStore) List(ctx context.Context) ([]*domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Item, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item.Clone())
	}
	return out, nil
}

// GetByID implements store.ItemStore.GetByID
// Returns store.ErrItemNotFound if no item has the given id.
func (s *MemoryItemStore) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.ID == id {
			return item.Clone(), nil
		}
	}
	return nil, store.ErrItemNotFound
}

// Create implements store.ItemStore.Create
// It validates the item, then appends a copy to the collection.
func (s *MemoryItemStore) Create(ctx context.Context, item *domain.Item) error {
	if err := item.Validate(); err != nil {
		return store.NewStoreError("item", "create", "validation failed", store.ErrInvalidEntity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.items {
		if existing.ID == item.ID {
			return store.ErrItemExists
		}
	}

	s.items = append(s.items, item.Clone())
	s.logger.Debug("item created", slog.String("item_id", item.ID))
	return nil
}

// Update implements store.ItemStore.Update
// The lookup, merge, and write-back all happen under the write lock, so the
// read-modify-write cannot interleave with another mutation.
func (s *MemoryItemStore) Update(ctx context.Context, id string, patch domain.Patch) (*domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.items {
		if existing.ID != id {
			continue
		}

		merged := existing.Clone()
		if err := merged.Merge(patch); err != nil {
			return nil, store.NewStoreError("item", "update", "merge failed", store.ErrInvalidEntity)
		}
		// The path identifier wins over anything Merge left in place.
		merged.ID = id

		s.items[i] = merged
		s.logger.Debug("item updated", slog.String("item_id", id))
		return merged.Clone(), nil
	}

	return nil, store.ErrItemNotFound
}

// Delete implements store.ItemStore.Delete
// It removes the item while preserving the order of the remaining items.
func (s *MemoryItemStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.items {
		if existing.ID != id {
			continue
		}

		s.items = append(s.items[:i], s.items[i+1:]...)
		s.logger.Debug("item deleted", slog.String("item_id", id))
		return nil
	}

	return store.ErrItemNotFound
}
