package store

import (
	"context"

	"github.com/stockroom/items-api/internal/domain"
)

// ItemStore defines the interface for item persistence.
type ItemStore interface {
	// List returns every stored item in insertion order.
	// An empty collection yields an empty, non-nil slice.
	List(ctx context.Context) ([]*domain.Item, error)

	// GetByID retrieves an item by its unique ID.
	// Returns ErrItemNotFound if the item does not exist.
	GetByID(ctx context.Context, id string) (*domain.Item, error)

	// Create appends a new item to the collection. The item must already
	// carry a server-generated ID and pass domain validation.
	// Returns ErrItemExists if an item with the same ID is already stored.
	Create(ctx context.Context, item *domain.Item) error

	// Update merges the patch onto the stored item identified by id and
	// returns the merged record. The merge happens atomically with respect
	// to the read-modify-write, so two concurrent updates to the same id
	// cannot interleave (last write wins).
	// Returns ErrItemNotFound if the item does not exist and
	// ErrInvalidEntity (wrapping the domain error) if the merged item
	// would be invalid.
	Update(ctx context.Context, id string, patch domain.Patch) (*domain.Item, error)

	// Delete removes the item identified by id.
	// Returns ErrItemNotFound if the item does not exist.
	Delete(ctx context.Context, id string) error
}
