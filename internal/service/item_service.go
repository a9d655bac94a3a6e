package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/stockroom/items-api/internal/domain"
	"github.com/stockroom/items-api/internal/store"
)

// ItemServiceError is a custom error type for item service errors.
type ItemServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ItemServiceError.
func (e *ItemServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("item service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("item service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ItemServiceError) Unwrap() error {
	return e.Err
}

// NewItemServiceError creates a new ItemServiceError.
func NewItemServiceError(operation, message string, err error) *ItemServiceError {
	return &ItemServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// ItemService provides item-related operations.
type ItemService interface {
	// ListItems returns every stored item in insertion order.
	ListItems(ctx context.Context) ([]*domain.Item, error)

	// GetItem retrieves an item by its ID.
	// Returns store.ErrItemNotFound if no item has that ID.
	GetItem(ctx context.Context, id string) (*domain.Item, error)

	// CreateItem builds a new item with a server-generated ID from the
	// submitted fields and appends it to the collection.
	// Returns a domain validation error if name is empty.
	CreateItem(ctx context.Context, name, description string, extra map[string]any) (*domain.Item, error)

	// UpdateItem merges the patch onto the stored item and returns the
	// merged record. The ID never changes.
	// Returns store.ErrItemNotFound if no item has that ID.
	UpdateItem(ctx context.Context, id string, patch domain.Patch) (*domain.Item, error)

	// DeleteItem removes the item.
	// Returns store.ErrItemNotFound if no item has that ID.
	DeleteItem(ctx context.Context, id string) error
}

// itemServiceImpl implements the ItemService interface.
type itemServiceImpl struct {
	itemStore store.ItemStore
	logger    *slog.Logger
}

// NewItemService creates a new ItemService.
// It returns an error if the store dependency is nil.
func NewItemService(itemStore store.ItemStore, logger *slog.Logger) (ItemService, error) {
	if itemStore == nil {
		return nil, domain.NewValidationError("itemStore", "cannot be nil", domain.ErrValidation)
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &itemServiceImpl{
		itemStore: itemStore,
		logger:    logger.With(slog.String("component", "item_service")),
	}, nil
}

// ListItems implements ItemService.ListItems
func (s *itemServiceImpl) ListItems(ctx context.Context) ([]*domain.Item, error) {
	items, err := s.itemStore.List(ctx)
	if err != nil {
		return nil, NewItemServiceError("list", "failed to list items", err)
	}
	return items, nil
}

// GetItem implements ItemService.GetItem
func (s *itemServiceImpl) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	item, err := s.itemStore.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		return nil, NewItemServiceError("get", "failed to get item", err)
	}
	return item, nil
}

// CreateItem implements ItemService.CreateItem
func (s *itemServiceImpl) CreateItem(
	ctx context.Context,
	name, description string,
	extra map[string]any,
) (*domain.Item, error) {
	item, err := domain.NewItem(name, description, extra)
	if err != nil {
		return nil, err
	}

	if err := s.itemStore.Create(ctx, item); err != nil {
		return nil, NewItemServiceError("create", "failed to store item", err)
	}

	s.logger.Debug("item created",
		slog.String("item_id", item.ID),
		slog.String("name", item.Name))
	return item, nil
}

// UpdateItem implements ItemService.UpdateItem
func (s *itemServiceImpl) UpdateItem(
	ctx context.Context,
	id string,
	patch domain.Patch,
) (*domain.Item, error) {
	item, err := s.itemStore.Update(ctx, id, patch)
	if err != nil {
		if store.IsNotFoundError(err) || errors.Is(err, store.ErrInvalidEntity) {
			return nil, err
		}
		return nil, NewItemServiceError("update", "failed to update item", err)
	}

	s.logger.Debug("item updated", slog.String("item_id", id))
	return item, nil
}

// DeleteItem implements ItemService.DeleteItem
func (s *itemServiceImpl) DeleteItem(ctx context.Context, id string) error {
	if err := s.itemStore.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			return err
		}
		return NewItemServiceError("delete", "failed to delete item", err)
	}

	s.logger.Debug("item deleted", slog.String("item_id", id))
	return nil
}
