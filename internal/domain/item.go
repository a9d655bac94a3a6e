package domain

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Item-specific validation errors
var (
	// ErrItemIDEmpty is returned when an item ID is empty.
	ErrItemIDEmpty = errors.New("item ID cannot be empty")

	// ErrItemNameEmpty is returned when an item's name is empty.
	ErrItemNameEmpty = errors.New("item name cannot be empty")
)

// reservedKeys are the top-level JSON keys backed by typed fields on Item.
// Everything else a caller submits lands in Extra.
var reservedKeys = map[string]struct{}{
	"id":          {},
	"name":        {},
	"description": {},
	"created_at":  {},
	"updated_at":  {},
}

// Item is the single record type held by the store. Callers may submit
// arbitrary additional fields alongside name and description; these are
// preserved as-is in Extra and flattened back into the JSON object on the
// way out.
type Item struct {
	ID          string
	Name        string
	Description string
	Extra       map[string]any
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Patch is a partial item update as submitted by a caller: the set of
// top-level JSON keys present in the request body and their values. Keys
// absent from the patch leave the corresponding stored fields untouched.
type Patch map[string]any

// NewItem creates a new Item with a server-generated ID and the current
// timestamps. Any id submitted by the caller is discarded here; the
// generated ID is immutable for the item's lifetime.
// Returns an error if validation fails.
func NewItem(name, description string, extra map[string]any) (*Item, error) {
	item := &Item{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Extra:       extra,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks if the Item has valid data.
// Returns an error if any field fails validation.
func (i *Item) Validate() error {
	if i.ID == "" {
		return ErrItemIDEmpty
	}

	if i.Name == "" {
		return ErrItemNameEmpty
	}

	return nil
}

// Merge applies a partial update onto the item. Submitted fields overwrite
// matching existing fields; keys absent from the patch retain their prior
// values. An "id" key in the patch is always discarded so the ID assigned
// at creation never changes. Returns an error if the merged item would be
// invalid, leaving the item unchanged.
func (i *Item) Merge(patch Patch) error {
	merged := i.Clone()

	for key, value := range patch {
		switch key {
		case "id", "created_at", "updated_at":
			// server-owned fields
		case "name":
			merged.Name = stringOrEmpty(value)
		case "description":
			merged.Description = stringOrEmpty(value)
		default:
			if merged.Extra == nil {
				merged.Extra = make(map[string]any)
			}
			merged.Extra[key] = value
		}
	}

	if err := merged.Validate(); err != nil {
		return err
	}

	merged.UpdatedAt = time.Now().UTC()
	*i = *merged
	return nil
}

// Clone returns a copy of the item with its own Extra map. Values inside
// Extra are shared; they come from decoded JSON and are never mutated in
// place.
func (i *Item) Clone() *Item {
	clone := *i
	if i.Extra != nil {
		clone.Extra = make(map[string]any, len(i.Extra))
		for k, v := range i.Extra {
			clone.Extra[k] = v
		}
	}
	return &clone
}

// MarshalJSON flattens Extra into the top-level object so the wire shape
// is a single flat record. Description is omitted when empty.
func (i *Item) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(i.Extra)+5)
	for k, v := range i.Extra {
		if _, reserved := reservedKeys[k]; reserved {
			continue
		}
		out[k] = v
	}

	out["id"] = i.ID
	out["name"] = i.Name
	if i.Description != "" {
		out["description"] = i.Description
	}
	out["created_at"] = i.CreatedAt
	out["updated_at"] = i.UpdatedAt

	return json.Marshal(out)
}

// UnmarshalJSON collects unknown top-level keys into Extra, mirroring
// MarshalJSON's flattening.
func (i *Item) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	item := Item{}
	for key, value := range raw {
		switch key {
		case "id":
			item.ID = stringOrEmpty(value)
		case "name":
			item.Name = stringOrEmpty(value)
		case "description":
			item.Description = stringOrEmpty(value)
		case "created_at":
			item.CreatedAt = parseTime(value)
		case "updated_at":
			item.UpdatedAt = parseTime(value)
		default:
			if item.Extra == nil {
				item.Extra = make(map[string]any)
			}
			item.Extra[key] = value
		}
	}

	*i = item
	return nil
}

func stringOrEmpty(v any) string {
	s, _ := v.(string)
	return s
}

func parseTime(v any) time.Time {
	s, ok := v.(string)
	if !ok {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
