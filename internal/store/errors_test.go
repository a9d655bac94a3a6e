package store

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "generic error",
			err:      errors.New("some error"),
			expected: false,
		},
		{
			name:     "wrapped generic error",
			err:      fmt.Errorf("failed to do something: %w", errors.New("some error")),
			expected: false,
		},
		{
			name:     "ErrNotFound",
			err:      ErrNotFound,
			expected: true,
		},
		{
			name:     "wrapped ErrNotFound",
			err:      fmt.Errorf("failed to do something: %w", ErrNotFound),
			expected: true,
		},
		{
			name:     "ErrItemNotFound",
			err:      ErrItemNotFound,
			expected: true,
		},
		{
			name:     "wrapped ErrItemNotFound",
			err:      fmt.Errorf("failed to find item: %w", ErrItemNotFound),
			expected: true,
		},
		{
			name:     "ErrItemExists",
			err:      ErrItemExists,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFoundError(tt.err); got != tt.expected {
				t.Errorf("IsNotFoundError(%v) = %v, want %v", tt.err, got, tt.expected)
			}
		})
	}
}

func TestStoreError(t *testing.T) {
	inner := errors.New("boom")
	err := NewStoreError("item", "update", "merge failed", inner)

	if !errors.Is(err, inner) {
		t.Error("expected StoreError to unwrap to the original error")
	}

	want := "update operation on item failed: merge failed: boom"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	noInner := NewStoreError("item", "delete", "gone", nil)
	want = "delete operation on item failed: gone"
	if noInner.Error() != want {
		t.Errorf("Error() = %q, want %q", noInner.Error(), want)
	}
}
