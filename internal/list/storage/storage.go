// Package storage defines the persistence gateway contracts for list and
// item documents.
package storage

import (
	"context"
	"errors"

	"github.com/louisbranch/listkeeper/internal/list"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// ItemStore persists the standalone Today item collection.
type ItemStore interface {
	// Insert stores a new item with the given label and returns it with its
	// assigned identifier.
	Insert(ctx context.Context, name string) (list.Item, error)
	// SeedIfEmpty inserts the given labels only when the collection holds no
	// items. It reports whether seeding happened. The emptiness check and the
	// inserts run in one storage transaction.
	SeedIfEmpty(ctx context.Context, names []string) (bool, error)
	// All returns every item in insertion order. An empty slice is valid.
	All(ctx context.Context) ([]list.Item, error)
	// Delete removes the item with the given identifier and reports whether
	// a deletion occurred. A missing identifier is not an error.
	Delete(ctx context.Context, id string) (bool, error)
}

// ListStore persists named lists with embedded item sequences, keyed by the
// canonical form of the list name.
type ListStore interface {
	// Create stores a new list document, assigning identifiers to any
	// embedded items that lack one. When a list with the same canonical key
	// already exists the existing document is kept untouched, which makes
	// concurrent first-access creation idempotent.
	Create(ctx context.Context, l list.List) error
	// Find returns the list stored under the canonical key of name. Absence
	// is reported through the boolean, not an error.
	Find(ctx context.Context, name string) (list.List, bool, error)
	// AppendItem appends a new item to the named list's embedded sequence and
	// returns it with its assigned identifier. Returns ErrNotFound when the
	// list does not exist; appends never create lists.
	AppendItem(ctx context.Context, name string, itemName string) (list.Item, error)
	// RemoveItem removes the embedded item with the given identifier from the
	// named list and reports whether a removal occurred. Returns ErrNotFound
	// when the list does not exist.
	RemoveItem(ctx context.Context, name string, itemID string) (bool, error)
}
