// Package memory provides an in-memory persistence gateway used by tests as
// a substitutable stand-in for the BoltDB store.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/louisbranch/listkeeper/internal/id"
	"github.com/louisbranch/listkeeper/internal/list"
	"github.com/louisbranch/listkeeper/internal/list/storage"
)

// Store holds items and lists in process memory behind a mutex.
type Store struct {
	mu    sync.Mutex
	items []list.Item
	lists map[string]list.List
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{lists: make(map[string]list.List)}
}

// Insert stores a new standalone item.
func (s *Store) Insert(_ context.Context, name string) (list.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := list.Item{ID: id.New(), Name: name}
	s.items = append(s.items, item)
	return item, nil
}

// SeedIfEmpty inserts the given labels when the item collection is empty.
func (s *Store) SeedIfEmpty(_ context.Context, names []string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) > 0 || len(names) == 0 {
		return false, nil
	}
	for _, name := range names {
		s.items = append(s.items, list.Item{ID: id.New(), Name: name})
	}
	return true, nil
}

// All returns every standalone item in insertion order.
func (s *Store) All(_ context.Context) ([]list.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]list.Item, len(s.items))
	copy(items, s.items)
	return items, nil
}

// Delete removes the standalone item with the given id.
func (s *Store) Delete(_ context.Context, itemID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ID != itemID {
			continue
		}
		s.items = append(s.items[:i], s.items[i+1:]...)
		return true, nil
	}
	return false, nil
}

// Create stores a new list document, keeping any existing one untouched.
func (s *Store) Create(_ context.Context, l list.List) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := list.CanonicalKey(l.Name)
	if key == "" {
		return storage.ErrNotFound
	}
	if _, ok := s.lists[key]; ok {
		return nil
	}
	cloned := cloneList(l)
	for i := range cloned.Items {
		if cloned.Items[i].ID == "" {
			cloned.Items[i].ID = id.New()
		}
	}
	s.lists[key] = cloned
	return nil
}

// Find returns the list stored under the canonical key of name.
func (s *Store) Find(_ context.Context, name string) (list.List, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found, ok := s.lists[list.CanonicalKey(name)]
	if !ok {
		return list.List{}, false, nil
	}
	return cloneList(found), true, nil
}

// AppendItem appends a new item to the named list's embedded sequence.
func (s *Store) AppendItem(_ context.Context, name string, itemName string) (list.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := list.CanonicalKey(name)
	found, ok := s.lists[key]
	if !ok {
		return list.Item{}, storage.ErrNotFound
	}
	item := list.Item{ID: id.New(), Name: itemName}
	found.Items = append(found.Items, item)
	s.lists[key] = found
	return item, nil
}

// RemoveItem removes the embedded item with the given id from the named list.
func (s *Store) RemoveItem(_ context.Context, name string, itemID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := list.CanonicalKey(name)
	found, ok := s.lists[key]
	if !ok {
		return false, storage.ErrNotFound
	}
	for i, item := range found.Items {
		if item.ID != itemID {
			continue
		}
		found.Items = append(found.Items[:i], found.Items[i+1:]...)
		s.lists[key] = found
		return true, nil
	}
	return false, nil
}

func cloneList(l list.List) list.List {
	items := make([]list.Item, len(l.Items))
	copy(items, l.Items)
	return list.List{Name: strings.TrimSpace(l.Name), Items: items}
}
