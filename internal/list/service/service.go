// Package service resolves requested list names to item collections and
// applies item mutations through the persistence gateway.
package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/louisbranch/listkeeper/internal/list"
	"github.com/louisbranch/listkeeper/internal/list/storage"
)

// ErrListNotFound indicates an operation targeted a list that does not
// exist. Operations that return it never auto-create lists.
var ErrListNotFound = errors.New("list not found")

// ErrEmptyName indicates a required list or item name was empty after
// normalization.
var ErrEmptyName = errors.New("name is required")

// Service resolves list names and routes mutations to the stores.
type Service struct {
	items storage.ItemStore
	lists storage.ListStore
}

// New returns a service backed by the given stores.
func New(items storage.ItemStore, lists storage.ListStore) *Service {
	return &Service{items: items, lists: lists}
}

// View is the renderable outcome of a resolution: a display title and the
// ordered items under it.
type View struct {
	Title string
	Items []list.Item
}

// Resolution is the outcome of resolving a list name. A non-empty
// RedirectPath signals that the caller should redirect to the canonical list
// path instead of rendering, which happens on first creation so the client
// lands on a stable URL backed by the seeded document.
type Resolution struct {
	View         View
	RedirectPath string
}

// ShouldRedirect reports whether the resolution carries a redirect instead
// of a view.
func (r Resolution) ShouldRedirect() bool {
	return r.RedirectPath != ""
}

// PathFor returns the canonical path for a requested list name.
func PathFor(name string) string {
	if list.IsToday(name) {
		return "/"
	}
	key := list.CanonicalKey(name)
	if key == "" {
		return "/"
	}
	return "/" + url.PathEscape(key)
}

// ResolveToday returns the standalone default collection, seeding it with
// the default items when it is empty. The items are re-read after seeding so
// the view always reflects stored state.
func (s *Service) ResolveToday(ctx context.Context) (View, error) {
	if s == nil || s.items == nil {
		return View{}, fmt.Errorf("item store is not configured")
	}
	if _, err := s.items.SeedIfEmpty(ctx, list.DefaultItemNames()); err != nil {
		return View{}, fmt.Errorf("seed default items: %w", err)
	}
	items, err := s.items.All(ctx)
	if err != nil {
		return View{}, fmt.Errorf("load default items: %w", err)
	}
	return View{Title: list.TodayTitle, Items: items}, nil
}

// ResolveOrCreate resolves a requested list name, creating a seeded list on
// first access. Created lists signal a redirect to their canonical path
// rather than returning a view.
func (s *Service) ResolveOrCreate(ctx context.Context, name string) (Resolution, error) {
	if list.IsToday(name) {
		view, err := s.ResolveToday(ctx)
		if err != nil {
			return Resolution{}, err
		}
		return Resolution{View: view}, nil
	}
	if s == nil || s.lists == nil {
		return Resolution{}, fmt.Errorf("list store is not configured")
	}
	if list.CanonicalKey(name) == "" {
		return Resolution{}, ErrEmptyName
	}

	found, ok, err := s.lists.Find(ctx, name)
	if err != nil {
		return Resolution{}, fmt.Errorf("find list: %w", err)
	}
	if ok {
		return Resolution{View: View{Title: list.TitleCase(found.Name), Items: found.Items}}, nil
	}

	seeded := list.List{Name: list.TitleCase(name)}
	for _, itemName := range list.DefaultItemNames() {
		seeded.Items = append(seeded.Items, list.Item{Name: itemName})
	}
	if err := s.lists.Create(ctx, seeded); err != nil {
		return Resolution{}, fmt.Errorf("create list: %w", err)
	}
	return Resolution{RedirectPath: PathFor(name)}, nil
}

// ResolveExisting resolves a requested list name without creating anything.
// Returns ErrListNotFound when no list is stored under the name.
func (s *Service) ResolveExisting(ctx context.Context, name string) (View, error) {
	if list.IsToday(name) {
		return s.ResolveToday(ctx)
	}
	if s == nil || s.lists == nil {
		return View{}, fmt.Errorf("list store is not configured")
	}

	found, ok, err := s.lists.Find(ctx, name)
	if err != nil {
		return View{}, fmt.Errorf("find list: %w", err)
	}
	if !ok {
		return View{}, ErrListNotFound
	}
	return View{Title: list.TitleCase(found.Name), Items: found.Items}, nil
}

// AddItem inserts a title-cased item into the target collection and returns
// the path to redirect to. Unlike ResolveOrCreate, a missing target list is
// an error, never an implicit creation.
func (s *Service) AddItem(ctx context.Context, listName string, itemText string) (string, error) {
	if s == nil || s.items == nil || s.lists == nil {
		return "", fmt.Errorf("stores are not configured")
	}
	display := list.TitleCase(itemText)
	if display == "" {
		return "", ErrEmptyName
	}

	if list.IsToday(listName) {
		if _, err := s.items.Insert(ctx, display); err != nil {
			return "", fmt.Errorf("insert item: %w", err)
		}
		return PathFor(listName), nil
	}

	if _, err := s.lists.AppendItem(ctx, listName, display); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrListNotFound
		}
		return "", fmt.Errorf("append item: %w", err)
	}
	return PathFor(listName), nil
}

// DeleteItem removes the item with the given identifier from the target
// collection and returns the path to redirect to. It reports whether an item
// was actually removed; a non-matching identifier is a no-op, and a missing
// list surfaces ErrListNotFound for the caller to classify.
func (s *Service) DeleteItem(ctx context.Context, listName string, itemID string) (string, bool, error) {
	if s == nil || s.items == nil || s.lists == nil {
		return "", false, fmt.Errorf("stores are not configured")
	}
	path := PathFor(listName)

	if list.IsToday(listName) {
		deleted, err := s.items.Delete(ctx, itemID)
		if err != nil {
			return "", false, fmt.Errorf("delete item: %w", err)
		}
		return path, deleted, nil
	}

	removed, err := s.lists.RemoveItem(ctx, listName, itemID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return path, false, ErrListNotFound
		}
		return "", false, fmt.Errorf("remove item: %w", err)
	}
	return path, removed, nil
}
