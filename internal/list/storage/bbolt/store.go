// Package bbolt provides a BoltDB-backed persistence gateway. Items and
// lists are stored as JSON documents in separate buckets; lists embed their
// item sequences the way the rendered pages consume them.
package bbolt

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"

	"github.com/louisbranch/listkeeper/internal/id"
	"github.com/louisbranch/listkeeper/internal/list"
	"github.com/louisbranch/listkeeper/internal/list/storage"
)

const itemBucket = "items"
const listBucket = "lists"

// Store provides a BoltDB-backed item and list store.
type Store struct {
	db *bbolt.DB
}

// Open opens a BoltDB-backed store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	db, err := bbolt.Open(cleanPath, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	store := &Store{db: db}
	if err := store.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying BoltDB database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Insert stores a new standalone item and returns it with its assigned id.
func (s *Store) Insert(ctx context.Context, name string) (list.Item, error) {
	if err := ctx.Err(); err != nil {
		return list.Item{}, err
	}
	if s == nil || s.db == nil {
		return list.Item{}, fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(name) == "" {
		return list.Item{}, fmt.Errorf("item name is required")
	}

	item := list.Item{ID: id.New(), Name: name}
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(itemBucket))
		if bucket == nil {
			return fmt.Errorf("item bucket is missing")
		}
		return putItem(bucket, item)
	})
	if err != nil {
		return list.Item{}, err
	}
	return item, nil
}

// SeedIfEmpty inserts the given labels when the item collection is empty.
// The emptiness check and the inserts share one write transaction, so
// concurrent first visits cannot seed twice.
func (s *Store) SeedIfEmpty(ctx context.Context, names []string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if s == nil || s.db == nil {
		return false, fmt.Errorf("storage is not configured")
	}

	seeded := false
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(itemBucket))
		if bucket == nil {
			return fmt.Errorf("item bucket is missing")
		}
		if key, _ := bucket.Cursor().First(); key != nil {
			return nil
		}
		for _, name := range names {
			if err := putItem(bucket, list.Item{ID: id.New(), Name: name}); err != nil {
				return err
			}
		}
		seeded = len(names) > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return seeded, nil
}

// All returns every standalone item in insertion order.
func (s *Store) All(ctx context.Context) ([]list.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	items := []list.Item{}
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(itemBucket))
		if bucket == nil {
			return fmt.Errorf("item bucket is missing")
		}
		return bucket.ForEach(func(_, payload []byte) error {
			var item list.Item
			if err := json.Unmarshal(payload, &item); err != nil {
				return fmt.Errorf("unmarshal item: %w", err)
			}
			items = append(items, item)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes the standalone item with the given id.
func (s *Store) Delete(ctx context.Context, itemID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if s == nil || s.db == nil {
		return false, fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(itemID) == "" {
		return false, nil
	}

	deleted := false
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(itemBucket))
		if bucket == nil {
			return fmt.Errorf("item bucket is missing")
		}
		cursor := bucket.Cursor()
		for key, payload := cursor.First(); key != nil; key, payload = cursor.Next() {
			var item list.Item
			if err := json.Unmarshal(payload, &item); err != nil {
				return fmt.Errorf("unmarshal item: %w", err)
			}
			if item.ID != itemID {
				continue
			}
			if err := bucket.Delete(key); err != nil {
				return fmt.Errorf("delete item: %w", err)
			}
			deleted = true
			return nil
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

// Create stores a new list document keyed by the canonical form of its name.
// An existing document under the same key is kept untouched.
func (s *Store) Create(ctx context.Context, l list.List) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}
	key := list.CanonicalKey(l.Name)
	if key == "" {
		return fmt.Errorf("list name is required")
	}

	for i := range l.Items {
		if l.Items[i].ID == "" {
			l.Items[i].ID = id.New()
		}
	}
	payload, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("marshal list: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(listBucket))
		if bucket == nil {
			return fmt.Errorf("list bucket is missing")
		}
		if bucket.Get([]byte(key)) != nil {
			return nil
		}
		return bucket.Put([]byte(key), payload)
	})
}

// Find fetches a list document by name.
func (s *Store) Find(ctx context.Context, name string) (list.List, bool, error) {
	if err := ctx.Err(); err != nil {
		return list.List{}, false, err
	}
	if s == nil || s.db == nil {
		return list.List{}, false, fmt.Errorf("storage is not configured")
	}
	key := list.CanonicalKey(name)
	if key == "" {
		return list.List{}, false, nil
	}

	var found list.List
	ok := false
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(listBucket))
		if bucket == nil {
			return fmt.Errorf("list bucket is missing")
		}
		payload := bucket.Get([]byte(key))
		if payload == nil {
			return nil
		}
		if err := json.Unmarshal(payload, &found); err != nil {
			return fmt.Errorf("unmarshal list: %w", err)
		}
		ok = true
		return nil
	})
	if err != nil {
		return list.List{}, false, err
	}
	return found, ok, nil
}

// AppendItem appends a new item to the named list's embedded sequence.
func (s *Store) AppendItem(ctx context.Context, name string, itemName string) (list.Item, error) {
	if err := ctx.Err(); err != nil {
		return list.Item{}, err
	}
	if s == nil || s.db == nil {
		return list.Item{}, fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(itemName) == "" {
		return list.Item{}, fmt.Errorf("item name is required")
	}

	item := list.Item{ID: id.New(), Name: itemName}
	err := s.mutateList(name, func(l *list.List) error {
		l.Items = append(l.Items, item)
		return nil
	})
	if err != nil {
		return list.Item{}, err
	}
	return item, nil
}

// RemoveItem removes the embedded item with the given id from the named list.
func (s *Store) RemoveItem(ctx context.Context, name string, itemID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if s == nil || s.db == nil {
		return false, fmt.Errorf("storage is not configured")
	}

	removed := false
	err := s.mutateList(name, func(l *list.List) error {
		for i, item := range l.Items {
			if item.ID != itemID {
				continue
			}
			l.Items = append(l.Items[:i], l.Items[i+1:]...)
			removed = true
			return nil
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

// mutateList applies a read-modify-write mutation to one list document
// inside a single write transaction.
func (s *Store) mutateList(name string, mutate func(*list.List) error) error {
	key := list.CanonicalKey(name)
	if key == "" {
		return storage.ErrNotFound
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(listBucket))
		if bucket == nil {
			return fmt.Errorf("list bucket is missing")
		}
		payload := bucket.Get([]byte(key))
		if payload == nil {
			return storage.ErrNotFound
		}
		var l list.List
		if err := json.Unmarshal(payload, &l); err != nil {
			return fmt.Errorf("unmarshal list: %w", err)
		}
		if err := mutate(&l); err != nil {
			return err
		}
		updated, err := json.Marshal(l)
		if err != nil {
			return fmt.Errorf("marshal list: %w", err)
		}
		return bucket.Put([]byte(key), updated)
	})
}

// putItem stores an item under the bucket's next sequence key so iteration
// preserves insertion order.
func putItem(bucket *bbolt.Bucket, item list.Item) error {
	seq, err := bucket.NextSequence()
	if err != nil {
		return fmt.Errorf("next item sequence: %w", err)
	}
	payload, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("marshal item: %w", err)
	}
	return bucket.Put(itemKey(seq), payload)
}

func itemKey(seq uint64) []byte {
	return []byte(fmt.Sprintf("%020d", seq))
}

func (s *Store) ensureBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range []string{itemBucket, listBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}
