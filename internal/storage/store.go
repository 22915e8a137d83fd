// Package storage provides the namespaced key-value persistence layer
// backing every entity collection. Each collection is serialized as one
// JSON value under a fixed key; a write replaces the whole value in a
// single statement. There is no cross-key transactionality and concurrent
// processes are not coordinated (last writer wins); acceptable for a
// single-user local journal.
package storage

import (
	"context"
	"encoding/json"
)

// Fixed collection keys.
const (
	KeyPoems        = "poems"
	KeyCollections  = "collections"
	KeyJournals     = "journals"
	KeySettings     = "settings"
	KeyTemplates    = "templates"
	KeyGoals        = "goals"
	KeyAchievements = "achievements"
)

// Store is the minimal raw contract implemented by SQLiteStore and
// MemoryStore. Read returns (nil, nil) for an absent key.
type Store interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
}

// ReadCollection reads and decodes the collection stored under key.
// It fails soft: an absent key, a read error, or a value that does not
// parse all yield an empty slice, never an error. Corrupt data degrades
// to "no entries" rather than blocking the user.
func ReadCollection[T any](ctx context.Context, s Store, key string) []T {
	data, err := s.Read(ctx, key)
	if err != nil || len(data) == 0 {
		return []T{}
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return []T{}
	}
	return items
}

// WriteCollection serializes items and replaces the collection under key.
func WriteCollection[T any](ctx context.Context, s Store, key string, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.Write(ctx, key, data)
}

// ReadRecord reads a single record (not a collection) stored under key.
// Returns (zero, false) when the key is absent or the value fails to parse.
func ReadRecord[T any](ctx context.Context, s Store, key string) (T, bool) {
	var rec T
	data, err := s.Read(ctx, key)
	if err != nil || len(data) == 0 {
		return rec, false
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return rec, false
	}
	return rec, true
}

// WriteRecord serializes a single record and replaces the value under key.
func WriteRecord[T any](ctx context.Context, s Store, key string, rec T) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.Write(ctx, key, data)
}
