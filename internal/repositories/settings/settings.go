// Package settings stores the single application settings record.
package settings

import (
	"context"
	"fmt"
	"sync"

	"github.com/hecreatescode/versekeeper/internal/models"
	"github.com/hecreatescode/versekeeper/internal/storage"
)

// Repository manages the single Settings record.
type Repository interface {
	// Get returns a fully-populated record: any field missing from stored
	// data is backfilled from defaults, so callers never see unset fields
	// that have a default. An absent or unreadable record yields defaults.
	Get(ctx context.Context) models.Settings

	// Put overwrites the stored record wholesale and notifies watchers.
	Put(ctx context.Context, s models.Settings) error

	// Watch returns a channel that receives a signal after every Put. This
	// is the externally-observable settings-changed notification; it is an
	// advisory signal, not a mutex. Slow receivers miss intermediate
	// signals rather than blocking writers.
	Watch() <-chan struct{}
}

type KVRepository struct {
	store storage.Store

	mu       sync.Mutex
	watchers []chan struct{}
}

func NewKVRepository(store storage.Store) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) Get(ctx context.Context) models.Settings {
	rec, ok := storage.ReadRecord[models.Settings](ctx, r.store, storage.KeySettings)
	if !ok {
		return models.DefaultSettings()
	}
	return rec.Backfilled()
}

func (r *KVRepository) Put(ctx context.Context, s models.Settings) error {
	if err := storage.WriteRecord(ctx, r.store, storage.KeySettings, s); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	r.notify()
	return nil
}

func (r *KVRepository) Watch() <-chan struct{} {
	ch := make(chan struct{}, 1)
	r.mu.Lock()
	r.watchers = append(r.watchers, ch)
	r.mu.Unlock()
	return ch
}

func (r *KVRepository) notify() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ch := range r.watchers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
