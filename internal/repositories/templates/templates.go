// Package templates stores poem templates. Built-in seeds are written by an
// explicit Init call during application wiring, never as a side effect of a
// read.
package templates

import (
	"context"
	"fmt"

	"github.com/hecreatescode/versekeeper/internal/common"
	"github.com/hecreatescode/versekeeper/internal/models"
	"github.com/hecreatescode/versekeeper/internal/storage"
)

type Repository interface {
	// Init seeds the built-in templates if the store holds none. Called
	// once at startup; subsequent reads return whatever is stored,
	// including user edits or deletions of the seeds.
	Init(ctx context.Context) error

	List(ctx context.Context) []models.PoemTemplate
	Upsert(ctx context.Context, t *models.PoemTemplate) error
	Remove(ctx context.Context, id string) error
}

type KVRepository struct {
	store storage.Store
}

func NewKVRepository(store storage.Store) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) Init(ctx context.Context) error {
	if len(r.List(ctx)) > 0 {
		return nil
	}
	return r.write(ctx, models.BuiltinTemplates())
}

func (r *KVRepository) List(ctx context.Context) []models.PoemTemplate {
	return storage.ReadCollection[models.PoemTemplate](ctx, r.store, storage.KeyTemplates)
}

func (r *KVRepository) Upsert(ctx context.Context, t *models.PoemTemplate) error {
	if t.ID == "" {
		return common.ErrorMissingID
	}

	all := r.List(ctx)
	replaced := false
	for i, existing := range all {
		if existing.ID == t.ID {
			all[i] = *t
			replaced = true
			break
		}
	}
	if !replaced {
		all = append(all, *t)
	}
	return r.write(ctx, all)
}

func (r *KVRepository) Remove(ctx context.Context, id string) error {
	all := r.List(ctx)
	kept := all[:0]
	for _, t := range all {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(all) {
		return nil
	}
	return r.write(ctx, kept)
}

func (r *KVRepository) write(ctx context.Context, all []models.PoemTemplate) error {
	if err := storage.WriteCollection(ctx, r.store, storage.KeyTemplates, all); err != nil {
		return fmt.Errorf("failed to save templates: %w", err)
	}
	return nil
}
