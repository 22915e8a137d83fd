package collections

import (
	"context"
	"fmt"
	"sort"

	"github.com/hecreatescode/versekeeper/internal/common"
	"github.com/hecreatescode/versekeeper/internal/models"
	"github.com/hecreatescode/versekeeper/internal/storage"
)

type KVRepository struct {
	store storage.Store
}

func NewKVRepository(store storage.Store) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) List(ctx context.Context) []models.Collection {
	all := storage.ReadCollection[models.Collection](ctx, r.store, storage.KeyCollections)
	sort.SliceStable(all, func(i, j int) bool { return all[i].Order < all[j].Order })
	return all
}

func (r *KVRepository) FindByID(ctx context.Context, id string) (*models.Collection, error) {
	for _, c := range r.List(ctx) {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *KVRepository) Upsert(ctx context.Context, c *models.Collection) error {
	if c.ID == "" {
		return common.ErrorMissingID
	}

	all := r.List(ctx)

	replaced := false
	for i, existing := range all {
		if existing.ID == c.ID {
			all[i] = *c
			replaced = true
			break
		}
	}
	if !replaced {
		all = append(all, *c)
	}

	return r.write(ctx, all)
}

func (r *KVRepository) Remove(ctx context.Context, id string) error {
	all := r.List(ctx)

	kept := all[:0]
	for _, c := range all {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(all) {
		return nil
	}
	return r.write(ctx, kept)
}

func (r *KVRepository) AddPoem(ctx context.Context, collectionID, poemID string) error {
	c, err := r.FindByID(ctx, collectionID)
	if err != nil {
		return err
	}
	if c.HasPoem(poemID) {
		return nil
	}
	c.PoemIDs = append(c.PoemIDs, poemID)
	return r.Upsert(ctx, c)
}

func (r *KVRepository) RemovePoem(ctx context.Context, collectionID, poemID string) error {
	c, err := r.FindByID(ctx, collectionID)
	if err != nil {
		return err
	}

	kept := c.PoemIDs[:0]
	for _, id := range c.PoemIDs {
		if id != poemID {
			kept = append(kept, id)
		}
	}
	c.PoemIDs = kept
	return r.Upsert(ctx, c)
}

func (r *KVRepository) Reorder(ctx context.Context, ids []string) error {
	position := make(map[string]int, len(ids))
	for i, id := range ids {
		position[id] = i
	}

	all := r.List(ctx)
	next := len(ids)
	for i := range all {
		if pos, ok := position[all[i].ID]; ok {
			all[i].Order = pos
		} else {
			all[i].Order = next
			next++
		}
	}

	return r.write(ctx, all)
}

func (r *KVRepository) write(ctx context.Context, all []models.Collection) error {
	if err := storage.WriteCollection(ctx, r.store, storage.KeyCollections, all); err != nil {
		return fmt.Errorf("failed to save collections: %w", err)
	}
	return nil
}
