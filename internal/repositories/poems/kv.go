package poems

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hecreatescode/versekeeper/internal/common"
	"github.com/hecreatescode/versekeeper/internal/models"
	"github.com/hecreatescode/versekeeper/internal/storage"
)

// KVRepository implements Repository over a storage.Store. Every mutation
// is a read-modify-write of the whole poems collection; safe because the
// application has a single writer context.
type KVRepository struct {
	store storage.Store
}

func NewKVRepository(store storage.Store) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) List(ctx context.Context) []models.Poem {
	return storage.ReadCollection[models.Poem](ctx, r.store, storage.KeyPoems)
}

func (r *KVRepository) FindByID(ctx context.Context, id string) (*models.Poem, error) {
	for _, p := range r.List(ctx) {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *KVRepository) Upsert(ctx context.Context, p *models.Poem) error {
	if p.ID == "" {
		return common.ErrorMissingID
	}

	all := r.List(ctx)

	replaced := false
	for i, existing := range all {
		if existing.ID != p.ID {
			continue
		}
		p.Versions = nextVersions(existing, *p)
		all[i] = *p
		replaced = true
		break
	}
	if !replaced {
		all = append(all, *p)
	}

	if err := storage.WriteCollection(ctx, r.store, storage.KeyPoems, all); err != nil {
		return fmt.Errorf("failed to save poem: %w", err)
	}
	return nil
}

// nextVersions computes the version list for an update. A snapshot is taken
// only when content actually changed; it captures the pre-update content
// with the pre-update timestamp, inserted at the head. The list is capped
// at models.MaxVersions, oldest evicted.
func nextVersions(old, updated models.Poem) []models.PoemVersion {
	if updated.Content == old.Content {
		return old.Versions
	}

	snapshot := models.PoemVersion{
		ID:        uuid.NewString(),
		Content:   old.Content,
		Timestamp: old.UpdatedAt,
	}

	versions := make([]models.PoemVersion, 0, len(old.Versions)+1)
	versions = append(versions, snapshot)
	versions = append(versions, old.Versions...)
	if len(versions) > models.MaxVersions {
		versions = versions[:models.MaxVersions]
	}
	return versions
}

func (r *KVRepository) Remove(ctx context.Context, id string) error {
	all := r.List(ctx)

	kept := all[:0]
	for _, p := range all {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(all) {
		// absent id, nothing to do
		return nil
	}

	if err := storage.WriteCollection(ctx, r.store, storage.KeyPoems, kept); err != nil {
		return fmt.Errorf("failed to remove poem: %w", err)
	}
	return nil
}

func (r *KVRepository) AddToCollection(ctx context.Context, poemID, collectionID string) error {
	p, err := r.FindByID(ctx, poemID)
	if err != nil {
		return nil
	}
	if p.InCollection(collectionID) {
		return nil
	}
	p.CollectionIDs = append(p.CollectionIDs, collectionID)
	return r.Upsert(ctx, p)
}
