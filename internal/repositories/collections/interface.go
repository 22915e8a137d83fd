package collections

import (
	"context"

	"github.com/hecreatescode/versekeeper/internal/models"
)

// Repository describes CRUD and membership operations for Collection
// records. Collection.PoemIDs is the source of truth for membership; the
// denormalized Poem.CollectionIDs mirror is maintained by the poem service.
type Repository interface {
	// List returns all collections sorted by their explicit display order.
	List(ctx context.Context) []models.Collection

	// FindByID returns a collection by id, or common.ErrorNotFound.
	FindByID(ctx context.Context, id string) (*models.Collection, error)

	// Upsert replaces the collection with the same id, or appends it.
	// A collection without an id is rejected.
	Upsert(ctx context.Context, c *models.Collection) error

	// Remove filters the collection out; idempotent. Poems referencing the
	// removed collection are not touched (orphans are filtered on read).
	Remove(ctx context.Context, id string) error

	// AddPoem appends poemID to the collection's poem list if absent.
	AddPoem(ctx context.Context, collectionID, poemID string) error

	// RemovePoem filters poemID out of the collection's poem list.
	RemovePoem(ctx context.Context, collectionID, poemID string) error

	// Reorder persists the explicit display order given by ids; collections
	// not mentioned keep their relative order after the mentioned ones.
	Reorder(ctx context.Context, ids []string) error
}
