package poems

import (
	"context"

	"github.com/hecreatescode/versekeeper/internal/models"
)

// Repository describes CRUD and query operations for Poem records.
// Implementations are backed by the local key-value store.
type Repository interface {
	// List returns all poems in storage order. Read failures degrade to an
	// empty list.
	List(ctx context.Context) []models.Poem

	// FindByID returns a poem by id, or common.ErrorNotFound.
	FindByID(ctx context.Context, id string) (*models.Poem, error)

	// Upsert replaces the poem with the same id, or appends it. Version
	// history is computed here: when the incoming content differs from the
	// stored content, the pre-update content is snapshotted at the head of
	// the version list, capped at models.MaxVersions. A poem without an id
	// is rejected.
	Upsert(ctx context.Context, p *models.Poem) error

	// Remove filters the poem out of the collection. Removing an absent id
	// is a no-op.
	Remove(ctx context.Context, id string) error

	// AddToCollection appends collectionID to the poem's collection list if
	// not already present, then persists the poem. No-op when the poem does
	// not exist.
	AddToCollection(ctx context.Context, poemID, collectionID string) error
}
