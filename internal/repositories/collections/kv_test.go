package collections

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hecreatescode/versekeeper/internal/common"
	"github.com/hecreatescode/versekeeper/internal/models"
	"github.com/hecreatescode/versekeeper/internal/storage"
)

func setupRepo(t *testing.T) (*KVRepository, context.Context) {
	t.Helper()
	return NewKVRepository(storage.NewMemoryStore()), context.Background()
}

func TestUpsertAndList_SortedByOrder(t *testing.T) {
	r, ctx := setupRepo(t)

	require.NoError(t, r.Upsert(ctx, &models.Collection{ID: "c1", Name: "Later", Order: 2}))
	require.NoError(t, r.Upsert(ctx, &models.Collection{ID: "c2", Name: "First", Order: 0}))
	require.NoError(t, r.Upsert(ctx, &models.Collection{ID: "c3", Name: "Middle", Order: 1}))

	all := r.List(ctx)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"c2", "c3", "c1"}, []string{all[0].ID, all[1].ID, all[2].ID})
}

func TestUpsert_MissingID(t *testing.T) {
	r, ctx := setupRepo(t)
	err := r.Upsert(ctx, &models.Collection{Name: "anonymous"})
	assert.True(t, errors.Is(err, common.ErrorMissingID))
}

func TestAddPoem_NoDuplicates(t *testing.T) {
	r, ctx := setupRepo(t)

	require.NoError(t, r.Upsert(ctx, &models.Collection{ID: "c1", Name: "Nature"}))
	require.NoError(t, r.AddPoem(ctx, "c1", "p1"))
	require.NoError(t, r.AddPoem(ctx, "c1", "p1"))
	require.NoError(t, r.AddPoem(ctx, "c1", "p2"))

	c, err := r.FindByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, c.PoemIDs)
}

func TestAddPoem_UnknownCollection(t *testing.T) {
	r, ctx := setupRepo(t)
	err := r.AddPoem(ctx, "ghost", "p1")
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestRemovePoem(t *testing.T) {
	r, ctx := setupRepo(t)

	require.NoError(t, r.Upsert(ctx, &models.Collection{ID: "c1", PoemIDs: []string{"p1", "p2"}}))
	require.NoError(t, r.RemovePoem(ctx, "c1", "p1"))

	c, err := r.FindByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p2"}, c.PoemIDs)
}

func TestRemove_Idempotent(t *testing.T) {
	r, ctx := setupRepo(t)

	require.NoError(t, r.Upsert(ctx, &models.Collection{ID: "c1"}))
	require.NoError(t, r.Remove(ctx, "c1"))
	require.NoError(t, r.Remove(ctx, "c1"))
	assert.Empty(t, r.List(ctx))
}

func TestReorder(t *testing.T) {
	r, ctx := setupRepo(t)

	require.NoError(t, r.Upsert(ctx, &models.Collection{ID: "c1", Order: 0}))
	require.NoError(t, r.Upsert(ctx, &models.Collection{ID: "c2", Order: 1}))
	require.NoError(t, r.Upsert(ctx, &models.Collection{ID: "c3", Order: 2}))

	require.NoError(t, r.Reorder(ctx, []string{"c3", "c1"}))

	all := r.List(ctx)
	require.Len(t, all, 3)
	assert.Equal(t, "c3", all[0].ID)
	assert.Equal(t, "c1", all[1].ID)
	assert.Equal(t, "c2", all[2].ID) // unmentioned, pushed after
}
