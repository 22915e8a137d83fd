package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hecreatescode/versekeeper/internal/models"
	"github.com/hecreatescode/versekeeper/internal/storage"
)

func TestGet_AbsentRecordYieldsDefaults(t *testing.T) {
	r := NewKVRepository(storage.NewMemoryStore())

	got := r.Get(context.Background())
	assert.Equal(t, models.DefaultSettings(), got)
}

func TestGet_BackfillsMissingFields(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	// a record written by an older build, missing customMoods and layout
	require.NoError(t, store.Write(ctx, storage.KeySettings, []byte(`{"theme":"dark","font":"mono","fontSize":14}`)))

	got := NewKVRepository(store).Get(ctx)
	assert.Equal(t, "dark", got.Theme)
	assert.Equal(t, "mono", got.Font)
	assert.Equal(t, "list", got.Layout)
	require.NotNil(t, got.CustomMoods)
	assert.Empty(t, got.CustomMoods)
}

func TestPut_OverwritesWholesale(t *testing.T) {
	r := NewKVRepository(storage.NewMemoryStore())
	ctx := context.Background()

	s := models.DefaultSettings()
	s.Theme = "dark"
	s.CustomMoods = []string{"stormy"}
	require.NoError(t, r.Put(ctx, s))

	s2 := models.DefaultSettings()
	s2.Theme = "sepia"
	require.NoError(t, r.Put(ctx, s2))

	got := r.Get(ctx)
	assert.Equal(t, "sepia", got.Theme)
	assert.Empty(t, got.CustomMoods)
}

func TestWatch_SignalsOnPut(t *testing.T) {
	r := NewKVRepository(storage.NewMemoryStore())
	ctx := context.Background()

	ch := r.Watch()
	require.NoError(t, r.Put(ctx, models.DefaultSettings()))

	select {
	case <-ch:
	default:
		t.Fatal("expected a change signal after Put")
	}
}

func TestWatch_SlowReceiverDoesNotBlockWriters(t *testing.T) {
	r := NewKVRepository(storage.NewMemoryStore())
	ctx := context.Background()

	_ = r.Watch() // never drained
	require.NoError(t, r.Put(ctx, models.DefaultSettings()))
	require.NoError(t, r.Put(ctx, models.DefaultSettings()))
}
