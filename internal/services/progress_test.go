package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hecreatescode/versekeeper/internal/models"
	"github.com/hecreatescode/versekeeper/internal/repositories/poems"
	"github.com/hecreatescode/versekeeper/internal/repositories/progress"
	"github.com/hecreatescode/versekeeper/internal/storage"
)

func setupProgressService(t *testing.T) (*progressService, *poems.KVRepository, *progress.KVRepository, context.Context) {
	t.Helper()
	store := storage.NewMemoryStore()
	poemRepo := poems.NewKVRepository(store)
	progressRepo := progress.NewKVRepository(store)

	svc := NewProgressService(poemRepo, progressRepo).(*progressService)
	// Monday 2026-08-31
	svc.now = func() time.Time { return time.Date(2026, 8, 31, 18, 0, 0, 0, time.UTC) }
	return svc, poemRepo, progressRepo, context.Background()
}

func addPoemOn(t *testing.T, repo *poems.KVRepository, ctx context.Context, date string) {
	t.Helper()
	require.NoError(t, repo.Upsert(ctx, &models.Poem{ID: models.NewID("poem"), Date: date, Content: "x"}))
}

func TestRecomputeGoals_Windows(t *testing.T) {
	svc, poemRepo, progressRepo, ctx := setupProgressService(t)

	addPoemOn(t, poemRepo, ctx, "2026-08-31") // today
	addPoemOn(t, poemRepo, ctx, "2026-08-30") // yesterday (Sunday, previous week)
	addPoemOn(t, poemRepo, ctx, "2026-08-05") // earlier this month

	goals := []models.Goal{
		{ID: "g_daily", Type: models.GoalDaily, Target: 1},
		{ID: "g_weekly", Type: models.GoalWeekly, Target: 3},
		{ID: "g_monthly", Type: models.GoalMonthly, Target: 10},
		{ID: "g_custom", Type: models.GoalCustom, Target: 5, StartDate: "2026-08-29", EndDate: "2026-08-30"},
	}
	for i := range goals {
		require.NoError(t, progressRepo.UpsertGoal(ctx, &goals[i]))
	}

	got, err := svc.RecomputeGoals(ctx)
	require.NoError(t, err)

	byID := make(map[string]int)
	for _, g := range got {
		byID[g.ID] = g.Current
	}
	assert.Equal(t, 1, byID["g_daily"])
	assert.Equal(t, 1, byID["g_weekly"]) // Monday week start excludes Sunday
	assert.Equal(t, 3, byID["g_monthly"])
	assert.Equal(t, 1, byID["g_custom"])
}

func TestUpdateAchievements_ProgressAndUnlock(t *testing.T) {
	svc, poemRepo, progressRepo, ctx := setupProgressService(t)
	require.NoError(t, progressRepo.InitAchievements(ctx))

	addPoemOn(t, poemRepo, ctx, "2026-08-31")
	addPoemOn(t, poemRepo, ctx, "2026-08-30")

	got, err := svc.UpdateAchievements(ctx)
	require.NoError(t, err)

	byID := make(map[string]models.Achievement)
	for _, a := range got {
		byID[a.ID] = a
	}

	assert.True(t, byID["ach_first_poem"].Unlocked())
	assert.Equal(t, 2, byID["ach_ten_poems"].Progress)
	assert.False(t, byID["ach_ten_poems"].Unlocked())
	assert.Equal(t, 2, byID["ach_week_streak"].Progress)
}

func TestUpdateAchievements_ToleratesRemovedSeeds(t *testing.T) {
	svc, poemRepo, _, ctx := setupProgressService(t)
	// achievements never initialized: all updates hit absent ids

	addPoemOn(t, poemRepo, ctx, "2026-08-31")

	got, err := svc.UpdateAchievements(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}
