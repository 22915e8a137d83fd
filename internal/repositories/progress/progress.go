// Package progress stores writing goals and achievements.
package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/hecreatescode/versekeeper/internal/common"
	"github.com/hecreatescode/versekeeper/internal/models"
	"github.com/hecreatescode/versekeeper/internal/storage"
)

type Repository interface {
	// InitAchievements seeds the built-in achievements if none are stored.
	// Called once at startup.
	InitAchievements(ctx context.Context) error

	Goals(ctx context.Context) []models.Goal
	UpsertGoal(ctx context.Context, g *models.Goal) error
	RemoveGoal(ctx context.Context, id string) error

	Achievements(ctx context.Context) []models.Achievement

	// UpdateAchievement clamps progress to [0, MaxProgress] and stamps
	// UnlockedAt the first time progress reaches the maximum. An unlock is
	// never cleared, even if progress later drops.
	UpdateAchievement(ctx context.Context, id string, progress int, now time.Time) error
}

type KVRepository struct {
	store storage.Store
}

func NewKVRepository(store storage.Store) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) InitAchievements(ctx context.Context) error {
	if len(r.Achievements(ctx)) > 0 {
		return nil
	}
	return r.writeAchievements(ctx, models.BuiltinAchievements())
}

func (r *KVRepository) Goals(ctx context.Context) []models.Goal {
	return storage.ReadCollection[models.Goal](ctx, r.store, storage.KeyGoals)
}

func (r *KVRepository) UpsertGoal(ctx context.Context, g *models.Goal) error {
	if g.ID == "" {
		return common.ErrorMissingID
	}

	all := r.Goals(ctx)
	replaced := false
	for i, existing := range all {
		if existing.ID == g.ID {
			all[i] = *g
			replaced = true
			break
		}
	}
	if !replaced {
		all = append(all, *g)
	}

	if err := storage.WriteCollection(ctx, r.store, storage.KeyGoals, all); err != nil {
		return fmt.Errorf("failed to save goals: %w", err)
	}
	return nil
}

func (r *KVRepository) RemoveGoal(ctx context.Context, id string) error {
	all := r.Goals(ctx)
	kept := all[:0]
	for _, g := range all {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	if len(kept) == len(all) {
		return nil
	}
	if err := storage.WriteCollection(ctx, r.store, storage.KeyGoals, kept); err != nil {
		return fmt.Errorf("failed to remove goal: %w", err)
	}
	return nil
}

func (r *KVRepository) Achievements(ctx context.Context) []models.Achievement {
	return storage.ReadCollection[models.Achievement](ctx, r.store, storage.KeyAchievements)
}

func (r *KVRepository) UpdateAchievement(ctx context.Context, id string, progress int, now time.Time) error {
	all := r.Achievements(ctx)

	for i := range all {
		if all[i].ID != id {
			continue
		}
		if progress < 0 {
			progress = 0
		}
		if progress > all[i].MaxProgress {
			progress = all[i].MaxProgress
		}
		all[i].Progress = progress
		if all[i].UnlockedAt == nil && progress >= all[i].MaxProgress {
			unlocked := now
			all[i].UnlockedAt = &unlocked
		}
		return r.writeAchievements(ctx, all)
	}

	return common.ErrorNotFound
}

func (r *KVRepository) writeAchievements(ctx context.Context, all []models.Achievement) error {
	if err := storage.WriteCollection(ctx, r.store, storage.KeyAchievements, all); err != nil {
		return fmt.Errorf("failed to save achievements: %w", err)
	}
	return nil
}
