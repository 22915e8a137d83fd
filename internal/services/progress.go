package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hecreatescode/versekeeper/internal/common"
	"github.com/hecreatescode/versekeeper/internal/models"
	"github.com/hecreatescode/versekeeper/internal/repositories/poems"
	"github.com/hecreatescode/versekeeper/internal/repositories/progress"
	"github.com/hecreatescode/versekeeper/internal/stats"
)

// ProgressService recomputes goal counters and achievement progress from
// the poem set. Stored counters are a cache of this derivation, never the
// authority.
type ProgressService interface {
	RecomputeGoals(ctx context.Context) ([]models.Goal, error)
	UpdateAchievements(ctx context.Context) ([]models.Achievement, error)
}

type progressService struct {
	poemRepo     poems.Repository
	progressRepo progress.Repository
	now          func() time.Time
}

func NewProgressService(poemRepo poems.Repository, progressRepo progress.Repository) ProgressService {
	return &progressService{poemRepo: poemRepo, progressRepo: progressRepo, now: time.Now}
}

func (s *progressService) RecomputeGoals(ctx context.Context) ([]models.Goal, error) {
	all := s.poemRepo.List(ctx)
	now := s.now()

	goals := s.progressRepo.Goals(ctx)
	for i := range goals {
		goals[i].Current = countInWindow(all, goals[i], now)
		if err := s.progressRepo.UpsertGoal(ctx, &goals[i]); err != nil {
			return nil, fmt.Errorf("failed to update goal %s: %w", goals[i].ID, err)
		}
	}
	return goals, nil
}

func countInWindow(all []models.Poem, g models.Goal, now time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var from, to time.Time
	switch g.Type {
	case models.GoalDaily:
		from, to = today, today
	case models.GoalWeekly:
		offset := (int(today.Weekday()) + 6) % 7
		from, to = today.AddDate(0, 0, -offset), today
	case models.GoalMonthly:
		from = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		to = today
	case models.GoalCustom:
		var err error
		from, err = time.Parse(models.DateLayout, g.StartDate)
		if err != nil {
			return 0
		}
		to = today
		if g.EndDate != "" {
			if end, err := time.Parse(models.DateLayout, g.EndDate); err == nil {
				to = end
			}
		}
	default:
		return 0
	}

	count := 0
	for _, p := range all {
		day, ok := p.Day()
		if !ok {
			continue
		}
		if !day.Before(from) && !day.After(to) {
			count++
		}
	}
	return count
}

func (s *progressService) UpdateAchievements(ctx context.Context) ([]models.Achievement, error) {
	all := s.poemRepo.List(ctx)
	now := s.now()
	summary := stats.Summarize(all, now)

	updates := map[string]int{
		"ach_first_poem":  summary.TotalPoems,
		"ach_ten_poems":   summary.TotalPoems,
		"ach_week_streak": summary.Streak,
	}

	for id, value := range updates {
		err := s.progressRepo.UpdateAchievement(ctx, id, value, now)
		if errors.Is(err, common.ErrorNotFound) {
			// seed removed from the store; nothing to track
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to update achievement %s: %w", id, err)
		}
	}
	return s.progressRepo.Achievements(ctx), nil
}
