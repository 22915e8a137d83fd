package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/hecreatescode/versekeeper/internal/models"
	"github.com/hecreatescode/versekeeper/internal/stats"
)

func (a *App) showStats(ctx context.Context) {
	s := stats.Summarize(a.poemService.List(ctx), time.Now())

	fmt.Printf("Poems: %d (this week %d, this month %d)\n", s.TotalPoems, s.PoemsThisWeek, s.PoemsThisMonth)
	fmt.Printf("Average length: %d characters\n", s.AverageLength)
	fmt.Printf("Streak: %d day(s)\n", s.Streak)

	if len(s.TopTags) > 0 {
		fmt.Println("Top tags:")
		for _, tc := range s.TopTags {
			fmt.Printf("  %s (%d)\n", tc.Tag, tc.Count)
		}
	}
	if s.MostProductiveDay >= 0 {
		fmt.Printf("Most productive day: %s\n", time.Weekday(s.MostProductiveDay))
	}
	if s.MostProductiveHour >= 0 {
		fmt.Printf("Most productive hour: %02d:00\n", s.MostProductiveHour)
	}
}

func (a *App) showGoals(ctx context.Context) {
	goals, err := a.progressService.RecomputeGoals(ctx)
	if err != nil {
		a.log.Error(ctx, "error recomputing goals", "err", err)
		return
	}
	if len(goals) == 0 {
		fmt.Println("No goals yet. Type 'addgoal' to create one.")
		return
	}
	for _, g := range goals {
		fmt.Printf("%s  %s [%s]  %d/%d\n", g.ID, g.Title, g.Type, g.Current, g.Target)
	}
}

func (a *App) addGoal(ctx context.Context) {
	title, err := GetSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		a.log.Error(ctx, "input error", "err", err)
		return
	}

	kind, err := GetSimpleText(a.reader, "Type (daily/weekly/monthly/custom)", os.Stdout)
	if err != nil {
		a.log.Error(ctx, "input error", "err", err)
		return
	}
	switch models.GoalType(kind) {
	case models.GoalDaily, models.GoalWeekly, models.GoalMonthly, models.GoalCustom:
	default:
		fmt.Println("Unknown goal type:", kind)
		return
	}

	targetText, err := GetSimpleText(a.reader, "Target (number of poems)", os.Stdout)
	if err != nil {
		a.log.Error(ctx, "input error", "err", err)
		return
	}
	target, err := strconv.Atoi(targetText)
	if err != nil || target <= 0 {
		fmt.Println("Target must be a positive number")
		return
	}

	now := time.Now()
	g := &models.Goal{
		ID:        models.NewID("goal"),
		Title:     title,
		Type:      models.GoalType(kind),
		Target:    target,
		StartDate: now.Format(models.DateLayout),
		CreatedAt: now,
	}
	if err := a.progressRepo.UpsertGoal(ctx, g); err != nil {
		a.log.Error(ctx, "error saving goal", "err", err)
		return
	}
	fmt.Printf("Created %s\n", g.ID)
}

func (a *App) showAchievements(ctx context.Context) {
	achievements, err := a.progressService.UpdateAchievements(ctx)
	if err != nil {
		a.log.Error(ctx, "error updating achievements", "err", err)
		return
	}
	for _, ach := range achievements {
		status := fmt.Sprintf("%d/%d", ach.Progress, ach.MaxProgress)
		if ach.Unlocked() {
			status = "unlocked " + ach.UnlockedAt.Format(models.DateLayout)
		}
		fmt.Printf("%s %s: %s (%s)\n", ach.Icon, ach.Title, ach.Description, status)
	}
}
