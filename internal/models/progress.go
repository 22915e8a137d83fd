package models

import "time"

// GoalType classifies the window a writing goal is measured over.
type GoalType string

const (
	GoalDaily   GoalType = "daily"
	GoalWeekly  GoalType = "weekly"
	GoalMonthly GoalType = "monthly"
	GoalCustom  GoalType = "custom"
)

// Goal is a writing target. Current is recomputed from the poem set and
// never stored authoritatively.
type Goal struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Type      GoalType  `json:"type"`
	Target    int       `json:"target"`
	Current   int       `json:"current"`
	StartDate string    `json:"startDate"`         // YYYY-MM-DD
	EndDate   string    `json:"endDate,omitempty"` // YYYY-MM-DD, custom goals only
	CreatedAt time.Time `json:"createdAt"`
}

// Achievement tracks progress toward a milestone. UnlockedAt is set the
// first time Progress reaches MaxProgress and never cleared afterwards.
type Achievement struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Progress    int        `json:"progress"`
	MaxProgress int        `json:"maxProgress"`
	UnlockedAt  *time.Time `json:"unlockedAt,omitempty"`
}

// Unlocked reports whether the achievement has been earned.
func (a Achievement) Unlocked() bool {
	return a.UnlockedAt != nil
}

// BuiltinAchievements returns the seed set stored on first initialization.
func BuiltinAchievements() []Achievement {
	return []Achievement{
		{
			ID:          "ach_first_poem",
			Title:       "First Verse",
			Description: "Write your first poem",
			Icon:        "🖋",
			MaxProgress: 1,
		},
		{
			ID:          "ach_ten_poems",
			Title:       "Finding a Voice",
			Description: "Write ten poems",
			Icon:        "📜",
			MaxProgress: 10,
		},
		{
			ID:          "ach_week_streak",
			Title:       "Daily Ritual",
			Description: "Write every day for a week",
			Icon:        "🔥",
			MaxProgress: 7,
		},
	}
}
