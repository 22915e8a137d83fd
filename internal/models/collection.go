package models

import "time"

// Collection groups poems for display. PoemIDs is the source of truth for
// membership; Poem.CollectionIDs is a denormalized mirror. Order is the
// explicit position persisted by drag-reorder in the original UI.
type Collection struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"` // hex, e.g. "#8b5cf6"
	PoemIDs     []string  `json:"poemIds"`
	CreatedAt   time.Time `json:"createdAt"`
	Order       int       `json:"order"`
}

// HasPoem reports whether the collection lists the given poem id.
func (c Collection) HasPoem(poemID string) bool {
	for _, id := range c.PoemIDs {
		if id == poemID {
			return true
		}
	}
	return false
}

// DailyJournal records which poems were saved on a calendar day. One record
// per day, created lazily the first time a poem is saved on that date.
type DailyJournal struct {
	Date    string   `json:"date"` // YYYY-MM-DD, unique
	PoemIDs []string `json:"poemIds"`
}
