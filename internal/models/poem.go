// Package models defines the persisted entity types of the poetry journal.
package models

import "time"

// DateLayout is the calendar-day format used for poem dates and journal keys.
const DateLayout = "2006-01-02"

// MaxVersions caps a poem's version history; the oldest snapshot is evicted
// first.
const MaxVersions = 10

// PoemVersion is a snapshot of a poem's content before an update replaced
// it. The list on Poem is ordered most-recent-first.
type PoemVersion struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Poem is the central entity. Content holds either plaintext or, when
// IsEncrypted is set, the opaque blob produced by the encryption service.
type Poem struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Content       string        `json:"content"`
	Date          string        `json:"date"` // YYYY-MM-DD, user-assigned
	Tags          []string      `json:"tags"`
	Moods         []string      `json:"moods"`
	CollectionIDs []string      `json:"collectionIds"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
	IsEncrypted   bool          `json:"isEncrypted"`
	Versions      []PoemVersion `json:"versions,omitempty"`
}

// Day parses the poem's user-assigned date. ok is false when the field is
// empty or malformed.
func (p Poem) Day() (time.Time, bool) {
	d, err := time.Parse(DateLayout, p.Date)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// HasTag reports whether the poem carries the given tag.
func (p Poem) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// InCollection reports whether the poem lists the given collection id.
func (p Poem) InCollection(collectionID string) bool {
	for _, id := range p.CollectionIDs {
		if id == collectionID {
			return true
		}
	}
	return false
}
