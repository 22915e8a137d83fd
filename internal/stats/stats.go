// Package stats computes derived, read-only summaries over the poem set.
// It keeps no state of its own; callers pass the full poem list and a
// reference time so results are reproducible in tests.
package stats

import (
	"math"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/hecreatescode/versekeeper/internal/models"
)

// TopTagCount limits the ranked tag list.
const TopTagCount = 5

// TagCount is one entry of the ranked tag list.
type TagCount struct {
	Tag   string
	Count int
}

// Summary is the aggregate view rendered by the stats screen.
// MostProductiveDay is a weekday index (Sunday=0) and MostProductiveHour an
// hour of day (0-23); both are -1 when there is no data to rank.
type Summary struct {
	TotalPoems         int
	PoemsThisWeek      int
	PoemsThisMonth     int
	AverageLength      int
	TopTags            []TagCount
	Streak             int
	MostProductiveDay  int
	MostProductiveHour int
}

// Summarize aggregates the poem set relative to now. Content length counts
// Unicode characters of the stored content as-is; an encrypted poem
// contributes its blob length, matching what the stats screen shows without
// a password.
func Summarize(poems []models.Poem, now time.Time) Summary {
	s := Summary{
		TotalPoems:         len(poems),
		TopTags:            topTags(poems),
		Streak:             streak(poems, now),
		MostProductiveDay:  productiveDay(poems),
		MostProductiveHour: productiveHour(poems),
	}

	today := midnight(now)
	weekStart := startOfWeek(today)
	totalRunes := 0

	for _, p := range poems {
		totalRunes += utf8.RuneCountInString(p.Content)

		day, ok := p.Day()
		if !ok {
			continue
		}
		if !day.Before(weekStart) && !day.After(today) {
			s.PoemsThisWeek++
		}
		if day.Year() == today.Year() && day.Month() == today.Month() {
			s.PoemsThisMonth++
		}
	}

	if len(poems) > 0 {
		s.AverageLength = int(math.Round(float64(totalRunes) / float64(len(poems))))
	}

	return s
}

// startOfWeek returns the Monday of the week containing day.
func startOfWeek(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// topTags ranks tags by frequency; ties keep the order in which a tag was
// first encountered in the input.
func topTags(poems []models.Poem) []TagCount {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	for _, p := range poems {
		for _, tag := range p.Tags {
			if _, ok := counts[tag]; !ok {
				firstSeen[tag] = len(firstSeen)
			}
			counts[tag]++
		}
	}

	ranked := make([]TagCount, 0, len(counts))
	for tag, count := range counts {
		ranked = append(ranked, TagCount{Tag: tag, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Tag] < firstSeen[ranked[j].Tag]
	})

	if len(ranked) > TopTagCount {
		ranked = ranked[:TopTagCount]
	}
	return ranked
}

// streak counts consecutive days with at least one poem, anchored at today
// with a one-day grace period: a poem yesterday but none today still keeps
// the streak alive. The walk stops at the first gap larger than one day.
func streak(poems []models.Poem, now time.Time) int {
	distinct := make(map[time.Time]struct{})
	for _, p := range poems {
		if day, ok := p.Day(); ok {
			distinct[midnight(day)] = struct{}{}
		}
	}
	if len(distinct) == 0 {
		return 0
	}

	days := make([]time.Time, 0, len(distinct))
	for d := range distinct {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	anchor := midnight(now)
	count := 0
	for _, day := range days {
		gap := int(anchor.Sub(day).Hours() / 24)
		if gap < 0 || gap > 1 {
			break
		}
		count++
		anchor = day
	}
	return count
}

// productiveDay returns the weekday (Sunday=0) with the most poems, lowest
// index winning ties, or -1 when no poem has a parsable date.
func productiveDay(poems []models.Poem) int {
	var counts [7]int
	seen := false
	for _, p := range poems {
		if day, ok := p.Day(); ok {
			counts[int(day.Weekday())]++
			seen = true
		}
	}
	if !seen {
		return -1
	}

	best := 0
	for i := 1; i < 7; i++ {
		if counts[i] > counts[best] {
			best = i
		}
	}
	return best
}

// productiveHour returns the hour of day (0-23) with the most poems, lowest
// hour winning ties. The hour comes from the creation timestamp when set,
// otherwise from the date field (hour 0). Returns -1 for an empty set.
func productiveHour(poems []models.Poem) int {
	if len(poems) == 0 {
		return -1
	}

	var counts [24]int
	for _, p := range poems {
		if !p.CreatedAt.IsZero() {
			counts[p.CreatedAt.Hour()]++
			continue
		}
		counts[0]++
	}

	best := 0
	for h := 1; h < 24; h++ {
		if counts[h] > counts[best] {
			best = h
		}
	}
	return best
}
