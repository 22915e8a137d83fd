// Package journals stores the day-keyed records of which poems were saved
// on each calendar date.
package journals

import (
	"context"
	"fmt"

	"github.com/hecreatescode/versekeeper/internal/common"
	"github.com/hecreatescode/versekeeper/internal/models"
	"github.com/hecreatescode/versekeeper/internal/storage"
)

// Repository describes operations on DailyJournal records, which are keyed
// by calendar date (YYYY-MM-DD) rather than by id.
type Repository interface {
	List(ctx context.Context) []models.DailyJournal

	// FindByDate returns the record for date, or common.ErrorNotFound.
	FindByDate(ctx context.Context, date string) (*models.DailyJournal, error)

	// RecordPoem appends poemID to the journal for date, creating the day
	// record lazily on first use. Appending an already-listed id is a no-op.
	RecordPoem(ctx context.Context, date, poemID string) error
}

type KVRepository struct {
	store storage.Store
}

func NewKVRepository(store storage.Store) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) List(ctx context.Context) []models.DailyJournal {
	return storage.ReadCollection[models.DailyJournal](ctx, r.store, storage.KeyJournals)
}

func (r *KVRepository) FindByDate(ctx context.Context, date string) (*models.DailyJournal, error) {
	for _, j := range r.List(ctx) {
		if j.Date == date {
			return &j, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *KVRepository) RecordPoem(ctx context.Context, date, poemID string) error {
	all := r.List(ctx)

	found := false
	for i := range all {
		if all[i].Date != date {
			continue
		}
		found = true
		if contains(all[i].PoemIDs, poemID) {
			return nil
		}
		all[i].PoemIDs = append(all[i].PoemIDs, poemID)
		break
	}
	if !found {
		all = append(all, models.DailyJournal{Date: date, PoemIDs: []string{poemID}})
	}

	if err := storage.WriteCollection(ctx, r.store, storage.KeyJournals, all); err != nil {
		return fmt.Errorf("failed to save journal: %w", err)
	}
	return nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
