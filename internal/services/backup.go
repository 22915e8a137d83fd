package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hecreatescode/versekeeper/internal/filex"
	"github.com/hecreatescode/versekeeper/internal/logging"
	"github.com/hecreatescode/versekeeper/internal/models"
	"github.com/hecreatescode/versekeeper/internal/storage"
)

// Snapshot is the backup wire format. Raw fields keep presence information:
// on import, only the keys actually present in the snapshot replace their
// store collections.
type Snapshot struct {
	Poems       json.RawMessage `json:"poems,omitempty"`
	Collections json.RawMessage `json:"collections,omitempty"`
	Journals    json.RawMessage `json:"journals,omitempty"`
	Settings    json.RawMessage `json:"settings,omitempty"`
	ExportDate  string          `json:"exportDate"`
}

// BackupService exports and imports whole-store snapshots and runs the
// periodic auto-backup task.
type BackupService interface {
	// ExportAll serializes poems, collections, journals and settings plus
	// an export timestamp.
	ExportAll(ctx context.Context) ([]byte, error)

	// ImportAll applies a snapshot. On any parse or validation failure it
	// returns false and the store is left untouched; otherwise each key
	// present in the snapshot replaces its collection wholesale and absent
	// keys are not modified.
	ImportAll(ctx context.Context, data []byte) bool

	// StartAutoBackup writes a timestamped snapshot file into dir every
	// interval until ctx is cancelled. It returns immediately; the task
	// runs on its own goroutine for the application's lifetime.
	StartAutoBackup(ctx context.Context, dir string, interval time.Duration)
}

type backupService struct {
	store storage.Store
	log   logging.Logger
	now   func() time.Time
}

func NewBackupService(store storage.Store, log logging.Logger) BackupService {
	return &backupService{store: store, log: log, now: time.Now}
}

func (s *backupService) ExportAll(ctx context.Context) ([]byte, error) {
	snapshot := Snapshot{
		ExportDate: s.now().UTC().Format(time.RFC3339),
	}

	var err error
	if snapshot.Poems, err = s.readRaw(ctx, storage.KeyPoems, `[]`); err != nil {
		return nil, err
	}
	if snapshot.Collections, err = s.readRaw(ctx, storage.KeyCollections, `[]`); err != nil {
		return nil, err
	}
	if snapshot.Journals, err = s.readRaw(ctx, storage.KeyJournals, `[]`); err != nil {
		return nil, err
	}
	if snapshot.Settings, err = s.readRaw(ctx, storage.KeySettings, `{}`); err != nil {
		return nil, err
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize snapshot: %w", err)
	}
	return data, nil
}

func (s *backupService) readRaw(ctx context.Context, key, empty string) (json.RawMessage, error) {
	data, err := s.store.Read(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to export %s: %w", key, err)
	}
	if len(data) == 0 {
		return json.RawMessage(empty), nil
	}
	return json.RawMessage(data), nil
}

func (s *backupService) ImportAll(ctx context.Context, data []byte) bool {
	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		s.log.Warn(ctx, "import rejected: snapshot does not parse", "err", err)
		return false
	}

	// validate every present key before touching the store, so a bad
	// snapshot cannot apply partially
	checks := []struct {
		key   string
		raw   json.RawMessage
		check func(json.RawMessage) error
	}{
		{storage.KeyPoems, snapshot.Poems, checkAs[[]models.Poem]},
		{storage.KeyCollections, snapshot.Collections, checkAs[[]models.Collection]},
		{storage.KeyJournals, snapshot.Journals, checkAs[[]models.DailyJournal]},
		{storage.KeySettings, snapshot.Settings, checkAs[models.Settings]},
	}
	for _, c := range checks {
		if c.raw == nil {
			continue
		}
		if err := c.check(c.raw); err != nil {
			s.log.Warn(ctx, "import rejected: invalid snapshot field", "key", c.key, "err", err)
			return false
		}
	}

	for _, c := range checks {
		if c.raw == nil {
			continue
		}
		if err := s.store.Write(ctx, c.key, c.raw); err != nil {
			s.log.Error(ctx, "import write failed", "key", c.key, "err", err)
			return false
		}
	}
	return true
}

func checkAs[T any](raw json.RawMessage) error {
	var v T
	return json.Unmarshal(raw, &v)
}

func (s *backupService) StartAutoBackup(ctx context.Context, dir string, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := s.writeBackupFile(ctx, dir); err != nil {
					s.log.Error(ctx, "auto-backup failed", "err", err)
				}
			case <-ctx.Done():
				s.log.Debug(context.Background(), "auto-backup stopped")
				return
			}
		}
	}()
}

func (s *backupService) writeBackupFile(ctx context.Context, dir string) error {
	resolved, err := filex.EnsureDir(dir)
	if err != nil {
		return err
	}

	data, err := s.ExportAll(ctx)
	if err != nil {
		return err
	}

	name := fmt.Sprintf("backup-%s.json", s.now().UTC().Format("20060102-150405"))
	path := filepath.Join(resolved, name)
	if err := os.WriteFile(path, data, 0o660); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}

	s.log.Info(ctx, "auto-backup written", "path", path, "size", len(data))
	return nil
}
