package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/hecreatescode/versekeeper/internal/config"
	"github.com/hecreatescode/versekeeper/internal/logging"
	"github.com/hecreatescode/versekeeper/internal/repositories/collections"
	"github.com/hecreatescode/versekeeper/internal/repositories/journals"
	"github.com/hecreatescode/versekeeper/internal/repositories/poems"
	"github.com/hecreatescode/versekeeper/internal/repositories/progress"
	"github.com/hecreatescode/versekeeper/internal/repositories/settings"
	"github.com/hecreatescode/versekeeper/internal/repositories/templates"
	"github.com/hecreatescode/versekeeper/internal/services"
	"github.com/hecreatescode/versekeeper/internal/storage"

	_ "modernc.org/sqlite"
)

// App wires the store, repositories and services behind the interactive
// journal session.
type App struct {
	config *config.Config
	log    logging.Logger

	store          *storage.SQLiteStore
	settingsRepo   settings.Repository
	templateRepo   templates.Repository
	collectionRepo collections.Repository
	journalRepo    journals.Repository
	poemRepo       poems.Repository
	progressRepo   progress.Repository

	poemService     services.PoemService
	progressService services.ProgressService
	backupService   services.BackupService

	reader *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	store, err := storage.OpenSQLite(ctx, c.VaultPath)
	if err != nil {
		log.Error(ctx, "error initializing database", "err", err)
		return nil, err
	}

	a := &App{
		config:         c,
		log:            log,
		store:          store,
		settingsRepo:   settings.NewKVRepository(store),
		templateRepo:   templates.NewKVRepository(store),
		collectionRepo: collections.NewKVRepository(store),
		journalRepo:    journals.NewKVRepository(store),
		poemRepo:       poems.NewKVRepository(store),
		progressRepo:   progress.NewKVRepository(store),
		reader:         bufio.NewReader(os.Stdin),
	}

	a.poemService = services.NewPoemService(a.poemRepo, a.collectionRepo, a.journalRepo)
	a.progressService = services.NewProgressService(a.poemRepo, a.progressRepo)
	a.backupService = services.NewBackupService(store, log)

	// seeding is an explicit startup step, not a read side effect
	if err := a.templateRepo.Init(ctx); err != nil {
		return nil, err
	}
	if err := a.progressRepo.InitAchievements(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

// Run starts background tasks and enters the REPL; it returns when the
// user exits. Cancelling ctx stops the auto-backup task.
func (a *App) Run(ctx context.Context) {
	defer a.store.Close()

	if a.settingsRepo.Get(ctx).AutoBackup {
		a.backupService.StartAutoBackup(ctx, a.config.BackupDir, a.config.AutoBackupInterval)
	}

	go a.watchSettings(ctx)

	a.Root(ctx)
}

// watchSettings logs externally-observable settings changes. The signal is
// advisory; the session always re-reads settings when it needs them.
func (a *App) watchSettings(ctx context.Context) {
	ch := a.settingsRepo.Watch()
	for {
		select {
		case <-ch:
			a.log.Debug(ctx, "settings changed")
		case <-ctx.Done():
			return
		}
	}
}
