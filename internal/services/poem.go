package services

import (
	"context"
	"fmt"
	"time"

	"github.com/hecreatescode/versekeeper/internal/cryptox"
	"github.com/hecreatescode/versekeeper/internal/models"
	"github.com/hecreatescode/versekeeper/internal/repositories/collections"
	"github.com/hecreatescode/versekeeper/internal/repositories/journals"
	"github.com/hecreatescode/versekeeper/internal/repositories/poems"
)

// PoemService owns the write paths for poems: id minting, timestamps,
// journal recording, encryption state and collection membership.
type PoemService interface {
	// Save persists the poem. A poem without an id gets one minted along
	// with its creation timestamp; the user-assigned date defaults to
	// today. The day's journal records the poem lazily.
	Save(ctx context.Context, p *models.Poem) error

	List(ctx context.Context) []models.Poem
	Get(ctx context.Context, id string) (*models.Poem, error)
	Delete(ctx context.Context, id string) error

	// Encrypt replaces the poem's content with the password-encrypted blob
	// and sets the encrypted flag. Encrypting an already-encrypted poem is
	// rejected so the blob is never double-wrapped.
	Encrypt(ctx context.Context, id string, password []byte) error

	// Decrypt restores plaintext content and clears the encrypted flag.
	Decrypt(ctx context.Context, id string, password []byte) error

	// Reveal decrypts the poem's content for display without persisting
	// anything.
	Reveal(ctx context.Context, id string, password []byte) (string, error)

	// AssignToCollection records membership on the collection (the source
	// of truth) and mirrors it onto the poem's collectionIds.
	AssignToCollection(ctx context.Context, poemID, collectionID string) error

	// PoemsInCollection resolves a collection's poem list, filtering out
	// ids whose poems no longer exist. Orphans stay in storage and are
	// skipped here at read time.
	PoemsInCollection(ctx context.Context, collectionID string) ([]models.Poem, error)
}

type poemService struct {
	poemRepo       poems.Repository
	collectionRepo collections.Repository
	journalRepo    journals.Repository
	now            func() time.Time
}

func NewPoemService(poemRepo poems.Repository, collectionRepo collections.Repository, journalRepo journals.Repository) PoemService {
	return &poemService{
		poemRepo:       poemRepo,
		collectionRepo: collectionRepo,
		journalRepo:    journalRepo,
		now:            time.Now,
	}
}

func (s *poemService) Save(ctx context.Context, p *models.Poem) error {
	now := s.now()

	if p.ID == "" {
		p.ID = models.NewID("poem")
		p.CreatedAt = now
	}
	if p.Date == "" {
		p.Date = now.Format(models.DateLayout)
	}
	p.UpdatedAt = now

	if err := s.poemRepo.Upsert(ctx, p); err != nil {
		return fmt.Errorf("saving error: %w", err)
	}

	if err := s.journalRepo.RecordPoem(ctx, p.Date, p.ID); err != nil {
		return fmt.Errorf("journal error: %w", err)
	}
	return nil
}

func (s *poemService) List(ctx context.Context) []models.Poem {
	return s.poemRepo.List(ctx)
}

func (s *poemService) Get(ctx context.Context, id string) (*models.Poem, error) {
	return s.poemRepo.FindByID(ctx, id)
}

func (s *poemService) Delete(ctx context.Context, id string) error {
	// no cascade: collection and journal references to the id stay behind
	// and are filtered on read
	return s.poemRepo.Remove(ctx, id)
}

func (s *poemService) Encrypt(ctx context.Context, id string, password []byte) error {
	p, err := s.poemRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p.IsEncrypted {
		return fmt.Errorf("poem %s is already encrypted", id)
	}

	blob, err := cryptox.Encrypt(p.Content, password)
	if err != nil {
		return err
	}

	p.Content = blob
	p.IsEncrypted = true
	p.UpdatedAt = s.now()
	return s.poemRepo.Upsert(ctx, p)
}

func (s *poemService) Decrypt(ctx context.Context, id string, password []byte) error {
	p, err := s.poemRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !p.IsEncrypted {
		return fmt.Errorf("poem %s is not encrypted", id)
	}

	plaintext, err := cryptox.Decrypt(p.Content, password)
	if err != nil {
		return err
	}

	p.Content = plaintext
	p.IsEncrypted = false
	p.UpdatedAt = s.now()
	return s.poemRepo.Upsert(ctx, p)
}

func (s *poemService) Reveal(ctx context.Context, id string, password []byte) (string, error) {
	p, err := s.poemRepo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	if !p.IsEncrypted {
		return p.Content, nil
	}
	return cryptox.Decrypt(p.Content, password)
}

func (s *poemService) AssignToCollection(ctx context.Context, poemID, collectionID string) error {
	if _, err := s.collectionRepo.FindByID(ctx, collectionID); err != nil {
		return err
	}
	if err := s.collectionRepo.AddPoem(ctx, collectionID, poemID); err != nil {
		return err
	}
	return s.poemRepo.AddToCollection(ctx, poemID, collectionID)
}

func (s *poemService) PoemsInCollection(ctx context.Context, collectionID string) ([]models.Poem, error) {
	c, err := s.collectionRepo.FindByID(ctx, collectionID)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.Poem)
	for _, p := range s.poemRepo.List(ctx) {
		byID[p.ID] = p
	}

	out := make([]models.Poem, 0, len(c.PoemIDs))
	for _, id := range c.PoemIDs {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}
