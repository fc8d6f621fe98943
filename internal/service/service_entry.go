package service

import (
	"context"
	"fmt"

	"github.com/mlevansky/go-cred-vault/internal/logger"
	"github.com/mlevansky/go-cred-vault/internal/store"
	"github.com/mlevansky/go-cred-vault/models"
)

// entryService implements EntryService on top of an owner-scoped
// EntryRepository. Ownership is enforced below it by the repository
// queries themselves: every read and write carries the owner id, so an
// entry belonging to someone else is indistinguishable from a missing one.
type entryService struct {
	entryRepository store.EntryRepository
	logger          *logger.Logger
}

// NewEntryService constructs an EntryService backed by the given
// repository.
func NewEntryService(entryRepository store.EntryRepository, logger *logger.Logger) EntryService {
	return &entryService{
		entryRepository: entryRepository,
		logger:          logger,
	}
}

// ListEntries returns every entry owned by ownerID, newest first.
func (e *entryService) ListEntries(ctx context.Context, ownerID int64) ([]models.Entry, error) {
	log := logger.FromContext(ctx)

	entries, err := e.entryRepository.ListEntries(ctx, ownerID)
	if err != nil {
		log.Err(err).Int64("owner", ownerID).Msg("listing entries failed")
		return nil, fmt.Errorf("listing entries failed: %w", err)
	}

	return entries, nil
}

// CreateEntry validates and stores a new entry for entry.UserID.
func (e *entryService) CreateEntry(ctx context.Context, entry models.Entry) (models.Entry, error) {
	log := logger.FromContext(ctx)

	if err := validateNewEntry(entry); err != nil {
		log.Error().Err(err).Msg("entry creation rejected")
		return models.Entry{}, err
	}

	created, err := e.entryRepository.CreateEntry(ctx, entry)
	if err != nil {
		log.Err(err).Int64("owner", entry.UserID).Msg("entry creation ended with error")
		return models.Entry{}, fmt.Errorf("entry creation ended with error: %w", err)
	}

	return created, nil
}

// GetEntry returns the entry with entryID if ownerID owns it, otherwise
// store.ErrEntryNotFound.
func (e *entryService) GetEntry(ctx context.Context, entryID, ownerID int64) (models.Entry, error) {
	log := logger.FromContext(ctx)

	entry, err := e.entryRepository.FindEntry(ctx, entryID, ownerID)
	if err != nil {
		log.Debug().Err(err).Int64("entry", entryID).Int64("owner", ownerID).Msg("entry lookup failed")
		return models.Entry{}, err
	}

	return entry, nil
}

// UpdateEntry applies a partial update to an owned entry and returns the
// new state.
//
// An update with no fields set reads and returns the entry without
// touching it, so updated_at does not move. An update that changes the
// ciphertext must change the IV in the same request and vice versa.
func (e *entryService) UpdateEntry(ctx context.Context, entryID, ownerID int64, update models.EntryUpdate) (models.Entry, error) {
	log := logger.FromContext(ctx)

	if err := validateEntryUpdate(update); err != nil {
		log.Error().Err(err).Int64("entry", entryID).Msg("entry update rejected")
		return models.Entry{}, err
	}

	if update.Empty() {
		return e.GetEntry(ctx, entryID, ownerID)
	}

	updated, err := e.entryRepository.UpdateEntry(ctx, entryID, ownerID, update)
	if err != nil {
		log.Debug().Err(err).Int64("entry", entryID).Int64("owner", ownerID).Msg("entry update failed")
		return models.Entry{}, err
	}

	return updated, nil
}

// DeleteEntry removes an owned entry. Deleting a missing or foreign entry
// fails with store.ErrEntryNotFound.
func (e *entryService) DeleteEntry(ctx context.Context, entryID, ownerID int64) error {
	log := logger.FromContext(ctx)

	deleted, err := e.entryRepository.DeleteEntry(ctx, entryID, ownerID)
	if err != nil {
		log.Err(err).Int64("entry", entryID).Int64("owner", ownerID).Msg("entry deletion ended with error")
		return fmt.Errorf("entry deletion ended with error: %w", err)
	}
	if !deleted {
		return store.ErrEntryNotFound
	}

	return nil
}
