package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mlevansky/go-cred-vault/internal/logger"
	"github.com/mlevansky/go-cred-vault/models"
)

// entryRepository is the SQL-backed implementation of [EntryRepository].
// It executes all credential-entry CRUD against the "password_entries"
// table using the embedded [*DB] connection.
//
// Every public method filters by the owning user's ID. A row owned by a
// different user is treated exactly like an absent row.
type entryRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewEntryRepository constructs an [EntryRepository] backed by the provided
// database connection and logger.
func NewEntryRepository(db *DB, logger *logger.Logger) EntryRepository {
	logger.Debug().Msg("creating entry repository")
	return &entryRepository{
		db:     db,
		logger: logger,
	}
}

// ListEntries retrieves every credential entry owned by the given user,
// ordered by ID. Returns an empty slice when the user has no entries.
func (r *entryRepository) ListEntries(ctx context.Context, ownerID int64) ([]models.Entry, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listEntries, ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "*entryRepository.ListEntries").
			Int64("user_id", ownerID).
			Msg("failed to execute query for listing entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.Entry, 0, 16)

	for rows.Next() {
		var entry models.Entry
		if scanErr := scanEntry(rows, &entry); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*entryRepository.ListEntries").
				Int64("user_id", ownerID).
				Msg("failed to scan entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*entryRepository.ListEntries").
			Int64("user_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

// CreateEntry persists a new credential entry and returns it with
// server-assigned fields (ID, CreatedAt, UpdatedAt) populated.
func (r *entryRepository) CreateEntry(ctx context.Context, entry models.Entry) (models.Entry, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createEntry,
		entry.UserID, entry.Title, entry.Username, entry.EncryptedPassword, entry.IV, entry.URL, entry.Notes)

	var created models.Entry
	if err := scanEntry(row, &created); err != nil {
		log.Err(err).
			Str("func", "*entryRepository.CreateEntry").
			Int64("user_id", entry.UserID).
			Msg("failed to insert entry")
		return models.Entry{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindEntry retrieves a single entry by ID, scoped to the owner. Fails with
// [ErrEntryNotFound] when the row is absent or owned by someone else.
func (r *entryRepository) FindEntry(ctx context.Context, entryID, ownerID int64) (models.Entry, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findEntry, entryID, ownerID)

	var found models.Entry
	if err := scanEntry(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Entry{}, ErrEntryNotFound
		}

		log.Err(err).
			Str("func", "*entryRepository.FindEntry").
			Int64("user_id", ownerID).
			Int64("entry_id", entryID).
			Msg("failed to scan entry row")
		return models.Entry{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// UpdateEntry applies the non-nil fields of update to the entry and
// refreshes updated_at, all in a single statement. The RETURNING clause
// hands back the post-update row, so the caller sees exactly what was
// stored.
//
// Fails with [ErrEntryNotFound] when the WHERE clause (id + owner) matches
// nothing.
func (r *entryRepository) UpdateEntry(ctx context.Context, entryID, ownerID int64, update models.EntryUpdate) (models.Entry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateEntryQuery(entryID, ownerID, update)
	if err != nil {
		log.Err(err).
			Str("func", "*entryRepository.UpdateEntry").
			Int64("user_id", ownerID).
			Int64("entry_id", entryID).
			Msg("failed to build update query")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var updated models.Entry
	if err := scanEntry(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Entry{}, ErrEntryNotFound
		}

		log.Err(err).
			Str("func", "*entryRepository.UpdateEntry").
			Int64("user_id", ownerID).
			Int64("entry_id", entryID).
			Msg("failed to scan updated entry row")
		return models.Entry{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteEntry removes the entry scoped to the owner and reports whether a
// row was actually deleted.
func (r *entryRepository) DeleteEntry(ctx context.Context, entryID, ownerID int64) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteEntry, entryID, ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "*entryRepository.DeleteEntry").
			Int64("user_id", ownerID).
			Int64("entry_id", entryID).
			Msg("failed to execute delete")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return affected > 0, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner, entry *models.Entry) error {
	return row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Title,
		&entry.Username,
		&entry.EncryptedPassword,
		&entry.IV,
		&entry.URL,
		&entry.Notes,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
}
