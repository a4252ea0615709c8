package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kjm/ledger-lite/internal/apperrors"
	"github.com/kjm/ledger-lite/internal/core/domain"
	portsrepo "github.com/kjm/ledger-lite/internal/core/ports/repositories"
	"github.com/kjm/ledger-lite/internal/models"
	"github.com/kjm/ledger-lite/internal/utils/mapping"
)

type pgxJournalRepository struct {
	BaseRepository
}

// NewJournalRepository creates a new repository for journal entries and lines.
func NewJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepository {
	return &pgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepository = (*pgxJournalRepository)(nil)

// CreateEntry writes the entry header and every line in one database
// transaction. Any line failure rolls the whole write back, header included.
func (r *pgxJournalRepository) CreateEntry(ctx context.Context, entry domain.JournalEntry) (int64, error) {
	entryDate, err := time.Parse(mapping.DateLayout, entry.EntryDate)
	if err != nil {
		return 0, apperrors.NewAppError(500, "invalid entry date reached repository: "+entry.EntryDate, err)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	headerQuery := `
		INSERT INTO journal_entries (entry_date, description, created_at)
		VALUES ($1, $2, $3)
		RETURNING entry_id;
	`
	var entryID int64
	if err := tx.QueryRow(ctx, headerQuery, entryDate, entry.Description, entry.CreatedAt).Scan(&entryID); err != nil {
		return 0, apperrors.NewAppError(500, "failed to insert journal entry header", err)
	}

	lineQuery := `
		INSERT INTO journal_lines (entry_id, dc_type, amount, account_id)
		VALUES ($1, $2, $3, $4);
	`
	batch := &pgx.Batch{}
	for _, line := range entry.Lines {
		batch.Queue(lineQuery, entryID, string(line.Side), line.Amount, line.Account.AccountID)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return 0, apperrors.NewAppError(500, fmt.Sprintf("failed to insert lines for journal entry %d", entryID), err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return entryID, nil
}

// FindEntryByID loads one entry together with its lines and account display
// fields: one header query plus one joined line query, regardless of line count.
func (r *pgxJournalRepository) FindEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error) {
	headerQuery := `
		SELECT entry_id, entry_date, description, created_at
		FROM journal_entries
		WHERE entry_id = $1;
	`

	var m models.JournalEntry
	err := r.Pool.QueryRow(ctx, headerQuery, entryID).Scan(
		&m.EntryID,
		&m.EntryDate,
		&m.Description,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find journal entry %d", entryID), err)
	}

	linesByEntry, err := r.findLinesByEntryIDs(ctx, []int64{entryID})
	if err != nil {
		return nil, err
	}

	entry := mapping.ToDomainEntry(m)
	entry.Lines = linesByEntry[entryID]
	return &entry, nil
}

// ListEntriesDesc returns all entries fully populated, newest entry date
// first, ties broken by entry ID descending. The header query is fan-out
// free, so each entry appears exactly once; lines for all entries arrive in
// one additional joined query.
func (r *pgxJournalRepository) ListEntriesDesc(ctx context.Context) ([]domain.JournalEntry, error) {
	headerQuery := `
		SELECT entry_id, entry_date, description, created_at
		FROM journal_entries
		ORDER BY entry_date DESC, entry_id DESC;
	`

	rows, err := r.Pool.Query(ctx, headerQuery)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal entries", err)
	}
	defer rows.Close()

	headers := []models.JournalEntry{}
	for rows.Next() {
		var m models.JournalEntry
		if err := rows.Scan(&m.EntryID, &m.EntryDate, &m.Description, &m.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		headers = append(headers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal entry rows", err)
	}

	entryIDs := make([]int64, len(headers))
	for i, h := range headers {
		entryIDs[i] = h.EntryID
	}

	linesByEntry, err := r.findLinesByEntryIDs(ctx, entryIDs)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.JournalEntry, len(headers))
	for i, h := range headers {
		entries[i] = mapping.ToDomainEntry(h)
		entries[i].Lines = linesByEntry[h.EntryID]
	}
	return entries, nil
}

// findLinesByEntryIDs fetches the lines for all given entries, joined with
// the referenced accounts, in a single query.
func (r *pgxJournalRepository) findLinesByEntryIDs(ctx context.Context, entryIDs []int64) (map[int64][]domain.JournalLine, error) {
	linesByEntry := make(map[int64][]domain.JournalLine, len(entryIDs))
	if len(entryIDs) == 0 {
		return linesByEntry, nil
	}

	query := `
		SELECT l.line_id, l.entry_id, l.dc_type, l.amount,
		       a.account_id, a.code, a.name
		FROM journal_lines l
		JOIN accounts a ON l.account_id = a.account_id
		WHERE l.entry_id = ANY($1)
		ORDER BY l.entry_id, l.line_id;
	`

	rows, err := r.Pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal lines", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.JournalLine
		if err := rows.Scan(
			&m.LineID,
			&m.EntryID,
			&m.DCType,
			&m.Amount,
			&m.AccountID,
			&m.AccountCode,
			&m.AccountName,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal line row", err)
		}
		linesByEntry[m.EntryID] = append(linesByEntry[m.EntryID], mapping.ToDomainLine(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal line rows", err)
	}

	// Entries with no lines should not happen for data written through
	// CreateEntry, but a populated map entry keeps callers nil-safe.
	for _, id := range entryIDs {
		if _, exists := linesByEntry[id]; !exists {
			linesByEntry[id] = []domain.JournalLine{}
		}
	}
	return linesByEntry, nil
}

// UpdateEntryDescription mutates only the description column of the header.
func (r *pgxJournalRepository) UpdateEntryDescription(ctx context.Context, entryID int64, description string) error {
	query := `
		UPDATE journal_entries
		SET description = $2
		WHERE entry_id = $1;
	`

	cmdTag, err := r.Pool.Exec(ctx, query, entryID, description)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to update journal entry %d", entryID), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
