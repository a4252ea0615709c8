package repositories

import (
	"context"

	"github.com/kjm/ledger-lite/internal/core/domain"
)

// JournalRepository is the persistence port for journal entries and their lines.
type JournalRepository interface {
	// CreateEntry writes the entry header and all of its lines as a single
	// all-or-nothing database transaction and returns the assigned entry ID.
	// Lines are written in the order they appear on the entry.
	CreateEntry(ctx context.Context, entry domain.JournalEntry) (int64, error)

	// FindEntryByID loads the entry with all lines and each line's account
	// display fields in a bounded number of round trips. Returns
	// apperrors.ErrNotFound when the entry does not exist.
	FindEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error)

	// ListEntriesDesc returns all entries fully populated, ordered by entry
	// date descending with ties broken by entry ID descending.
	ListEntriesDesc(ctx context.Context) ([]domain.JournalEntry, error)

	// UpdateEntryDescription mutates only the description of the stored
	// header. Returns apperrors.ErrNotFound when the entry does not exist.
	UpdateEntryDescription(ctx context.Context, entryID int64, description string) error
}
