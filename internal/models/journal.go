package models

import "time"

// JournalEntry mirrors the journal_entries table row. Lines live in their own
// table and are loaded separately.
type JournalEntry struct {
	EntryID     int64     `db:"entry_id"`
	EntryDate   time.Time `db:"entry_date"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

// JournalLine mirrors the journal_lines table row, optionally joined with the
// referenced account's display columns.
type JournalLine struct {
	LineID      int64  `db:"line_id"`
	EntryID     int64  `db:"entry_id"`
	DCType      string `db:"dc_type"`
	Amount      int64  `db:"amount"`
	AccountID   int64  `db:"account_id"`
	AccountCode string `db:"account_code"`
	AccountName string `db:"account_name"`
}
