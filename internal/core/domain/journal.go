package domain

import "time"

// Side indicates whether a journal line is a debit or a credit.
type Side string

const (
	Debit  Side = "DEBIT"
	Credit Side = "CREDIT"
)

// Valid reports whether s is one of the two allowed side values.
// The match is exact and case-sensitive.
func (s Side) Valid() bool {
	return s == Debit || s == Credit
}

// JournalLine is a single posting within an entry: one amount, one side, one
// account. A line belongs to exactly one entry; EntryID is kept only as the
// persistence back-reference, the entry owns the line collection.
type JournalLine struct {
	LineID  int64   `json:"lineID"`
	EntryID int64   `json:"entryID"`
	Side    Side    `json:"side"`
	Amount  int64   `json:"amount"` // minor currency units, strictly positive
	Account Account `json:"account"`
}

// JournalEntry is a balanced transaction header together with the lines it
// exclusively owns. Invariant: the sum of DEBIT line amounts equals the sum
// of CREDIT line amounts.
type JournalEntry struct {
	EntryID     int64         `json:"id"`
	EntryDate   string        `json:"entryDate"` // "2006-01-02"
	Description string        `json:"description"`
	CreatedAt   time.Time     `json:"createdAt"`
	Lines       []JournalLine `json:"lines"`
}

// AddLine appends a line and sets its back-reference in one step, so the
// entry and the line never disagree about ownership.
func (e *JournalEntry) AddLine(line JournalLine) {
	line.EntryID = e.EntryID
	e.Lines = append(e.Lines, line)
}
