package mapping

import (
	"github.com/kjm/ledger-lite/internal/core/domain"
	"github.com/kjm/ledger-lite/internal/models"
)

// DateLayout is the textual form journal entry dates take on the wire and in
// the domain model.
const DateLayout = "2006-01-02"

// ToDomainEntry converts a model JournalEntry header to a domain JournalEntry
// without lines.
func ToDomainEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:     m.EntryID,
		EntryDate:   m.EntryDate.Format(DateLayout),
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// ToDomainLine converts a model JournalLine (joined with account display
// columns) to a domain JournalLine.
func ToDomainLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:  m.LineID,
		EntryID: m.EntryID,
		Side:    domain.Side(m.DCType),
		Amount:  m.Amount,
		Account: domain.Account{
			AccountID: m.AccountID,
			Code:      m.AccountCode,
			Name:      m.AccountName,
		},
	}
}

// ToDomainLineSlice converts a slice of model JournalLines to domain lines.
func ToDomainLineSlice(ms []models.JournalLine) []domain.JournalLine {
	ds := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLine(m)
	}
	return ds
}
