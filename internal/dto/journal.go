package dto

import "github.com/kjm/ledger-lite/internal/core/domain"

// CreateJournalLineRequest is one proposed posting line on a new entry.
// Side validity and amount positivity are core rules with their own messages,
// so they are deliberately not expressed as binding tags here.
type CreateJournalLineRequest struct {
	DCType    string `json:"dcType"`
	Amount    int64  `json:"amount"`
	AccountID int64  `json:"accountId"`
}

// CreateJournalEntryRequest defines the data needed to record a new entry.
type CreateJournalEntryRequest struct {
	EntryDate   string                     `json:"entryDate" binding:"required,datetime=2006-01-02"`
	Description string                     `json:"description" binding:"required"`
	Lines       []CreateJournalLineRequest `json:"lines" binding:"required,min=1"`
}

// CreateJournalEntryResponse carries the assigned ID of a created entry.
type CreateJournalEntryResponse struct {
	ID int64 `json:"id"`
}

// UpdateJournalEntryRequest defines the single mutable field of an entry.
type UpdateJournalEntryRequest struct {
	Description string `json:"description" binding:"required"`
}

// JournalLineResponse is one posting line on the detail representation,
// with the referenced account's display fields flattened in.
type JournalLineResponse struct {
	DCType      string `json:"dcType"`
	Amount      int64  `json:"amount"`
	AccountID   int64  `json:"accountId"`
	AccountCode string `json:"accountCode"`
	AccountName string `json:"accountName"`
}

// JournalEntryDetailResponse is the full representation of one entry.
type JournalEntryDetailResponse struct {
	ID          int64                 `json:"id"`
	EntryDate   string                `json:"entryDate"`
	Description string                `json:"description"`
	Lines       []JournalLineResponse `json:"lines"`
}

// JournalEntrySummaryResponse is the listing representation of one entry.
type JournalEntrySummaryResponse struct {
	ID          int64  `json:"id"`
	EntryDate   string `json:"entryDate"`
	Description string `json:"description"`
	DebitTotal  int64  `json:"debitTotal"`
	CreditTotal int64  `json:"creditTotal"`
}

// ToJournalEntryDetailResponse converts a fully populated domain entry to its
// detail DTO.
func ToJournalEntryDetailResponse(entry *domain.JournalEntry) JournalEntryDetailResponse {
	lines := make([]JournalLineResponse, len(entry.Lines))
	for i, line := range entry.Lines {
		lines[i] = JournalLineResponse{
			DCType:      string(line.Side),
			Amount:      line.Amount,
			AccountID:   line.Account.AccountID,
			AccountCode: line.Account.Code,
			AccountName: line.Account.Name,
		}
	}
	return JournalEntryDetailResponse{
		ID:          entry.EntryID,
		EntryDate:   entry.EntryDate,
		Description: entry.Description,
		Lines:       lines,
	}
}
