package services

import (
	"context"

	"github.com/kjm/ledger-lite/internal/core/domain"
	"github.com/kjm/ledger-lite/internal/dto"
)

// JournalSvcFacade is the service port consumed by the journal handlers.
type JournalSvcFacade interface {
	CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest) (int64, error)
	GetEntry(ctx context.Context, entryID int64) (*domain.JournalEntry, error)
	ListEntrySummaries(ctx context.Context) ([]dto.JournalEntrySummaryResponse, error)
	UpdateEntryDescription(ctx context.Context, entryID int64, description string) (*domain.JournalEntry, error)
}
