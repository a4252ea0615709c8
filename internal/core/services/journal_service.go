package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kjm/ledger-lite/internal/apperrors"
	"github.com/kjm/ledger-lite/internal/core/domain"
	portsrepo "github.com/kjm/ledger-lite/internal/core/ports/repositories"
	portssvc "github.com/kjm/ledger-lite/internal/core/ports/services"
	"github.com/kjm/ledger-lite/internal/dto"
	"github.com/kjm/ledger-lite/internal/middleware"
	"github.com/kjm/ledger-lite/internal/utils/accounting"
)

// journalService provides the journal-entry write path and its read-side
// projections.
type journalService struct {
	accountSvc  portssvc.AccountSvcFacade
	journalRepo portsrepo.JournalRepository
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepository, accountSvc portssvc.AccountSvcFacade) portssvc.JournalSvcFacade {
	return &journalService{
		accountSvc:  accountSvc,
		journalRepo: journalRepo,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// validateLines enforces the line-shape rules and the double-entry invariant
// over a proposed set of lines. It is purely computational: no clock, no
// randomness, no lookups. Only the first violation is reported, in input
// order, and no partial sums are trusted once an invalid side is seen.
func validateLines(lines []dto.CreateJournalLineRequest) error {
	var debitSum, creditSum int64

	for _, line := range lines {
		switch domain.Side(line.DCType) {
		case domain.Debit:
			debitSum += line.Amount
		case domain.Credit:
			creditSum += line.Amount
		default:
			return apperrors.NewValidationError("dcType must be DEBIT or CREDIT")
		}
		if line.Amount <= 0 {
			return apperrors.NewValidationError("line amount must be a positive integer")
		}
	}

	if debitSum != creditSum {
		return apperrors.NewValidationError("debit sum must equal credit sum")
	}
	return nil
}

// CreateEntry validates, assembles and atomically persists a new journal
// entry, returning the assigned entry ID.
func (s *journalService) CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest) (int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateLines(req.Lines); err != nil {
		return 0, err
	}

	// Resolve every referenced account before anything is written. A single
	// unresolved reference aborts the whole construction; no entry is ever
	// built with a dangling line.
	entry := domain.JournalEntry{
		EntryDate:   req.EntryDate,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}
	for _, lineReq := range req.Lines {
		account, err := s.accountSvc.GetAccountByID(ctx, lineReq.AccountID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return 0, apperrors.NewNotFoundError(fmt.Sprintf("account not found: %d", lineReq.AccountID))
			}
			return 0, fmt.Errorf("failed to resolve account %d: %w", lineReq.AccountID, err)
		}
		entry.AddLine(domain.JournalLine{
			Side:    domain.Side(lineReq.DCType),
			Amount:  lineReq.Amount,
			Account: *account,
		})
	}

	entryID, err := s.journalRepo.CreateEntry(ctx, entry)
	if err != nil {
		logger.Error("Failed to persist journal entry", slog.String("error", err.Error()))
		return 0, err
	}

	logger.Info("Journal entry created", slog.Int64("entry_id", entryID), slog.Int("line_count", len(entry.Lines)))
	return entryID, nil
}

// GetEntry returns one entry fully populated with lines and account display
// fields.
func (s *journalService) GetEntry(ctx context.Context, entryID int64) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("journal entry not found: %d", entryID))
		}
		logger.Error("Failed to find journal entry", slog.String("error", err.Error()), slog.Int64("entry_id", entryID))
		return nil, err
	}
	return entry, nil
}

// ListEntrySummaries returns every entry with recomputed debit and credit
// totals, most recent entry date first.
func (s *journalService) ListEntrySummaries(ctx context.Context) ([]dto.JournalEntrySummaryResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entries, err := s.journalRepo.ListEntriesDesc(ctx)
	if err != nil {
		logger.Error("Failed to list journal entries", slog.String("error", err.Error()))
		return nil, err
	}

	summaries := make([]dto.JournalEntrySummaryResponse, len(entries))
	for i, entry := range entries {
		debitTotal, creditTotal := accounting.SummarizeLines(entry.Lines)
		summaries[i] = dto.JournalEntrySummaryResponse{
			ID:          entry.EntryID,
			EntryDate:   entry.EntryDate,
			Description: entry.Description,
			DebitTotal:  debitTotal,
			CreditTotal: creditTotal,
		}
	}
	return summaries, nil
}

// UpdateEntryDescription mutates the one allowed post-creation field and
// returns the entry fully populated.
func (s *journalService) UpdateEntryDescription(ctx context.Context, entryID int64, description string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.journalRepo.UpdateEntryDescription(ctx, entryID, description); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("journal entry not found: %d", entryID))
		}
		logger.Error("Failed to update journal entry description", slog.String("error", err.Error()), slog.Int64("entry_id", entryID))
		return nil, err
	}

	logger.Info("Journal entry description updated", slog.Int64("entry_id", entryID))
	return s.GetEntry(ctx, entryID)
}
