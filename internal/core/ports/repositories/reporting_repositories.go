package repositories

import (
	"context"

	"github.com/kjm/ledger-lite/internal/core/domain"
)

// ReportingRepository is the read-side port for aggregate reports.
type ReportingRepository interface {
	// GetTrialBalanceData returns per-account debit and credit totals across
	// all posted lines, ordered by account code.
	GetTrialBalanceData(ctx context.Context) ([]domain.TrialBalanceRow, error)
}
