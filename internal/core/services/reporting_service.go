package services

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/kjm/ledger-lite/internal/core/ports/repositories"
	portssvc "github.com/kjm/ledger-lite/internal/core/ports/services"
	"github.com/kjm/ledger-lite/internal/dto"
	"github.com/kjm/ledger-lite/internal/middleware"
)

// reportingService derives aggregate reports from persisted journal lines.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// TrialBalance returns per-account debit and credit totals across all
// recorded lines.
func (s *reportingService) TrialBalance(ctx context.Context) (*dto.TrialBalanceResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	rows, err := s.reportingRepo.GetTrialBalanceData(ctx)
	if err != nil {
		logger.Error("Failed to retrieve trial balance data", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve trial balance data: %w", err)
	}

	response := dto.ToTrialBalanceResponse(rows)
	logger.Debug("Trial balance generated", slog.Int("row_count", len(rows)))
	return &response, nil
}
