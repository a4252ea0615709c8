package services

import (
	"context"

	"github.com/kjm/ledger-lite/internal/dto"
)

// ReportingSvcFacade is the service port consumed by the reporting handlers.
type ReportingSvcFacade interface {
	TrialBalance(ctx context.Context) (*dto.TrialBalanceResponse, error)
}
