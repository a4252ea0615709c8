package services

import (
	"context"

	"github.com/kjm/ledger-lite/internal/core/domain"
	"github.com/kjm/ledger-lite/internal/dto"
)

// AccountSvcFacade is the service port consumed by the account handlers and
// by the journal service when resolving line references.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)
}
