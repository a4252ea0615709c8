package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kjm/ledger-lite/internal/apperrors"
	"github.com/kjm/ledger-lite/internal/core/domain"
	portsrepo "github.com/kjm/ledger-lite/internal/core/ports/repositories"
	portssvc "github.com/kjm/ledger-lite/internal/core/ports/services"
	"github.com/kjm/ledger-lite/internal/dto"
	"github.com/kjm/ledger-lite/internal/middleware"
)

// accountService provides account master-data operations. It is the account
// directory the journal service consults when resolving line references.
type accountService struct {
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepository) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount registers a new account with a globally unique code.
// The pre-check gives a clean conflict message for the common case; the
// unique constraint in the repository remains the final arbiter when two
// registrations race past the pre-check, and both paths surface ErrDuplicate.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.accountRepo.FindAccountByCode(ctx, req.Code)
	if err != nil {
		logger.Error("Failed to check account code", slog.String("error", err.Error()), slog.String("code", req.Code))
		return nil, fmt.Errorf("failed to check account code: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("account code already exists: " + req.Code)
	}

	account, err := s.accountRepo.SaveAccount(ctx, req.Code, req.Name)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost the race against a concurrent registration of the same code.
			return nil, apperrors.NewConflictError("account code already exists: " + req.Code)
		}
		logger.Error("Failed to save account", slog.String("error", err.Error()), slog.String("code", req.Code))
		return nil, err
	}

	logger.Info("Account created", slog.Int64("account_id", account.AccountID), slog.String("code", account.Code))
	return account, nil
}

// ListAccounts returns the full chart of accounts.
func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		logger.Error("Failed to list accounts", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return accounts, nil
}

// GetAccountByID resolves one account, returning ErrNotFound with the
// offending ID when it does not exist. Every call is a fresh lookup.
func (s *accountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account by ID", slog.String("error", err.Error()), slog.Int64("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}
