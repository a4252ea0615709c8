package repositories

import (
	"context"

	"github.com/kjm/ledger-lite/internal/core/domain"
)

// AccountRepository is the persistence port for the account directory.
type AccountRepository interface {
	// SaveAccount inserts a new account and returns it with its assigned ID.
	// A duplicate code surfaces as apperrors.ErrDuplicate regardless of
	// whether the pre-check or the unique constraint caught it.
	SaveAccount(ctx context.Context, code, name string) (*domain.Account, error)

	// FindAccountByID returns apperrors.ErrNotFound when no such account exists.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// FindAccountByCode returns (nil, nil) when no account carries the code.
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// ListAccounts returns all accounts ordered by ID.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}
