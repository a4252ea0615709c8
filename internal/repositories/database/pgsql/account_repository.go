package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kjm/ledger-lite/internal/apperrors"
	"github.com/kjm/ledger-lite/internal/core/domain"
	portsrepo "github.com/kjm/ledger-lite/internal/core/ports/repositories"
	"github.com/kjm/ledger-lite/internal/models"
	"github.com/kjm/ledger-lite/internal/utils/mapping"
)

const uniqueViolationCode = "23505"

type pgxAccountRepository struct {
	BaseRepository
}

// NewAccountRepository creates a new repository for account master data.
func NewAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &pgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepository = (*pgxAccountRepository)(nil)

// SaveAccount inserts a new account. The unique index on code is the
// authoritative duplicate check; a violation maps to ErrDuplicate so the
// loser of a registration race sees a conflict, not an internal failure.
func (r *pgxAccountRepository) SaveAccount(ctx context.Context, code, name string) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (code, name)
		VALUES ($1, $2)
		RETURNING account_id, code, name, created_at;
	`

	var m models.Account
	err := r.Pool.QueryRow(ctx, query, code, name).Scan(
		&m.AccountID,
		&m.Code,
		&m.Name,
		&m.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, apperrors.ErrDuplicate
		}
		return nil, apperrors.NewAppError(500, "failed to save account "+code, err)
	}

	account := mapping.ToDomainAccount(m)
	return &account, nil
}

// FindAccountByID retrieves an account by its ID.
func (r *pgxAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `
		SELECT account_id, code, name, created_at
		FROM accounts
		WHERE account_id = $1;
	`

	var m models.Account
	err := r.Pool.QueryRow(ctx, query, accountID).Scan(
		&m.AccountID,
		&m.Code,
		&m.Name,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find account by ID", err)
	}

	account := mapping.ToDomainAccount(m)
	return &account, nil
}

// FindAccountByCode retrieves an account by its code, or nil when absent.
func (r *pgxAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	query := `
		SELECT account_id, code, name, created_at
		FROM accounts
		WHERE code = $1;
	`

	var m models.Account
	err := r.Pool.QueryRow(ctx, query, code).Scan(
		&m.AccountID,
		&m.Code,
		&m.Name,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "failed to find account by code "+code, err)
	}

	account := mapping.ToDomainAccount(m)
	return &account, nil
}

// ListAccounts retrieves all accounts ordered by ID.
func (r *pgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `
		SELECT account_id, code, name, created_at
		FROM accounts
		ORDER BY account_id;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts", err)
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		var m models.Account
		if err := rows.Scan(&m.AccountID, &m.Code, &m.Name, &m.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		accounts = append(accounts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}

	return mapping.ToDomainAccountSlice(accounts), nil
}
