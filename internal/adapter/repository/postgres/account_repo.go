package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ndk-1996/BankingService/internal/domain"
)

// AccountRepository implements usecase.AccountRepository.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// Create persists a new account and assigns its ID.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	const q = `
		INSERT INTO accounts (document_number, created_at)
		VALUES ($1, $2)
		RETURNING account_id`

	return r.pool.QueryRow(ctx, q,
		account.DocumentNumber,
		timeToPgTimestamptz(account.CreatedAt),
	).Scan(&account.ID)
}

// GetByID retrieves an account by ID.
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	const q = `
		SELECT account_id, document_number, created_at
		FROM accounts
		WHERE account_id = $1`

	var (
		account   domain.Account
		createdAt pgtype.Timestamptz
	)

	err := r.pool.QueryRow(ctx, q, id).Scan(&account.ID, &account.DocumentNumber, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}

		return nil, err
	}

	account.CreatedAt = createdAt.Time

	return &account, nil
}
