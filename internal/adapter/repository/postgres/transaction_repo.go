package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/ndk-1996/BankingService/internal/domain"
	"github.com/ndk-1996/BankingService/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// Insert persists a new transaction inside tx and assigns its ID.
func (r *TransactionRepository) Insert(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error {
	pgxTx := tx.(*Tx).PgxTx()

	const q = `
		INSERT INTO transactions (account_id, operation_type_id, amount, balance, event_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING transaction_id`

	return pgxTx.QueryRow(ctx, q,
		txn.AccountID,
		txn.OperationTypeID,
		decimalToNumeric(txn.Amount),
		decimalToNumeric(txn.Balance),
		timeToPgTimestamptz(txn.EventDate),
	).Scan(&txn.ID)
}

// FindNegativeBalance returns the account's unsettled debit transactions,
// oldest first, with their rows locked until tx ends. The id tie-break
// keeps the order deterministic when event dates collide.
func (r *TransactionRepository) FindNegativeBalance(ctx context.Context, tx usecase.Transaction, accountID int64) ([]*domain.Transaction, error) {
	pgxTx := tx.(*Tx).PgxTx()

	const q = `
		SELECT transaction_id, account_id, operation_type_id, amount, balance, event_date
		FROM transactions
		WHERE account_id = $1 AND balance < 0
		ORDER BY event_date, transaction_id
		FOR UPDATE`

	rows, err := pgxTx.Query(ctx, q, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// UpdateBalance persists a new unsettled balance for an existing
// transaction inside tx.
func (r *TransactionRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id int64, balance decimal.Decimal) error {
	pgxTx := tx.(*Tx).PgxTx()

	const q = `
		UPDATE transactions
		SET balance = $2
		WHERE transaction_id = $1`

	_, err := pgxTx.Exec(ctx, q, id, decimalToNumeric(balance))

	return err
}

// GetByID retrieves a transaction by ID.
func (r *TransactionRepository) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	const q = `
		SELECT transaction_id, account_id, operation_type_id, amount, balance, event_date
		FROM transactions
		WHERE transaction_id = $1`

	row := r.pool.QueryRow(ctx, q, id)

	txn, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}

		return nil, err
	}

	return txn, nil
}

// ListByAccount retrieves an account's transactions, newest first.
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID int64, limit, offset int) ([]*domain.Transaction, error) {
	const q = `
		SELECT transaction_id, account_id, operation_type_id, amount, balance, event_date
		FROM transactions
		WHERE account_id = $1
		ORDER BY event_date DESC, transaction_id DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, q, accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

func scanTransactions(rows pgx.Rows) ([]*domain.Transaction, error) {
	var txns []*domain.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}

		txns = append(txns, txn)
	}

	return txns, rows.Err()
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		txn       domain.Transaction
		amount    pgtype.Numeric
		balance   pgtype.Numeric
		eventDate pgtype.Timestamptz
	)

	err := row.Scan(&txn.ID, &txn.AccountID, &txn.OperationTypeID, &amount, &balance, &eventDate)
	if err != nil {
		return nil, err
	}

	txn.Amount = numericToDecimal(amount)
	txn.Balance = numericToDecimal(balance)
	txn.EventDate = eventDate.Time

	return &txn, nil
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
