package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ndk-1996/BankingService/internal/domain"
)

// OperationTypeRepository implements usecase.OperationTypeRepository.
// Operation types are immutable reference data seeded by migration.
type OperationTypeRepository struct {
	pool *pgxpool.Pool
}

// NewOperationTypeRepository creates a new OperationTypeRepository.
func NewOperationTypeRepository(pool *pgxpool.Pool) *OperationTypeRepository {
	return &OperationTypeRepository{pool: pool}
}

// GetByID retrieves an operation type by ID.
func (r *OperationTypeRepository) GetByID(ctx context.Context, id int64) (*domain.OperationType, error) {
	const q = `
		SELECT operation_type_id, description, operation_kind
		FROM operation_types
		WHERE operation_type_id = $1`

	var op domain.OperationType

	err := r.pool.QueryRow(ctx, q, id).Scan(&op.ID, &op.Description, &op.Kind)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOperationTypeNotFound
		}

		return nil, err
	}

	return &op, nil
}

// List retrieves the full operation-type catalog.
func (r *OperationTypeRepository) List(ctx context.Context) ([]*domain.OperationType, error) {
	const q = `
		SELECT operation_type_id, description, operation_kind
		FROM operation_types
		ORDER BY operation_type_id`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ops []*domain.OperationType
	for rows.Next() {
		var op domain.OperationType
		if err := rows.Scan(&op.ID, &op.Description, &op.Kind); err != nil {
			return nil, err
		}

		ops = append(ops, &op)
	}

	return ops, rows.Err()
}
