package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/surgishop-scanner/internal/domain"
	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
	"github.com/jhoicas/surgishop-scanner/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

// BatchRepo lotes. Dentro de una transacción de TxRunner, GetByID bloquea la fila (FOR UPDATE).
type BatchRepo struct {
	q         Querier
	forUpdate bool
}

func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

func (r *BatchRepo) GetByID(ctx context.Context, id string) (*entity.Batch, error) {
	query := `SELECT id, item_code, expiry_date, created_at, updated_at FROM batches WHERE id = $1`
	if r.forUpdate {
		query += ` FOR UPDATE`
	}
	var b entity.Batch
	err := r.q.QueryRow(ctx, query, id).Scan(&b.ID, &b.ItemCode, &b.ExpiryDate, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get batch: %w", err)
	}
	return &b, nil
}

// Create inserta el lote. Si el id ya existe devuelve domain.ErrDuplicate sin
// abortar la transacción en curso (ON CONFLICT DO NOTHING).
func (r *BatchRepo) Create(ctx context.Context, b *entity.Batch) error {
	cmd, err := r.q.Exec(ctx, `
		INSERT INTO batches (id, item_code, expiry_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING`,
		b.ID, b.ItemCode, b.ExpiryDate, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert batch: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrDuplicate
	}
	return nil
}

func (r *BatchRepo) UpdateExpiry(ctx context.Context, id string, expiry time.Time) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE batches SET expiry_date = $2, updated_at = now() WHERE id = $1`,
		id, entity.DateOnly(expiry),
	)
	if err != nil {
		return fmt.Errorf("update batch expiry: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
