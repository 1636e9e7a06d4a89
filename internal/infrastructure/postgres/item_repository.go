package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
	"github.com/jhoicas/surgishop-scanner/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo maestro de artículos y registro de códigos de barras.
type ItemRepo struct {
	q Querier
}

func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

func (r *ItemRepo) GetByCode(ctx context.Context, code string) (*entity.Item, error) {
	query := `
		SELECT code, name, has_batch_no, has_serial_no, disabled, updated_at
		FROM items WHERE code = $1`
	var it entity.Item
	err := r.q.QueryRow(ctx, query, code).Scan(
		&it.Code, &it.Name, &it.HasBatchNo, &it.HasSerialNo, &it.Disabled, &it.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

func (r *ItemRepo) BarcodeExists(ctx context.Context, barcode, itemCode string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM item_barcodes WHERE barcode = $1 AND item_code = $2)`,
		barcode, itemCode,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists item barcode: %w", err)
	}
	return exists, nil
}

func (r *ItemRepo) ItemCodesByBarcode(ctx context.Context, barcode string) ([]string, error) {
	rows, err := r.q.Query(ctx,
		`SELECT DISTINCT item_code FROM item_barcodes WHERE barcode = $1 ORDER BY item_code`, barcode)
	if err != nil {
		return nil, fmt.Errorf("list item barcodes: %w", err)
	}
	codes, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan item barcodes: %w", err)
	}
	return codes, nil
}
