package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/surgishop-scanner/internal/domain"
	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
	"github.com/jhoicas/surgishop-scanner/internal/domain/repository"
)

var _ repository.StockLedgerRepository = (*StockLedgerRepo)(nil)

type StockLedgerRepo struct {
	q Querier
}

func NewStockLedgerRepository(q Querier) *StockLedgerRepo {
	return &StockLedgerRepo{q: q}
}

func (r *StockLedgerRepo) ListByVoucherDetails(ctx context.Context, voucherType entity.DocKind, voucherNo string, detailNos []string) ([]*entity.StockLedgerEntry, error) {
	if len(detailNos) == 0 {
		return nil, nil
	}
	query := `
		SELECT name, voucher_type, voucher_no, voucher_detail_no, item_code, batch_no, warehouse,
		       actual_qty, custom_condition, posting_date
		FROM stock_ledger_entries
		WHERE voucher_type = $1 AND voucher_no = $2 AND voucher_detail_no = ANY($3)
		ORDER BY name`
	rows, err := r.q.Query(ctx, query, string(voucherType), voucherNo, detailNos)
	if err != nil {
		return nil, fmt.Errorf("list stock ledger entries: %w", err)
	}
	defer rows.Close()

	var out []*entity.StockLedgerEntry
	for rows.Next() {
		var e entity.StockLedgerEntry
		var vt string
		if err := rows.Scan(
			&e.Name, &vt, &e.VoucherNo, &e.VoucherDetailNo, &e.ItemCode, &e.BatchNo, &e.Warehouse,
			&e.ActualQty, &e.Condition, &e.PostingDate,
		); err != nil {
			return nil, fmt.Errorf("scan stock ledger entry: %w", err)
		}
		e.VoucherType = entity.DocKind(vt)
		out = append(out, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stock ledger entries: %w", err)
	}
	return out, nil
}

func (r *StockLedgerRepo) SetCondition(ctx context.Context, name, condition string) error {
	cmd, err := r.q.Exec(ctx, `UPDATE stock_ledger_entries SET custom_condition = $2 WHERE name = $1`, name, condition)
	if err != nil {
		return fmt.Errorf("update stock ledger condition: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
