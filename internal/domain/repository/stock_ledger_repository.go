package repository

import (
	"context"

	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
)

// StockLedgerRepository puerto del libro de stock.
type StockLedgerRepository interface {
	// ListByVoucherDetails filtra por tipo y número de comprobante y por las filas origen dadas.
	ListByVoucherDetails(ctx context.Context, voucherType entity.DocKind, voucherNo string, detailNos []string) ([]*entity.StockLedgerEntry, error)
	// SetCondition actualiza solo la condición de la entrada (sin tocar la fecha de modificación).
	SetCondition(ctx context.Context, name, condition string) error
}
