package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockLedgerEntry fila del libro de stock emitida por el ERP por cada fila de documento.
// VoucherDetailNo apunta a LineItem.Name del documento origen.
type StockLedgerEntry struct {
	Name            string
	VoucherType     DocKind
	VoucherNo       string
	VoucherDetailNo string
	ItemCode        string
	BatchNo         string
	Warehouse       string
	ActualQty       decimal.Decimal
	Condition       string
	PostingDate     time.Time
}
