package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DocKind tipo de documento transaccional del ERP.
type DocKind string

// Tipos de documento que disparan la validación de lotes.
const (
	DocPurchaseReceipt     DocKind = "Purchase Receipt"
	DocPurchaseInvoice     DocKind = "Purchase Invoice"
	DocStockEntry          DocKind = "Stock Entry"
	DocStockReconciliation DocKind = "Stock Reconciliation"
	DocSalesInvoice        DocKind = "Sales Invoice"
	DocDeliveryNote        DocKind = "Delivery Note"
)

// Propósitos de Stock Entry relevantes para la validación.
const (
	PurposeMaterialReceipt  = "Material Receipt"
	PurposeMaterialIssue    = "Material Issue"
	PurposeMaterialTransfer = "Material Transfer"
)

// Estados del documento (docstatus del ERP).
const (
	DocStatusDraft     = 0
	DocStatusSubmitted = 1
	DocStatusCancelled = 2
)

// StockDocument documento transaccional con sus filas de artículos.
type StockDocument struct {
	Kind        DocKind
	Name        string
	IsReturn    bool
	Purpose     string // solo Stock Entry
	PostingDate *time.Time
	DocStatus   int
	Items       []LineItem
}

// LineItem fila del documento. Name es el identificador de la fila (voucher_detail_no en el libro);
// Idx es la posición 1-based mostrada al usuario.
type LineItem struct {
	Name            string
	Idx             int
	ItemCode        string
	BatchNo         string
	SerialNo        string // lista separada por saltos de línea
	Qty             decimal.Decimal
	Warehouse       string
	SourceWarehouse string // s_warehouse
	TargetWarehouse string // t_warehouse
	Condition       string // custom_condition (recepciones)
}

// SerialNos devuelve la lista de seriales de la fila (separados por salto de línea o coma).
func (l LineItem) SerialNos() []string {
	if strings.TrimSpace(l.SerialNo) == "" {
		return nil
	}
	fields := strings.FieldsFunc(l.SerialNo, func(r rune) bool {
		return r == '\n' || r == '\r' || r == ','
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if s := strings.TrimSpace(f); s != "" {
			out = append(out, s)
		}
	}
	return out
}
