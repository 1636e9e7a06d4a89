package expiry_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
	"github.com/jhoicas/surgishop-scanner/internal/domain/expiry"
)

// allFlags devuelve una configuración con todas las banderas por documento en v
// y la excepción de entrada activa.
func allFlags(v bool) entity.Settings {
	return entity.Settings{
		AllowExpiredBatchesOnInbound:      true,
		AllowExpiredOnPurchaseReceipt:     v,
		AllowExpiredOnPurchaseInvoice:     v,
		AllowExpiredOnStockEntryReceipt:   v,
		AllowExpiredOnStockReconciliation: v,
		AllowExpiredOnSalesReturn:         v,
	}
}

var allKinds = []entity.DocKind{
	entity.DocPurchaseReceipt,
	entity.DocPurchaseInvoice,
	entity.DocStockEntry,
	entity.DocStockReconciliation,
	entity.DocSalesInvoice,
	entity.DocDeliveryNote,
}

// ──────────────────────────────────────────────────────────────────────────────
// Prioridad de las reglas globales
// ──────────────────────────────────────────────────────────────────────────────

func TestIsOverrideAllowed_SkipAllPermiteTodo(t *testing.T) {
	s := entity.Settings{SkipBatchExpiryValidation: true}
	purposes := []string{"", entity.PurposeMaterialReceipt, entity.PurposeMaterialIssue, entity.PurposeMaterialTransfer}
	qtys := []decimal.Decimal{decimal.NewFromInt(-3), decimal.Zero, decimal.NewFromInt(5)}

	for _, kind := range allKinds {
		for _, isReturn := range []bool{false, true} {
			for _, purpose := range purposes {
				for _, qty := range qtys {
					for _, src := range []bool{false, true} {
						for _, dst := range []bool{false, true} {
							sub := expiry.Subject{
								Kind: kind, IsReturn: isReturn, Purpose: purpose, Qty: qty,
								HasSourceWarehouse: src, HasTargetWarehouse: dst,
							}
							assert.True(t, expiry.IsOverrideAllowed(s, sub), "skip-all debe permitir %+v", sub)
						}
					}
				}
			}
		}
	}
}

func TestIsOverrideAllowed_InboundDeshabilitadoNiega(t *testing.T) {
	s := allFlags(true)
	s.AllowExpiredBatchesOnInbound = false

	d := expiry.Decide(s, expiry.Subject{Kind: entity.DocPurchaseReceipt})
	assert.False(t, d.Allowed)
	assert.Equal(t, "inbound-override-disabled", d.Rule)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de decisión por tipo de documento
// ──────────────────────────────────────────────────────────────────────────────

func TestDecide_TablaDeReglas(t *testing.T) {
	five := decimal.NewFromInt(5)
	cases := []struct {
		name     string
		sub      expiry.Subject
		wantRule string
	}{
		{"recepción de compra", expiry.Subject{Kind: entity.DocPurchaseReceipt, Qty: five}, "purchase-receipt"},
		{"factura de compra", expiry.Subject{Kind: entity.DocPurchaseInvoice, Qty: five}, "purchase-invoice"},
		{"entrada de material", expiry.Subject{Kind: entity.DocStockEntry, Purpose: entity.PurposeMaterialReceipt}, "stock-entry-material-receipt"},
		{"traslado solo destino", expiry.Subject{Kind: entity.DocStockEntry, Purpose: entity.PurposeMaterialTransfer, HasTargetWarehouse: true}, "stock-entry-transfer-inbound"},
		{"conciliación positiva", expiry.Subject{Kind: entity.DocStockReconciliation, Qty: five}, "stock-reconciliation-positive"},
		{"devolución de venta", expiry.Subject{Kind: entity.DocSalesInvoice, IsReturn: true}, "sales-return"},
		{"devolución de remisión", expiry.Subject{Kind: entity.DocDeliveryNote, IsReturn: true}, "sales-return"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			on := expiry.Decide(allFlags(true), tc.sub)
			off := expiry.Decide(allFlags(false), tc.sub)
			assert.Equal(t, tc.wantRule, on.Rule)
			assert.True(t, on.Allowed, "con la bandera activa debe permitir")
			assert.Equal(t, tc.wantRule, off.Rule)
			assert.False(t, off.Allowed, "con la bandera inactiva debe negar")
		})
	}
}

func TestDecide_CasosQueSiempreNiegan(t *testing.T) {
	s := allFlags(true)
	cases := []struct {
		name     string
		sub      expiry.Subject
		wantRule string
	}{
		{"devolución de compra", expiry.Subject{Kind: entity.DocPurchaseReceipt, IsReturn: true}, "purchase-return"},
		{"devolución de factura de compra", expiry.Subject{Kind: entity.DocPurchaseInvoice, IsReturn: true}, "purchase-return"},
		{"traslado con origen y destino", expiry.Subject{Kind: entity.DocStockEntry, Purpose: entity.PurposeMaterialTransfer, HasSourceWarehouse: true, HasTargetWarehouse: true}, "default"},
		{"traslado solo origen", expiry.Subject{Kind: entity.DocStockEntry, Purpose: entity.PurposeMaterialTransfer, HasSourceWarehouse: true}, "default"},
		{"salida de material", expiry.Subject{Kind: entity.DocStockEntry, Purpose: entity.PurposeMaterialIssue}, "default"},
		{"conciliación en cero", expiry.Subject{Kind: entity.DocStockReconciliation, Qty: decimal.Zero}, "default"},
		{"venta normal", expiry.Subject{Kind: entity.DocSalesInvoice}, "default"},
		{"remisión normal", expiry.Subject{Kind: entity.DocDeliveryNote}, "default"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := expiry.Decide(s, tc.sub)
			assert.False(t, d.Allowed)
			assert.Equal(t, tc.wantRule, d.Rule)
		})
	}
}

func TestRuleNames_OrdenAuditable(t *testing.T) {
	assert.Equal(t, []string{
		"skip-all",
		"inbound-override-disabled",
		"purchase-receipt",
		"purchase-invoice",
		"stock-entry-material-receipt",
		"stock-entry-transfer-inbound",
		"stock-reconciliation-positive",
		"sales-return",
		"purchase-return",
		"default",
	}, expiry.RuleNames())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tramos de salida en Stock Entry
// ──────────────────────────────────────────────────────────────────────────────

func TestIsOutboundLeg(t *testing.T) {
	issue := &entity.StockDocument{Kind: entity.DocStockEntry, Purpose: entity.PurposeMaterialIssue}
	transfer := &entity.StockDocument{Kind: entity.DocStockEntry, Purpose: entity.PurposeMaterialTransfer}
	receipt := &entity.StockDocument{Kind: entity.DocStockEntry, Purpose: entity.PurposeMaterialReceipt}
	pr := &entity.StockDocument{Kind: entity.DocPurchaseReceipt}

	assert.True(t, expiry.IsOutboundLeg(issue, entity.LineItem{}))
	assert.True(t, expiry.IsOutboundLeg(transfer, entity.LineItem{SourceWarehouse: "A", TargetWarehouse: "B"}))
	assert.True(t, expiry.IsOutboundLeg(transfer, entity.LineItem{SourceWarehouse: "A"}))
	assert.False(t, expiry.IsOutboundLeg(transfer, entity.LineItem{TargetWarehouse: "B"}))
	assert.False(t, expiry.IsOutboundLeg(receipt, entity.LineItem{TargetWarehouse: "B"}))
	assert.False(t, expiry.IsOutboundLeg(pr, entity.LineItem{SourceWarehouse: "A"}))
}
