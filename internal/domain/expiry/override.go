// Package expiry decide si una fila de un documento de stock puede omitir
// la validación de lotes vencidos. La lógica es pura: recibe la configuración
// como valor y no consulta la base de datos.
package expiry

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
)

// Subject datos del documento y de la fila que intervienen en la decisión.
type Subject struct {
	Kind               entity.DocKind
	IsReturn           bool
	Purpose            string
	Qty                decimal.Decimal
	HasSourceWarehouse bool
	HasTargetWarehouse bool
}

// SubjectFor arma el Subject de una fila de documento.
func SubjectFor(doc *entity.StockDocument, line entity.LineItem) Subject {
	return Subject{
		Kind:               doc.Kind,
		IsReturn:           doc.IsReturn,
		Purpose:            doc.Purpose,
		Qty:                line.Qty,
		HasSourceWarehouse: line.SourceWarehouse != "",
		HasTargetWarehouse: line.TargetWarehouse != "",
	}
}

// Decision resultado de evaluar las reglas. Rule es el nombre de la regla que decidió.
type Decision struct {
	Allowed bool
	Rule    string
}

type rule struct {
	name  string
	match func(s entity.Settings, sub Subject) bool
	allow func(s entity.Settings) bool
}

func always(v bool) func(entity.Settings) bool {
	return func(entity.Settings) bool { return v }
}

// Reglas en orden de prioridad: gana la primera que coincide.
var rules = []rule{
	{
		name:  "skip-all",
		match: func(s entity.Settings, _ Subject) bool { return s.SkipBatchExpiryValidation },
		allow: always(true),
	},
	{
		name:  "inbound-override-disabled",
		match: func(s entity.Settings, _ Subject) bool { return !s.AllowExpiredBatchesOnInbound },
		allow: always(false),
	},
	{
		name: "purchase-receipt",
		match: func(_ entity.Settings, sub Subject) bool {
			return sub.Kind == entity.DocPurchaseReceipt && !sub.IsReturn
		},
		allow: func(s entity.Settings) bool { return s.AllowExpiredOnPurchaseReceipt },
	},
	{
		name: "purchase-invoice",
		match: func(_ entity.Settings, sub Subject) bool {
			return sub.Kind == entity.DocPurchaseInvoice && !sub.IsReturn
		},
		allow: func(s entity.Settings) bool { return s.AllowExpiredOnPurchaseInvoice },
	},
	{
		name: "stock-entry-material-receipt",
		match: func(_ entity.Settings, sub Subject) bool {
			return sub.Kind == entity.DocStockEntry && sub.Purpose == entity.PurposeMaterialReceipt
		},
		allow: func(s entity.Settings) bool { return s.AllowExpiredOnStockEntryReceipt },
	},
	{
		// Solo la fila con bodega destino y sin bodega origen cuenta como entrada.
		name: "stock-entry-transfer-inbound",
		match: func(_ entity.Settings, sub Subject) bool {
			return sub.Kind == entity.DocStockEntry && sub.Purpose == entity.PurposeMaterialTransfer &&
				sub.HasTargetWarehouse && !sub.HasSourceWarehouse
		},
		allow: func(s entity.Settings) bool { return s.AllowExpiredOnStockEntryReceipt },
	},
	{
		name: "stock-reconciliation-positive",
		match: func(_ entity.Settings, sub Subject) bool {
			return sub.Kind == entity.DocStockReconciliation && sub.Qty.GreaterThan(decimal.Zero)
		},
		allow: func(s entity.Settings) bool { return s.AllowExpiredOnStockReconciliation },
	},
	{
		name: "sales-return",
		match: func(_ entity.Settings, sub Subject) bool {
			return (sub.Kind == entity.DocSalesInvoice || sub.Kind == entity.DocDeliveryNote) && sub.IsReturn
		},
		allow: func(s entity.Settings) bool { return s.AllowExpiredOnSalesReturn },
	},
	{
		// Las devoluciones de compra son salidas.
		name: "purchase-return",
		match: func(_ entity.Settings, sub Subject) bool {
			return (sub.Kind == entity.DocPurchaseReceipt || sub.Kind == entity.DocPurchaseInvoice) && sub.IsReturn
		},
		allow: always(false),
	},
}

const defaultRule = "default"

// Decide evalúa las reglas en orden y devuelve la decisión con el nombre de la regla aplicada.
func Decide(s entity.Settings, sub Subject) Decision {
	for _, r := range rules {
		if r.match(s, sub) {
			return Decision{Allowed: r.allow(s), Rule: r.name}
		}
	}
	return Decision{Allowed: false, Rule: defaultRule}
}

// IsOverrideAllowed informa si la fila puede usar lotes vencidos según la configuración.
func IsOverrideAllowed(s entity.Settings, sub Subject) bool {
	return Decide(s, sub).Allowed
}

// RuleNames devuelve los nombres de las reglas en orden de evaluación.
func RuleNames() []string {
	names := make([]string, 0, len(rules)+1)
	for _, r := range rules {
		names = append(names, r.name)
	}
	return append(names, defaultRule)
}

// IsOutboundLeg informa si la fila de un Stock Entry es una salida de material,
// que nunca se valida por vencimiento: Material Issue siempre y, en Material Transfer,
// las filas que tienen bodega de origen.
func IsOutboundLeg(doc *entity.StockDocument, line entity.LineItem) bool {
	if doc.Kind != entity.DocStockEntry {
		return false
	}
	switch doc.Purpose {
	case entity.PurposeMaterialIssue:
		return true
	case entity.PurposeMaterialTransfer:
		return line.SourceWarehouse != ""
	}
	return false
}
