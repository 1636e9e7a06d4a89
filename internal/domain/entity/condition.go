package entity

// Tipos de documento que llevan el campo personalizado de condición.
const (
	ConditionSettingsDocType = "SurgiShop Condition Settings"
	PurchaseReceiptItemType  = "Purchase Receipt Item"
	StockLedgerEntryType     = "Stock Ledger Entry"
	ConditionFieldName       = "custom_condition"
)

// ConditionSettings lista ordenada de condiciones administrada por el usuario.
type ConditionSettings struct {
	Conditions []string
}

// CustomField campo personalizado de tipo Select en un doctype del ERP.
type CustomField struct {
	Name      string
	DocType   string
	FieldName string
	Options   string
}
