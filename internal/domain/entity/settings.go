package entity

import (
	"strings"
	"time"
)

// SettingsDocType nombre del registro singleton de configuración en el ERP.
const SettingsDocType = "SurgiShop Settings"

// Plantillas de nombre de lote soportadas.
const (
	BatchNamingItemLot = "{item}-{lot}" // por defecto: evita colisiones entre artículos
	BatchNamingLot     = "{lot}"
)

// Settings registro singleton con las banderas de validación de vencimiento
// y las opciones del escáner. Lo edita un administrador.
type Settings struct {
	// Validación de lotes vencidos
	SkipBatchExpiryValidation         bool `json:"skip_batch_expiry_validation"`
	AllowExpiredBatchesOnInbound      bool `json:"allow_expired_batches_on_inbound"`
	AllowExpiredOnPurchaseReceipt     bool `json:"allow_expired_on_purchase_receipt"`
	AllowExpiredOnPurchaseInvoice     bool `json:"allow_expired_on_purchase_invoice"`
	AllowExpiredOnStockEntryReceipt   bool `json:"allow_expired_on_stock_entry_receipt"`
	AllowExpiredOnStockReconciliation bool `json:"allow_expired_on_stock_reconciliation"`
	AllowExpiredOnSalesReturn         bool `json:"allow_expired_on_sales_return"`

	// Escáner GS1
	AutoCreateBatches          bool   `json:"auto_create_batches"`
	UpdateMissingExpiry        bool   `json:"update_missing_expiry"`
	WarnOnExpiryMismatch       bool   `json:"warn_on_expiry_mismatch"`
	StrictGTINValidation       bool   `json:"strict_gtin_validation"`
	BatchNamingTemplate        string `json:"batch_naming_template"`
	EnableScanSounds           bool   `json:"enable_scan_sounds"`
	PromptForQuantity          bool   `json:"prompt_for_quantity"`
	DefaultScanQuantity        int    `json:"default_scan_quantity"`
	DisableSerialBatchSelector bool   `json:"disable_serial_batch_selector"`

	// Códigos de disparo del escáner
	NewLineTriggerBarcode   string `json:"new_line_trigger_barcode"`
	ConditionTriggerBarcode string `json:"condition_trigger_barcode"`
	QuantityTriggerBarcode  string `json:"quantity_trigger_barcode"`
	DeleteRowTriggerBarcode string `json:"delete_row_trigger_barcode"`

	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultSettings valores usados en la instalación y cuando el registro aún no existe:
// todas las excepciones de entrada activas y la validación global encendida.
func DefaultSettings() Settings {
	return Settings{
		SkipBatchExpiryValidation:         false,
		AllowExpiredBatchesOnInbound:      true,
		AllowExpiredOnPurchaseReceipt:     true,
		AllowExpiredOnPurchaseInvoice:     true,
		AllowExpiredOnStockEntryReceipt:   true,
		AllowExpiredOnStockReconciliation: true,
		AllowExpiredOnSalesReturn:         true,

		AutoCreateBatches:          true,
		UpdateMissingExpiry:        true,
		WarnOnExpiryMismatch:       true,
		StrictGTINValidation:       false,
		BatchNamingTemplate:        BatchNamingItemLot,
		EnableScanSounds:           true,
		PromptForQuantity:          false,
		DefaultScanQuantity:        1,
		DisableSerialBatchSelector: true,
	}
}

// TriggerBarcode código de disparo imprimible.
type TriggerBarcode struct {
	Label       string
	Description string
	Value       string
}

// TriggerBarcodes devuelve los códigos de disparo configurados (vacíos excluidos).
func (s Settings) TriggerBarcodes() []TriggerBarcode {
	all := []TriggerBarcode{
		{Label: "New Line Trigger", Description: "Fuerza que el siguiente artículo se agregue en una fila nueva", Value: s.NewLineTriggerBarcode},
		{Label: "Condition Trigger", Description: "Asigna la condición del siguiente escaneo", Value: s.ConditionTriggerBarcode},
		{Label: "Quantity Trigger", Description: "Pide la cantidad en el siguiente escaneo", Value: s.QuantityTriggerBarcode},
		{Label: "Delete Row Trigger", Description: "Elimina la última fila escaneada", Value: s.DeleteRowTriggerBarcode},
	}
	out := make([]TriggerBarcode, 0, len(all))
	for _, t := range all {
		if trimmed := strings.TrimSpace(t.Value); trimmed != "" {
			t.Value = trimmed
			out = append(out, t)
		}
	}
	return out
}
