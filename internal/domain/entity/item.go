package entity

import "time"

// Item artículo del maestro del ERP. HasBatchNo indica si se controla por lotes.
type Item struct {
	Code        string
	Name        string
	HasBatchNo  bool
	HasSerialNo bool
	Disabled    bool
	UpdatedAt   time.Time
}

// ItemBarcode registro del código de barras (GTIN) asociado a un artículo.
type ItemBarcode struct {
	Barcode     string
	ItemCode    string
	BarcodeType string // EAN, GTIN-14, ...
}
