package dto

// ParseGS1Request parámetros del RPC parse_gs1_and_get_batch (JSON o formulario).
type ParseGS1Request struct {
	GTIN     string `json:"gtin" form:"gtin"`
	Expiry   string `json:"expiry" form:"expiry"`
	Lot      string `json:"lot" form:"lot"`
	ItemCode string `json:"item_code,omitempty" form:"item_code"`
}

// ParseGS1StringRequest código GS1 crudo tal como lo entrega el lector.
type ParseGS1StringRequest struct {
	GS1String string `json:"gs1_string" form:"gs1_string"`
	ItemCode  string `json:"item_code,omitempty" form:"item_code"`
}

// BatchResolution resultado de resolver un escaneo GS1 a artículo y lote.
type BatchResolution struct {
	FoundItem       string   `json:"found_item"`
	Batch           string   `json:"batch"`
	GTIN            string   `json:"gtin"`
	Expiry          string   `json:"expiry"`
	Lot             string   `json:"lot"`
	BatchExpiryDate *string  `json:"batch_expiry_date"`
	Created         bool     `json:"created"`
	Warnings        []string `json:"warnings,omitempty"`
}

// ScanErrorResponse respuesta del RPC ante un error inesperado (HTTP 200).
type ScanErrorResponse struct {
	FoundItem *string `json:"found_item"`
	Error     string  `json:"error"`
	GTIN      string  `json:"gtin"`
}

// MessageResponse envoltorio {"message": ...} usado por los métodos RPC.
type MessageResponse struct {
	Message interface{} `json:"message"`
}
