package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/surgishop-scanner/internal/domain"
	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
)

// FlexBool acepta true/false, 0/1 y sus variantes entre comillas (el ERP serializa los Check como enteros).
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	switch strings.ToLower(raw) {
	case "", "null", "0", "false":
		*b = false
	case "1", "true":
		*b = true
	default:
		return fmt.Errorf("valor booleano inválido: %s", data)
	}
	return nil
}

// HookDocument documento recibido en un hook del ERP.
type HookDocument struct {
	Name        string         `json:"name"`
	IsReturn    FlexBool       `json:"is_return"`
	Purpose     string         `json:"purpose,omitempty"`
	PostingDate string         `json:"posting_date,omitempty"` // YYYY-MM-DD
	DocStatus   int            `json:"docstatus"`
	Items       []HookLineItem `json:"items"`
}

// HookLineItem fila del documento recibido.
type HookLineItem struct {
	Name            string          `json:"name"`
	Idx             int             `json:"idx"`
	ItemCode        string          `json:"item_code"`
	BatchNo         string          `json:"batch_no,omitempty"`
	SerialNo        string          `json:"serial_no,omitempty"`
	Qty             decimal.Decimal `json:"qty"`
	Warehouse       string          `json:"warehouse,omitempty"`
	SourceWarehouse string          `json:"s_warehouse,omitempty"`
	TargetWarehouse string          `json:"t_warehouse,omitempty"`
	Condition       string          `json:"custom_condition,omitempty"`
}

// DecodeHookDocument decodifica el cuerpo JSON del hook.
func DecodeHookDocument(body []byte) (*HookDocument, error) {
	var doc HookDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return &doc, nil
}

// ToEntity convierte el documento recibido al modelo de dominio.
// Las filas sin idx reciben su posición 1-based.
func (d *HookDocument) ToEntity(kind entity.DocKind) (*entity.StockDocument, error) {
	doc := &entity.StockDocument{
		Kind:      kind,
		Name:      d.Name,
		IsReturn:  bool(d.IsReturn),
		Purpose:   d.Purpose,
		DocStatus: d.DocStatus,
		Items:     make([]entity.LineItem, 0, len(d.Items)),
	}
	if p := strings.TrimSpace(d.PostingDate); p != "" {
		// El ERP puede enviar fecha y hora; solo interesa la fecha.
		if len(p) > 10 {
			p = p[:10]
		}
		t, err := time.Parse(time.DateOnly, p)
		if err != nil {
			return nil, fmt.Errorf("%w: posting_date %q", domain.ErrInvalidInput, d.PostingDate)
		}
		doc.PostingDate = &t
	}
	for i, it := range d.Items {
		idx := it.Idx
		if idx <= 0 {
			idx = i + 1
		}
		doc.Items = append(doc.Items, entity.LineItem{
			Name:            it.Name,
			Idx:             idx,
			ItemCode:        it.ItemCode,
			BatchNo:         strings.TrimSpace(it.BatchNo),
			SerialNo:        it.SerialNo,
			Qty:             it.Qty,
			Warehouse:       it.Warehouse,
			SourceWarehouse: it.SourceWarehouse,
			TargetWarehouse: it.TargetWarehouse,
			Condition:       it.Condition,
		})
	}
	return doc, nil
}

// HookResponse resultado de un hook aceptado.
type HookResponse struct {
	DocType string `json:"doctype"`
	Event   string `json:"event"`
	Status  string `json:"status"`
}

// ValidationErrorResponse error de validación visible al usuario, con la fila que lo causó.
type ValidationErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Row     int    `json:"row,omitempty"`
}
