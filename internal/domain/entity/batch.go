package entity

import "time"

// BatchDocType nombre del tipo de documento Lote en el ERP.
const BatchDocType = "Batch"

// Batch lote de un artículo con una fecha de vencimiento común.
// ID es el identificador único (item-lote o solo lote según la plantilla).
// ExpiryDate es solo fecha (medianoche UTC) y puede ser nil.
type Batch struct {
	ID         string
	ItemCode   string
	ExpiryDate *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// HasExpiry informa si el lote tiene fecha de vencimiento.
func (b *Batch) HasExpiry() bool { return b != nil && b.ExpiryDate != nil }

// ExpiredOn informa si el lote está vencido a la fecha dada (vencimiento estrictamente anterior).
func (b *Batch) ExpiredOn(date time.Time) bool {
	if !b.HasExpiry() {
		return false
	}
	return DateOnly(*b.ExpiryDate).Before(DateOnly(date))
}

// DateOnly trunca t a la fecha (medianoche UTC) conservando año, mes y día del reloj de t.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate formatea una fecha de lote como YYYY-MM-DD; nil devuelve "".
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.DateOnly)
}
