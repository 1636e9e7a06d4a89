// Package hooks enruta los eventos de ciclo de vida de documentos del ERP
// (validate, on_submit) a los casos de uso correspondientes.
package hooks

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/jhoicas/surgishop-scanner/internal/application/condition"
	"github.com/jhoicas/surgishop-scanner/internal/application/stock"
	"github.com/jhoicas/surgishop-scanner/internal/domain"
	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
)

// Event nombre del evento de ciclo de vida.
type Event string

const (
	EventValidate Event = "validate"
	EventOnSubmit Event = "on_submit"
)

// Handler procedimiento invocado para un documento.
type Handler func(ctx context.Context, doc *entity.StockDocument) error

// Registration par doctype/evento registrado.
type Registration struct {
	DocType entity.DocKind `json:"doctype"`
	Event   Event          `json:"event"`
}

// Dispatcher tabla de eventos por doctype.
type Dispatcher struct {
	table map[entity.DocKind]map[Event]Handler
	log   zerolog.Logger
}

// NewDispatcher registra la validación de lotes en todos los documentos de stock
// y la copia de condición en el on_submit de Purchase Receipt.
func NewDispatcher(validator *stock.DocumentValidator, propagator *condition.Propagator, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{table: make(map[entity.DocKind]map[Event]Handler), log: log}

	for _, kind := range []entity.DocKind{
		entity.DocPurchaseReceipt,
		entity.DocPurchaseInvoice,
		entity.DocStockEntry,
		entity.DocStockReconciliation,
		entity.DocSalesInvoice,
		entity.DocDeliveryNote,
	} {
		d.Register(kind, EventValidate, validator.Validate)
	}
	// on_submit no debe abortar la transacción del ERP.
	d.Register(entity.DocPurchaseReceipt, EventOnSubmit, func(ctx context.Context, doc *entity.StockDocument) error {
		propagator.PropagateBestEffort(ctx, doc)
		return nil
	})
	return d
}

// Register agrega o reemplaza un handler.
func (d *Dispatcher) Register(kind entity.DocKind, event Event, h Handler) {
	if d.table[kind] == nil {
		d.table[kind] = make(map[Event]Handler)
	}
	d.table[kind][event] = h
}

// Dispatch invoca el handler registrado para (kind, event).
func (d *Dispatcher) Dispatch(ctx context.Context, kind entity.DocKind, event Event, doc *entity.StockDocument) error {
	events, ok := d.table[kind]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedDocument, kind)
	}
	h, ok := events[event]
	if !ok {
		return fmt.Errorf("%w: %s/%s", domain.ErrUnsupportedHookEvent, kind, event)
	}
	doc.Kind = kind
	d.log.Debug().Str("doctype", string(kind)).Str("event", string(event)).Str("doc", doc.Name).Int("rows", len(doc.Items)).Msg("hook")
	return h(ctx, doc)
}

// Registrations lista los pares registrados ordenados por doctype y evento.
func (d *Dispatcher) Registrations() []Registration {
	var out []Registration
	for kind, events := range d.table {
		for ev := range events {
			out = append(out, Registration{DocType: kind, Event: ev})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DocType != out[j].DocType {
			return out[i].DocType < out[j].DocType
		}
		return out[i].Event < out[j].Event
	})
	return out
}
