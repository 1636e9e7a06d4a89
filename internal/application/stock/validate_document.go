package stock

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/surgishop-scanner/internal/application/ports"
	"github.com/jhoicas/surgishop-scanner/internal/application/settings"
	"github.com/jhoicas/surgishop-scanner/internal/domain"
	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
	"github.com/jhoicas/surgishop-scanner/internal/domain/expiry"
	"github.com/jhoicas/surgishop-scanner/internal/domain/repository"
)

// Códigos de error de validación (dto.ErrorResponse.Code).
const (
	CodeBatchExpired        = "BATCH_EXPIRED"
	CodeSerialBatchMismatch = "SERIAL_BATCH_MISMATCH"
)

// DocumentValidator valida lotes vencidos y pertenencia de seriales en documentos de stock.
// Se ejecuta en el evento validate de cada documento registrado en los hooks.
type DocumentValidator struct {
	settings *settings.Resolver
	batches  repository.BatchRepository
	serials  repository.SerialNoRepository
	metrics  ports.Metrics
	log      zerolog.Logger
}

// NewDocumentValidator construye el validador. metrics puede ser nil.
func NewDocumentValidator(
	resolver *settings.Resolver,
	batches repository.BatchRepository,
	serials repository.SerialNoRepository,
	metrics ports.Metrics,
	log zerolog.Logger,
) *DocumentValidator {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &DocumentValidator{
		settings: resolver,
		batches:  batches,
		serials:  serials,
		metrics:  metrics,
		log:      log,
	}
}

// Validate recorre las filas en orden y falla con la primera fila inválida.
// La verificación serial/lote corre siempre; la de vencimiento solo cuando ninguna excepción aplica.
func (v *DocumentValidator) Validate(ctx context.Context, doc *entity.StockDocument) error {
	err := v.validate(ctx, doc)
	v.metrics.ObserveValidation(string(doc.Kind), validationResult(err))
	return err
}

func (v *DocumentValidator) validate(ctx context.Context, doc *entity.StockDocument) error {
	cfg := v.settings.Get(ctx)

	for _, line := range doc.Items {
		if err := v.checkSerials(ctx, line); err != nil {
			return err
		}

		if cfg.SkipBatchExpiryValidation {
			continue
		}
		if expiry.IsOutboundLeg(doc, line) {
			continue
		}
		if d := expiry.Decide(cfg, expiry.SubjectFor(doc, line)); d.Allowed {
			v.log.Debug().
				Str("doctype", string(doc.Kind)).
				Str("doc", doc.Name).
				Int("row", line.Idx).
				Str("rule", d.Rule).
				Msg("excepción de vencimiento aplicada")
			continue
		}

		if err := v.checkExpiry(ctx, doc, line); err != nil {
			return err
		}
	}
	return nil
}

func (v *DocumentValidator) checkSerials(ctx context.Context, line entity.LineItem) error {
	if line.BatchNo == "" {
		return nil
	}
	names := line.SerialNos()
	if len(names) == 0 {
		return nil
	}
	serials, err := v.serials.ListByNames(ctx, names)
	if err != nil {
		return fmt.Errorf("consultar seriales de la fila %d: %w", line.Idx, err)
	}
	for _, sn := range serials {
		// Seriales sin bodega (ya despachados) no se comparan.
		if sn.Warehouse != "" && sn.BatchNo != line.BatchNo {
			return domain.NewRowError(CodeSerialBatchMismatch, line.Idx, domain.ErrSerialBatchMismatch,
				"El número de serie %s no pertenece al lote %s (pertenece al lote %s)",
				sn.Name, line.BatchNo, sn.BatchNo)
		}
	}
	return nil
}

func (v *DocumentValidator) checkExpiry(ctx context.Context, doc *entity.StockDocument, line entity.LineItem) error {
	if !line.Qty.GreaterThan(decimal.Zero) || line.BatchNo == "" || doc.PostingDate == nil {
		return nil
	}
	if doc.DocStatus >= entity.DocStatusCancelled {
		return nil
	}
	batch, err := v.batches.GetByID(ctx, line.BatchNo)
	if err != nil {
		return fmt.Errorf("consultar lote %s: %w", line.BatchNo, err)
	}
	if batch == nil || !batch.ExpiredOn(*doc.PostingDate) {
		return nil
	}
	v.log.Info().
		Str("doctype", string(doc.Kind)).
		Str("doc", doc.Name).
		Int("row", line.Idx).
		Str("batch", batch.ID).
		Str("expiry", entity.FormatDate(batch.ExpiryDate)).
		Msg("lote vencido rechazado")
	return domain.NewRowError(CodeBatchExpired, line.Idx, domain.ErrBatchExpired,
		"El lote %s ya está vencido (%s).", batch.ID, entity.FormatDate(batch.ExpiryDate))
}

func validationResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrBatchExpired):
		return "expired"
	case errors.Is(err, domain.ErrSerialBatchMismatch):
		return "serial_mismatch"
	default:
		return "error"
	}
}
