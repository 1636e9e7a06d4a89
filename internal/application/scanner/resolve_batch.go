package scanner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/surgishop-scanner/internal/application/dto"
	"github.com/jhoicas/surgishop-scanner/internal/application/ports"
	"github.com/jhoicas/surgishop-scanner/internal/application/settings"
	"github.com/jhoicas/surgishop-scanner/internal/domain"
	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
	"github.com/jhoicas/surgishop-scanner/internal/domain/gs1"
	"github.com/jhoicas/surgishop-scanner/internal/domain/repository"
)

// ResolveBatchInput datos de un escaneo GS1. ItemCode es opcional.
type ResolveBatchInput struct {
	GTIN     string
	Expiry   string // YYMMDD
	Lot      string
	ItemCode string
}

// ResolveBatchUseCase resuelve un escaneo GS1 a artículo y lote, creando el lote
// o completando su vencimiento según la configuración.
type ResolveBatchUseCase struct {
	settings *settings.Resolver
	items    repository.ItemRepository
	txRunner TxRunner
	metrics  ports.Metrics
	log      zerolog.Logger
	now      func() time.Time
}

// NewResolveBatchUseCase construye el caso de uso. metrics puede ser nil.
func NewResolveBatchUseCase(
	resolver *settings.Resolver,
	items repository.ItemRepository,
	txRunner TxRunner,
	metrics ports.Metrics,
	log zerolog.Logger,
) *ResolveBatchUseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &ResolveBatchUseCase{
		settings: resolver,
		items:    items,
		txRunner: txRunner,
		metrics:  metrics,
		log:      log,
		now:      time.Now,
	}
}

// Resolve ejecuta los pasos en orden; cada fallo detiene el proceso.
func (uc *ResolveBatchUseCase) Resolve(ctx context.Context, in ResolveBatchInput) (*dto.BatchResolution, error) {
	out, err := uc.resolve(ctx, in)
	uc.metrics.ObserveScan(ScanResult(err))
	return out, err
}

// ParseAndResolve interpreta un código GS1 crudo y lo resuelve.
func (uc *ResolveBatchUseCase) ParseAndResolve(ctx context.Context, raw, itemCode string) (*dto.BatchResolution, error) {
	res, err := gs1.Parse(gs1.Sanitize(raw))
	if err != nil {
		uc.metrics.ObserveScan(ScanResult(domain.ErrInvalidInput))
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return uc.Resolve(ctx, ResolveBatchInput{
		GTIN:     res.GTIN,
		Expiry:   res.Expiry,
		Lot:      res.Lot,
		ItemCode: itemCode,
	})
}

func (uc *ResolveBatchUseCase) resolve(ctx context.Context, in ResolveBatchInput) (*dto.BatchResolution, error) {
	gtin := gs1.Sanitize(in.GTIN)
	lot := gs1.Sanitize(in.Lot)
	expiryRaw := gs1.Sanitize(in.Expiry)
	itemCode := gs1.Sanitize(in.ItemCode)

	// 1) Campos obligatorios
	if gtin == "" || lot == "" {
		return nil, fmt.Errorf("%w: GTIN y lote son obligatorios", domain.ErrInvalidInput)
	}
	log := uc.log.With().Str("gtin", gtin).Str("lot", lot).Str("expiry", expiryRaw).Logger()
	log.Info().Msg("procesando escaneo GS1")

	cfg := uc.settings.Get(ctx)

	// 2) Artículo a partir del código de barras
	itemCode, err := uc.resolveItemCode(ctx, cfg, gtin, itemCode)
	if err != nil {
		log.Info().Err(err).Str("item_code", in.ItemCode).Msg("GTIN no resuelto")
		return nil, err
	}

	// 3) Estado del artículo
	item, err := uc.items.GetByCode(ctx, itemCode)
	if err != nil {
		return nil, fmt.Errorf("consultar artículo %s: %w", itemCode, err)
	}
	if item == nil {
		log.Error().Str("item_code", itemCode).Msg("artículo del código de barras no existe")
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemCode)
	}
	if item.Disabled {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemDisabled, itemCode)
	}
	if !item.HasBatchNo {
		return nil, fmt.Errorf("%w: %s", domain.ErrBatchingNotEnabled, itemCode)
	}

	// 4) Identificador de lote
	batchID := gs1.BatchID(cfg.BatchNamingTemplate, itemCode, lot)
	log = log.With().Str("item_code", itemCode).Str("batch", batchID).Logger()

	scanned, hasScanned := uc.parseScannedExpiry(log, expiryRaw)

	out := &dto.BatchResolution{
		FoundItem: itemCode,
		Batch:     batchID,
		GTIN:      gtin,
		Expiry:    expiryRaw,
		Lot:       lot,
	}

	// 5) y 6) Crear el lote o completar su vencimiento
	var final *entity.Batch
	err = uc.txRunner.Run(ctx, func(batches repository.BatchRepository) error {
		b, err := batches.GetByID(ctx, batchID)
		if err != nil {
			return fmt.Errorf("consultar lote %s: %w", batchID, err)
		}
		if b == nil {
			if !cfg.AutoCreateBatches {
				return fmt.Errorf("%w: %s", domain.ErrBatchAutoCreateDisabled, batchID)
			}
			created, err := uc.createBatch(ctx, batches, batchID, itemCode, scanned, hasScanned)
			if err != nil {
				return err
			}
			if created != nil {
				out.Created = true
				final = created
				return nil
			}
			// Otro escaneo lo creó entre la búsqueda y la inserción: se trata como existente.
			log.Info().Msg("lote creado por otro escaneo; se reutiliza")
			if b, err = batches.GetByID(ctx, batchID); err != nil {
				return fmt.Errorf("consultar lote %s: %w", batchID, err)
			}
			if b == nil {
				return fmt.Errorf("lote %s duplicado pero no encontrado: %w", batchID, domain.ErrNotFound)
			}
		}

		switch {
		case !b.HasExpiry() && hasScanned && cfg.UpdateMissingExpiry:
			if err := batches.UpdateExpiry(ctx, b.ID, scanned); err != nil {
				return fmt.Errorf("actualizar vencimiento del lote %s: %w", b.ID, err)
			}
			b.ExpiryDate = &scanned
			uc.metrics.ObserveExpiryBackfill()
			log.Info().Msg("vencimiento completado en lote existente")
		case b.HasExpiry() && hasScanned && !entity.DateOnly(*b.ExpiryDate).Equal(scanned):
			if cfg.WarnOnExpiryMismatch {
				msg := fmt.Sprintf("El vencimiento escaneado %s no coincide con el del lote %s (%s)",
					scanned.Format(time.DateOnly), b.ID, entity.FormatDate(b.ExpiryDate))
				out.Warnings = append(out.Warnings, msg)
				log.Warn().Str("batch_expiry", entity.FormatDate(b.ExpiryDate)).Msg("vencimiento escaneado distinto al del lote")
			}
		}
		final = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 7) Resultado
	out.Batch = final.ID
	if final.HasExpiry() {
		s := entity.FormatDate(final.ExpiryDate)
		out.BatchExpiryDate = &s
	}
	log.Info().Bool("created", out.Created).Msg("escaneo GS1 resuelto")
	return out, nil
}

// resolveItemCode busca el GTIN tal cual y luego sus formas equivalentes
// (gs1.EquivalentGTINs); gana la primera forma con coincidencias.
func (uc *ResolveBatchUseCase) resolveItemCode(ctx context.Context, cfg entity.Settings, gtin, itemCode string) (string, error) {
	candidates := gs1.EquivalentGTINs(gtin)

	if itemCode != "" {
		for _, barcode := range candidates {
			ok, err := uc.items.BarcodeExists(ctx, barcode, itemCode)
			if err != nil {
				return "", fmt.Errorf("consultar código de barras: %w", err)
			}
			if ok {
				return itemCode, nil
			}
		}
		return "", fmt.Errorf("%w: %s / %s", domain.ErrBarcodeMismatch, gtin, itemCode)
	}

	var codes []string
	for _, barcode := range candidates {
		found, err := uc.items.ItemCodesByBarcode(ctx, barcode)
		if err != nil {
			return "", fmt.Errorf("consultar código de barras: %w", err)
		}
		if len(found) > 0 {
			codes = found
			break
		}
	}
	switch {
	case len(codes) == 0:
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownGTIN, gtin)
	case len(codes) > 1 && cfg.StrictGTINValidation:
		return "", fmt.Errorf("%w: %s (%d artículos)", domain.ErrAmbiguousGTIN, gtin, len(codes))
	case len(codes) > 1:
		uc.log.Warn().Str("gtin", gtin).Strs("items", codes).Msg("GTIN asociado a varios artículos; se usa el primero")
	}
	return codes[0], nil
}

// parseScannedExpiry nunca falla: un vencimiento ilegible se registra y se trata como ausente.
func (uc *ResolveBatchUseCase) parseScannedExpiry(log zerolog.Logger, raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	if !gs1.IsExpiryCandidate(raw) {
		log.Warn().Msg("vencimiento con formato inválido (se esperaban 6 dígitos)")
		return time.Time{}, false
	}
	t, err := gs1.ParseExpiry(raw)
	if err != nil {
		log.Warn().Err(err).Msg("no se pudo interpretar el vencimiento; se ignora")
		return time.Time{}, false
	}
	return t, true
}

// createBatch devuelve nil, nil si el lote ya existía (domain.ErrDuplicate).
func (uc *ResolveBatchUseCase) createBatch(ctx context.Context, batches repository.BatchRepository, id, itemCode string, expiry time.Time, hasExpiry bool) (*entity.Batch, error) {
	now := uc.now()
	b := &entity.Batch{
		ID:        id,
		ItemCode:  itemCode,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if hasExpiry {
		d := expiry
		b.ExpiryDate = &d
	}
	if err := batches.Create(ctx, b); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, nil
		}
		return nil, fmt.Errorf("crear lote %s: %w", id, err)
	}
	uc.metrics.ObserveBatchCreated()
	uc.log.Info().Str("batch", id).Str("item_code", itemCode).Str("expiry", entity.FormatDate(b.ExpiryDate)).Msg("lote creado")
	return b, nil
}

// SetClock reemplaza el reloj (tests).
func (uc *ResolveBatchUseCase) SetClock(now func() time.Time) { uc.now = now }

// ScanResult etiqueta de métrica para el resultado de un escaneo.
func ScanResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, domain.ErrUnknownGTIN):
		return "unknown_gtin"
	case errors.Is(err, domain.ErrAmbiguousGTIN):
		return "ambiguous_gtin"
	case errors.Is(err, domain.ErrBarcodeMismatch):
		return "barcode_mismatch"
	case errors.Is(err, domain.ErrItemNotFound):
		return "item_not_found"
	case errors.Is(err, domain.ErrItemDisabled):
		return "item_disabled"
	case errors.Is(err, domain.ErrBatchingNotEnabled):
		return "batching_not_enabled"
	case errors.Is(err, domain.ErrBatchAutoCreateDisabled):
		return "auto_create_disabled"
	default:
		return "error"
	}
}
