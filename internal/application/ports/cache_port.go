package ports

import (
	"context"

	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
)

// CacheInvalidator publica la invalidación de caché de un doctype hacia otros procesos.
type CacheInvalidator interface {
	Publish(ctx context.Context, docType string) error
}

// TriggerSheetGenerator genera la hoja imprimible de códigos de disparo.
type TriggerSheetGenerator interface {
	GenerateTriggerSheet(ctx context.Context, triggers []entity.TriggerBarcode) ([]byte, error)
}
