package settings

import (
	"context"

	"github.com/jhoicas/surgishop-scanner/internal/application/ports"
	"github.com/jhoicas/surgishop-scanner/internal/domain"
)

// TriggerSheetUseCase genera la hoja imprimible con los códigos de disparo configurados.
type TriggerSheetUseCase struct {
	resolver  *Resolver
	generator ports.TriggerSheetGenerator
}

// NewTriggerSheetUseCase construye el caso de uso.
func NewTriggerSheetUseCase(resolver *Resolver, generator ports.TriggerSheetGenerator) *TriggerSheetUseCase {
	return &TriggerSheetUseCase{resolver: resolver, generator: generator}
}

// Generate devuelve el PDF o domain.ErrNoTriggerBarcodes si no hay ninguno configurado.
func (uc *TriggerSheetUseCase) Generate(ctx context.Context) ([]byte, error) {
	triggers := uc.resolver.Get(ctx).TriggerBarcodes()
	if len(triggers) == 0 {
		return nil, domain.ErrNoTriggerBarcodes
	}
	return uc.generator.GenerateTriggerSheet(ctx, triggers)
}
