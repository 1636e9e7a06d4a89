package repository

import (
	"context"

	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
)

// SettingsRepository puerto de persistencia del registro singleton de configuración.
// Get devuelve nil, nil si el registro aún no existe.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.Settings, error)
	Save(ctx context.Context, s *entity.Settings) error
	Exists(ctx context.Context) (bool, error)
}
