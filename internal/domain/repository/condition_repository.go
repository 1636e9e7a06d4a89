package repository

import (
	"context"

	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
)

// ConditionSettingsRepository puerto del registro de condiciones. Get devuelve nil, nil si no existe.
type ConditionSettingsRepository interface {
	Get(ctx context.Context) (*entity.ConditionSettings, error)
	Save(ctx context.Context, cs *entity.ConditionSettings) error
}

// CustomFieldRepository puerto de los campos personalizados del ERP.
type CustomFieldRepository interface {
	ListByField(ctx context.Context, docTypes []string, fieldName string) ([]*entity.CustomField, error)
	SetOptions(ctx context.Context, name, options string) error
}
