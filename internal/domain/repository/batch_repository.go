package repository

import (
	"context"
	"time"

	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
)

// BatchRepository puerto de persistencia de lotes. GetByID devuelve nil, nil si no existe.
type BatchRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Batch, error)
	Create(ctx context.Context, b *entity.Batch) error
	UpdateExpiry(ctx context.Context, id string, expiry time.Time) error
}
