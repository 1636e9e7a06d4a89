package repository

import (
	"context"

	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
)

// SerialNoRepository puerto de lectura de números de serie.
type SerialNoRepository interface {
	// ListByNames devuelve los seriales existentes entre los nombres dados (los inexistentes se omiten).
	ListByNames(ctx context.Context, names []string) ([]*entity.SerialNo, error)
}
