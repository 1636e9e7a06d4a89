package scanner

import (
	"context"

	"github.com/jhoicas/surgishop-scanner/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con el repositorio de lotes atado a ella.
// La búsqueda y la creación o actualización del lote quedan en la misma transacción.
type TxRunner interface {
	Run(ctx context.Context, fn func(batches repository.BatchRepository) error) error
}
