package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/surgishop-scanner/internal/domain/repository"
)

// TxRunner serializa las "transacciones" en memoria con un mutex.
// No hay rollback: los tests no dependen de él.
type TxRunner struct {
	mu      sync.Mutex
	Batches *BatchRepo
	Ledger  *StockLedgerRepo
}

// Run ejecuta fn con el repositorio de lotes.
func (r *TxRunner) Run(_ context.Context, fn func(batches repository.BatchRepository) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r.Batches)
}

// RunLedger ejecuta fn con el libro de stock.
func (r *TxRunner) RunLedger(_ context.Context, fn func(ledger repository.StockLedgerRepository) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r.Ledger)
}
