package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/surgishop-scanner/internal/domain"
	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
	"github.com/jhoicas/surgishop-scanner/internal/domain/repository"
)

var _ repository.StockLedgerRepository = (*StockLedgerRepo)(nil)

// StockLedgerRepo libro de stock en memoria. Writes cuenta las actualizaciones de condición.
type StockLedgerRepo struct {
	mu      sync.RWMutex
	entries []*entity.StockLedgerEntry
	Writes  int
}

func NewStockLedgerRepo(entries ...entity.StockLedgerEntry) *StockLedgerRepo {
	r := &StockLedgerRepo{}
	for _, e := range entries {
		copied := e
		r.entries = append(r.entries, &copied)
	}
	return r
}

func (r *StockLedgerRepo) ListByVoucherDetails(_ context.Context, voucherType entity.DocKind, voucherNo string, detailNos []string) ([]*entity.StockLedgerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	wanted := make(map[string]bool, len(detailNos))
	for _, d := range detailNos {
		wanted[d] = true
	}
	var out []*entity.StockLedgerEntry
	for _, e := range r.entries {
		if e.VoucherType == voucherType && e.VoucherNo == voucherNo && wanted[e.VoucherDetailNo] {
			copied := *e
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *StockLedgerRepo) SetCondition(_ context.Context, name, condition string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.Name == name {
			e.Condition = condition
			r.Writes++
			return nil
		}
	}
	return domain.ErrNotFound
}

// Get devuelve una copia de la entrada por nombre (nil si no existe).
func (r *StockLedgerRepo) Get(name string) *entity.StockLedgerEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		if e.Name == name {
			copied := *e
			return &copied
		}
	}
	return nil
}
