package condition

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/surgishop-scanner/internal/application/ports"
	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
	"github.com/jhoicas/surgishop-scanner/internal/domain/repository"
)

// LedgerTxRunner ejecuta fn dentro de una transacción con el libro de stock atado a ella.
type LedgerTxRunner interface {
	RunLedger(ctx context.Context, fn func(ledger repository.StockLedgerRepository) error) error
}

// Propagator copia la condición de las filas de una recepción a sus entradas del libro de stock.
type Propagator struct {
	txRunner LedgerTxRunner
	metrics  ports.Metrics
	log      zerolog.Logger
}

// NewPropagator construye el propagador. metrics puede ser nil.
func NewPropagator(txRunner LedgerTxRunner, metrics ports.Metrics, log zerolog.Logger) *Propagator {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &Propagator{txRunner: txRunner, metrics: metrics, log: log}
}

// Propagate sobrescribe la condición de las entradas que difieren y devuelve cuántas cambió.
// Filas sin condición no se tocan. Es idempotente.
func (p *Propagator) Propagate(ctx context.Context, doc *entity.StockDocument) (int, error) {
	byRow := make(map[string]string)
	detailNos := make([]string, 0, len(doc.Items))
	for _, line := range doc.Items {
		if line.Name == "" || line.Condition == "" {
			continue
		}
		if _, ok := byRow[line.Name]; !ok {
			detailNos = append(detailNos, line.Name)
		}
		byRow[line.Name] = line.Condition
	}
	if len(byRow) == 0 {
		return 0, nil
	}

	updated := 0
	err := p.txRunner.RunLedger(ctx, func(ledger repository.StockLedgerRepository) error {
		entries, err := ledger.ListByVoucherDetails(ctx, entity.DocPurchaseReceipt, doc.Name, detailNos)
		if err != nil {
			return fmt.Errorf("listar libro de stock de %s: %w", doc.Name, err)
		}
		for _, e := range entries {
			target := byRow[e.VoucherDetailNo]
			if e.Condition == target {
				continue
			}
			if err := ledger.SetCondition(ctx, e.Name, target); err != nil {
				return fmt.Errorf("actualizar condición de %s: %w", e.Name, err)
			}
			updated++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	p.metrics.ObserveConditionUpdates(updated)
	if updated > 0 {
		p.log.Info().Str("doc", doc.Name).Int("updated", updated).Msg("condición copiada al libro de stock")
	}
	return updated, nil
}

// PropagateBestEffort ejecuta Propagate sin fallar nunca: errores y pánicos se registran.
func (p *Propagator) PropagateBestEffort(ctx context.Context, doc *entity.StockDocument) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error().Interface("panic", r).Str("doc", doc.Name).Msg("pánico al copiar condición")
		}
	}()
	if _, err := p.Propagate(ctx, doc); err != nil {
		p.log.Error().Err(err).Str("doc", doc.Name).Msg("no se pudo copiar la condición")
	}
}
