package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
	"github.com/jhoicas/surgishop-scanner/internal/domain/repository"
)

var _ repository.SerialNoRepository = (*SerialNoRepo)(nil)

type SerialNoRepo struct {
	q Querier
}

func NewSerialNoRepository(q Querier) *SerialNoRepo {
	return &SerialNoRepo{q: q}
}

func (r *SerialNoRepo) ListByNames(ctx context.Context, names []string) ([]*entity.SerialNo, error) {
	if len(names) == 0 {
		return nil, nil
	}
	rows, err := r.q.Query(ctx,
		`SELECT name, item_code, batch_no, warehouse FROM serial_nos WHERE name = ANY($1) ORDER BY name`, names)
	if err != nil {
		return nil, fmt.Errorf("list serial nos: %w", err)
	}
	defer rows.Close()

	var out []*entity.SerialNo
	for rows.Next() {
		var s entity.SerialNo
		if err := rows.Scan(&s.Name, &s.ItemCode, &s.BatchNo, &s.Warehouse); err != nil {
			return nil, fmt.Errorf("scan serial no: %w", err)
		}
		out = append(out, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list serial nos: %w", err)
	}
	return out, nil
}
