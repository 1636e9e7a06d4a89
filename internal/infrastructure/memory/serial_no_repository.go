package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
	"github.com/jhoicas/surgishop-scanner/internal/domain/repository"
)

var _ repository.SerialNoRepository = (*SerialNoRepo)(nil)

// SerialNoRepo números de serie en memoria.
type SerialNoRepo struct {
	mu      sync.RWMutex
	serials map[string]entity.SerialNo
}

func NewSerialNoRepo(serials ...entity.SerialNo) *SerialNoRepo {
	r := &SerialNoRepo{serials: make(map[string]entity.SerialNo)}
	for _, s := range serials {
		r.serials[s.Name] = s
	}
	return r
}

func (r *SerialNoRepo) ListByNames(_ context.Context, names []string) ([]*entity.SerialNo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.SerialNo
	for _, n := range names {
		if s, ok := r.serials[n]; ok {
			copied := s
			out = append(out, &copied)
		}
	}
	return out, nil
}
