package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/surgishop-scanner/internal/domain"
	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
	"github.com/jhoicas/surgishop-scanner/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

// BatchRepo lotes en memoria.
type BatchRepo struct {
	mu      sync.RWMutex
	batches map[string]*entity.Batch
}

func NewBatchRepo() *BatchRepo {
	return &BatchRepo{batches: make(map[string]*entity.Batch)}
}

func (r *BatchRepo) GetByID(_ context.Context, id string) (*entity.Batch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.batches[id]
	if !ok {
		return nil, nil
	}
	return cloneBatch(b), nil
}

func (r *BatchRepo) Create(_ context.Context, b *entity.Batch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.batches[b.ID]; ok {
		return domain.ErrDuplicate
	}
	r.batches[b.ID] = cloneBatch(b)
	return nil
}

func (r *BatchRepo) UpdateExpiry(_ context.Context, id string, expiry time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.batches[id]
	if !ok {
		return domain.ErrNotFound
	}
	d := entity.DateOnly(expiry)
	b.ExpiryDate = &d
	b.UpdatedAt = time.Now()
	return nil
}

// Len número de lotes almacenados.
func (r *BatchRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.batches)
}

func cloneBatch(b *entity.Batch) *entity.Batch {
	copied := *b
	if b.ExpiryDate != nil {
		d := *b.ExpiryDate
		copied.ExpiryDate = &d
	}
	return &copied
}
