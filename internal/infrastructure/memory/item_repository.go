package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
	"github.com/jhoicas/surgishop-scanner/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo maestro de artículos y códigos de barras en memoria.
type ItemRepo struct {
	mu       sync.RWMutex
	items    map[string]*entity.Item
	barcodes []entity.ItemBarcode
}

func NewItemRepo() *ItemRepo {
	return &ItemRepo{items: make(map[string]*entity.Item)}
}

// AddItem registra un artículo con sus códigos de barras.
func (r *ItemRepo) AddItem(item entity.Item, barcodes ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := item
	r.items[item.Code] = &copied
	for _, b := range barcodes {
		r.barcodes = append(r.barcodes, entity.ItemBarcode{Barcode: b, ItemCode: item.Code})
	}
}

// AddBarcode registra un código de barras sin tocar el maestro de artículos.
func (r *ItemRepo) AddBarcode(barcode, itemCode string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.barcodes = append(r.barcodes, entity.ItemBarcode{Barcode: barcode, ItemCode: itemCode})
}

func (r *ItemRepo) GetByCode(_ context.Context, code string) (*entity.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	it, ok := r.items[code]
	if !ok {
		return nil, nil
	}
	copied := *it
	return &copied, nil
}

func (r *ItemRepo) BarcodeExists(_ context.Context, barcode, itemCode string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.barcodes {
		if b.Barcode == barcode && b.ItemCode == itemCode {
			return true, nil
		}
	}
	return false, nil
}

func (r *ItemRepo) ItemCodesByBarcode(_ context.Context, barcode string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]bool)
	var codes []string
	for _, b := range r.barcodes {
		if b.Barcode == barcode && !seen[b.ItemCode] {
			seen[b.ItemCode] = true
			codes = append(codes, b.ItemCode)
		}
	}
	sort.Strings(codes)
	return codes, nil
}
