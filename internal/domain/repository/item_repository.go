package repository

import (
	"context"

	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
)

// ItemRepository puerto de lectura del maestro de artículos y sus códigos de barras.
type ItemRepository interface {
	GetByCode(ctx context.Context, code string) (*entity.Item, error)
	// BarcodeExists informa si el código de barras está registrado para el artículo.
	BarcodeExists(ctx context.Context, barcode, itemCode string) (bool, error)
	// ItemCodesByBarcode lista los artículos que registran el código, ordenados por código.
	ItemCodesByBarcode(ctx context.Context, barcode string) ([]string, error)
}
