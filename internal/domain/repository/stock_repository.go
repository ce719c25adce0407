package repository

import (
	"context"

	"github.com/jhoicas/inventario-stock/internal/domain/entity"
	"github.com/jhoicas/inventario-stock/internal/domain/query"
)

// Campos filtrables/ordenables de Stock. Cada store los mapea a su columna o accessor.
const (
	StockFieldID         = "id"
	StockFieldCantidad   = "cantidad"
	StockFieldProductoID = "productoId"
)

// StockRepository define el puerto de persistencia para Stock (DIP).
type StockRepository interface {
	// Save inserta si stock.ID == 0 (asigna ID) o reemplaza el registro existente.
	Save(ctx context.Context, stock *entity.Stock) error
	// GetByID devuelve (nil, nil) si no existe. Producto viene con el nombre actual.
	GetByID(ctx context.Context, id int64) (*entity.Stock, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	FindAll(ctx context.Context, spec query.Specification, page query.Pageable) ([]*entity.Stock, error)
	Count(ctx context.Context, spec query.Specification) (int64, error)
	// Delete no falla si el registro no existe.
	Delete(ctx context.Context, id int64) error
}
