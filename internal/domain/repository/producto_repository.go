package repository

import (
	"context"

	"github.com/jhoicas/inventario-stock/internal/domain/entity"
)

// ProductoRepository puerto de persistencia para Producto.
type ProductoRepository interface {
	Create(ctx context.Context, producto *entity.Producto) error
	GetByID(ctx context.Context, id int64) (*entity.Producto, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Producto, error)
}
