package usecase

import (
	"context"

	"github.com/jhoicas/inventario-stock/internal/application/dto"
	"github.com/jhoicas/inventario-stock/internal/application/mapper"
	"github.com/jhoicas/inventario-stock/internal/domain/entity"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
)

// ProductoUseCase altas y consultas de productos.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// Create crea un producto.
func (uc *ProductoUseCase) Create(ctx context.Context, in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	p := &entity.Producto{Nombre: in.Nombre}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return mapper.ProductoToResponse(p), nil
}

// GetByID obtiene un producto; (nil, nil) si no existe.
func (uc *ProductoUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapper.ProductoToResponse(p), nil
}

// List lista productos con paginación.
func (uc *ProductoUseCase) List(ctx context.Context, limit, offset int) ([]dto.ProductoResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *mapper.ProductoToResponse(p))
	}
	return items, nil
}
