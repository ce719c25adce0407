package usecase

import (
	"context"

	"github.com/jhoicas/inventario-stock/internal/application/dto"
	"github.com/jhoicas/inventario-stock/internal/application/mapper"
	"github.com/jhoicas/inventario-stock/internal/domain"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
)

// StockUseCase casos de uso de escritura y lectura por ID para Stock.
type StockUseCase struct {
	repo repository.StockRepository
	tx   TxRunner
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(repo repository.StockRepository, tx TxRunner) *StockUseCase {
	return &StockUseCase{repo: repo, tx: tx}
}

// Create persiste un stock nuevo. El DTO no puede traer id.
func (uc *StockUseCase) Create(ctx context.Context, in dto.StockDTO) (*dto.StockDTO, error) {
	if in.ID != nil {
		return nil, domain.ErrIDAlreadySet
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	stock := mapper.StockToEntity(&in)
	if err := uc.repo.Save(ctx, stock); err != nil {
		return nil, err
	}
	return uc.reload(ctx, stock.ID)
}

// Update reemplaza por completo un stock existente.
func (uc *StockUseCase) Update(ctx context.Context, in dto.StockDTO) (*dto.StockDTO, error) {
	if in.ID == nil {
		return nil, domain.ErrIDRequired
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	stock := mapper.StockToEntity(&in)
	err := uc.tx.Run(ctx, func(stocks repository.StockRepository) error {
		exists, err := stocks.ExistsByID(ctx, stock.ID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrNotFound
		}
		return stocks.Save(ctx, stock)
	})
	if err != nil {
		return nil, err
	}
	return uc.reload(ctx, stock.ID)
}

// GetByID obtiene un stock por ID; (nil, nil) si no existe.
func (uc *StockUseCase) GetByID(ctx context.Context, id int64) (*dto.StockDTO, error) {
	stock, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapper.StockToDTO(stock), nil
}

// Delete elimina un stock por ID. Borrar uno inexistente no es error.
func (uc *StockUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// reload relee el registro para que productoNombre refleje el nombre actual del producto.
func (uc *StockUseCase) reload(ctx context.Context, id int64) (*dto.StockDTO, error) {
	stock, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, domain.ErrNotFound
	}
	return mapper.StockToDTO(stock), nil
}
