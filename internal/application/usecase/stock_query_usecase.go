package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/jhoicas/inventario-stock/internal/application/dto"
	"github.com/jhoicas/inventario-stock/internal/application/mapper"
	"github.com/jhoicas/inventario-stock/internal/domain"
	"github.com/jhoicas/inventario-stock/internal/domain/query"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
)

var stockSortFields = []string{
	repository.StockFieldID,
	repository.StockFieldCantidad,
	repository.StockFieldProductoID,
}

// StockQueryUseCase consultas de Stock por criterio (filtros del query string).
type StockQueryUseCase struct {
	repo repository.StockRepository
}

// NewStockQueryUseCase construye el caso de uso.
func NewStockQueryUseCase(repo repository.StockRepository) *StockQueryUseCase {
	return &StockQueryUseCase{repo: repo}
}

// FindByCriteria devuelve los stocks que cumplen todos los filtros activos del criterio.
func (uc *StockQueryUseCase) FindByCriteria(ctx context.Context, criteria dto.StockCriteria, page query.Pageable) ([]dto.StockDTO, error) {
	if err := validateSort(page.Sort); err != nil {
		return nil, err
	}
	list, err := uc.repo.FindAll(ctx, criteria.Specification(), page)
	if err != nil {
		return nil, err
	}
	return mapper.StocksToDTO(list), nil
}

// FindPage como FindByCriteria, más el total de filas que cumplen el criterio (sin paginar).
func (uc *StockQueryUseCase) FindPage(ctx context.Context, criteria dto.StockCriteria, page query.Pageable) ([]dto.StockDTO, int64, error) {
	items, err := uc.FindByCriteria(ctx, criteria, page)
	if err != nil {
		return nil, 0, err
	}
	total, err := uc.CountByCriteria(ctx, criteria)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// CountByCriteria cuenta los stocks que cumplen el criterio.
func (uc *StockQueryUseCase) CountByCriteria(ctx context.Context, criteria dto.StockCriteria) (int64, error) {
	return uc.repo.Count(ctx, criteria.Specification())
}

func validateSort(orders []query.Order) error {
	for _, o := range orders {
		if !slices.Contains(stockSortFields, o.Field) {
			return fmt.Errorf("sort por %q no soportado: %w", o.Field, domain.ErrInvalidInput)
		}
	}
	return nil
}
