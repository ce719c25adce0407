package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/jhoicas/inventario-stock/internal/domain"
	"github.com/jhoicas/inventario-stock/internal/domain/entity"
	"github.com/jhoicas/inventario-stock/internal/domain/query"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo StockRepository en memoria. held indica que el lock ya lo tiene Store.Run.
type StockRepo struct {
	store *Store
	held  bool
}

// Save inserta (asignando ID) o reemplaza. Aplica las mismas restricciones que la tabla:
// cantidad >= 0 y producto existente.
func (r *StockRepo) Save(ctx context.Context, stock *entity.Stock) error {
	defer r.store.lock(r.held)()

	if stock.Cantidad < 0 {
		return domain.ErrInvalidInput
	}
	productoID := stock.ProductoID()
	if productoID != nil {
		if _, ok := r.store.productos[*productoID]; !ok {
			return domain.ErrInvalidReference
		}
	}
	if stock.IsNew() {
		r.store.nextStockID++
		stock.ID = r.store.nextStockID
	} else if _, ok := r.store.stocks[stock.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.stocks[stock.ID] = stockRow{id: stock.ID, cantidad: stock.Cantidad, productoID: productoID}
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *StockRepo) GetByID(ctx context.Context, id int64) (*entity.Stock, error) {
	defer r.store.rlock(r.held)()

	row, ok := r.store.stocks[id]
	if !ok {
		return nil, nil
	}
	return r.join(row), nil
}

// ExistsByID indica si hay un stock con esa identidad.
func (r *StockRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	defer r.store.rlock(r.held)()

	_, ok := r.store.stocks[id]
	return ok, nil
}

// FindAll filtra, ordena (por defecto id ASC) y pagina.
func (r *StockRepo) FindAll(ctx context.Context, spec query.Specification, page query.Pageable) ([]*entity.Stock, error) {
	match, err := compile(spec)
	if err != nil {
		return nil, err
	}
	orders := page.Sort
	if len(orders) == 0 {
		orders = []query.Order{{Field: repository.StockFieldID, Direction: query.Asc}}
	}
	for _, o := range orders {
		if _, ok := stockFields[o.Field]; !ok {
			return nil, fmt.Errorf("sort por %q no soportado: %w", o.Field, domain.ErrInvalidInput)
		}
	}

	list := r.scan(match)
	slices.SortStableFunc(list, func(a, b *entity.Stock) int {
		for _, o := range orders {
			get := stockFields[o.Field]
			if c := compareNullable(get(a), get(b), o.Direction); c != 0 {
				return c
			}
		}
		return 0
	})

	if !page.IsPaged() {
		return list, nil
	}
	offset := page.Offset()
	if offset < 0 {
		return nil, fmt.Errorf("offset %d inválido: %w", offset, domain.ErrInvalidInput)
	}
	start := min(offset, len(list))
	end := min(start+page.Size, len(list))
	return list[start:end], nil
}

// Count cuenta los stocks que cumplen spec.
func (r *StockRepo) Count(ctx context.Context, spec query.Specification) (int64, error) {
	match, err := compile(spec)
	if err != nil {
		return 0, err
	}
	return int64(len(r.scan(match))), nil
}

// Delete elimina un stock; no falla si no existe.
func (r *StockRepo) Delete(ctx context.Context, id int64) error {
	defer r.store.lock(r.held)()

	delete(r.store.stocks, id)
	return nil
}

func (r *StockRepo) scan(match stockPredicate) []*entity.Stock {
	defer r.store.rlock(r.held)()

	list := []*entity.Stock{}
	for _, row := range r.store.stocks {
		if s := r.join(row); match(s) {
			list = append(list, s)
		}
	}
	return list
}

// join resuelve el nombre actual del producto, como el LEFT JOIN de la versión SQL.
func (r *StockRepo) join(row stockRow) *entity.Stock {
	s := &entity.Stock{ID: row.id, Cantidad: row.cantidad}
	if row.productoID != nil {
		s.Producto = &entity.Producto{ID: *row.productoID, Nombre: r.store.productos[*row.productoID]}
	}
	return s
}

// compareNullable ordena como PostgreSQL: NULLS LAST en ASC, NULLS FIRST en DESC.
func compareNullable(a, b *int64, dir query.Direction) int {
	var c int
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		c = 1
	case b == nil:
		c = -1
	default:
		c = cmp.Compare(*a, *b)
	}
	if dir == query.Desc {
		return -c
	}
	return c
}
