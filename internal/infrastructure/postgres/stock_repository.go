package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/inventario-stock/internal/domain"
	"github.com/jhoicas/inventario-stock/internal/domain/entity"
	"github.com/jhoicas/inventario-stock/internal/domain/query"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// stockColumns campos filtrables de Stock. productoId se resuelve por la identidad de la relación unida.
var stockColumns = map[string]string{
	repository.StockFieldID:         "s.id",
	repository.StockFieldCantidad:   "s.cantidad",
	repository.StockFieldProductoID: "p.id",
}

const stockFrom = `FROM stock s LEFT JOIN producto p ON p.id = s.producto_id`

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Save inserta un stock nuevo (asigna ID) o reemplaza uno existente.
func (r *StockRepo) Save(ctx context.Context, stock *entity.Stock) error {
	if stock.IsNew() {
		err := r.q.QueryRow(ctx,
			`INSERT INTO stock (cantidad, producto_id) VALUES ($1, $2) RETURNING id`,
			stock.Cantidad, stock.ProductoID(),
		).Scan(&stock.ID)
		if err != nil {
			if mapped := mapConstraintError(err); mapped != nil {
				return mapped
			}
			return fmt.Errorf("insert stock: %w", err)
		}
		return nil
	}
	cmd, err := r.q.Exec(ctx,
		`UPDATE stock SET cantidad = $2, producto_id = $3 WHERE id = $1`,
		stock.ID, stock.Cantidad, stock.ProductoID(),
	)
	if err != nil {
		if mapped := mapConstraintError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("update stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID obtiene un stock con el nombre actual de su producto.
func (r *StockRepo) GetByID(ctx context.Context, id int64) (*entity.Stock, error) {
	row := r.q.QueryRow(ctx, `SELECT s.id, s.cantidad, p.id, p.nombre `+stockFrom+` WHERE s.id = $1`, id)
	s, err := scanStock(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return s, nil
}

// ExistsByID indica si hay un stock con esa identidad.
func (r *StockRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM stock WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists stock: %w", err)
	}
	return exists, nil
}

// FindAll lista los stocks que cumplen spec, ordenados y paginados según page.
func (r *StockRepo) FindAll(ctx context.Context, spec query.Specification, page query.Pageable) ([]*entity.Stock, error) {
	b := newSQLBuilder(stockColumns)
	where, args, err := b.where(spec)
	if err != nil {
		return nil, err
	}
	order, err := b.orderBy(page.Sort, "s.id ASC")
	if err != nil {
		return nil, err
	}
	sql := joinSQL(`SELECT s.id, s.cantidad, p.id, p.nombre `+stockFrom, where, order, limit(page))

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	list := []*entity.Stock{}
	for rows.Next() {
		s, err := scanStock(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Count cuenta los stocks que cumplen spec.
func (r *StockRepo) Count(ctx context.Context, spec query.Specification) (int64, error) {
	where, args, err := newSQLBuilder(stockColumns).where(spec)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := r.q.QueryRow(ctx, joinSQL(`SELECT COUNT(*) `+stockFrom, where), args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count stock: %w", err)
	}
	return n, nil
}

// Delete elimina un stock por ID; no falla si no existe.
func (r *StockRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM stock WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	return nil
}

func scanStock(row pgx.Row) (*entity.Stock, error) {
	var (
		s          entity.Stock
		productoID *int64
		nombre     *string
	)
	if err := row.Scan(&s.ID, &s.Cantidad, &productoID, &nombre); err != nil {
		return nil, err
	}
	if productoID != nil {
		s.Producto = &entity.Producto{ID: *productoID}
		if nombre != nil {
			s.Producto.Nombre = *nombre
		}
	}
	return &s, nil
}

func joinSQL(parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
