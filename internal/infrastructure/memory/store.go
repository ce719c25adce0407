// Package memory implementa los puertos de persistencia en memoria de proceso.
// Sirve para ejecutar la API sin base de datos (STORAGE=memory) y en los tests.
package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/jhoicas/inventario-stock/internal/application/usecase"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
)

var _ usecase.TxRunner = (*Store)(nil)

// stockRow fila persistida: el producto se guarda solo por identidad.
type stockRow struct {
	id         int64
	cantidad   int64
	productoID *int64
}

// Store tablas en memoria compartidas por los repositorios.
type Store struct {
	mu             sync.RWMutex
	stocks         map[int64]stockRow
	productos      map[int64]string
	nextStockID    int64
	nextProductoID int64
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		stocks:    map[int64]stockRow{},
		productos: map[int64]string{},
	}
}

// Stocks repositorio de Stock sobre el store.
func (s *Store) Stocks() *StockRepo {
	return &StockRepo{store: s}
}

// Productos repositorio de Producto sobre el store.
func (s *Store) Productos() *ProductoRepo {
	return &ProductoRepo{store: s}
}

// Run ejecuta fn con el store bloqueado en escritura. Si fn falla o ctx se cancela, se restauran las tablas.
func (s *Store) Run(ctx context.Context, fn func(stocks repository.StockRepository) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stocks := maps.Clone(s.stocks)
	productos := maps.Clone(s.productos)
	nextStock, nextProducto := s.nextStockID, s.nextProductoID

	err := fn(&StockRepo{store: s, held: true})
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		s.stocks, s.productos = stocks, productos
		s.nextStockID, s.nextProductoID = nextStock, nextProducto
	}
	return err
}

func (s *Store) rlock(held bool) func() {
	if held {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

func (s *Store) lock(held bool) func() {
	if held {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}
