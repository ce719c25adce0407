package usecase

import (
	"context"

	"github.com/jhoicas/inventario-stock/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción, pasando el repositorio atado a esa tx.
// La comprobación de existencia y la escritura de una actualización ven el mismo snapshot.
type TxRunner interface {
	Run(ctx context.Context, fn func(stocks repository.StockRepository) error) error
}
