package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/inventario-stock/internal/domain"
)

const (
	sqlStateForeignKeyViolation = "23503"
	sqlStateCheckViolation      = "23514"
)

// mapConstraintError traduce violaciones de constraint a errores de dominio; devuelve nil si no aplica.
func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	switch pgErr.Code {
	case sqlStateForeignKeyViolation:
		return domain.ErrInvalidReference
	case sqlStateCheckViolation:
		return domain.ErrInvalidInput
	}
	return nil
}
