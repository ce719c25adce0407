package dto

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jhoicas/inventario-stock/internal/domain/filter"
	"github.com/jhoicas/inventario-stock/internal/domain/query"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
)

// StockCriteria opciones de filtrado de Stock recibidas como query params, por ejemplo:
//
//	/api/stocks?id.greaterThan=5&cantidad.in=0,1&productoId.specified=false
type StockCriteria struct {
	ID         *filter.LongFilter
	Cantidad   *filter.LongFilter
	ProductoID *filter.LongFilter
}

// ParseStockCriteria construye el criterio desde los query params. Campos desconocidos se ignoran.
func ParseStockCriteria(values url.Values) (StockCriteria, error) {
	var c StockCriteria
	var err error
	if c.ID, err = filter.ParseLong(values, repository.StockFieldID); err != nil {
		return StockCriteria{}, err
	}
	if c.Cantidad, err = filter.ParseLong(values, repository.StockFieldCantidad); err != nil {
		return StockCriteria{}, err
	}
	if c.ProductoID, err = filter.ParseLong(values, repository.StockFieldProductoID); err != nil {
		return StockCriteria{}, err
	}
	return c, nil
}

// Copy copia profunda: cada filtro se clona por separado.
func (c StockCriteria) Copy() StockCriteria {
	return StockCriteria{
		ID:         c.ID.Copy(),
		Cantidad:   c.Cantidad.Copy(),
		ProductoID: c.ProductoID.Copy(),
	}
}

// IsEmpty indica si el criterio no restringe nada.
func (c StockCriteria) IsEmpty() bool {
	return c.ID.IsEmpty() && c.Cantidad.IsEmpty() && c.ProductoID.IsEmpty()
}

// Specification combina con AND las condiciones de todos los filtros no vacíos.
func (c StockCriteria) Specification() query.Specification {
	var spec query.Specification
	spec = spec.And(c.ID.Terms(repository.StockFieldID)...)
	spec = spec.And(c.Cantidad.Terms(repository.StockFieldCantidad)...)
	spec = spec.And(c.ProductoID.Terms(repository.StockFieldProductoID)...)
	return spec
}

func (c StockCriteria) String() string {
	var parts []string
	if !c.ID.IsEmpty() {
		parts = append(parts, fmt.Sprintf("id=%s", describe(c.ID)))
	}
	if !c.Cantidad.IsEmpty() {
		parts = append(parts, fmt.Sprintf("cantidad=%s", describe(c.Cantidad)))
	}
	if !c.ProductoID.IsEmpty() {
		parts = append(parts, fmt.Sprintf("productoId=%s", describe(c.ProductoID)))
	}
	return "StockCriteria{" + strings.Join(parts, ", ") + "}"
}

func describe(f *filter.LongFilter) string {
	terms := f.Terms("")
	parts := make([]string, 0, len(terms))
	for _, t := range terms {
		switch t.Kind {
		case query.KindIn:
			op := "in"
			if t.Negate {
				op = "notIn"
			}
			parts = append(parts, fmt.Sprintf("%s%v", op, t.Values))
		case query.KindNull:
			parts = append(parts, fmt.Sprintf("specified=%t", t.Negate))
		default:
			parts = append(parts, fmt.Sprintf("%s%v", t.Op, t.Values[0]))
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}
