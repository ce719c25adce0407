// Package filter modela los filtros tipados que un cliente envía como query params
// (id.equals=1, cantidad.greaterThan=0, productoId.specified=true, ...).
//
// Un filtro sin ningún operador no restringe nada. Varios operadores en el mismo
// filtro, y varios filtros en el mismo criterio, se combinan con AND.
package filter

import (
	"cmp"

	"github.com/jhoicas/inventario-stock/internal/domain/query"
)

// Filter operadores disponibles para cualquier tipo comparable.
type Filter[T comparable] struct {
	Equals    *T
	NotEquals *T
	In        []T
	NotIn     []T
	Specified *bool
}

// RangeFilter agrega operadores de rango para tipos ordenables.
type RangeFilter[T cmp.Ordered] struct {
	Filter[T]
	GreaterThan        *T
	GreaterThanOrEqual *T
	LessThan           *T
	LessThanOrEqual    *T
}

// LongFilter filtro sobre enteros de 64 bits (identidades, cantidades).
type LongFilter = RangeFilter[int64]

// IsEmpty indica si el filtro no tiene operadores.
func (f *Filter[T]) IsEmpty() bool {
	return f == nil || (f.Equals == nil && f.NotEquals == nil && f.In == nil && f.NotIn == nil && f.Specified == nil)
}

// Copy devuelve una copia profunda; modificar la copia no afecta al original.
func (f *Filter[T]) Copy() *Filter[T] {
	if f == nil {
		return nil
	}
	return &Filter[T]{
		Equals:    clonePtr(f.Equals),
		NotEquals: clonePtr(f.NotEquals),
		In:        cloneSlice(f.In),
		NotIn:     cloneSlice(f.NotIn),
		Specified: clonePtr(f.Specified),
	}
}

// Terms traduce los operadores a términos sobre field.
func (f *Filter[T]) Terms(field string) []query.Term {
	if f == nil {
		return nil
	}
	var terms []query.Term
	if f.Equals != nil {
		terms = append(terms, query.Eq(field, *f.Equals))
	}
	if f.NotEquals != nil {
		terms = append(terms, query.Ne(field, *f.NotEquals))
	}
	if f.In != nil {
		terms = append(terms, query.In(field, toAny(f.In)...))
	}
	if f.NotIn != nil {
		terms = append(terms, query.NotIn(field, toAny(f.NotIn)...))
	}
	if f.Specified != nil {
		if *f.Specified {
			terms = append(terms, query.IsNotNull(field))
		} else {
			terms = append(terms, query.IsNull(field))
		}
	}
	return terms
}

// IsEmpty indica si el filtro no tiene operadores.
func (f *RangeFilter[T]) IsEmpty() bool {
	if f == nil {
		return true
	}
	return f.Filter.IsEmpty() && f.GreaterThan == nil && f.GreaterThanOrEqual == nil &&
		f.LessThan == nil && f.LessThanOrEqual == nil
}

// Copy devuelve una copia profunda.
func (f *RangeFilter[T]) Copy() *RangeFilter[T] {
	if f == nil {
		return nil
	}
	return &RangeFilter[T]{
		Filter:             *f.Filter.Copy(),
		GreaterThan:        clonePtr(f.GreaterThan),
		GreaterThanOrEqual: clonePtr(f.GreaterThanOrEqual),
		LessThan:           clonePtr(f.LessThan),
		LessThanOrEqual:    clonePtr(f.LessThanOrEqual),
	}
}

// Terms traduce los operadores a términos sobre field.
func (f *RangeFilter[T]) Terms(field string) []query.Term {
	if f == nil {
		return nil
	}
	terms := f.Filter.Terms(field)
	if f.GreaterThan != nil {
		terms = append(terms, query.Gt(field, *f.GreaterThan))
	}
	if f.GreaterThanOrEqual != nil {
		terms = append(terms, query.Gte(field, *f.GreaterThanOrEqual))
	}
	if f.LessThan != nil {
		terms = append(terms, query.Lt(field, *f.LessThan))
	}
	if f.LessThanOrEqual != nil {
		terms = append(terms, query.Lte(field, *f.LessThanOrEqual))
	}
	return terms
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}

func toAny[T any](s []T) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}
