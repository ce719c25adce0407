package memory

import (
	"fmt"

	"github.com/jhoicas/inventario-stock/internal/domain"
	"github.com/jhoicas/inventario-stock/internal/domain/entity"
	"github.com/jhoicas/inventario-stock/internal/domain/query"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
)

// stockPredicate predicado evaluado sobre un stock ya unido con su producto.
type stockPredicate func(s *entity.Stock) bool

// stockFields accessors por campo; nil representa NULL.
var stockFields = map[string]func(s *entity.Stock) *int64{
	repository.StockFieldID:         func(s *entity.Stock) *int64 { return &s.ID },
	repository.StockFieldCantidad:   func(s *entity.Stock) *int64 { return &s.Cantidad },
	repository.StockFieldProductoID: func(s *entity.Stock) *int64 { return s.ProductoID() },
}

// predicateBuilder implementa query.Builder con la semántica de NULL de SQL:
// cualquier comparación contra NULL es falsa, también en NOT IN y <>.
type predicateBuilder struct {
	err error
}

var _ query.Builder[stockPredicate] = (*predicateBuilder)(nil)

func (b *predicateBuilder) field(name string) func(s *entity.Stock) *int64 {
	get, ok := stockFields[name]
	if !ok {
		if b.err == nil {
			b.err = fmt.Errorf("campo %q no filtrable: %w", name, domain.ErrInvalidInput)
		}
		return func(*entity.Stock) *int64 { return nil }
	}
	return get
}

func (b *predicateBuilder) Compare(field string, op query.Op, value any) stockPredicate {
	get := b.field(field)
	want, ok := value.(int64)
	if !ok && b.err == nil {
		b.err = fmt.Errorf("valor %v para %q no es int64: %w", value, field, domain.ErrInvalidInput)
	}
	return func(s *entity.Stock) bool {
		v := get(s)
		if v == nil {
			return false
		}
		switch op {
		case query.OpEq:
			return *v == want
		case query.OpNe:
			return *v != want
		case query.OpGt:
			return *v > want
		case query.OpGte:
			return *v >= want
		case query.OpLt:
			return *v < want
		case query.OpLte:
			return *v <= want
		}
		return false
	}
}

func (b *predicateBuilder) In(field string, values []any, negate bool) stockPredicate {
	get := b.field(field)
	set := make(map[int64]struct{}, len(values))
	for _, raw := range values {
		n, ok := raw.(int64)
		if !ok && b.err == nil {
			b.err = fmt.Errorf("valor %v para %q no es int64: %w", raw, field, domain.ErrInvalidInput)
		}
		set[n] = struct{}{}
	}
	return func(s *entity.Stock) bool {
		if len(values) == 0 {
			return negate
		}
		v := get(s)
		if v == nil {
			return false
		}
		_, found := set[*v]
		return found != negate
	}
}

func (b *predicateBuilder) Null(field string, isNull bool) stockPredicate {
	get := b.field(field)
	return func(s *entity.Stock) bool {
		return (get(s) == nil) == isNull
	}
}

func (b *predicateBuilder) And(preds ...stockPredicate) stockPredicate {
	return func(s *entity.Stock) bool {
		for _, p := range preds {
			if !p(s) {
				return false
			}
		}
		return true
	}
}

func (b *predicateBuilder) All() stockPredicate {
	return func(*entity.Stock) bool { return true }
}

// compile traduce spec a un predicado Go.
func compile(spec query.Specification) (stockPredicate, error) {
	b := &predicateBuilder{}
	p := query.Build[stockPredicate](spec, b)
	if b.err != nil {
		return nil, b.err
	}
	return p, nil
}
