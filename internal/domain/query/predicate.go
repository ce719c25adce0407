// Package query describe predicados de selección de filas independientes del store.
//
// Una Specification es una conjunción de términos tipados (comparación, pertenencia
// a conjunto, prueba de nulo). Cada store la traduce a su forma nativa implementando
// Builder y llamando a Build.
package query

// Op operador de comparación sobre un campo.
type Op string

const (
	OpEq  Op = "="
	OpNe  Op = "<>"
	OpGt  Op = ">"
	OpGte Op = ">="
	OpLt  Op = "<"
	OpLte Op = "<="
)

// Kind variante de un término.
type Kind int

const (
	KindCompare Kind = iota
	KindIn
	KindNull
)

// Term condición atómica sobre un campo.
// Para KindIn, Negate significa NOT IN; para KindNull, Negate significa IS NOT NULL.
type Term struct {
	Field  string
	Kind   Kind
	Op     Op
	Values []any
	Negate bool
}

// Builder traduce términos a predicados nativos de un store (SQL, función Go, ...).
type Builder[P any] interface {
	Compare(field string, op Op, value any) P
	In(field string, values []any, negate bool) P
	Null(field string, isNull bool) P
	And(preds ...P) P
	All() P
}

// Specification conjunción (AND) de términos. El valor cero selecciona todas las filas.
type Specification struct {
	terms []Term
}

// Where construye una Specification con los términos dados.
func Where(terms ...Term) Specification {
	return Specification{}.And(terms...)
}

// And devuelve una nueva Specification con los términos agregados; no modifica s.
func (s Specification) And(terms ...Term) Specification {
	out := make([]Term, 0, len(s.terms)+len(terms))
	out = append(out, s.terms...)
	out = append(out, terms...)
	return Specification{terms: out}
}

// Terms devuelve una copia de los términos.
func (s Specification) Terms() []Term {
	return append([]Term(nil), s.terms...)
}

// IsEmpty indica si la Specification no restringe nada.
func (s Specification) IsEmpty() bool {
	return len(s.terms) == 0
}

// Build evalúa la Specification con el builder del store.
func Build[P any](s Specification, b Builder[P]) P {
	if len(s.terms) == 0 {
		return b.All()
	}
	preds := make([]P, 0, len(s.terms))
	for _, t := range s.terms {
		switch t.Kind {
		case KindIn:
			preds = append(preds, b.In(t.Field, t.Values, t.Negate))
		case KindNull:
			preds = append(preds, b.Null(t.Field, !t.Negate))
		default:
			preds = append(preds, b.Compare(t.Field, t.Op, t.Values[0]))
		}
	}
	return b.And(preds...)
}

// Eq igualdad.
func Eq(field string, v any) Term { return cmp(field, OpEq, v) }

// Ne distinto de v; no coincide con NULL.
func Ne(field string, v any) Term { return cmp(field, OpNe, v) }

// Gt mayor que.
func Gt(field string, v any) Term { return cmp(field, OpGt, v) }

// Gte mayor o igual que.
func Gte(field string, v any) Term { return cmp(field, OpGte, v) }

// Lt menor que.
func Lt(field string, v any) Term { return cmp(field, OpLt, v) }

// Lte menor o igual que.
func Lte(field string, v any) Term { return cmp(field, OpLte, v) }

func cmp(field string, op Op, v any) Term {
	return Term{Field: field, Kind: KindCompare, Op: op, Values: []any{v}}
}

// In pertenencia a conjunto.
func In(field string, values ...any) Term {
	return Term{Field: field, Kind: KindIn, Values: values}
}

// NotIn exclusión de conjunto.
func NotIn(field string, values ...any) Term {
	return Term{Field: field, Kind: KindIn, Values: values, Negate: true}
}

// IsNull el campo no tiene valor.
func IsNull(field string) Term {
	return Term{Field: field, Kind: KindNull}
}

// IsNotNull el campo tiene valor.
func IsNotNull(field string) Term {
	return Term{Field: field, Kind: KindNull, Negate: true}
}
