package postgres

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/inventario-stock/internal/domain"
	"github.com/jhoicas/inventario-stock/internal/domain/query"
)

// sqlPredicate fragmento WHERE con placeholders "?" que render numera como $n.
type sqlPredicate struct {
	clause string
	args   []any
}

// sqlBuilder implementa query.Builder sobre columnas SQL. columns mapea campo -> columna calificada.
type sqlBuilder struct {
	columns map[string]string
	err     error
}

var _ query.Builder[sqlPredicate] = (*sqlBuilder)(nil)

func newSQLBuilder(columns map[string]string) *sqlBuilder {
	return &sqlBuilder{columns: columns}
}

func (b *sqlBuilder) column(field string) string {
	col, ok := b.columns[field]
	if !ok {
		if b.err == nil {
			b.err = fmt.Errorf("campo %q no filtrable: %w", field, domain.ErrInvalidInput)
		}
		return "NULL"
	}
	return col
}

func (b *sqlBuilder) Compare(field string, op query.Op, value any) sqlPredicate {
	return sqlPredicate{clause: fmt.Sprintf("%s %s ?", b.column(field), op), args: []any{value}}
}

func (b *sqlBuilder) In(field string, values []any, negate bool) sqlPredicate {
	col := b.column(field)
	if len(values) == 0 {
		// IN () no es SQL válido: conjunto vacío no contiene nada.
		if negate {
			return sqlPredicate{clause: "TRUE"}
		}
		return sqlPredicate{clause: "FALSE"}
	}
	op := "IN"
	if negate {
		op = "NOT IN"
	}
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(values)), ", ")
	return sqlPredicate{clause: fmt.Sprintf("%s %s (%s)", col, op, marks), args: append([]any(nil), values...)}
}

func (b *sqlBuilder) Null(field string, isNull bool) sqlPredicate {
	if isNull {
		return sqlPredicate{clause: b.column(field) + " IS NULL"}
	}
	return sqlPredicate{clause: b.column(field) + " IS NOT NULL"}
}

func (b *sqlBuilder) And(preds ...sqlPredicate) sqlPredicate {
	if len(preds) == 1 {
		return preds[0]
	}
	parts := make([]string, 0, len(preds))
	var args []any
	for _, p := range preds {
		parts = append(parts, "("+p.clause+")")
		args = append(args, p.args...)
	}
	return sqlPredicate{clause: strings.Join(parts, " AND "), args: args}
}

func (b *sqlBuilder) All() sqlPredicate {
	return sqlPredicate{clause: "TRUE"}
}

// where devuelve "WHERE ..." (o "" si spec está vacía) con placeholders desde $1.
func (b *sqlBuilder) where(spec query.Specification) (string, []any, error) {
	if spec.IsEmpty() {
		return "", nil, nil
	}
	p := query.Build[sqlPredicate](spec, b)
	if b.err != nil {
		return "", nil, b.err
	}
	return "WHERE " + render(p.clause, 1), p.args, nil
}

// orderBy traduce el orden; sin orden explícito usa defaultOrder.
func (b *sqlBuilder) orderBy(orders []query.Order, defaultOrder string) (string, error) {
	if len(orders) == 0 {
		return "ORDER BY " + defaultOrder, nil
	}
	parts := make([]string, 0, len(orders))
	for _, o := range orders {
		col := b.column(o.Field)
		if b.err != nil {
			return "", b.err
		}
		dir := "ASC"
		if o.Direction == query.Desc {
			dir = "DESC"
		}
		parts = append(parts, col+" "+dir)
	}
	return "ORDER BY " + strings.Join(parts, ", "), nil
}

// limit devuelve "LIMIT n OFFSET m" o "" si no hay paginación.
func limit(page query.Pageable) string {
	if !page.IsPaged() {
		return ""
	}
	return fmt.Sprintf("LIMIT %d OFFSET %d", page.Size, page.Offset())
}

// render numera los "?" a partir de start. Las columnas vienen de un mapa fijo, nunca del usuario.
func render(clause string, start int) string {
	var sb strings.Builder
	n := start
	for _, r := range clause {
		if r == '?' {
			sb.WriteString("$" + strconv.Itoa(n))
			n++
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
