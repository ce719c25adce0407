package query_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-stock/internal/domain/query"
)

// textBuilder renderiza términos como texto para inspeccionar el orden y la composición.
type textBuilder struct{}

func (textBuilder) Compare(field string, op query.Op, v any) string {
	return fmt.Sprintf("%s%s%v", field, op, v)
}
func (textBuilder) In(field string, vs []any, negate bool) string {
	if negate {
		return fmt.Sprintf("%s!in%v", field, vs)
	}
	return fmt.Sprintf("%s in%v", field, vs)
}
func (textBuilder) Null(field string, isNull bool) string {
	if isNull {
		return field + " null"
	}
	return field + " notnull"
}
func (textBuilder) And(ps ...string) string { return strings.Join(ps, " & ") }
func (textBuilder) All() string             { return "*" }

func TestBuild_SpecificationVaciaSeleccionaTodo(t *testing.T) {
	assert.Equal(t, "*", query.Build[string](query.Specification{}, textBuilder{}))
}

func TestBuild_ConjuncionEnOrden(t *testing.T) {
	spec := query.Where(query.Eq("id", 1), query.In("cantidad", 0, 1)).
		And(query.IsNotNull("productoId"), query.NotIn("id", 3))

	got := query.Build[string](spec, textBuilder{})

	assert.Equal(t, "id=1 & cantidad in[0 1] & productoId notnull & id!in[3]", got)
}

func TestSpecification_AndNoModificaOriginal(t *testing.T) {
	base := query.Where(query.Eq("id", 1))
	_ = base.And(query.Gt("cantidad", 0))
	assert.Len(t, base.Terms(), 1)
}

func TestParseOrder(t *testing.T) {
	o, err := query.ParseOrder("id,desc")
	require.NoError(t, err)
	assert.Equal(t, query.Order{Field: "id", Direction: query.Desc}, o)

	o, err = query.ParseOrder("cantidad")
	require.NoError(t, err)
	assert.Equal(t, query.Asc, o.Direction)

	_, err = query.ParseOrder("id,arriba")
	assert.Error(t, err)
	_, err = query.ParseOrder("")
	assert.Error(t, err)
}

func TestPageable_Offset(t *testing.T) {
	assert.Equal(t, 40, query.Pageable{Page: 2, Size: 20}.Offset())
	assert.Equal(t, 0, query.Unpaged().Offset())
	assert.False(t, query.Unpaged().IsPaged())
}
