package filter_test

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-stock/internal/domain"
	"github.com/jhoicas/inventario-stock/internal/domain/filter"
	"github.com/jhoicas/inventario-stock/internal/domain/query"
)

func TestParseLong_TodosLosOperadores(t *testing.T) {
	values := url.Values{
		"cantidad.equals":             {"1"},
		"cantidad.notEquals":          {"2"},
		"cantidad.in":                 {"3,4", "5"},
		"cantidad.notIn":              {"6"},
		"cantidad.specified":          {"true"},
		"cantidad.greaterThan":        {"7"},
		"cantidad.greaterThanOrEqual": {"8"},
		"cantidad.lessThan":           {"9"},
		"cantidad.lessThanOrEqual":    {"10"},
		"id.equals":                   {"99"},
	}

	f, err := filter.ParseLong(values, "cantidad")
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, int64(1), *f.Equals)
	assert.Equal(t, int64(2), *f.NotEquals)
	assert.Equal(t, []int64{3, 4, 5}, f.In)
	assert.Equal(t, []int64{6}, f.NotIn)
	assert.True(t, *f.Specified)
	assert.Equal(t, int64(7), *f.GreaterThan)
	assert.Equal(t, int64(8), *f.GreaterThanOrEqual)
	assert.Equal(t, int64(9), *f.LessThan)
	assert.Equal(t, int64(10), *f.LessThanOrEqual)
}

func TestParseLong_SinParametrosDevuelveNil(t *testing.T) {
	f, err := filter.ParseLong(url.Values{"sort": {"id,desc"}, "cantidad.contains": {"x"}}, "cantidad")
	require.NoError(t, err)
	assert.Nil(t, f)
	assert.True(t, f.IsEmpty(), "un filtro nil es vacío")
}

func TestParseLong_ValorInvalido(t *testing.T) {
	_, err := filter.ParseLong(url.Values{"cantidad.equals": {"abc"}}, "cantidad")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	var pe *filter.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "cantidad.equals", pe.Param)

	_, err = filter.ParseLong(url.Values{"cantidad.specified": {"quizas"}}, "cantidad")
	assert.Error(t, err)

	_, err = filter.ParseLong(url.Values{"cantidad.in": {"1,x"}}, "cantidad")
	assert.Error(t, err)
}

func TestLongFilter_CopyEsProfunda(t *testing.T) {
	eq := int64(1)
	orig := &filter.LongFilter{Filter: filter.Filter[int64]{Equals: &eq, In: []int64{1, 2}}}

	cp := orig.Copy()
	*cp.Equals = 5
	cp.In[0] = 9

	assert.Equal(t, int64(1), *orig.Equals)
	assert.Equal(t, []int64{1, 2}, orig.In)

	var nilFilter *filter.LongFilter
	assert.Nil(t, nilFilter.Copy())
}

func TestLongFilter_Terms(t *testing.T) {
	gt := int64(0)
	specified := false
	f := &filter.LongFilter{
		Filter:      filter.Filter[int64]{In: []int64{1}, Specified: &specified},
		GreaterThan: &gt,
	}

	terms := f.Terms("cantidad")

	require.Len(t, terms, 3)
	assert.Equal(t, query.In("cantidad", int64(1)), terms[0])
	assert.Equal(t, query.IsNull("cantidad"), terms[1])
	assert.Equal(t, query.Gt("cantidad", int64(0)), terms[2])
}

func TestLongFilter_VacioNoGeneraTerminos(t *testing.T) {
	f := &filter.LongFilter{}
	assert.True(t, f.IsEmpty())
	assert.Empty(t, f.Terms("id"))
}
