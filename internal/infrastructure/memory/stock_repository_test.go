package memory_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-stock/internal/domain"
	"github.com/jhoicas/inventario-stock/internal/domain/entity"
	"github.com/jhoicas/inventario-stock/internal/domain/query"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
	"github.com/jhoicas/inventario-stock/internal/infrastructure/memory"
)

// seed crea un producto y tres stocks: cantidad 0 con producto, 1 sin producto y 5 con producto.
func seed(t *testing.T) (*memory.Store, int64) {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	p := &entity.Producto{Nombre: "Café"}
	require.NoError(t, store.Productos().Create(ctx, p))

	for _, s := range []*entity.Stock{
		{Cantidad: 0, Producto: entity.ProductoRef(p.ID)},
		{Cantidad: 1},
		{Cantidad: 5, Producto: entity.ProductoRef(p.ID)},
	} {
		require.NoError(t, store.Stocks().Save(ctx, s))
	}
	return store, p.ID
}

func cantidades(list []*entity.Stock) []int64 {
	out := make([]int64, 0, len(list))
	for _, s := range list {
		out = append(out, s.Cantidad)
	}
	return out
}

func TestStockRepo_SaveAsignaIDYJoinTraeNombre(t *testing.T) {
	store, productoID := seed(t)
	ctx := context.Background()

	s, err := store.Stocks().GetByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, int64(1), s.ID)
	require.NotNil(t, s.Producto)
	assert.Equal(t, productoID, s.Producto.ID)
	assert.Equal(t, "Café", s.Producto.Nombre)

	missing, err := store.Stocks().GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStockRepo_NombreSiempreActual(t *testing.T) {
	store, productoID := seed(t)
	ctx := context.Background()

	require.True(t, store.Productos().Rename(ctx, productoID, "Café molido"))

	s, err := store.Stocks().GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Café molido", s.Producto.Nombre)
}

func TestStockRepo_Restricciones(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	err := store.Stocks().Save(ctx, &entity.Stock{Cantidad: -1})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	err = store.Stocks().Save(ctx, &entity.Stock{Cantidad: 1, Producto: entity.ProductoRef(42)})
	assert.True(t, errors.Is(err, domain.ErrInvalidReference))

	err = store.Stocks().Save(ctx, &entity.Stock{ID: 10, Cantidad: 1})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestStockRepo_FindAllSemanticaSQLConNull(t *testing.T) {
	store, productoID := seed(t)
	ctx := context.Background()

	cases := []struct {
		name string
		spec query.Specification
		want []int64
	}{
		{"vacío selecciona todo", query.Specification{}, []int64{0, 1, 5}},
		{"equals", query.Where(query.Eq(repository.StockFieldCantidad, int64(0))), []int64{0}},
		{"notEquals", query.Where(query.Ne(repository.StockFieldCantidad, int64(0))), []int64{1, 5}},
		{"in", query.Where(query.In(repository.StockFieldCantidad, int64(0), int64(1))), []int64{0, 1}},
		{"in vacío", query.Where(query.In(repository.StockFieldCantidad)), []int64{}},
		{"greaterThan", query.Where(query.Gt(repository.StockFieldCantidad, int64(0))), []int64{1, 5}},
		{"lessThanOrEqual", query.Where(query.Lte(repository.StockFieldCantidad, int64(1))), []int64{0, 1}},
		{"relación equals", query.Where(query.Eq(repository.StockFieldProductoID, productoID)), []int64{0, 5}},
		{"relación notEquals excluye NULL", query.Where(query.Ne(repository.StockFieldProductoID, productoID+1)), []int64{0, 5}},
		{"relación notIn excluye NULL", query.Where(query.NotIn(repository.StockFieldProductoID, productoID+1)), []int64{0, 5}},
		{"relación no especificada", query.Where(query.IsNull(repository.StockFieldProductoID)), []int64{1}},
		{"conjunción", query.Where(query.IsNotNull(repository.StockFieldProductoID), query.Gte(repository.StockFieldCantidad, int64(1))), []int64{5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			list, err := store.Stocks().FindAll(ctx, tc.spec, query.Unpaged())
			require.NoError(t, err)
			assert.Equal(t, tc.want, cantidades(list))

			n, err := store.Stocks().Count(ctx, tc.spec)
			require.NoError(t, err)
			assert.Equal(t, int64(len(list)), n, "count debe coincidir con el largo de findAll")
		})
	}
}

func TestStockRepo_OrdenYPaginacion(t *testing.T) {
	store, _ := seed(t)
	ctx := context.Background()

	desc := query.Pageable{Sort: []query.Order{{Field: repository.StockFieldCantidad, Direction: query.Desc}}}
	list, err := store.Stocks().FindAll(ctx, query.Specification{}, desc)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 1, 0}, cantidades(list))

	// NULLS LAST en ASC: el stock sin producto va al final.
	byProducto := query.Pageable{Sort: []query.Order{{Field: repository.StockFieldProductoID, Direction: query.Asc}, {Field: repository.StockFieldID, Direction: query.Asc}}}
	list, err = store.Stocks().FindAll(ctx, query.Specification{}, byProducto)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 5, 1}, cantidades(list))

	page := query.Pageable{Page: 1, Size: 2}
	list, err = store.Stocks().FindAll(ctx, query.Specification{}, page)
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, cantidades(list))

	beyond := query.Pageable{Page: 5, Size: 2}
	list, err = store.Stocks().FindAll(ctx, query.Specification{}, beyond)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = store.Stocks().FindAll(ctx, query.Specification{}, query.Pageable{Sort: []query.Order{{Field: "nombre"}}})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestStockRepo_OffsetNegativoNoEntraEnPanico(t *testing.T) {
	store, _ := seed(t)

	// Page*Size desborda a un offset negativo.
	overflow := query.Pageable{Page: math.MaxInt/2 + 1, Size: 2}
	require.Negative(t, overflow.Offset())

	assert.NotPanics(t, func() {
		_, err := store.Stocks().FindAll(context.Background(), query.Specification{}, overflow)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	})
}

func TestStockRepo_DeleteEsIdempotente(t *testing.T) {
	store, _ := seed(t)
	ctx := context.Background()

	require.NoError(t, store.Stocks().Delete(ctx, 1))
	require.NoError(t, store.Stocks().Delete(ctx, 1))

	n, err := store.Stocks().Count(ctx, query.Specification{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestStore_RunRevierteSiFalla(t *testing.T) {
	store, _ := seed(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := store.Run(ctx, func(stocks repository.StockRepository) error {
		require.NoError(t, stocks.Save(ctx, &entity.Stock{ID: 2, Cantidad: 99}))
		require.NoError(t, stocks.Delete(ctx, 3))
		return boom
	})
	require.ErrorIs(t, err, boom)

	s, err := store.Stocks().GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), s.Cantidad)
	ok, err := store.Stocks().ExistsByID(ctx, 3)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStore_RunConfirma(t *testing.T) {
	store, _ := seed(t)
	ctx := context.Background()

	err := store.Run(ctx, func(stocks repository.StockRepository) error {
		return stocks.Save(ctx, &entity.Stock{ID: 2, Cantidad: 7})
	})
	require.NoError(t, err)

	s, err := store.Stocks().GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(7), s.Cantidad)
}

func TestProductoRepo_List(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	for _, n := range []string{"a", "b", "c"} {
		require.NoError(t, store.Productos().Create(ctx, &entity.Producto{Nombre: n}))
	}

	list, err := store.Productos().List(ctx, 2, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].Nombre)
	assert.Equal(t, "c", list[1].Nombre)
}
