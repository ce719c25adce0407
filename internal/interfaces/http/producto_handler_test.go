package http_test

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-stock/internal/application/dto"
	apphttp "github.com/jhoicas/inventario-stock/internal/interfaces/http"
)

func TestProductos_CrearYConsultar(t *testing.T) {
	app, _ := newTestApp(t, "")

	resp := doRequest(t, app, http.MethodPost, "/api/productos", dto.CreateProductoRequest{Nombre: "Café"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.ProductoResponse](t, resp)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Café", created.Nombre)

	resp = doRequest(t, app, http.MethodGet, "/api/productos/"+strconv.FormatInt(created.ID, 10), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, created, decode[dto.ProductoResponse](t, resp))

	resp = doRequest(t, app, http.MethodGet, "/api/productos?limit=10", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]dto.ProductoResponse](t, resp), 1)
}

func TestProductos_NombreRequerido(t *testing.T) {
	app, _ := newTestApp(t, "")

	resp := doRequest(t, app, http.MethodPost, "/api/productos", dto.CreateProductoRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, apphttp.CodeValidation, decode[dto.ErrorResponse](t, resp).Code)
}

func TestProductos_Inexistente(t *testing.T) {
	app, _ := newTestApp(t, "")

	resp := doRequest(t, app, http.MethodGet, "/api/productos/7", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProductos_StockReferenciaProductoCreadoPorAPI(t *testing.T) {
	app, _ := newTestApp(t, "")

	resp := doRequest(t, app, http.MethodPost, "/api/productos", dto.CreateProductoRequest{Nombre: "Té"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	p := decode[dto.ProductoResponse](t, resp)

	resp = doRequest(t, app, http.MethodPost, "/api/stocks", dto.StockDTO{Cantidad: ptr(int64(3)), ProductoID: ptr(p.ID)})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	s := decode[dto.StockDTO](t, resp)
	assert.Equal(t, "Té", *s.ProductoNombre)

	defaultFilter := "/api/stocks/count?productoId.equals=" + strconv.FormatInt(p.ID, 10)
	resp = doRequest(t, app, http.MethodGet, defaultFilter, nil)
	assert.Equal(t, "1", readBody(t, resp))
}
