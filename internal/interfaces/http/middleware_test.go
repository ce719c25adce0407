package http_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/inventario-stock/internal/interfaces/http"
)

func buildObservedApp() *fiber.App {
	metrics := apphttp.NewMetrics()
	app := fiber.New()
	app.Use(apphttp.RequestLogger())
	app.Use(metrics.Middleware())
	app.Get("/metrics", metrics.Handler())
	app.Get("/items/:id", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"request_id": apphttp.GetRequestID(c)})
	})
	app.Get("/faltante", func(c *fiber.Ctx) error {
		return fmt.Errorf("buscar item: %w", fiber.ErrNotFound)
	})
	return app
}

func TestRequestLogger_GeneraRequestID(t *testing.T) {
	app := buildObservedApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/items/1", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	rid := resp.Header.Get(apphttp.HeaderRequestID)
	_, err = uuid.Parse(rid)
	assert.NoError(t, err, "el request id generado debe ser un UUID")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), rid, "el handler ve el mismo request id")
}

func TestRequestLogger_RespetaRequestIDEntrante(t *testing.T) {
	app := buildObservedApp()

	req := httptest.NewRequest(http.MethodGet, "/items/1", nil)
	req.Header.Set(apphttp.HeaderRequestID, "abc-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "abc-123", resp.Header.Get(apphttp.HeaderRequestID))
}

func TestMetrics_EtiquetaPorRutaRegistrada(t *testing.T) {
	app := buildObservedApp()

	for _, path := range []string{"/items/1", "/items/2"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	text := string(body)
	assert.Contains(t, text, `http_requests_total{method="GET",route="/items/:id",status="200"} 2`)
	assert.Contains(t, text, `http_request_duration_seconds_count{method="GET",route="/items/:id"} 2`)
	assert.NotContains(t, text, `route="/items/1"`)
}

func TestMetrics_StatusDeErrorFiberEnvuelto(t *testing.T) {
	app := buildObservedApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/faltante", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `http_requests_total{method="GET",route="/faltante",status="404"} 1`)
}
