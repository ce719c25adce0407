package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-stock/internal/application/usecase"
	"github.com/jhoicas/inventario-stock/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockUC      *usecase.StockUseCase
	StockQueryUC *usecase.StockQueryUseCase
	ProductoUC   *usecase.ProductoUseCase
	JWTSecret    string // vacío = /api sin autenticación
	Page         config.PageConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	if deps.JWTSecret != "" {
		api.Use(AuthMiddleware(deps.JWTSecret))
	}

	stocks := api.Group("/stocks")
	stockHandler := NewStockHandler(deps.StockUC, deps.StockQueryUC, deps.Page)
	stocks.Post("/", stockHandler.Create)
	stocks.Put("/", stockHandler.Update)
	stocks.Get("/", stockHandler.List)
	// /count antes de /:id
	stocks.Get("/count", stockHandler.Count)
	stocks.Get("/:id", stockHandler.GetByID)
	stocks.Delete("/:id", stockHandler.Delete)

	productos := api.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Post("/", productoHandler.Create)
	productos.Get("/", productoHandler.List)
	productos.Get("/:id", productoHandler.GetByID)
}
