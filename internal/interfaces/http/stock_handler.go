package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-stock/internal/application/dto"
	"github.com/jhoicas/inventario-stock/internal/application/usecase"
	"github.com/jhoicas/inventario-stock/internal/domain"
	"github.com/jhoicas/inventario-stock/pkg/config"
)

// StockHandler maneja las peticiones HTTP para Stock.
type StockHandler struct {
	uc    *usecase.StockUseCase
	query *usecase.StockQueryUseCase
	page  config.PageConfig
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *usecase.StockUseCase, query *usecase.StockQueryUseCase, page config.PageConfig) *StockHandler {
	return &StockHandler{uc: uc, query: query, page: page}
}

// Create godoc
// @Summary      Crear stock
// @Tags         stocks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockDTO  true  "Stock sin id"
// @Success      201   {object}  dto.StockDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stocks [post]
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var in dto.StockDTO
	if err := c.BodyParser(&in); err != nil {
		return sendError(c, fiber.StatusBadRequest, CodeInvalidBody, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	c.Location("/api/stocks/" + strconv.FormatInt(*out.ID, 10))
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar stock (reemplazo completo)
// @Tags         stocks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockDTO  true  "Stock con id"
// @Success      200   {object}  dto.StockDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stocks [put]
func (h *StockHandler) Update(c *fiber.Ctx) error {
	var in dto.StockDTO
	if err := c.BodyParser(&in); err != nil {
		return sendError(c, fiber.StatusBadRequest, CodeInvalidBody, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar stocks por criterio
// @Description  Filtros: id, cantidad y productoId con los operadores equals, notEquals, in, notIn, specified, greaterThan, greaterThanOrEqual, lessThan y lessThanOrEqual (ej. cantidad.greaterThan=5).
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        page  query  int     false  "Página (desde 0)"
// @Param        size  query  int     false  "Tamaño de página"
// @Param        sort  query  string  false  "campo,asc|desc (id, cantidad, productoId)"
// @Success      200   {array}   dto.StockDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stocks [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	values := queryValues(c)
	criteria, err := dto.ParseStockCriteria(values)
	if err != nil {
		return writeError(c, err)
	}
	page, err := parsePageable(values, h.page)
	if err != nil {
		return writeError(c, err)
	}
	items, total, err := h.query.FindPage(c.UserContext(), criteria, page)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(HeaderTotalCount, strconv.FormatInt(total, 10))
	if link := linkHeader(c.BaseURL()+c.Path(), values, page, total); link != "" {
		c.Set(HeaderLink, link)
	}
	return c.JSON(items)
}

// Count godoc
// @Summary      Contar stocks por criterio
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Success      200  {integer}  int
// @Failure      400  {object}   dto.ErrorResponse
// @Router       /api/stocks/count [get]
func (h *StockHandler) Count(c *fiber.Ctx) error {
	criteria, err := dto.ParseStockCriteria(queryValues(c))
	if err != nil {
		return writeError(c, err)
	}
	n, err := h.query.CountByCriteria(c.UserContext(), criteria)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(n)
}

// GetByID godoc
// @Summary      Obtener stock por ID
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del stock"
// @Success      200  {object}  dto.StockDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stocks/{id} [get]
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return sendError(c, fiber.StatusNotFound, CodeNotFound, "stock no encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar stock
// @Tags         stocks
// @Security     Bearer
// @Param        id   path  int  true  "ID del stock"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stocks/{id} [delete]
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func pathID(c *fiber.Ctx) (int64, error) {
	raw := c.Params("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("id %q debe ser numérico: %w", raw, domain.ErrInvalidInput)
	}
	return id, nil
}
