package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comparador-api/internal/application/dto"
	"github.com/jhoicas/Comparador-api/internal/application/usecase"
	"github.com/jhoicas/Comparador-api/internal/domain"
	"github.com/jhoicas/Comparador-api/pkg/logger"
)

// RecordsHandler CRUD genérico por colección (admin/staff).
type RecordsHandler struct {
	uc  *usecase.RecordsUseCase
	log *logger.Logger
}

// NewRecordsHandler construye el handler.
func NewRecordsHandler(uc *usecase.RecordsUseCase, log *logger.Logger) *RecordsHandler {
	return &RecordsHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar una colección
// @Tags         records
// @Security     Bearer
// @Produce      json
// @Param        kind    path   string  true   "Colección (camelCase o snake_case)"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.RecordListResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/records/{kind} [get]
func (h *RecordsHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(c.Params("kind"), page)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener un registro
// @Tags         records
// @Security     Bearer
// @Produce      json
// @Param        kind  path  string  true  "Colección"
// @Param        id    path  string  true  "ID"
// @Success      200   {object}  map[string]interface{}
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/records/{kind}/{id} [get]
func (h *RecordsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("kind"), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Save godoc
// @Summary      Crear o actualizar un registro
// @Description  Sin id se crea; con id existente se actualiza conservando los campos del sistema.
// @Tags         records
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        kind  path  string  true  "Colección"
// @Param        body  body  object  true  "Registro"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/records/{kind} [put]
func (h *RecordsHandler) Save(c *fiber.Ctx) error {
	out, err := h.uc.Save(c.UserContext(), c.Params("kind"), c.Body())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar un registro
// @Tags         records
// @Security     Bearer
// @Param        kind  path  string  true  "Colección"
// @Param        id    path  string  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/records/{kind}/{id} [delete]
func (h *RecordsHandler) Delete(c *fiber.Ctx) error {
	kind, id := c.Params("kind"), c.Params("id")
	removed, err := h.uc.Delete(c.UserContext(), kind, id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if !removed {
		return writeError(c, h.log, domain.NewNotFound(kind, id))
	}
	return c.SendStatus(fiber.StatusNoContent)
}
