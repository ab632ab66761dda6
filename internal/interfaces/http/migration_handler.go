package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comparador-api/internal/application/dto"
	"github.com/jhoicas/Comparador-api/internal/application/migration"
	"github.com/jhoicas/Comparador-api/pkg/logger"
)

// MigrationHandler exportación e importación completas (admin).
type MigrationHandler struct {
	svc *migration.Service
	log *logger.Logger
}

// NewMigrationHandler construye el handler.
func NewMigrationHandler(svc *migration.Service, log *logger.Logger) *MigrationHandler {
	return &MigrationHandler{svc: svc, log: log}
}

// Export godoc
// @Summary      Exportar todo el almacén
// @Description  format=backend devuelve las llaves de data como nombres de tabla snake_case.
// @Tags         migration
// @Security     Bearer
// @Produce      json
// @Param        format  query  string  false  "camel (por defecto) | backend"
// @Success      200     {object}  entity.Document
// @Router       /api/migration/export [get]
func (h *MigrationHandler) Export(c *fiber.Ctx) error {
	if c.Query("format") == "backend" {
		return c.JSON(h.svc.ExportBackend())
	}
	return c.JSON(h.svc.ExportAll())
}

// Import godoc
// @Summary      Importar un documento de exportación
// @Description  Replace por defecto; merge=true empareja por id o llave natural; clear=true vacía antes.
// @Tags         migration
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        merge  query  bool    false  "Merge no destructivo"
// @Param        clear  query  bool    false  "Vaciar antes de importar"
// @Param        body   body   object  true   "Documento"
// @Success      200    {object}  dto.ImportResult
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      422    {object}  dto.ImportResult
// @Router       /api/migration/import [post]
func (h *MigrationHandler) Import(c *fiber.Ctx) error {
	opts := dto.ImportOptions{
		Merge:             c.QueryBool("merge", false),
		ClearBeforeImport: c.QueryBool("clear", false),
	}
	res, err := h.svc.ImportAll(c.UserContext(), c.Body(), opts)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if res.Failed() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(res)
	}
	return c.JSON(res)
}
