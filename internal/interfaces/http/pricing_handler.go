package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comparador-api/internal/application/pricing"
	"github.com/jhoicas/Comparador-api/pkg/logger"
)

// PricingHandler consultas públicas del comparador de precios.
type PricingHandler struct {
	uc  *pricing.UseCase
	log *logger.Logger
}

// NewPricingHandler construye el handler.
func NewPricingHandler(uc *pricing.UseCase, log *logger.Logger) *PricingHandler {
	return &PricingHandler{uc: uc, log: log}
}

// Summary godoc
// @Summary      Resumen global de precios
// @Description  Un elemento por producto activo, ordenado por nombre. Sin ofertas los precios y la mejor tienda son null.
// @Tags         prices
// @Produce      json
// @Success      200  {array}   dto.PriceSummaryItem
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/prices/summary [get]
func (h *PricingHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetGlobalPriceSummary()
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Offers godoc
// @Summary      Ofertas vigentes de un producto
// @Tags         prices
// @Produce      json
// @Param        id   path      string  true  "ID del producto"
// @Success      200  {object}  dto.ProductOffersResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/offers [get]
func (h *PricingHandler) Offers(c *fiber.Ctx) error {
	out, err := h.uc.GetProductOffers(c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Reporte PDF del resumen de precios
// @Tags         prices
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/prices/report [get]
func (h *PricingHandler) Report(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.GetPriceReportPDF(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(pdf)
}
