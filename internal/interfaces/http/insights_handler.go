package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comparador-api/internal/application/dto"
	"github.com/jhoicas/Comparador-api/internal/application/insights"
	"github.com/jhoicas/Comparador-api/pkg/logger"
)

const defaultInsightsLimit = 10

// InsightsHandler rankings y recomendaciones.
type InsightsHandler struct {
	engine *insights.Engine
	log    *logger.Logger
}

// NewInsightsHandler construye el handler.
func NewInsightsHandler(engine *insights.Engine, log *logger.Logger) *InsightsHandler {
	return &InsightsHandler{engine: engine, log: log}
}

func limitOf(c *fiber.Ctx) int {
	limit := c.QueryInt("limit", defaultInsightsLimit)
	if limit <= 0 {
		limit = defaultInsightsLimit
	}
	return min(limit, 100)
}

// PopularShops godoc
// @Summary      Tiendas populares
// @Tags         insights
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(10)
// @Success      200    {array}  dto.PopularShop
// @Router       /api/insights/popular-shops [get]
func (h *InsightsHandler) PopularShops(c *fiber.Ctx) error {
	out, err := h.engine.GetPopularShops(limitOf(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Trending godoc
// @Summary      Productos en tendencia
// @Tags         insights
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(10)
// @Success      200    {array}  dto.TrendingProduct
// @Router       /api/insights/trending [get]
func (h *InsightsHandler) Trending(c *fiber.Ctx) error {
	out, err := h.engine.GetTrendingProducts(limitOf(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Deals godoc
// @Summary      Mejores ofertas
// @Tags         insights
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(10)
// @Success      200    {array}  dto.Deal
// @Router       /api/insights/deals [get]
func (h *InsightsHandler) Deals(c *fiber.Ctx) error {
	out, err := h.engine.GetDeals(limitOf(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Recommendations godoc
// @Summary      Recomendaciones personalizadas
// @Description  El usuario es el del token; admin y staff pueden indicar otro en el cuerpo.
// @Tags         insights
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RecommendationRequest  false  "Historial de compras"
// @Success      200   {array}   dto.Recommendation
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/me/recommendations [post]
func (h *InsightsHandler) Recommendations(c *fiber.Ctx) error {
	var in dto.RecommendationRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
	}
	if in.UserID == "" || !isStaff(c) {
		in.UserID = GetUserID(c)
	}
	out, err := h.engine.GetRecommendations(in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
