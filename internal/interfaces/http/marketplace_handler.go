package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comparador-api/internal/application/dto"
	"github.com/jhoicas/Comparador-api/internal/application/usecase"
	"github.com/jhoicas/Comparador-api/pkg/logger"
)

// MarketplaceHandler operaciones de los colaboradores (protegido).
type MarketplaceHandler struct {
	uc  *usecase.MarketplaceUseCase
	log *logger.Logger
}

// NewMarketplaceHandler construye el handler.
func NewMarketplaceHandler(uc *usecase.MarketplaceUseCase, log *logger.Logger) *MarketplaceHandler {
	return &MarketplaceHandler{uc: uc, log: log}
}

// subject usuario sobre el que se actúa: el del token, u otro si lo pide admin/staff.
func subject(c *fiber.Ctx, requested string) string {
	if requested != "" && isStaff(c) {
		return requested
	}
	return GetUserID(c)
}

// CreatePriceUpdate godoc
// @Summary      Registrar un nuevo precio
// @Description  Actualiza current_price del ShopProduct y notifica bajadas de precio a quienes lo tienen en favoritos.
// @Tags         price-updates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreatePriceUpdateRequest  true  "Nuevo precio"
// @Success      201   {object}  entity.PriceUpdate
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/price-updates [post]
func (h *MarketplaceHandler) CreatePriceUpdate(c *fiber.Ctx) error {
	var in dto.CreatePriceUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreatePriceUpdate(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SetPaymentStatus godoc
// @Summary      Cambiar el estado de pago de un PriceUpdate
// @Tags         price-updates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true  "ID del PriceUpdate"
// @Param        body  body      dto.PaymentStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  entity.PriceUpdate
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/price-updates/{id}/payment-status [patch]
func (h *MarketplaceHandler) SetPaymentStatus(c *fiber.Ctx) error {
	var in dto.PaymentStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SetPaymentStatus(c.UserContext(), c.Params("id"), in.Status)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// ToggleFavorite godoc
// @Summary      Alternar favorito
// @Tags         favorites
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ToggleFavoriteRequest  true  "Favorito"
// @Success      200   {object}  dto.ToggleFavoriteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/favorites/toggle [post]
func (h *MarketplaceHandler) ToggleFavorite(c *fiber.Ctx) error {
	var in dto.ToggleFavoriteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	in.UserID = subject(c, in.UserID)
	on, err := h.uc.ToggleFavorite(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.ToggleFavoriteResponse{Favorited: on})
}

// Favorites godoc
// @Summary      Favoritos del usuario
// @Tags         favorites
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Favorite
// @Router       /api/me/favorites [get]
func (h *MarketplaceHandler) Favorites(c *fiber.Ctx) error {
	out, err := h.uc.GetUserFavorites(subject(c, c.Query("user_id")))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// OwnerShopProducts godoc
// @Summary      Catálogo de la tienda del usuario
// @Description  Vacío si el usuario no tiene tienda.
// @Tags         shops
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OwnerShopProduct
// @Router       /api/me/shop-products [get]
func (h *MarketplaceHandler) OwnerShopProducts(c *fiber.Ctx) error {
	out, err := h.uc.GetShopProductsForOwner(subject(c, c.Query("owner_id")))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// RateShop godoc
// @Summary      Calificar una tienda (1..5)
// @Tags         shops
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "ID de la tienda"
// @Param        body  body      dto.RateShopRequest  true  "Calificación"
// @Success      200   {object}  entity.Shop
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/shops/{id}/rate [post]
func (h *MarketplaceHandler) RateShop(c *fiber.Ctx) error {
	var in dto.RateShopRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.RateShop(c.UserContext(), c.Params("id"), in.Rating)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// AdjustGoodwill godoc
// @Summary      Ajustar el goodwill de una tienda
// @Tags         shops
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "ID de la tienda"
// @Param        body  body      dto.GoodwillRequest  true  "Delta"
// @Success      200   {object}  entity.Shop
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/shops/{id}/goodwill [post]
func (h *MarketplaceHandler) AdjustGoodwill(c *fiber.Ctx) error {
	var in dto.GoodwillRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AdjustGoodwill(c.UserContext(), c.Params("id"), in.Delta)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Subscribe godoc
// @Summary      Suscripción premium
// @Tags         subscriptions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SubscribeRequest  true  "Suscripción"
// @Success      201   {object}  entity.Subscription
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/subscriptions [post]
func (h *MarketplaceHandler) Subscribe(c *fiber.Ctx) error {
	var in dto.SubscribeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	in.UserID = subject(c, in.UserID)
	out, err := h.uc.Subscribe(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ExpireSubscriptions godoc
// @Summary      Vencer suscripciones expiradas
// @Tags         subscriptions
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ExpireResponse
// @Router       /api/subscriptions/expire [post]
func (h *MarketplaceHandler) ExpireSubscriptions(c *fiber.Ctx) error {
	n, err := h.uc.ExpireSubscriptions(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.ExpireResponse{Expired: n})
}

// Notifications godoc
// @Summary      Notificaciones del usuario (recientes primero)
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        unread  query  bool  false  "Solo no leídas"
// @Success      200     {array}  entity.Notification
// @Router       /api/me/notifications [get]
func (h *MarketplaceHandler) Notifications(c *fiber.Ctx) error {
	out, err := h.uc.GetUserNotifications(GetUserID(c), c.QueryBool("unread", false))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// MarkNotificationRead godoc
// @Summary      Marcar notificación como leída
// @Tags         notifications
// @Security     Bearer
// @Param        id   path  string  true  "ID de la notificación"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/me/notifications/{id}/read [post]
func (h *MarketplaceHandler) MarkNotificationRead(c *fiber.Ctx) error {
	if err := h.uc.MarkNotificationRead(c.UserContext(), GetUserID(c), c.Params("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
