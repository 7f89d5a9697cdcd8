package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoplite/store-api/internal/core/ports"
)

// CartHandler serves the per-identity cart. Every route sits behind the user
// gate, so the identity always comes from context, never from the payload.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

type cartItemRequest struct {
	Title string `json:"title" validate:"required"`
}

// Items returns the authenticated identity's cart.
//
// @Summary      List cart items
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.CartEntry
// @Failure      401  {object}  errorResponse
// @Router       /api/cart/items [get]
func (h *CartHandler) Items(c echo.Context) error {
	username, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	items, err := h.service.Items(c.Request().Context(), username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Add snapshots a catalog product into the cart.
//
// @Summary      Add a product to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      cartItemRequest  true  "Product title"
// @Success      201   {object}  domain.CartEntry
// @Failure      404   {object}  errorResponse
// @Router       /api/cart/add [post]
func (h *CartHandler) Add(c echo.Context) error {
	username, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req cartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.service.Add(c.Request().Context(), username, req.Title)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, entry)
}

// Remove deletes the first cart entry matching the given title.
//
// @Summary      Remove a product from the cart
// @Tags         cart
// @Accept       json
// @Security     BearerAuth
// @Param        body  body      cartItemRequest  true  "Product title"
// @Success      200   {object}  map[string]bool
// @Failure      404   {object}  errorResponse
// @Router       /api/cart/delete [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	username, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req cartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Remove(c.Request().Context(), username, req.Title); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// Clear empties the cart.
//
// @Summary      Clear the cart
// @Tags         cart
// @Security     BearerAuth
// @Success      200  {object}  map[string]bool
// @Router       /api/cart/clear [post]
func (h *CartHandler) Clear(c echo.Context) error {
	username, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Clear(c.Request().Context(), username); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
