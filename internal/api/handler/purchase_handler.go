package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoplite/store-api/internal/core/ports"
)

// PurchaseHandler serves checkout for users and the purchase ledger for admins.
type PurchaseHandler struct {
	service ports.PurchaseService
}

func NewPurchaseHandler(service ports.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{service: service}
}

// Checkout converts the authenticated identity's cart into a purchase.
//
// @Summary      Checkout the current cart
// @Tags         purchases
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  domain.Purchase
// @Failure      400  {object}  errorResponse
// @Router       /api/purchases [post]
func (h *PurchaseHandler) Checkout(c echo.Context) error {
	username, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	purchase, err := h.service.Checkout(c.Request().Context(), username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, purchase)
}

// List returns all recorded purchases, newest first.
//
// @Summary      List purchases
// @Tags         purchases
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Purchase
// @Router       /admin/purchases [get]
func (h *PurchaseHandler) List(c echo.Context) error {
	purchases, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, purchases)
}
