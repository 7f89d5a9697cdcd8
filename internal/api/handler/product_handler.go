package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoplite/store-api/internal/core/domain"
	"github.com/shoplite/store-api/internal/core/ports"
)

// ProductHandler serves the catalog. Reads are public; mutations sit behind
// the admin gate.
type ProductHandler struct {
	service ports.CatalogService
}

func NewProductHandler(service ports.CatalogService) *ProductHandler {
	return &ProductHandler{service: service}
}

type addProductRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Image       string  `json:"image"`
}

// List returns the full catalog.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Success      200  {array}  domain.Product
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.Products(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Search returns products whose title or description contains the query.
//
// @Summary      Search products
// @Tags         products
// @Produce      json
// @Param        query  query    string  false  "Substring to match"
// @Success      200    {array}  domain.Product
// @Router       /api/products/search [get]
func (h *ProductHandler) Search(c echo.Context) error {
	products, err := h.service.Search(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Create adds a product to the catalog.
//
// @Summary      Add a product
// @Tags         products
// @Accept       json
// @Security     BearerAuth
// @Param        body  body      addProductRequest  true  "Product details"
// @Success      201   {object}  map[string]string
// @Failure      409   {object}  errorResponse
// @Router       /admin/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req addProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.service.AddProduct(c.Request().Context(), domain.Product{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "product added successfully"})
}

// Delete removes a product by title.
//
// @Summary      Remove a product
// @Tags         products
// @Security     BearerAuth
// @Param        title  query     string  true  "Product title"
// @Success      200    {object}  map[string]string
// @Failure      404    {object}  errorResponse
// @Router       /admin/products [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	title := c.QueryParam("title")
	if title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "product title is required")
	}

	if err := h.service.RemoveProduct(c.Request().Context(), title); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "product removed successfully"})
}
