package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"healthshop/internal/service"
)

// CatalogHandler serves reference data.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListCategories godoc
// @Summary List categories
// @Tags catalog
// @Produce json
// @Success 200 {array} model.Category
// @Failure 500 {object} errors.ErrorResponse
// @Router /allcategory [get]
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogService.Categories(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, categories)
}

// ListTestimonials godoc
// @Summary List testimonials
// @Tags catalog
// @Produce json
// @Success 200 {array} model.Testimonial
// @Failure 500 {object} errors.ErrorResponse
// @Router /testimonial [get]
func (h *CatalogHandler) ListTestimonials(c echo.Context) error {
	testimonials, err := h.catalogService.Testimonials(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, testimonials)
}
