package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"healthshop/internal/model"
	"healthshop/internal/service"
)

// CartHandler handles shopping cart endpoints.
type CartHandler struct {
	cartService service.CartService
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// AddToCartRequest puts one unit of a medicine in a cart.
type AddToCartRequest struct {
	Email      string  `json:"email" validate:"required,email"`
	Name       string  `json:"name" validate:"required"`
	MedicineID string  `json:"medicineId"`
	Price      float64 `json:"price" validate:"gte=0"`
	Image      string  `json:"image"`
	Company    string  `json:"company"`
}

// SetQuantityRequest replaces a cart row's quantity.
type SetQuantityRequest struct {
	ID       string `json:"id" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Quantity int    `json:"quantity"`
}

// AdjustQuantityRequest adds QuantityChange to a cart row's quantity.
type AdjustQuantityRequest struct {
	ID             string `json:"id" validate:"required"`
	Email          string `json:"email" validate:"required"`
	QuantityChange int    `json:"quantityChange" validate:"required"`
}

// CountResponse carries the number of rows in a cart.
type CountResponse struct {
	Count int64 `json:"count"`
}

// ClearResponse carries the number of rows removed from a cart.
type ClearResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

// AddToCart godoc
// @Summary Add medicine to cart
// @Description Adding a medicine already in the cart increments its quantity by one.
// @Tags cart
// @Accept json
// @Produce json
// @Param request body AddToCartRequest true "Cart item"
// @Success 200 {object} model.CartItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /add-to-cart [put]
func (h *CartHandler) AddToCart(c echo.Context) error {
	var req AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(err)
	}

	item, err := h.cartService.Add(c.Request().Context(), &model.CartItem{
		Email:      req.Email,
		Name:       req.Name,
		MedicineID: req.MedicineID,
		Price:      req.Price,
		Image:      req.Image,
		Company:    req.Company,
	})
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, item)
}

// SetQuantity godoc
// @Summary Set cart item quantity
// @Tags cart
// @Accept json
// @Produce json
// @Param request body SetQuantityRequest true "New quantity"
// @Success 200 {object} model.CartItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /update-cart-item [put]
func (h *CartHandler) SetQuantity(c echo.Context) error {
	var req SetQuantityRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(err)
	}

	item, err := h.cartService.SetQuantity(c.Request().Context(), req.ID, req.Email, req.Quantity)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, item)
}

// AdjustQuantity godoc
// @Summary Change cart item quantity
// @Description Adds quantityChange to the stored quantity. The result must stay at least 1.
// @Tags cart
// @Accept json
// @Produce json
// @Param request body AdjustQuantityRequest true "Quantity change"
// @Success 200 {object} model.CartItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /cart/update-quantity [put]
func (h *CartHandler) AdjustQuantity(c echo.Context) error {
	var req AdjustQuantityRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(err)
	}

	item, err := h.cartService.AdjustQuantity(c.Request().Context(), req.ID, req.Email, req.QuantityChange)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, item)
}

// ListCart godoc
// @Summary List cart items
// @Description The email may be given as a path segment or as the email query parameter.
// @Tags cart
// @Produce json
// @Param email path string false "Shopper email"
// @Success 200 {array} model.CartItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /cart/{email} [get]
func (h *CartHandler) ListCart(c echo.Context) error {
	email := c.Param("email")
	if email == "" {
		email = c.QueryParam("email")
	}

	items, err := h.cartService.List(c.Request().Context(), email)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// CountCart godoc
// @Summary Count cart items
// @Tags cart
// @Produce json
// @Param email path string true "Shopper email"
// @Success 200 {object} CountResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /cart-count/{email} [get]
func (h *CartHandler) CountCart(c echo.Context) error {
	count, err := h.cartService.Count(c.Request().Context(), c.Param("email"))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, CountResponse{Count: count})
}

// ClearCart godoc
// @Summary Empty a cart
// @Tags cart
// @Produce json
// @Param email query string true "Shopper email"
// @Success 200 {object} ClearResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /cart/clear [delete]
func (h *CartHandler) ClearCart(c echo.Context) error {
	deleted, err := h.cartService.Clear(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, ClearResponse{DeletedCount: deleted})
}

// RemoveItem godoc
// @Summary Remove one cart item
// @Description Deletes the row only when it belongs to the given email.
// @Tags cart
// @Produce json
// @Param id path string true "Cart item ID"
// @Param email query string true "Owner email"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /cart/item/{id} [delete]
func (h *CartHandler) RemoveItem(c echo.Context) error {
	if err := h.cartService.RemoveItem(c.Request().Context(), c.Param("id"), c.QueryParam("email")); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "item removed"})
}
