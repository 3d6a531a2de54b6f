package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"healthshop/internal/model"
	"healthshop/internal/service"
)

// JoinHandler handles community sign-ups.
type JoinHandler struct {
	joinService service.JoinService
}

// NewJoinHandler creates a new join handler.
func NewJoinHandler(joinService service.JoinService) *JoinHandler {
	return &JoinHandler{joinService: joinService}
}

// JoinRequest is the "join us" form.
type JoinRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Role    string `json:"role"`
	Message string `json:"message"`
}

// Join godoc
// @Summary Join the community
// @Tags community
// @Accept json
// @Produce json
// @Param request body JoinRequest true "Sign-up form"
// @Success 201 {object} model.JoinRequest
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /join-us [post]
func (h *JoinHandler) Join(c echo.Context) error {
	var req JoinRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(err)
	}

	joined, err := h.joinService.Join(c.Request().Context(), &model.JoinRequest{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Role:    req.Role,
		Message: req.Message,
	})
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, joined)
}
