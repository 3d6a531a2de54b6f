package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"healthshop/internal/auth"
	"healthshop/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
	jwtService  *auth.JWTService
	production  bool
}

// NewAuthHandler creates a new auth handler. production selects secure
// cross-site cookie attributes.
func NewAuthHandler(authService service.AuthService, jwtService *auth.JWTService, production bool) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		jwtService:  jwtService,
		production:  production,
	}
}

// TokenResponse acknowledges a cookie change.
type TokenResponse struct {
	Success bool `json:"success"`
}

// IssueToken godoc
// @Summary Issue auth cookie
// @Description Signs a one-year token for the email and sets it as an http-only cookie. The role claim is read from the stored user.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body auth.Identity true "Identity"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /jwt [post]
func (h *AuthHandler) IssueToken(c echo.Context) error {
	var identity auth.Identity
	if err := c.Bind(&identity); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&identity); err != nil {
		return invalidInput(err)
	}

	token, _, err := h.authService.IssueToken(c.Request().Context(), identity)
	if err != nil {
		return respondError(err)
	}

	c.SetCookie(auth.NewAuthCookie(token, h.production))
	return c.JSON(http.StatusOK, TokenResponse{Success: true})
}

// Logout godoc
// @Summary Logout
// @Description Revokes the current token, if any, and clears the cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} TokenResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(auth.CookieName); err == nil {
		if claims, err := h.jwtService.Verify(cookie.Value); err == nil {
			if err := h.authService.Logout(c.Request().Context(), claims); err != nil {
				return respondError(err)
			}
		}
	}

	c.SetCookie(auth.ClearAuthCookie(h.production))
	return c.JSON(http.StatusOK, TokenResponse{Success: true})
}
