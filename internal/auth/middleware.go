package auth

import (
	"github.com/labstack/echo/v4"
	echojwt "github.com/labstack/echo-jwt/v4"

	apperrors "healthshop/internal/errors"
)

// ContextKey is where verified claims are stored on the echo context.
const ContextKey = "user"

// Middleware rejects requests without a valid, unrevoked token cookie and
// stores the verified *Claims under ContextKey.
func Middleware(jwtService *JWTService, store RevocationStore) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "cookie:" + CookieName,
		ContextKey:  ContextKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			claims, err := jwtService.Verify(token)
			if err != nil {
				return nil, err
			}
			if store != nil {
				revoked, err := store.IsRevoked(c.Request().Context(), claims.ID)
				if err == nil && revoked {
					return nil, ErrRevokedToken
				}
			}
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return apperrors.ErrUnauthorized
		},
	})
}

// ClaimsFrom returns the claims stored by Middleware.
func ClaimsFrom(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get(ContextKey).(*Claims)
	return claims, ok
}
