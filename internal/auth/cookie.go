package auth

import (
	"net/http"
	"time"
)

// CookieName is the cookie carrying the auth token.
const CookieName = "token"

// NewAuthCookie builds the http-only cookie carrying token. Production
// deployments serve the frontend from another origin over HTTPS, so the
// cookie must be Secure and SameSite=None there.
func NewAuthCookie(token string, production bool) *http.Cookie {
	cookie := &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(TokenExpiry),
		MaxAge:   int(TokenExpiry / time.Second),
		HttpOnly: true,
	}
	applyMode(cookie, production)
	return cookie
}

// ClearAuthCookie builds a cookie that makes the browser drop the auth token.
func ClearAuthCookie(production bool) *http.Cookie {
	cookie := &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	}
	applyMode(cookie, production)
	return cookie
}

func applyMode(cookie *http.Cookie, production bool) {
	if production {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
		return
	}
	cookie.Secure = false
	cookie.SameSite = http.SameSiteStrictMode
}
