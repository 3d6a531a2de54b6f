package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	apperrors "healthshop/internal/errors"
)

// TokenExpiry is the lifetime of an issued auth token.
const TokenExpiry = 365 * 24 * time.Hour

var (
	// ErrMissingToken is returned when no token was presented.
	ErrMissingToken = fmt.Errorf("%w: missing token", apperrors.ErrUnauthorized)
	// ErrInvalidToken is returned for malformed, forged or expired tokens.
	ErrInvalidToken = fmt.Errorf("%w: invalid token", apperrors.ErrUnauthorized)
	// ErrRevokedToken is returned for tokens revoked by logout.
	ErrRevokedToken = fmt.Errorf("%w: revoked token", apperrors.ErrUnauthorized)
)

// Identity is the payload a client exchanges for a token.
type Identity struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role,omitempty"`
}

// Claims represents JWT claims.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWTService handles JWT token generation and validation.
type JWTService struct {
	secret []byte
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
	}
}

// Issue signs a token for identity that expires after TokenExpiry.
func (s *JWTService) Issue(identity Identity) (string, *Claims, error) {
	now := time.Now()
	claims := &Claims{
		Email: identity.Email,
		Role:  identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        generateTokenID(),
			Subject:   identity.Email,
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return token, claims, nil
}

// Verify validates a JWT token and returns the claims. It has no transport
// dependency: callers extract the token however they receive it.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Email == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// generateTokenID generates a unique token ID used for revocation.
func generateTokenID() string {
	return uuid.New().String()
}
