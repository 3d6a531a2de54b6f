package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"healthshop/internal/auth"
	apperrors "healthshop/internal/errors"
	"healthshop/internal/model"
	"healthshop/internal/repository"
)

// AuthService handles token issuance and revocation.
type AuthService interface {
	IssueToken(ctx context.Context, identity auth.Identity) (string, *auth.Claims, error)
	Logout(ctx context.Context, claims *auth.Claims) error
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	tokenStore auth.RevocationStore
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, tokenStore auth.RevocationStore) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

// IssueToken signs a token for identity. The role claim always comes from
// the stored user, never from the request; unknown emails get RoleUser.
func (s *authService) IssueToken(ctx context.Context, identity auth.Identity) (string, *auth.Claims, error) {
	identity.Role = model.RoleUser
	user, err := s.userRepo.FindByEmail(ctx, identity.Email)
	switch {
	case err == nil:
		if user.Role != "" {
			identity.Role = user.Role
		}
	case errors.Is(err, apperrors.ErrNotFound):
	default:
		return "", nil, fmt.Errorf("look up user: %w", err)
	}

	return s.jwtService.Issue(identity)
}

// Logout revokes the token until it would have expired.
func (s *authService) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims == nil || claims.ExpiresAt == nil {
		return nil
	}
	return s.tokenStore.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
}
