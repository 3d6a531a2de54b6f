package service

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"healthshop/internal/cache"
	apperrors "healthshop/internal/errors"
	"healthshop/internal/model"
	"healthshop/internal/repository"
)

// UserService exposes domain operations.
type UserService interface {
	Register(ctx context.Context, user *model.User) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	UpdateRole(ctx context.Context, id, role, status string) (*model.User, error)
	Delete(ctx context.Context, id string) error
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
	ttl   time.Duration
	now   func() time.Time
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client, ttl time.Duration) UserService {
	return &userService{repo: repo, cache: cache, ttl: ttl, now: time.Now}
}

func (s *userService) cacheKey(email string) string {
	return "user:" + email
}

// Register stores a new user or returns the existing record for the email.
// Registration never grants a role; roles change through UpdateRole only.
func (s *userService) Register(ctx context.Context, user *model.User) (*model.User, error) {
	user.Email = strings.TrimSpace(user.Email)
	if user.Email == "" {
		return nil, apperrors.ErrMissingEmail
	}
	user.ID = primitive.NilObjectID
	user.Role = model.RoleUser
	user.Timestamp = s.now().UnixMilli()

	return s.repo.Upsert(ctx, user)
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var cached model.User
	if s.cache.GetJSON(ctx, s.cacheKey(email), &cached) {
		return &cached, nil
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	_ = s.cache.SetJSON(ctx, s.cacheKey(email), user, s.ttl)
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) UpdateRole(ctx context.Context, id, role, status string) (*model.User, error) {
	if strings.TrimSpace(role) == "" {
		return nil, apperrors.NewValidationError("role is required")
	}
	user, err := s.repo.UpdateRole(ctx, id, role, status)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(user.Email))
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	user, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(user.Email))
	return nil
}
