package service

import (
	"context"
	"strings"
	"time"

	apperrors "healthshop/internal/errors"
	"healthshop/internal/model"
	"healthshop/internal/repository"
)

// MaxQuantityChange bounds the delta accepted by AdjustQuantity.
const MaxQuantityChange = 1_000_000

// CartService manages per-email shopping carts.
type CartService interface {
	Add(ctx context.Context, item *model.CartItem) (*model.CartItem, error)
	List(ctx context.Context, email string) ([]model.CartItem, error)
	Count(ctx context.Context, email string) (int64, error)
	SetQuantity(ctx context.Context, id, email string, quantity int) (*model.CartItem, error)
	AdjustQuantity(ctx context.Context, id, email string, delta int) (*model.CartItem, error)
	RemoveItem(ctx context.Context, id, email string) error
	Clear(ctx context.Context, email string) (int64, error)
	PurgeStale(ctx context.Context, olderThan time.Duration) (int64, error)
}

type cartService struct {
	repo repository.CartRepository
	now  func() time.Time
}

// NewCartService creates a new cart service.
func NewCartService(repo repository.CartRepository) CartService {
	return &cartService{repo: repo, now: time.Now}
}

// Add puts one unit of the medicine in the cart. Adding a name already in
// the cart increments its quantity by one instead of creating a second row.
func (s *cartService) Add(ctx context.Context, item *model.CartItem) (*model.CartItem, error) {
	item.Email = strings.TrimSpace(item.Email)
	item.Name = strings.TrimSpace(item.Name)
	if item.Email == "" {
		return nil, apperrors.ErrMissingEmail
	}
	if item.Name == "" {
		return nil, apperrors.NewValidationError("name is required")
	}
	return s.repo.AddOrIncrement(ctx, item, s.now().UTC())
}

func (s *cartService) List(ctx context.Context, email string) ([]model.CartItem, error) {
	if strings.TrimSpace(email) == "" {
		return nil, apperrors.ErrMissingEmail
	}
	return s.repo.ListByEmail(ctx, email)
}

func (s *cartService) Count(ctx context.Context, email string) (int64, error) {
	if strings.TrimSpace(email) == "" {
		return 0, apperrors.ErrMissingEmail
	}
	return s.repo.CountByEmail(ctx, email)
}

// SetQuantity replaces the stored quantity.
func (s *cartService) SetQuantity(ctx context.Context, id, email string, quantity int) (*model.CartItem, error) {
	if strings.TrimSpace(email) == "" {
		return nil, apperrors.ErrMissingEmail
	}
	if quantity < 1 {
		return nil, apperrors.ErrInvalidQuantity
	}
	return s.repo.SetQuantity(ctx, id, email, quantity, s.now().UTC())
}

// AdjustQuantity adds delta to the stored quantity.
func (s *cartService) AdjustQuantity(ctx context.Context, id, email string, delta int) (*model.CartItem, error) {
	if strings.TrimSpace(email) == "" {
		return nil, apperrors.ErrMissingEmail
	}
	if delta == 0 {
		return nil, apperrors.NewValidationError("quantityChange must not be zero")
	}
	if delta < -MaxQuantityChange || delta > MaxQuantityChange {
		return nil, apperrors.ErrInvalidQuantity
	}
	return s.repo.AdjustQuantity(ctx, id, email, delta, s.now().UTC())
}

// RemoveItem deletes a row only when it belongs to email.
func (s *cartService) RemoveItem(ctx context.Context, id, email string) error {
	if strings.TrimSpace(email) == "" {
		return apperrors.ErrMissingEmail
	}
	return s.repo.DeleteItem(ctx, id, email)
}

func (s *cartService) Clear(ctx context.Context, email string) (int64, error) {
	if strings.TrimSpace(email) == "" {
		return 0, apperrors.ErrMissingEmail
	}
	return s.repo.Clear(ctx, email)
}

// PurgeStale removes rows untouched for longer than olderThan.
func (s *cartService) PurgeStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	return s.repo.PurgeStale(ctx, s.now().UTC().Add(-olderThan))
}
