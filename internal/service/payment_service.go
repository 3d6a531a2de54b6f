package service

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "healthshop/internal/errors"
	"healthshop/internal/model"
	"healthshop/internal/payment"
	"healthshop/internal/repository"
)

var (
	minorUnitsPerMajor = decimal.NewFromInt(100)
	minimumPrice       = decimal.New(1, -2)
)

// PaymentService creates payment intents and records completed payments.
type PaymentService interface {
	CreateIntent(ctx context.Context, price decimal.NullDecimal) (string, error)
	Record(ctx context.Context, payment *model.Payment) (*model.Payment, error)
}

type paymentService struct {
	provider payment.IntentCreator
	repo     repository.PaymentRepository
	currency string
	now      func() time.Time
}

// NewPaymentService creates a new payment service.
func NewPaymentService(provider payment.IntentCreator, repo repository.PaymentRepository, currency string) PaymentService {
	return &paymentService{
		provider: provider,
		repo:     repo,
		currency: currency,
		now:      time.Now,
	}
}

// ToMinorUnits converts a decimal price to integer minor units, rounding half
// away from zero: 19.99 becomes 1999.
func ToMinorUnits(price decimal.Decimal) int64 {
	return price.Mul(minorUnitsPerMajor).Round(0).IntPart()
}

// CreateIntent asks the provider for a card-only intent and returns its client secret.
func (s *paymentService) CreateIntent(ctx context.Context, price decimal.NullDecimal) (string, error) {
	if !price.Valid || price.Decimal.LessThan(minimumPrice) {
		return "", apperrors.ErrInvalidPrice
	}
	return s.provider.CreatePaymentIntent(ctx, ToMinorUnits(price.Decimal), s.currency)
}

// Record stores the client-submitted payment as is. The amount is not
// reconciled against the intent.
func (s *paymentService) Record(ctx context.Context, p *model.Payment) (*model.Payment, error) {
	if strings.TrimSpace(p.Email) == "" {
		return nil, apperrors.ErrMissingEmail
	}
	p.ID = primitive.NilObjectID
	if p.Status == "" {
		p.Status = model.PaymentStatusPending
	}
	p.CreatedAt = s.now().UTC()

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
