package payment

import (
	"context"
	"errors"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	apperrors "healthshop/internal/errors"
)

// IntentCreator creates payment intents with an external provider.
type IntentCreator interface {
	// CreatePaymentIntent requests an intent for amount minor currency units
	// and returns the client secret the browser confirms the payment with.
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error)
}

// StripeProvider creates card-only payment intents through Stripe.
type StripeProvider struct {
	api *client.API
}

// Ensure StripeProvider implements IntentCreator
var _ IntentCreator = (*StripeProvider)(nil)

// NewStripeProvider creates a Stripe client for the given secret key.
func NewStripeProvider(secretKey string) *StripeProvider {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeProvider{api: api}
}

// CreatePaymentIntent implements IntentCreator.
func (p *StripeProvider) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return "", providerError(err)
	}
	return intent.ClientSecret, nil
}

// providerError keeps the provider's own message for the client.
func providerError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
		return &apperrors.ProviderError{Message: stripeErr.Msg, Err: err}
	}
	return &apperrors.ProviderError{Message: err.Error(), Err: err}
}
