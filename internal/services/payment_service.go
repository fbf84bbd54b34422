package services

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"

	"estate-app/internal/models"
)

type PaymentService struct{}

// NewPaymentService configures the Stripe client key once at startup.
func NewPaymentService(secretKey string) *PaymentService {
	stripe.Key = secretKey
	return &PaymentService{}
}

// CreatePaymentIntent asks Stripe for a card payment intent over the
// given price and hands back the client secret the frontend confirms
// with. Price is in whole currency units; Stripe wants cents.
func (s *PaymentService) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	if price <= 0 {
		return "", fmt.Errorf("%w: price must be greater than 0", models.ErrValidation)
	}

	amount := int64(math.Round(price * 100))
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}

	return intent.ClientSecret, nil
}
