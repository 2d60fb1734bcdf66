package service

import (
	"context"
	"fmt"

	"firefly/internal/payment"
)

// IntentCreator is the payment-collaborator capability the service needs.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amount int64) (*payment.Intent, error)
}

type PaymentService interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
}

type paymentService struct {
	client IntentCreator
}

func NewPaymentService(client IntentCreator) PaymentService {
	return &paymentService{client: client}
}

// CreateIntent converts the price to minor units (truncating) and
// returns the intent's client secret.
func (s *paymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount := int64(price * 100)

	intent, err := s.client.CreateIntent(ctx, amount)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	return intent.ClientSecret, nil
}
