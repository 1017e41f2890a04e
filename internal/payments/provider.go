package payments

import "context"

// SubscriptionResult is returned when a subscription is opened with the
// payment provider.
type SubscriptionResult struct {
	SubscriptionID string
	Price          float64
}

// PaymentResult is returned for a one-off power-up purchase.
type PaymentResult struct {
	PaymentID string
	Price     float64
}

// Provider defines the interface to the payment processor.
// This abstraction allows swapping the mock with a real Stripe client
// without refactoring.
type Provider interface {
	CreateSubscription(ctx context.Context, userID, planType string) (SubscriptionResult, error)
	PurchasePowerUp(ctx context.Context, userID, powerUpType string) (PaymentResult, error)
}
