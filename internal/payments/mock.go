package payments

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

const subscriptionPrice = 10.0

var powerUpPrices = map[string]float64{
	"boost":      2.99,
	"super_like": 2.99,
	"rewind":     2.99,
}

// MockStripe implements the Provider interface without talking to Stripe.
// Every call succeeds and returns a fabricated id.
type MockStripe struct{}

func NewMockStripe() *MockStripe {
	return &MockStripe{}
}

func (m *MockStripe) CreateSubscription(ctx context.Context, userID, planType string) (SubscriptionResult, error) {
	return SubscriptionResult{
		SubscriptionID: "sub_mock_" + mockID(),
		Price:          subscriptionPrice,
	}, nil
}

func (m *MockStripe) PurchasePowerUp(ctx context.Context, userID, powerUpType string) (PaymentResult, error) {
	price, ok := powerUpPrices[powerUpType]
	if !ok {
		price = 2.99
	}
	return PaymentResult{
		PaymentID: "pi_mock_" + mockID(),
		Price:     price,
	}, nil
}

func mockID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:16]
}
