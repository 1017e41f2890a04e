package payments

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockStripe_CreateSubscription(t *testing.T) {
	t.Parallel()

	m := NewMockStripe()
	result, err := m.CreateSubscription(context.Background(), "user-1", "premium")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.SubscriptionID, "sub_mock_"))
	assert.Len(t, strings.TrimPrefix(result.SubscriptionID, "sub_mock_"), 16)
	assert.Equal(t, subscriptionPrice, result.Price)
}

func TestMockStripe_PurchasePowerUp(t *testing.T) {
	t.Parallel()

	m := NewMockStripe()

	for powerUp, want := range powerUpPrices {
		result, err := m.PurchasePowerUp(context.Background(), "user-1", powerUp)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(result.PaymentID, "pi_mock_"))
		assert.Equal(t, want, result.Price)
	}

	// Unknown power-ups fall back to the standard price.
	result, err := m.PurchasePowerUp(context.Background(), "user-1", "mystery")
	require.NoError(t, err)
	assert.Equal(t, 2.99, result.Price)
}

func TestMockStripe_IDsAreUnique(t *testing.T) {
	t.Parallel()

	m := NewMockStripe()
	a, err := m.CreateSubscription(context.Background(), "u", "premium")
	require.NoError(t, err)
	b, err := m.CreateSubscription(context.Background(), "u", "premium")
	require.NoError(t, err)
	assert.NotEqual(t, a.SubscriptionID, b.SubscriptionID)
}
