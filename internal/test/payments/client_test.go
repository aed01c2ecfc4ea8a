package payments_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v82"
	"art-shop-backend/internal/config"
	"art-shop-backend/internal/models"
	"art-shop-backend/internal/payments"
)

type captureSessionCreator struct {
	params  *stripe.CheckoutSessionParams
	session *stripe.CheckoutSession
	err     error
}

func (f *captureSessionCreator) New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	f.params = params
	return f.session, f.err
}

func paymentsTestConfig() *config.Config {
	return &config.Config{
		StripeSecretKey:     "sk_test_123",
		StripeWebhookSecret: "whsec_test_123",
		Currency:            "SEK",
		CheckoutSuccessURL:  "https://shop.example.com/success?order={CHECKOUT_SESSION_ID}",
		CheckoutCancelURL:   "https://shop.example.com/cart",
	}
}

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		price string
		want  int64
	}{
		{"19.99", 1999},
		{"19.995", 2000}, // half rounds up
		{"19.994", 1999},
		{"100", 10000},
		{"0", 0},
		{"0.004", 0},
	}
	for _, tc := range cases {
		got := payments.MinorUnits(decimal.RequireFromString(tc.price))
		assert.Equal(t, tc.want, got, "MinorUnits(%s)", tc.price)
	}
}

func TestCreateCheckoutSession_BuildsLineItems(t *testing.T) {
	creator := &captureSessionCreator{
		session: &stripe.CheckoutSession{ID: "cs_1", URL: "https://checkout.stripe.com/pay/cs_1"},
	}
	client := payments.NewClientWithSessions(paymentsTestConfig(), creator)

	order := &models.Order{
		ID:       uuid.New(),
		Status:   models.OrderStatusPending,
		Currency: "SEK",
		Items: []models.OrderItem{
			{Title: "Sunset", UnitPrice: decimal.RequireFromString("19.995"), Quantity: 2},
			{Title: "Harbor", UnitPrice: decimal.RequireFromString("49.50"), Quantity: 1},
		},
	}

	session, err := client.CreateCheckoutSession(order)
	assert.NoError(t, err)
	assert.Equal(t, "cs_1", session.ID)

	params := creator.params
	assert.Equal(t, "payment", *params.Mode)
	assert.Equal(t, order.ID.String(), params.Metadata["order_id"])
	assert.Equal(t, "https://shop.example.com/success?order={CHECKOUT_SESSION_ID}", *params.SuccessURL)
	assert.Equal(t, "https://shop.example.com/cart", *params.CancelURL)

	assert.Len(t, params.LineItems, 2)
	first := params.LineItems[0]
	assert.Equal(t, "sek", *first.PriceData.Currency)
	assert.Equal(t, "Sunset", *first.PriceData.ProductData.Name)
	assert.Equal(t, int64(2000), *first.PriceData.UnitAmount)
	assert.Equal(t, int64(2), *first.Quantity)
	assert.Equal(t, int64(4950), *params.LineItems[1].PriceData.UnitAmount)
}

func TestCreateCheckoutSession_RejectsZeroAmount(t *testing.T) {
	client := payments.NewClientWithSessions(paymentsTestConfig(), &captureSessionCreator{})

	order := &models.Order{
		ID:       uuid.New(),
		Currency: "SEK",
		Items: []models.OrderItem{
			{Title: "Freebie", UnitPrice: decimal.Zero, Quantity: 1},
		},
	}

	_, err := client.CreateCheckoutSession(order)
	assert.ErrorIs(t, err, payments.ErrInvalidAmount)
}

func TestCreateCheckoutSession_RejectsZeroQuantity(t *testing.T) {
	client := payments.NewClientWithSessions(paymentsTestConfig(), &captureSessionCreator{})

	// an out-of-stock product clamps to quantity 0 at order time; checkout
	// must refuse it rather than send a zero-quantity line to Stripe
	order := &models.Order{
		ID:       uuid.New(),
		Currency: "SEK",
		Items: []models.OrderItem{
			{Title: "Sold out", UnitPrice: decimal.RequireFromString("50"), Quantity: 0},
		},
	}

	_, err := client.CreateCheckoutSession(order)
	assert.ErrorIs(t, err, payments.ErrInvalidAmount)
}
