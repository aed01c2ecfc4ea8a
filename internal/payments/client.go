package payments

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"
	"art-shop-backend/internal/config"
	"art-shop-backend/internal/models"
)

// ErrInvalidAmount is returned when a line converts to a non-positive minor
// unit amount or carries a non-positive quantity; Stripe rejects both.
var ErrInvalidAmount = errors.New("line amount and quantity must be positive")

// SessionCreator is the slice of the Stripe API the checkout flow needs.
// *session.Client satisfies it.
type SessionCreator interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type Client struct {
	sessions      SessionCreator
	webhookSecret string
	successURL    string
	cancelURL     string
}

func NewClient(cfg *config.Config) *Client {
	api := &client.API{}
	api.Init(cfg.StripeSecretKey, nil)

	return NewClientWithSessions(cfg, api.CheckoutSessions)
}

func NewClientWithSessions(cfg *config.Config, sessions SessionCreator) *Client {
	return &Client{
		sessions:      sessions,
		webhookSecret: cfg.StripeWebhookSecret,
		successURL:    cfg.CheckoutSuccessURL,
		cancelURL:     cfg.CheckoutCancelURL,
	}
}

// MinorUnits converts a 2-decimal price to the currency's minor unit,
// rounding halves up: 19.995 becomes 2000.
func MinorUnits(price decimal.Decimal) int64 {
	return price.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// CreateCheckoutSession builds a hosted payment page for a pending order.
// The order id travels in the session metadata and is how the webhook finds
// its way back to the order.
func (c *Client) CreateCheckoutSession(order *models.Order) (*stripe.CheckoutSession, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(order.Items))
	for _, item := range order.Items {
		amount := MinorUnits(item.UnitPrice)
		if amount <= 0 || item.Quantity <= 0 {
			return nil, fmt.Errorf("line %q: %w", item.Title, ErrInvalidAmount)
		}

		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(strings.ToLower(order.Currency)),
				UnitAmount: stripe.Int64(amount),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Title),
				},
			},
			Quantity: stripe.Int64(int64(item.Quantity)),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  lineItems,
		SuccessURL: stripe.String(c.successURL),
		CancelURL:  stripe.String(c.cancelURL),
	}
	params.AddMetadata("order_id", order.ID.String())

	return c.sessions.New(params)
}

// VerifyWebhook checks the Stripe-Signature header against the shared
// signing secret and returns the parsed event.
func (c *Client) VerifyWebhook(payload []byte, signatureHeader string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, signatureHeader, c.webhookSecret)
}
