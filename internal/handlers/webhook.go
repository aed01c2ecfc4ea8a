package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"art-shop-backend/internal/database"
	"art-shop-backend/internal/models"
	"art-shop-backend/internal/payments"
)

type WebhookHandler struct {
	dbClient       *database.Client
	paymentsClient *payments.Client
}

func NewWebhookHandler(dbClient *database.Client, paymentsClient *payments.Client) *WebhookHandler {
	return &WebhookHandler{
		dbClient:       dbClient,
		paymentsClient: paymentsClient,
	}
}

// paymentObject is the slice of a checkout session or payment intent the
// webhook needs: the provider reference and the order correlation metadata.
type paymentObject struct {
	ID       string            `json:"id"`
	Metadata map[string]string `json:"metadata"`
}

// HandleWebhook godoc
// @Summary     Stripe webhook endpoint
// @Description Receives Stripe events, verifies the Stripe-Signature header and marks orders paid on successful payments. Unknown orders are acked with 200 so Stripe stops retrying.
// @Tags        webhooks
// @Accept      json
// @Produce     json
// @Param       Stripe-Signature header string true "Stripe signature header"
// @Success     200 {object} map[string]string "status"
// @Failure     400 {object} models.ErrorResponse
// @Router      /webhooks/stripe [post]
func (h *WebhookHandler) HandleWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to read request body",
			Message: err.Error(),
		})
		return
	}

	event, err := h.paymentsClient.VerifyWebhook(body, c.GetHeader("Stripe-Signature"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid webhook signature",
			Message: err.Error(),
		})
		return
	}

	switch string(event.Type) {
	case "checkout.session.completed", "payment_intent.succeeded":
		var object paymentObject
		if err := json.Unmarshal(event.Data.Raw, &object); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "failed to parse event object",
				Message: err.Error(),
			})
			return
		}

		orderIDStr := object.Metadata["order_id"]
		if orderIDStr == "" {
			orderIDStr = object.Metadata["order"]
		}
		if orderIDStr == "" {
			// Not our session. Ack so Stripe stops retrying.
			break
		}

		orderID, err := uuid.Parse(orderIDStr)
		if err != nil {
			log.Printf("Webhook %s carries unparseable order id %q", event.ID, orderIDStr)
			break
		}

		if err := h.dbClient.MarkOrderPaid(orderID, object.ID); err != nil {
			log.Printf("Failed to mark order %s paid: %v", orderID, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
