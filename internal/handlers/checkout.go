package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"art-shop-backend/internal/database"
	"art-shop-backend/internal/models"
	"art-shop-backend/internal/payments"
)

type CheckoutHandler struct {
	dbClient       *database.Client
	paymentsClient *payments.Client
}

func NewCheckoutHandler(dbClient *database.Client, paymentsClient *payments.Client) *CheckoutHandler {
	return &CheckoutHandler{
		dbClient:       dbClient,
		paymentsClient: paymentsClient,
	}
}

// CreateSession godoc
// @Summary     Create a Stripe checkout session
// @Description Converts a pending order's line items into a hosted payment page and returns the redirect URL. The order must be pending and non-empty.
// @Tags        checkout
// @Accept      json
// @Produce     json
// @Param       request body models.CreateCheckoutSessionRequest true "Order reference"
// @Success     200 {object} models.CheckoutSessionResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /checkout/create-session [post]
func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	var req models.CreateCheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid order id"})
		return
	}

	order, err := h.dbClient.GetOrder(orderID)
	if errors.Is(err, database.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "order not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to get order",
			Message: err.Error(),
		})
		return
	}

	if order.Status != models.OrderStatusPending {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "order is not pending",
			Message: "order status is " + order.Status,
		})
		return
	}
	if len(order.Items) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "order has no items"})
		return
	}

	session, err := h.paymentsClient.CreateCheckoutSession(order)
	if err != nil {
		if errors.Is(err, payments.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid line item",
				Message: err.Error(),
			})
			return
		}
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "payment provider rejected the request",
				Message: stripeErr.Msg,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to create checkout session"})
		return
	}

	if err := h.dbClient.SetOrderSessionID(order.ID, session.ID); err != nil {
		log.Printf("Warning: failed to record session %s on order %s: %v", session.ID, order.ID, err)
	}

	c.JSON(http.StatusOK, models.CheckoutSessionResponse{
		ID:  session.ID,
		URL: session.URL,
	})
}
