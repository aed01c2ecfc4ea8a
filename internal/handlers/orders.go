package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"art-shop-backend/internal/database"
	"art-shop-backend/internal/models"
)

type OrdersHandler struct {
	dbClient *database.Client
	currency string
}

func NewOrdersHandler(dbClient *database.Client, currency string) *OrdersHandler {
	return &OrdersHandler{
		dbClient: dbClient,
		currency: currency,
	}
}

// CreateOrder godoc
// @Summary     Create an order
// @Description Creates a pending order from a cart. Every product must exist and be active or the whole request fails; quantities above stock are clamped to stock.
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       request body models.CreateOrderRequest true "Cart"
// @Success     201 {object} models.OrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /orders [post]
func (h *OrdersHandler) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	order, err := h.dbClient.CreateOrder(req.Email, h.currency, req.Items)
	if errors.Is(err, database.ErrProductNotFound) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid order item",
			Message: err.Error(),
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create order",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, orderResponse(order))
}

// GetOrder godoc
// @Summary     Get an order
// @Tags        orders
// @Produce     json
// @Param       id path string true "Order id (UUID)"
// @Success     200 {object} models.OrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /orders/{id} [get]
func (h *OrdersHandler) GetOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
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

	c.JSON(http.StatusOK, orderResponse(order))
}

func orderResponse(order *models.Order) models.OrderResponse {
	items := make([]models.OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = models.OrderItemResponse{
			Title:     item.Title,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		}
	}

	return models.OrderResponse{
		ID:        order.ID.String(),
		Email:     order.Email,
		Status:    order.Status,
		Subtotal:  order.Subtotal,
		Total:     order.Total,
		Currency:  order.Currency,
		CreatedAt: order.CreatedAt,
		Items:     items,
	}
}
