package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"art-shop-backend/internal/models"
)

// CreateOrder persists an order and one snapshot item per input line inside a
// single transaction, so a bad product id leaves nothing behind. Quantities
// are clamped to the product's current stock rather than rejected; stock
// itself is not decremented here.
func (c *Client) CreateOrder(email, currency string, items []models.OrderItemInput) (*models.Order, error) {
	tx, err := c.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	order := &models.Order{
		ID:       uuid.New(),
		Email:    email,
		Status:   models.OrderStatusPending,
		Currency: currency,
	}

	err = tx.QueryRow(`
		INSERT INTO orders (id, email, status, subtotal, total, currency)
		VALUES ($1, $2, $3, 0, 0, $4)
		RETURNING created_at
	`, order.ID, order.Email, order.Status, order.Currency).Scan(&order.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	subtotal := decimal.Zero
	for _, input := range items {
		var (
			title string
			price decimal.Decimal
			stock int
		)
		err := tx.QueryRow(`
			SELECT title, price, stock
			FROM products
			WHERE id = $1 AND is_active = TRUE
		`, input.ProductID).Scan(&title, &price, &stock)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("product %d: %w", input.ProductID, ErrProductNotFound)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load product %d: %w", input.ProductID, err)
		}

		quantity := input.Quantity
		if quantity > stock {
			quantity = stock
		}

		item := models.OrderItem{
			OrderID:   order.ID,
			ProductID: input.ProductID,
			Title:     title,
			UnitPrice: price,
			Quantity:  quantity,
		}
		err = tx.QueryRow(`
			INSERT INTO order_items (order_id, product_id, title, unit_price, quantity)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, item.OrderID, item.ProductID, item.Title, item.UnitPrice, item.Quantity).Scan(&item.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to create order item: %w", err)
		}

		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(quantity))))
		order.Items = append(order.Items, item)
	}

	order.Subtotal = subtotal
	order.Total = subtotal
	_, err = tx.Exec(`
		UPDATE orders
		SET subtotal = $1, total = $2
		WHERE id = $3
	`, order.Subtotal, order.Total, order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update order totals: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}

	return order, nil
}

func (c *Client) GetOrder(orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := c.DB.QueryRow(`
		SELECT id, email, status, subtotal, total, currency, stripe_session_id, created_at
		FROM orders
		WHERE id = $1
	`, orderID).Scan(
		&order.ID, &order.Email, &order.Status, &order.Subtotal,
		&order.Total, &order.Currency, &order.StripeSessionID, &order.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	rows, err := c.DB.Query(`
		SELECT id, order_id, product_id, title, unit_price, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Title, &item.UnitPrice, &item.Quantity)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		order.Items = append(order.Items, item)
	}

	return &order, rows.Err()
}

func (c *Client) SetOrderSessionID(orderID uuid.UUID, sessionID string) error {
	_, err := c.DB.Exec(`
		UPDATE orders
		SET stripe_session_id = $1
		WHERE id = $2
	`, sessionID, orderID)
	return err
}

// MarkOrderPaid sets the status unconditionally; concurrent webhook
// deliveries for the same order all converge on "paid". An unknown order id
// is not an error so the webhook can ack and move on.
func (c *Client) MarkOrderPaid(orderID uuid.UUID, providerRef string) error {
	_, err := c.DB.Exec(`
		UPDATE orders
		SET status = $1, stripe_session_id = $2
		WHERE id = $3
	`, models.OrderStatusPaid, providerRef, orderID)
	return err
}
