package database_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"art-shop-backend/internal/database"
)

func TestGetOrder_LoadsItems(t *testing.T) {
	client, mock := newTestClient(t)

	orderID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, email, status, subtotal, total, currency, stripe_session_id, created_at
		FROM orders
		WHERE id = $1
	`)).
		WithArgs(orderID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "status", "subtotal", "total", "currency", "stripe_session_id", "created_at"}).
			AddRow(orderID.String(), "anna@example.com", "pending", "249.50", "249.50", "SEK", "", time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, order_id, product_id, title, unit_price, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`)).
		WithArgs(orderID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "product_id", "title", "unit_price", "quantity"}).
			AddRow(int64(1), orderID.String(), int64(3), "Sunset", "100.00", 2).
			AddRow(int64(2), orderID.String(), int64(4), "Harbor", "49.50", 1))

	order, err := client.GetOrder(orderID)
	assert.NoError(t, err)
	assert.Equal(t, "pending", order.Status)
	assert.True(t, order.Subtotal.Equal(decimal.RequireFromString("249.50")))
	assert.Len(t, order.Items, 2)
	assert.Equal(t, int64(3), order.Items[0].ProductID)
	assert.True(t, order.Items[0].UnitPrice.Equal(decimal.RequireFromString("100")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOrder_NotFound(t *testing.T) {
	client, mock := newTestClient(t)

	orderID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM orders`)).
		WithArgs(orderID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := client.GetOrder(orderID)
	assert.ErrorIs(t, err, database.ErrOrderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkOrderPaid_UnknownOrderIsNotAnError(t *testing.T) {
	client, mock := newTestClient(t)

	orderID := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE orders
		SET status = $1, stripe_session_id = $2
		WHERE id = $3
	`)).
		WithArgs("paid", "cs_unknown", orderID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := client.MarkOrderPaid(orderID, "cs_unknown")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
