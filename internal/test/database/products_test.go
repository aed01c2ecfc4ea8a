package database_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"art-shop-backend/internal/database"
	"art-shop-backend/internal/models"
)

func newTestClient(t *testing.T) (*database.Client, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return &database.Client{DB: db}, mock
}

func TestCreateProduct_DerivesSlugFromTitle(t *testing.T) {
	client, mock := newTestClient(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO products`)).
		WithArgs("Blå Båt i Solnedgång", "bla-bat-i-solnedgang", "", sqlmock.AnyArg(), 3,
			"", "oil", nil, nil, true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(5), time.Now()))

	product, err := client.CreateProduct(&models.Product{
		Title:     "Blå Båt i Solnedgång",
		Price:     decimal.RequireFromString("1200.00"),
		Stock:     3,
		Technique: "oil",
		IsActive:  true,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(5), product.ID)
	assert.Equal(t, "bla-bat-i-solnedgang", product.Slug)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProduct_KeepsExplicitSlug(t *testing.T) {
	client, mock := newTestClient(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO products`)).
		WithArgs("Sunset", "custom-slug", "", sqlmock.AnyArg(), 1, "", "", nil, nil, true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(6), time.Now()))

	product, err := client.CreateProduct(&models.Product{
		Title:    "Sunset",
		Slug:     "custom-slug",
		Price:    decimal.RequireFromString("100"),
		Stock:    1,
		IsActive: true,
	})

	assert.NoError(t, err)
	assert.Equal(t, "custom-slug", product.Slug)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteProduct_ReferencedByOrderItems(t *testing.T) {
	client, mock := newTestClient(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM products WHERE id = $1`)).
		WithArgs(int64(3)).
		WillReturnError(&pq.Error{Code: "23503"})

	err := client.DeleteProduct(3)
	assert.ErrorIs(t, err, database.ErrProductInUse)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteProduct_NotFound(t *testing.T) {
	client, mock := newTestClient(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM products WHERE id = $1`)).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := client.DeleteProduct(404)
	assert.ErrorIs(t, err, database.ErrProductNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
