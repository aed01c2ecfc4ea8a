package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/gosimple/slug"
	"github.com/lib/pq"
	"art-shop-backend/internal/models"
)

const productColumns = "id, title, slug, description, price, stock, primary_image, technique, width_cm, height_cm, is_active, created_at"

// orderings accepted on the product list endpoint. Anything else falls back
// to newest-first.
var productOrderings = map[string]string{
	"price":       "price ASC",
	"-price":      "price DESC",
	"created_at":  "created_at ASC",
	"-created_at": "created_at DESC",
}

func (c *Client) ListProducts(search, ordering string) ([]models.Product, error) {
	orderBy, ok := productOrderings[ordering]
	if !ok {
		orderBy = "created_at DESC"
	}

	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE is_active = TRUE`
	args := []interface{}{}
	if search != "" {
		query += `
		AND (title ILIKE $1 OR description ILIKE $1 OR technique ILIKE $1)`
		args = append(args, "%"+search+"%")
	}
	query += `
		ORDER BY ` + orderBy

	rows, err := c.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := scanProduct(rows.Scan, &p); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (c *Client) GetProduct(id int64) (*models.Product, error) {
	var p models.Product
	err := scanProduct(c.DB.QueryRow(`
		SELECT `+productColumns+`
		FROM products
		WHERE id = $1 AND is_active = TRUE
	`, id).Scan, &p)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &p, nil
}

// CreateProduct derives the slug from the title when none is given, the same
// rule the catalog has always applied on save.
func (c *Client) CreateProduct(p *models.Product) (*models.Product, error) {
	if p.Slug == "" {
		p.Slug = slug.Make(p.Title)
	}

	err := c.DB.QueryRow(`
		INSERT INTO products (title, slug, description, price, stock, primary_image, technique, width_cm, height_cm, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`, p.Title, p.Slug, p.Description, p.Price, p.Stock, p.PrimaryImage,
		p.Technique, p.WidthCM, p.HeightCM, p.IsActive).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return p, nil
}

func (c *Client) UpdateProduct(id int64, p *models.Product) (*models.Product, error) {
	if p.Slug == "" {
		p.Slug = slug.Make(p.Title)
	}

	p.ID = id
	err := c.DB.QueryRow(`
		UPDATE products
		SET title = $1, slug = $2, description = $3, price = $4, stock = $5,
		    primary_image = $6, technique = $7, width_cm = $8, height_cm = $9, is_active = $10
		WHERE id = $11
		RETURNING created_at
	`, p.Title, p.Slug, p.Description, p.Price, p.Stock, p.PrimaryImage,
		p.Technique, p.WidthCM, p.HeightCM, p.IsActive, id).Scan(&p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return p, nil
}

// DeleteProduct refuses to remove a product that order items still reference;
// the foreign key is ON DELETE RESTRICT and surfaces here as ErrProductInUse.
func (c *Client) DeleteProduct(id int64) error {
	res, err := c.DB.Exec(`DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return ErrProductInUse
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}

func scanProduct(scan func(dest ...interface{}) error, p *models.Product) error {
	return scan(
		&p.ID, &p.Title, &p.Slug, &p.Description, &p.Price, &p.Stock,
		&p.PrimaryImage, &p.Technique, &p.WidthCM, &p.HeightCM, &p.IsActive, &p.CreatedAt,
	)
}
