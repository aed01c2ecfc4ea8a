package database

import (
	"fmt"

	"art-shop-backend/internal/models"
)

func (c *Client) ListArtworks() ([]models.Artwork, error) {
	rows, err := c.DB.Query(`
		SELECT id, title, description, price, image, created_at
		FROM artworks
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list artworks: %w", err)
	}
	defer rows.Close()

	var artworks []models.Artwork
	for rows.Next() {
		var a models.Artwork
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.Price, &a.Image, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan artwork: %w", err)
		}
		artworks = append(artworks, a)
	}

	return artworks, rows.Err()
}

func (c *Client) CreateArtwork(a *models.Artwork) (*models.Artwork, error) {
	err := c.DB.QueryRow(`
		INSERT INTO artworks (title, description, price, image)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, a.Title, a.Description, a.Price, a.Image).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create artwork: %w", err)
	}

	return a, nil
}
