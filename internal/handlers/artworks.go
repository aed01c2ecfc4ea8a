package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"art-shop-backend/internal/database"
	"art-shop-backend/internal/models"
)

type ArtworksHandler struct {
	dbClient *database.Client
}

func NewArtworksHandler(dbClient *database.Client) *ArtworksHandler {
	return &ArtworksHandler{
		dbClient: dbClient,
	}
}

// ListArtworks godoc
// @Summary     List artworks
// @Description Lists all artworks, no filtering
// @Tags        artworks
// @Produce     json
// @Success     200 {object} models.ArtworkListResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /artworks [get]
func (h *ArtworksHandler) ListArtworks(c *gin.Context) {
	artworks, err := h.dbClient.ListArtworks()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list artworks",
			Message: err.Error(),
		})
		return
	}

	if artworks == nil {
		artworks = []models.Artwork{}
	}
	c.JSON(http.StatusOK, models.ArtworkListResponse{
		Artworks: artworks,
		Count:    len(artworks),
	})
}

// CreateArtwork godoc
// @Summary     Create an artwork
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.CreateArtworkRequest true "Artwork"
// @Success     201 {object} models.Artwork
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/artworks [post]
func (h *ArtworksHandler) CreateArtwork(c *gin.Context) {
	var req models.CreateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	artwork, err := h.dbClient.CreateArtwork(&models.Artwork{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create artwork",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, artwork)
}
