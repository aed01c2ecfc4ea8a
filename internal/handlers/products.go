package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"art-shop-backend/internal/database"
	"art-shop-backend/internal/models"
)

type ProductsHandler struct {
	dbClient *database.Client
}

func NewProductsHandler(dbClient *database.Client) *ProductsHandler {
	return &ProductsHandler{
		dbClient: dbClient,
	}
}

// ListProducts godoc
// @Summary     List active products
// @Description Lists active products, newest first. Supports free-text search on title/description/technique and ordering by price or created_at.
// @Tags        products
// @Produce     json
// @Param       search query string false "Free-text filter"
// @Param       ordering query string false "One of price, -price, created_at, -created_at"
// @Success     200 {object} models.ProductListResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /products [get]
func (h *ProductsHandler) ListProducts(c *gin.Context) {
	products, err := h.dbClient.ListProducts(c.Query("search"), c.Query("ordering"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list products",
			Message: err.Error(),
		})
		return
	}

	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, models.ProductListResponse{
		Products: products,
		Count:    len(products),
	})
}

// GetProduct godoc
// @Summary     Get a product
// @Description Returns a single active product by id
// @Tags        products
// @Produce     json
// @Param       id path int true "Product id"
// @Success     200 {object} models.Product
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /products/{id} [get]
func (h *ProductsHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid product id"})
		return
	}

	product, err := h.dbClient.GetProduct(id)
	if errors.Is(err, database.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to get product",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProduct godoc
// @Summary     Create a product
// @Description Creates a catalog product. The slug is derived from the title when omitted.
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.CreateProductRequest true "Product"
// @Success     201 {object} models.Product
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/products [post]
func (h *ProductsHandler) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	product, err := h.dbClient.CreateProduct(productFromRequest(&req))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create product",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct godoc
// @Summary     Update a product
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       id path int true "Product id"
// @Param       request body models.CreateProductRequest true "Product"
// @Success     200 {object} models.Product
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/products/{id} [put]
func (h *ProductsHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid product id"})
		return
	}

	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	product, err := h.dbClient.UpdateProduct(id, productFromRequest(&req))
	if errors.Is(err, database.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to update product",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct godoc
// @Summary     Delete a product
// @Description Deletes a product. Fails with 409 while order items still reference it.
// @Tags        admin
// @Produce     json
// @Security    Bearer
// @Param       id path int true "Product id"
// @Success     204
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Router      /admin/products/{id} [delete]
func (h *ProductsHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid product id"})
		return
	}

	err = h.dbClient.DeleteProduct(id)
	switch {
	case errors.Is(err, database.ErrProductNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "product not found"})
	case errors.Is(err, database.ErrProductInUse):
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: "product is referenced by existing orders"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to delete product",
			Message: err.Error(),
		})
	default:
		c.Status(http.StatusNoContent)
	}
}

func productFromRequest(req *models.CreateProductRequest) *models.Product {
	product := &models.Product{
		Title:        req.Title,
		Slug:         req.Slug,
		Description:  req.Description,
		Price:        req.Price,
		Stock:        req.Stock,
		PrimaryImage: req.PrimaryImage,
		Technique:    req.Technique,
		IsActive:     true,
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.WidthCM != nil {
		product.WidthCM = decimal.NullDecimal{Decimal: *req.WidthCM, Valid: true}
	}
	if req.HeightCM != nil {
		product.HeightCM = decimal.NullDecimal{Decimal: *req.HeightCM, Valid: true}
	}
	return product
}
