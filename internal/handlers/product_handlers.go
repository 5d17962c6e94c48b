package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/shopora/shopora-admin-golang/internal/models"
	"github.com/shopora/shopora-admin-golang/internal/store"
)

// GetProducts is the handler for GET /api/v1/products.
func (h *Handlers) GetProducts(c *gin.Context) {
	products, err := h.Store.GetAllProducts(c.Request.Context())
	if err != nil {
		h.respondInternal(c, err)
		return
	}
	if products == nil {
		products = []*models.Product{}
	}
	respondOK(c, http.StatusOK, products, "")
}

// GetFeaturedProducts is the handler for GET /api/v1/products/featured.
func (h *Handlers) GetFeaturedProducts(c *gin.Context) {
	products, err := h.Store.GetFeaturedProducts(c.Request.Context())
	if err != nil {
		h.respondInternal(c, err)
		return
	}
	if products == nil {
		products = []*models.Product{}
	}
	respondOK(c, http.StatusOK, products, "")
}

// SearchProducts is the handler for GET /api/v1/products/search?q=.
func (h *Handlers) SearchProducts(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		respondError(c, http.StatusBadRequest, "Missing search term")
		return
	}

	products, err := h.Store.SearchProducts(c.Request.Context(), term)
	if err != nil {
		h.respondInternal(c, err)
		return
	}
	if products == nil {
		products = []*models.Product{}
	}
	respondOK(c, http.StatusOK, products, "")
}

// GetTopSellingProducts is the handler for GET /api/v1/products/top-selling.
func (h *Handlers) GetTopSellingProducts(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", strconv.Itoa(defaultTopSellingLimit))
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		respondError(c, http.StatusBadRequest, "limit must be an integer")
		return
	}

	products, err := h.Store.GetTopSellingProducts(c.Request.Context(), limit)
	if err != nil {
		h.respondInternal(c, err)
		return
	}
	respondOK(c, http.StatusOK, products, "")
}

// GetProductBySlug is the handler for GET /api/v1/products/slug/:slug.
func (h *Handlers) GetProductBySlug(c *gin.Context) {
	product, err := h.Store.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondInternal(c, err)
		return
	}
	if product == nil {
		respondError(c, http.StatusNotFound, "Product not found")
		return
	}
	respondOK(c, http.StatusOK, product, "")
}

// GetProductReviews is the handler for GET /api/v1/products/slug/:slug/reviews.
// Only approved reviews are returned.
func (h *Handlers) GetProductReviews(c *gin.Context) {
	product, err := h.Store.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondInternal(c, err)
		return
	}
	if product == nil {
		respondError(c, http.StatusNotFound, "Product not found")
		return
	}

	reviews, err := h.Store.GetReviewsByProduct(c.Request.Context(), product.ID)
	if err != nil {
		h.respondInternal(c, err)
		return
	}
	respondOK(c, http.StatusOK, reviews, "")
}

// GetLowStockProducts is the handler for GET /api/v1/admin/products/low-stock.
func (h *Handlers) GetLowStockProducts(c *gin.Context) {
	thresholdStr := c.DefaultQuery("threshold", "10")
	threshold, err := strconv.Atoi(thresholdStr)
	if err != nil {
		respondError(c, http.StatusBadRequest, "threshold must be an integer")
		return
	}

	products, err := h.Store.GetLowStockProducts(c.Request.Context(), threshold)
	if err != nil {
		h.respondInternal(c, err)
		return
	}
	if products == nil {
		products = []*models.Product{}
	}
	respondOK(c, http.StatusOK, products, "")
}

// CreateProductInput defines the JSON input for creating a product.
type CreateProductInput struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Inventory   int             `json:"inventory"`
	IsActive    *bool           `json:"isActive"`
	IsFeatured  bool            `json:"isFeatured"`
	BrandID     string          `json:"brandId" binding:"required"`
	CategoryID  string          `json:"categoryId" binding:"required"`
}

// CreateProduct is the handler for POST /api/v1/admin/products.
func (h *Handlers) CreateProduct(c *gin.Context) {
	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidation(c, err)
		return
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	product := &models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Inventory:   input.Inventory,
		IsActive:    isActive,
		IsFeatured:  input.IsFeatured,
		BrandID:     input.BrandID,
		CategoryID:  input.CategoryID,
	}

	created, err := h.Store.CreateProduct(c.Request.Context(), product)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateSlug) {
			respondError(c, http.StatusBadRequest, "Product already exists")
			return
		}
		h.respondInternal(c, err)
		return
	}

	respondOK(c, http.StatusCreated, created, "Product created successfully")
}
