package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopora/shopora-admin-golang/internal/models"
	"github.com/shopora/shopora-admin-golang/internal/store"
)

// GetBrands is the handler for GET /api/v1/brands.
func (h *Handlers) GetBrands(c *gin.Context) {
	brands, err := h.Store.GetAllBrands(c.Request.Context())
	if err != nil {
		h.respondInternal(c, err)
		return
	}
	if brands == nil {
		brands = []*models.Brand{}
	}
	respondOK(c, http.StatusOK, brands, "")
}

// CreateBrandInput defines the JSON input for creating a brand.
type CreateBrandInput struct {
	Name       string `json:"name" binding:"required"`
	IsActive   *bool  `json:"isActive"`
	IsFeatured bool   `json:"isFeatured"`
}

// CreateBrand is the handler for POST /api/v1/admin/brands.
func (h *Handlers) CreateBrand(c *gin.Context) {
	var input CreateBrandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidation(c, err)
		return
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	brand := &models.Brand{
		Name:       input.Name,
		IsActive:   isActive,
		IsFeatured: input.IsFeatured,
	}

	created, err := h.Store.CreateBrand(c.Request.Context(), brand)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateSlug) {
			respondError(c, http.StatusBadRequest, "Brand already exists")
			return
		}
		h.respondInternal(c, err)
		return
	}

	respondOK(c, http.StatusCreated, created, "Brand created successfully")
}
