package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopora/shopora-admin-golang/internal/models"
	"github.com/shopora/shopora-admin-golang/internal/store"
)

// GetCategories is the handler for GET /api/v1/categories.
// Returns the category hierarchy: roots with nested children.
func (h *Handlers) GetCategories(c *gin.Context) {
	tree, err := h.Store.GetCategoryTree(c.Request.Context())
	if err != nil {
		h.respondInternal(c, err)
		return
	}
	if tree == nil {
		tree = []*models.Category{}
	}
	respondOK(c, http.StatusOK, tree, "")
}

// CreateCategoryInput defines the JSON input for creating a category.
type CreateCategoryInput struct {
	Name      string  `json:"name" binding:"required"`
	ParentID  *string `json:"parentId"`
	SortOrder int     `json:"sortOrder"`
}

// CreateCategory is the handler for POST /api/v1/admin/categories.
func (h *Handlers) CreateCategory(c *gin.Context) {
	var input CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidation(c, err)
		return
	}

	category := &models.Category{
		Name:      input.Name,
		ParentID:  input.ParentID,
		SortOrder: input.SortOrder,
	}

	created, err := h.Store.CreateCategory(c.Request.Context(), category)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateSlug) {
			respondError(c, http.StatusBadRequest, "Category already exists")
			return
		}
		h.respondInternal(c, err)
		return
	}

	respondOK(c, http.StatusCreated, created, "Category created successfully")
}
