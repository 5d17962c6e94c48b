package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopora/shopora-admin-golang/internal/models"
)

// GetUsersByRole is the handler for GET /api/v1/admin/users?role=.
func (h *Handlers) GetUsersByRole(c *gin.Context) {
	role, err := models.ParseRole(c.DefaultQuery("role", string(models.RoleCustomer)))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid role")
		return
	}

	users, err := h.Store.GetUsersByRole(c.Request.Context(), role)
	if err != nil {
		h.respondInternal(c, err)
		return
	}
	if users == nil {
		users = []*models.User{}
	}
	respondOK(c, http.StatusOK, users, "")
}
