package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopora/shopora-admin-golang/internal/models"
)

// GetOrders is the handler for GET /api/v1/admin/orders.
// An optional ?status= filter narrows the list to one lifecycle state.
func (h *Handlers) GetOrders(c *gin.Context) {
	statusStr := c.Query("status")

	var (
		orders []*models.Order
		err    error
	)
	if statusStr == "" {
		orders, err = h.Store.GetAllOrders(c.Request.Context())
	} else {
		status, parseErr := models.ParseOrderStatus(statusStr)
		if parseErr != nil {
			respondError(c, http.StatusBadRequest, "Invalid order status")
			return
		}
		orders, err = h.Store.GetOrdersByStatus(c.Request.Context(), status)
	}
	if err != nil {
		h.respondInternal(c, err)
		return
	}
	if orders == nil {
		orders = []*models.Order{}
	}

	respondOK(c, http.StatusOK, orders, "")
}

// GetOrder is the handler for GET /api/v1/admin/orders/:id.
func (h *Handlers) GetOrder(c *gin.Context) {
	order, err := h.Store.GetOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondInternal(c, err)
		return
	}
	if order == nil {
		respondError(c, http.StatusNotFound, "Order not found")
		return
	}

	respondOK(c, http.StatusOK, order, "")
}

// UpdateOrderStatusInput defines the JSON input for a status change.
type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed processing shipped delivered cancelled refunded processed"`
}

// UpdateOrderStatus is the handler for PATCH /api/v1/admin/orders/:id/status.
func (h *Handlers) UpdateOrderStatus(c *gin.Context) {
	var input UpdateOrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidation(c, err)
		return
	}

	status, err := models.ParseOrderStatus(input.Status)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid order status")
		return
	}

	order, err := h.Store.UpdateOrderStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		h.respondInternal(c, err)
		return
	}
	if order == nil {
		respondError(c, http.StatusNotFound, "Order not found")
		return
	}

	respondOK(c, http.StatusOK, order, "Order status updated")
}
