package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/shopora/shopora-admin-golang/internal/models"
)

// Default limits mirroring the dashboard cards.
const (
	defaultTopSellingLimit  = 10
	defaultRecentOrderLimit = 5
)

// DashboardStatsResponse is the shape the dashboard cards consume. The
// top-selling count is the length of the default top-selling list, which is
// capped at defaultTopSellingLimit.
type DashboardStatsResponse struct {
	TotalOrders             int64           `json:"totalOrders"`
	TopSellingProductsCount int             `json:"topSellingProductsCount"`
	TotalRevenue            decimal.Decimal `json:"totalRevenue"`
}

// GetDashboardStats is the handler for GET /api/v1/dashboard/stats.
// The three reads are independent, so they run concurrently.
func (h *Handlers) GetDashboardStats(c *gin.Context) {
	var (
		totalOrders int64
		topSelling  []*models.Product
		stats       *models.DashboardStats
	)

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		totalOrders, err = h.Store.CountOrders(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		topSelling, err = h.Store.GetTopSellingProducts(ctx, defaultTopSellingLimit)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = h.Store.GetDashboardStats(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		h.respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, DashboardStatsResponse{
		TotalOrders:             totalOrders,
		TopSellingProductsCount: len(topSelling),
		TotalRevenue:            stats.TotalRevenue,
	})
}

// GetRecentOrders is the handler for GET /api/v1/dashboard/recent-orders.
// 'limit' arrives as a string-encoded integer and defaults to "5".
func (h *Handlers) GetRecentOrders(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", strconv.Itoa(defaultRecentOrderLimit))
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, Envelope{
			Success: false,
			Error:   "Validation failed",
			Errors:  map[string]string{"limit": "limit must be an integer"},
			Status:  http.StatusBadRequest,
		})
		return
	}

	orders, err := h.Store.GetRecentOrders(c.Request.Context(), limit)
	if err != nil {
		h.respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}
