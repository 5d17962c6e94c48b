package models

import "github.com/shopspring/decimal"

// DashboardStats is the derived summary behind the dashboard cards.
// It is recomputed from source on every request and never persisted.
type DashboardStats struct {
	TotalOrders   int64           `json:"totalOrders"`
	TotalProducts int64           `json:"totalProducts"`
	TotalUsers    int64           `json:"totalUsers"`
	TotalBrands   int64           `json:"totalBrands"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
}
