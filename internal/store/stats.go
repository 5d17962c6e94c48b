package store

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/shopora/shopora-admin-golang/internal/models"
)

// CountUsers returns the number of accounts.
func (s *Store) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}

// TotalRevenue sums total_amount over paid orders as an exact decimal.
// COALESCE keeps it 0 instead of NULL when there are no paid orders yet.
func (s *Store) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var revenue decimal.Decimal
	err := s.DB.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE is_paid = TRUE`,
	).Scan(&revenue)
	return revenue, err
}

// GetDashboardStats recomputes the dashboard summary from source. The five
// aggregates are independent, so they are dispatched concurrently and merged
// once all complete.
func (s *Store) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.CountOrders(ctx)
		stats.TotalOrders = n
		return err
	})
	g.Go(func() error {
		n, err := s.CountProducts(ctx)
		stats.TotalProducts = n
		return err
	})
	g.Go(func() error {
		n, err := s.CountUsers(ctx)
		stats.TotalUsers = n
		return err
	})
	g.Go(func() error {
		n, err := s.CountBrands(ctx)
		stats.TotalBrands = n
		return err
	})
	g.Go(func() error {
		revenue, err := s.TotalRevenue(ctx)
		stats.TotalRevenue = revenue
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}
