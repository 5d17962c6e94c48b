package handlers

import (
	"context"

	"go.uber.org/zap"

	"github.com/shopora/shopora-admin-golang/internal/models"
)

// Store is the data access capability the handlers compose. Implemented by
// *store.Store; tests substitute a fake.
type Store interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUsersByRole(ctx context.Context, role models.Role) ([]*models.User, error)

	GetAllOrders(ctx context.Context) ([]*models.Order, error)
	GetOrdersByStatus(ctx context.Context, status models.OrderStatus) ([]*models.Order, error)
	GetOrderByID(ctx context.Context, id string) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error)
	GetRecentOrders(ctx context.Context, limit int) ([]*models.OrderSummary, error)
	CountOrders(ctx context.Context) (int64, error)

	GetAllProducts(ctx context.Context) ([]*models.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetFeaturedProducts(ctx context.Context) ([]*models.Product, error)
	SearchProducts(ctx context.Context, term string) ([]*models.Product, error)
	GetTopSellingProducts(ctx context.Context, limit int) ([]*models.Product, error)
	GetLowStockProducts(ctx context.Context, threshold int) ([]*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error)

	GetAllBrands(ctx context.Context) ([]*models.Brand, error)
	CreateBrand(ctx context.Context, brand *models.Brand) (*models.Brand, error)

	GetCategoryTree(ctx context.Context) ([]*models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error)

	GetReviewsByProduct(ctx context.Context, productID string) ([]*models.Review, error)

	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

// Handlers holds all dependencies for the HTTP handlers.
type Handlers struct {
	Store Store
	Log   *zap.Logger
}
