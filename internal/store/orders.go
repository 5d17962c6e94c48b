package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/shopora/shopora-admin-golang/internal/models"
)

const orderColumns = `o.id, o.customer_id, o.status, o.is_paid, o.total_amount, o.created_at, o.updated_at,
		u.id, u.name, u.email, u.password_hash, u.role, u.is_active, u.phone, u.avatar, u.created_at, u.updated_at`

// scanOrderRows reads joined order+customer rows. The customer is always
// attached; line items are filled in by attachItems afterwards.
func scanOrderRows(rows *sql.Rows) ([]*models.Order, error) {
	var orders []*models.Order
	for rows.Next() {
		var order models.Order
		var customer models.User
		if err := rows.Scan(
			&order.ID,
			&order.CustomerID,
			&order.Status,
			&order.IsPaid,
			&order.TotalAmount,
			&order.CreatedAt,
			&order.UpdatedAt,
			&customer.ID,
			&customer.Name,
			&customer.Email,
			&customer.PasswordHash,
			&customer.Role,
			&customer.IsActive,
			&customer.Phone,
			&customer.Avatar,
			&customer.CreatedAt,
			&customer.UpdatedAt,
		); err != nil {
			return nil, err
		}
		order.Customer = &customer
		orders = append(orders, &order)
	}
	return orders, rows.Err()
}

// attachItems loads the line items for a batch of orders in one query,
// with each item's product and that product's brand eagerly attached.
func (s *Store) attachItems(ctx context.Context, orders []*models.Order) error {
	if len(orders) == 0 {
		return nil
	}

	byID := make(map[string]*models.Order, len(orders))
	placeholders := make([]string, 0, len(orders))
	args := make([]interface{}, 0, len(orders))
	for _, order := range orders {
		order.Items = []models.OrderItem{}
		byID[order.ID] = order
		placeholders = append(placeholders, "?")
		args = append(args, order.ID)
	}

	query := `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.unit_price,
		       p.id, p.slug, p.name, p.description, p.price, p.inventory,
		       p.is_active, p.is_featured, p.brand_id, p.category_id, p.total_orders,
		       p.created_at, p.updated_at,
		       b.id, b.name, b.slug, b.is_active, b.is_featured, b.created_at, b.updated_at
		FROM order_items oi
		JOIN products p ON oi.product_id = p.id
		JOIN brands b ON p.brand_id = b.id
		WHERE oi.order_id IN (` + strings.Join(placeholders, ", ") + `)`

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		var product models.Product
		var brand models.Brand
		if err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Quantity,
			&item.UnitPrice,
			&product.ID,
			&product.Slug,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.Inventory,
			&product.IsActive,
			&product.IsFeatured,
			&product.BrandID,
			&product.CategoryID,
			&product.TotalOrders,
			&product.CreatedAt,
			&product.UpdatedAt,
			&brand.ID,
			&brand.Name,
			&brand.Slug,
			&brand.IsActive,
			&brand.IsFeatured,
			&brand.CreatedAt,
			&brand.UpdatedAt,
		); err != nil {
			return err
		}
		product.Brand = &brand
		item.Product = &product
		if order, ok := byID[item.OrderID]; ok {
			order.Items = append(order.Items, item)
		}
	}
	return rows.Err()
}

// GetAllOrders returns every order, newest first, with customer and line
// items (product + brand) attached.
func (s *Store) GetAllOrders(ctx context.Context) ([]*models.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders o
		JOIN users u ON o.customer_id = u.id
		ORDER BY o.created_at DESC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders, err := scanOrderRows(rows)
	if err != nil {
		return nil, err
	}
	if err := s.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrdersByStatus returns orders in a given state, newest first, with the
// same eager shape as GetAllOrders.
func (s *Store) GetOrdersByStatus(ctx context.Context, status models.OrderStatus) ([]*models.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders o
		JOIN users u ON o.customer_id = u.id
		WHERE o.status = ?
		ORDER BY o.created_at DESC`

	rows, err := s.DB.QueryContext(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders, err := scanOrderRows(rows)
	if err != nil {
		return nil, err
	}
	if err := s.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrderByID fetches one order with customer and line items attached.
// Returns (nil, nil) when the order does not exist.
func (s *Store) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders o
		JOIN users u ON o.customer_id = u.id
		WHERE o.id = ?`

	rows, err := s.DB.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders, err := scanOrderRows(rows)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, nil
	}
	if err := s.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders[0], nil
}

// confirmationEffectsApply reports whether a status change is a transition
// into the confirmed state. Only that transition may adjust inventory and
// the total_orders counter; re-confirming must not apply them twice.
func confirmationEffectsApply(prior, next models.OrderStatus) bool {
	return next == models.OrderConfirmed && prior != models.OrderConfirmed
}

// UpdateOrderStatus moves an order to a new state and returns it with the
// usual read shape. Transitioning into confirmed also decrements product
// inventory for its line items, inside the same transaction.
func (s *Store) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// Lock the row and read the prior status so the confirmation effects
	// run exactly once per transition, not once per request.
	var prior models.OrderStatus
	err = tx.QueryRowContext(ctx,
		`SELECT status FROM orders WHERE id = ? FOR UPDATE`, id).Scan(&prior)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE orders SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now(), id)
	if err != nil {
		return nil, err
	}

	if confirmationEffectsApply(prior, status) {
		_, err = tx.ExecContext(ctx, `
			UPDATE products p
			JOIN order_items oi ON oi.product_id = p.id
			SET p.inventory = p.inventory - oi.quantity,
			    p.total_orders = p.total_orders + 1
			WHERE oi.order_id = ?`, id)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return s.GetOrderByID(ctx, id)
}

// CountOrders returns the total number of orders.
func (s *Store) CountOrders(ctx context.Context) (int64, error) {
	var count int64
	err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count)
	return count, err
}

// GetRecentOrders returns at most limit orders, newest first, projected down
// to customer name/email and item product names to keep the feed payload
// small. A limit of zero or less yields an empty slice.
func (s *Store) GetRecentOrders(ctx context.Context, limit int) ([]*models.OrderSummary, error) {
	if limit <= 0 {
		return []*models.OrderSummary{}, nil
	}

	query := `
		SELECT o.id, o.status, o.is_paid, o.total_amount, o.created_at, u.name, u.email
		FROM orders o
		JOIN users u ON o.customer_id = u.id
		ORDER BY o.created_at DESC
		LIMIT ?`

	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []*models.OrderSummary{}
	byID := make(map[string]*models.OrderSummary)
	for rows.Next() {
		var summary models.OrderSummary
		if err := rows.Scan(
			&summary.ID,
			&summary.Status,
			&summary.IsPaid,
			&summary.TotalAmount,
			&summary.CreatedAt,
			&summary.CustomerName,
			&summary.CustomerEmail,
		); err != nil {
			return nil, err
		}
		summary.Items = []models.OrderItemSummary{}
		summaries = append(summaries, &summary)
		byID[summary.ID] = &summary
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(summaries) == 0 {
		return summaries, nil
	}

	placeholders := make([]string, 0, len(summaries))
	args := make([]interface{}, 0, len(summaries))
	for _, summary := range summaries {
		placeholders = append(placeholders, "?")
		args = append(args, summary.ID)
	}

	itemQuery := `
		SELECT oi.order_id, oi.quantity, p.name
		FROM order_items oi
		JOIN products p ON oi.product_id = p.id
		WHERE oi.order_id IN (` + strings.Join(placeholders, ", ") + `)`

	itemRows, err := s.DB.QueryContext(ctx, itemQuery, args...)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var orderID string
		var item models.OrderItemSummary
		if err := itemRows.Scan(&orderID, &item.Quantity, &item.ProductName); err != nil {
			return nil, err
		}
		if summary, ok := byID[orderID]; ok {
			summary.Items = append(summary.Items, item)
		}
	}
	return summaries, itemRows.Err()
}
