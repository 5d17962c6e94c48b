package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the closed set of order lifecycle states.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
	OrderRefunded   OrderStatus = "refunded"
	OrderProcessed  OrderStatus = "processed"
)

// ParseOrderStatus validates a raw status string from a request.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderPending, OrderConfirmed, OrderProcessing, OrderShipped,
		OrderDelivered, OrderCancelled, OrderRefunded, OrderProcessed:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

// Order is the model for the 'orders' table.
// TotalAmount is a DECIMAL column; it must survive round-trips exactly,
// so it is never a float64.
type Order struct {
	ID          string          `json:"id" db:"id"`
	CustomerID  string          `json:"customerId" db:"customer_id"`
	Status      OrderStatus     `json:"status" db:"status"`
	IsPaid      bool            `json:"isPaid" db:"is_paid"`
	TotalAmount decimal.Decimal `json:"totalAmount" db:"total_amount"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time       `json:"updatedAt" db:"updated_at"`

	// Joins (populated by the store, not stored on the row). Items is
	// always initialized by the read path, so an empty order serializes
	// with "items": [] rather than dropping the key.
	Customer *User       `json:"customer,omitempty" db:"-"`
	Items    []OrderItem `json:"items" db:"-"`
}

// OrderItem is the model for the 'order_items' table.
type OrderItem struct {
	ID        string          `json:"id" db:"id"`
	OrderID   string          `json:"orderId" db:"order_id"`
	ProductID string          `json:"productId" db:"product_id"`
	Quantity  int             `json:"quantity" db:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice" db:"unit_price"` // price at time of purchase

	Product *Product `json:"product,omitempty" db:"-"`
}

// OrderSummary is the slimmed-down projection used by the recent-orders
// feed: customer name/email and item product names only, to keep the
// payload small.
type OrderSummary struct {
	ID            string             `json:"id"`
	Status        OrderStatus        `json:"status"`
	IsPaid        bool               `json:"isPaid"`
	TotalAmount   decimal.Decimal    `json:"totalAmount"`
	CreatedAt     time.Time          `json:"createdAt"`
	CustomerName  string             `json:"customerName"`
	CustomerEmail string             `json:"customerEmail"`
	Items         []OrderItemSummary `json:"items"`
}

// OrderItemSummary carries just enough of a line item for the feed.
type OrderItemSummary struct {
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}
