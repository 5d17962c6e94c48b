package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopora/shopora-admin-golang/internal/models"
)

func TestConfirmationEffectsApply(t *testing.T) {
	tests := []struct {
		name  string
		prior models.OrderStatus
		next  models.OrderStatus
		want  bool
	}{
		{"pending to confirmed", models.OrderPending, models.OrderConfirmed, true},
		{"processing to confirmed", models.OrderProcessing, models.OrderConfirmed, true},
		{"re-confirming", models.OrderConfirmed, models.OrderConfirmed, false},
		{"confirmed to shipped", models.OrderConfirmed, models.OrderShipped, false},
		{"pending to cancelled", models.OrderPending, models.OrderCancelled, false},
		{"pending to shipped", models.OrderPending, models.OrderShipped, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, confirmationEffectsApply(tc.prior, tc.next))
		})
	}
}

func TestGetRecentOrders_NonPositiveLimit(t *testing.T) {
	// The guard returns before any query; a nil DB proves it.
	s := New(nil)

	for _, limit := range []int{0, -3} {
		summaries, err := s.GetRecentOrders(context.Background(), limit)
		require.NoError(t, err)
		assert.NotNil(t, summaries)
		assert.Empty(t, summaries)
	}
}
