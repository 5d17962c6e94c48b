package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTopSellingProducts_NonPositiveLimit(t *testing.T) {
	// The guard returns before any query; a nil DB proves it.
	s := New(nil)

	for _, limit := range []int{0, -1} {
		products, err := s.GetTopSellingProducts(context.Background(), limit)
		require.NoError(t, err)
		assert.NotNil(t, products)
		assert.Empty(t, products)
	}
}
