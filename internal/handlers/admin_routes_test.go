package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopora/shopora-admin-golang/internal/auth"
	"github.com/shopora/shopora-admin-golang/internal/models"
)

func getWithToken(router http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAdminRoutes_Unauthenticated(t *testing.T) {
	handlerRan := false
	st := &fakeStore{
		getAllOrders: func(ctx context.Context) ([]*models.Order, error) {
			handlerRan = true
			return nil, nil
		},
	}
	router := newTestRouter(t, st)

	rec := getWithToken(router, "/api/v1/admin/orders", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, handlerRan, "gate must run before the handler")
}

func TestAdminRoutes_VendorDenied(t *testing.T) {
	handlerRan := false
	st := &fakeStore{
		getAllOrders: func(ctx context.Context) ([]*models.Order, error) {
			handlerRan = true
			return nil, nil
		},
	}
	router := newTestRouter(t, st)

	token, err := auth.GenerateToken("vendor-1", models.RoleVendor)
	require.NoError(t, err)

	rec := getWithToken(router, "/api/v1/admin/orders", token)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, handlerRan, "gate must run before the handler")
}

func TestAdminRoutes_AdminAllowed(t *testing.T) {
	st := &fakeStore{
		getAllOrders: func(ctx context.Context) ([]*models.Order, error) {
			return []*models.Order{}, nil
		},
	}
	router := newTestRouter(t, st)

	token, err := auth.GenerateToken("admin-1", models.RoleAdmin)
	require.NoError(t, err)

	rec := getWithToken(router, "/api/v1/admin/orders", token)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminRoutes_OrderStatusFilterValidation(t *testing.T) {
	router := newTestRouter(t, &fakeStore{})

	token, err := auth.GenerateToken("admin-1", models.RoleAdmin)
	require.NoError(t, err)

	rec := getWithToken(router, "/api/v1/admin/orders?status=bogus", token)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPublicRoutes_UnrestrictedAtGate(t *testing.T) {
	st := &fakeStore{
		getAllBrands: func(ctx context.Context) ([]*models.Brand, error) {
			return []*models.Brand{}, nil
		},
	}
	router := newTestRouter(t, st)

	rec := getWithToken(router, "/api/v1/brands", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}
