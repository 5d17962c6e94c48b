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

func TestDashboardPage_RedirectsWithoutSession(t *testing.T) {
	router := newTestRouter(t, &fakeStore{})

	rec := getPath(router, "/dashboard")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/auth/login", rec.Header().Get("Location"))
}

func TestDashboardPage_RendersWithSession(t *testing.T) {
	st := &fakeStore{
		getUserByID: func(ctx context.Context, id string) (*models.User, error) {
			return &models.User{
				ID:       id,
				Name:     "Admin User",
				Email:    "admin@example.com",
				Role:     models.RoleAdmin,
				IsActive: true,
			}, nil
		},
	}
	router := newTestRouter(t, st)

	token, err := auth.GenerateToken("user-1", models.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: token})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Admin User")
}

func TestDashboardPage_StaleSessionRedirects(t *testing.T) {
	// Valid token but the account is gone: treat as signed out.
	router := newTestRouter(t, &fakeStore{})

	token, err := auth.GenerateToken("ghost", models.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: token})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/auth/login", rec.Header().Get("Location"))
}

func TestLoginPage_RedirectsWithSession(t *testing.T) {
	router := newTestRouter(t, &fakeStore{})

	token, err := auth.GenerateToken("user-1", models.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/auth/login", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: token})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

func TestLoginPage_RendersWithoutSession(t *testing.T) {
	router := newTestRouter(t, &fakeStore{})

	rec := getPath(router, "/auth/login")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sign in")
}
