package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopora/shopora-admin-golang/internal/handlers"
	"github.com/shopora/shopora-admin-golang/internal/models"
	"github.com/shopora/shopora-admin-golang/internal/store"
)

func postJSON(router http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateAdmin_Success(t *testing.T) {
	var created *models.User
	st := &fakeStore{
		createUser: func(ctx context.Context, user *models.User) (*models.User, error) {
			user.ID = "user-1"
			created = user
			return user, nil
		},
	}
	router := newTestRouter(t, st)

	rec := postJSON(router, "/api/v1/auth/admin/create",
		`{"name":"A","email":"a@x.com","password":"secret1"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, created)
	assert.Equal(t, models.RoleAdmin, created.Role, "role defaults to ADMIN when omitted")
	assert.True(t, created.IsActive)
	assert.NotEmpty(t, created.PasswordHash)
	assert.NotEqual(t, "secret1", created.PasswordHash)

	var envelope handlers.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, http.StatusCreated, envelope.Status)
	assert.Equal(t, "User created successfully", envelope.Message)

	// The hash must never serialize.
	assert.NotContains(t, rec.Body.String(), created.PasswordHash)
}

func TestCreateAdmin_ExplicitRoleAndPhone(t *testing.T) {
	var created *models.User
	st := &fakeStore{
		createUser: func(ctx context.Context, user *models.User) (*models.User, error) {
			created = user
			return user, nil
		},
	}
	router := newTestRouter(t, st)

	rec := postJSON(router, "/api/v1/auth/admin/create",
		`{"name":"V","email":"v@x.com","password":"secret1","role":"VENDOR","phone":"123456"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, created)
	assert.Equal(t, models.RoleVendor, created.Role)
	require.NotNil(t, created.Phone)
	assert.Equal(t, "123456", *created.Phone)
}

func TestCreateAdmin_Conflict(t *testing.T) {
	createCalled := false
	st := &fakeStore{
		getUserByEmail: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: "existing", Email: email}, nil
		},
		createUser: func(ctx context.Context, user *models.User) (*models.User, error) {
			createCalled = true
			return user, nil
		},
	}
	router := newTestRouter(t, st)

	rec := postJSON(router, "/api/v1/auth/admin/create",
		`{"name":"A","email":"a@x.com","password":"secret1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, createCalled, "no mutation on conflict")

	var envelope handlers.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "User already exists", envelope.Error)
}

func TestCreateAdmin_DuplicateKeyRace(t *testing.T) {
	// Pre-check misses but the insert hits the unique constraint: the
	// response must be the same conflict envelope, not a generic 500.
	st := &fakeStore{
		createUser: func(ctx context.Context, user *models.User) (*models.User, error) {
			return nil, store.ErrDuplicateEmail
		},
	}
	router := newTestRouter(t, st)

	rec := postJSON(router, "/api/v1/auth/admin/create",
		`{"name":"A","email":"a@x.com","password":"secret1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope handlers.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "User already exists", envelope.Error)
}

func TestCreateAdmin_ValidationFailures(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"short password", `{"name":"A","email":"a@x.com","password":"five5"}`, "Password"},
		{"malformed email", `{"name":"A","email":"not-an-email","password":"secret1"}`, "Email"},
		{"missing name", `{"email":"a@x.com","password":"secret1"}`, "Name"},
		{"bad role", `{"name":"A","email":"a@x.com","password":"secret1","role":"ROOT"}`, "Role"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			storeTouched := false
			st := &fakeStore{
				getUserByEmail: func(ctx context.Context, email string) (*models.User, error) {
					storeTouched = true
					return nil, nil
				},
				createUser: func(ctx context.Context, user *models.User) (*models.User, error) {
					storeTouched = true
					return user, nil
				},
			}
			router := newTestRouter(t, st)

			rec := postJSON(router, "/api/v1/auth/admin/create", tc.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, storeTouched, "business logic must not run on invalid input")

			var envelope handlers.Envelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
			assert.Contains(t, envelope.Errors, tc.field)
		})
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	password := models.Password{}
	require.NoError(t, password.Set("correct-horse"))

	st := &fakeStore{
		getUserByEmail: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{
				ID:           "user-1",
				Email:        email,
				PasswordHash: password.Hash,
				Role:         models.RoleAdmin,
				IsActive:     true,
			}, nil
		},
	}
	router := newTestRouter(t, st)

	rec := postJSON(router, "/api/v1/auth/login",
		`{"email":"a@x.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	password := models.Password{}
	require.NoError(t, password.Set("correct-horse"))

	st := &fakeStore{
		getUserByEmail: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{
				ID:           "user-1",
				Email:        email,
				PasswordHash: password.Hash,
				Role:         models.RoleAdmin,
				IsActive:     true,
			}, nil
		},
	}
	router := newTestRouter(t, st)

	rec := postJSON(router, "/api/v1/auth/login",
		`{"email":"a@x.com","password":"correct-horse"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	found := false
	for _, cookie := range cookies {
		if cookie.Name == "session" && cookie.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "login must set the session cookie")
}

func TestLogin_SecureCookieFromEnv(t *testing.T) {
	t.Setenv("COOKIE_SECURE", "true")

	password := models.Password{}
	require.NoError(t, password.Set("correct-horse"))

	st := &fakeStore{
		getUserByEmail: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{
				ID:           "user-1",
				Email:        email,
				PasswordHash: password.Hash,
				Role:         models.RoleAdmin,
				IsActive:     true,
			}, nil
		},
	}
	router := newTestRouter(t, st)

	rec := postJSON(router, "/api/v1/auth/login",
		`{"email":"a@x.com","password":"correct-horse"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var session *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "session" {
			session = cookie
		}
	}
	require.NotNil(t, session)
	assert.True(t, session.Secure)
	assert.True(t, session.HttpOnly)
}

func TestLogin_InactiveAccount(t *testing.T) {
	st := &fakeStore{
		getUserByEmail: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: "user-1", Email: email, IsActive: false}, nil
		},
	}
	router := newTestRouter(t, st)

	rec := postJSON(router, "/api/v1/auth/login",
		`{"email":"a@x.com","password":"whatever"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
