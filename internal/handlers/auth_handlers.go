package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shopora/shopora-admin-golang/internal/auth"
	"github.com/shopora/shopora-admin-golang/internal/models"
	"github.com/shopora/shopora-admin-golang/internal/store"
)

// CreateAdminInput defines the expected JSON for admin-account creation.
// The 'binding' tags drive Gin's automatic validation.
type CreateAdminInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=ADMIN VENDOR CUSTOMER"`
	Phone    string `json:"phone"`
}

// CreateAdmin is the handler for POST /api/v1/auth/admin/create.
// Flow: pre-check the email, hash the credential, persist. The pre-check is
// not atomic with the insert, so a duplicate key from the insert itself is
// shaped into the same conflict response.
func (h *Handlers) CreateAdmin(c *gin.Context) {
	var input CreateAdminInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidation(c, err)
		return
	}

	existing, err := h.Store.GetUserByEmail(c.Request.Context(), input.Email)
	if err != nil {
		h.respondInternal(c, err)
		return
	}
	if existing != nil {
		respondError(c, http.StatusBadRequest, "User already exists")
		return
	}

	role := models.RoleAdmin
	if input.Role != "" {
		parsed, err := models.ParseRole(input.Role)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid role")
			return
		}
		role = parsed
	}

	var password models.Password
	if err := password.Set(input.Password); err != nil {
		h.respondInternal(c, err)
		return
	}

	user := &models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: password.Hash,
		Role:         role,
		IsActive:     true,
	}
	if input.Phone != "" {
		user.Phone = &input.Phone
	}

	created, err := h.Store.CreateUser(c.Request.Context(), user)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			// Lost the race with a concurrent identical request.
			respondError(c, http.StatusBadRequest, "User already exists")
			return
		}
		h.respondInternal(c, err)
		return
	}

	h.Log.Info("admin account created",
		zap.String("email", created.Email),
		zap.String("role", string(created.Role)),
	)

	respondOK(c, http.StatusCreated, created, "User created successfully")
}

// LoginInput defines the expected JSON for credential login.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login is the handler for POST /api/v1/auth/login. It verifies credentials
// and issues the session token both as a cookie (for the server-rendered
// pages) and in the response body (for API clients).
func (h *Handlers) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidation(c, err)
		return
	}

	user, err := h.Store.GetUserByEmail(c.Request.Context(), input.Email)
	if err != nil {
		h.respondInternal(c, err)
		return
	}
	if user == nil || !user.IsActive {
		respondError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	password := models.Password{Hash: user.PasswordHash}
	matches, err := password.Matches(input.Password)
	if err != nil {
		h.respondInternal(c, err)
		return
	}
	if !matches {
		respondError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		h.respondInternal(c, err)
		return
	}

	// 72h, matching the token TTL.
	c.SetCookie(auth.SessionCookie, token, 72*3600, "/", "", auth.CookieSecure(), true)

	respondOK(c, http.StatusOK, gin.H{"token": token, "user": user}, "Login successful")
}
