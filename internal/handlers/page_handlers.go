package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopora/shopora-admin-golang/internal/auth"
)

// currentSession resolves the page visitor's session from the cookie.
// Returns nil for missing, expired, or tampered tokens.
func currentSession(c *gin.Context) *auth.Claims {
	cookie, err := c.Cookie(auth.SessionCookie)
	if err != nil {
		return nil
	}
	claims, err := auth.ValidateToken(cookie)
	if err != nil {
		return nil
	}
	return claims
}

// DashboardPage is the handler for GET /dashboard. Visitors without a valid
// session are sent to the login page; everyone else gets the dashboard shell
// with their account details.
func (h *Handlers) DashboardPage(c *gin.Context) {
	claims := currentSession(c)
	if claims == nil {
		c.Redirect(http.StatusSeeOther, "/auth/login")
		return
	}

	user, err := h.Store.GetUserByID(c.Request.Context(), claims.UserID)
	if err != nil || user == nil {
		// Stale session for a deleted account; treat as signed out.
		c.Redirect(http.StatusSeeOther, "/auth/login")
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Name":  user.Name,
		"Email": user.Email,
		"Role":  string(user.Role),
	})
}

// LoginPage is the handler for GET /auth/login. Signed-in visitors are sent
// straight to the dashboard.
func (h *Handlers) LoginPage(c *gin.Context) {
	if currentSession(c) != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	c.HTML(http.StatusOK, "login.html", gin.H{})
}
