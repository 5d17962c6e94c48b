package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shopora/shopora-admin-golang/internal/auth"
	"github.com/shopora/shopora-admin-golang/internal/models"
)

// Context keys set by the gate for downstream handlers.
const (
	CtxUserID = "userID"
	CtxRole   = "userRole"
)

// adminPrefixes are the path prefixes that require the ADMIN role claim.
var adminPrefixes = []string{"/admin", "/api/v1/admin"}

// Allow is the gate decision as a pure function of (path, claim).
// Paths under an admin prefix require an authenticated ADMIN session;
// every other path passes unconditionally at this layer.
func Allow(path string, role models.Role, authenticated bool) bool {
	for _, prefix := range adminPrefixes {
		if strings.HasPrefix(path, prefix) {
			return authenticated && role == models.RoleAdmin
		}
	}
	return true
}

// resolveClaims pulls a session token from the Authorization header or the
// session cookie. Returns nil when the request is unauthenticated or the
// token does not validate.
func resolveClaims(c *gin.Context) *auth.Claims {
	tokenString := ""

	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.Split(header, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			tokenString = parts[1]
		}
	}
	if tokenString == "" {
		if cookie, err := c.Cookie(auth.SessionCookie); err == nil {
			tokenString = cookie
		}
	}
	if tokenString == "" {
		return nil
	}

	claims, err := auth.ValidateToken(tokenString)
	if err != nil {
		return nil
	}
	return claims
}

// AccessGate runs before routing-level handlers. It resolves the session's
// role claim, logs the access attempt, and denies admin-prefixed paths to
// anyone but ADMIN sessions. Finer-grained authorization stays with the
// individual handlers.
func AccessGate(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := resolveClaims(c)

		roleLabel := "unauthenticated"
		var role models.Role
		if claims != nil {
			role = claims.Role
			roleLabel = string(claims.Role)
			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxRole, claims.Role)
		}

		log.Info("access attempt",
			zap.String("path", c.Request.URL.Path),
			zap.String("role", roleLabel),
		)

		if !Allow(c.Request.URL.Path, role, claims != nil) {
			if claims == nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
				return
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: Admin role required"})
			return
		}

		c.Next()
	}
}
