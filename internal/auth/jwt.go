package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shopora/shopora-admin-golang/internal/models"
)

// Claims is the request-scoped authorization context carried by a session
// token: who the subject is and which role they hold.
type Claims struct {
	UserID string
	Role   models.Role
}

// SessionCookie is the cookie the browser session token travels in.
const SessionCookie = "session"

// CookieSecure reports whether session cookies carry the Secure flag.
// Off by default for local development over plain HTTP; set
// COOKIE_SECURE=true wherever the service is served over TLS.
func CookieSecure() bool {
	return os.Getenv("COOKIE_SECURE") == "true"
}

// Sessions live for 3 days.
const tokenTTL = 72 * time.Hour

func secretKey() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	// Development fallback only. Set JWT_SECRET in production.
	return []byte("shopora-dev-secret-change-me")
}

// GenerateToken creates a signed session token for a user.
func GenerateToken(userID string, role models.Role) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": string(role),
		"exp":  time.Now().Add(tokenTTL).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a session token string and returns
// the claims it carries.
func ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
	if err != nil {
		return nil, err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("invalid subject claim")
	}

	roleStr, _ := mapClaims["role"].(string)
	role, err := models.ParseRole(roleStr)
	if err != nil {
		return nil, errors.New("invalid role claim")
	}

	return &Claims{UserID: sub, Role: role}, nil
}
