package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopora/shopora-admin-golang/internal/auth"
	"github.com/shopora/shopora-admin-golang/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := auth.GenerateToken("user-1", models.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := auth.ValidateToken("not-a-jwt")
	assert.Error(t, err)
}

func TestValidateToken_TamperedSignature(t *testing.T) {
	token, err := auth.GenerateToken("user-1", models.RoleAdmin)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]

	_, err = auth.ValidateToken(tampered)
	assert.Error(t, err)
}

func TestValidateToken_EachRole(t *testing.T) {
	for _, role := range []models.Role{models.RoleAdmin, models.RoleVendor, models.RoleCustomer} {
		token, err := auth.GenerateToken("user-1", role)
		require.NoError(t, err)

		claims, err := auth.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, role, claims.Role)
	}
}
