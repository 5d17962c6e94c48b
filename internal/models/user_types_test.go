package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopora/shopora-admin-golang/internal/models"
)

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"ADMIN", "VENDOR", "CUSTOMER"} {
		role, err := models.ParseRole(valid)
		require.NoError(t, err)
		assert.Equal(t, models.Role(valid), role)
	}

	for _, invalid := range []string{"", "admin", "ROOT", "Admin "} {
		_, err := models.ParseRole(invalid)
		assert.Error(t, err, "role %q must not parse", invalid)
	}
}

func TestPassword_SetAndMatches(t *testing.T) {
	var password models.Password
	require.NoError(t, password.Set("correct-horse"))
	assert.NotEmpty(t, password.Hash)
	assert.NotEqual(t, "correct-horse", password.Hash)

	ok, err := password.Matches("correct-horse")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = password.Matches("battery-staple")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUser_HashNeverSerializes(t *testing.T) {
	user := models.User{
		ID:           "user-1",
		Name:         "A",
		Email:        "a@x.com",
		PasswordHash: "bcrypt-hash-here",
		Role:         models.RoleAdmin,
	}

	out, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "bcrypt-hash-here")
	assert.NotContains(t, string(out), "password")
}
