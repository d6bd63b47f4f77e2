package auth

import (
	"testing"

	"studio_backend/internal/config"
	"studio_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	prev := config.AppConfig
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = prev })
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.Error(t, ValidatePassword(""))
	assert.NoError(t, ValidatePassword("longenough"))
}

func TestGenerateAndParseToken(t *testing.T) {
	setTestConfig(t)

	token, err := GenerateToken("user-1", models.UserRoleAdmin)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, models.UserRoleAdmin, claims.Role)
}

func TestParseToken_RejectsTampering(t *testing.T) {
	setTestConfig(t)

	token, err := GenerateToken("user-1", models.UserRoleAdmin)
	require.NoError(t, err)

	_, err = ParseToken(token + "x")
	assert.Error(t, err)
}
