package auth

import (
	"testing"
	"time"

	"hobbyexplorer/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			TokenSecret: secret,
			TokenTTL:    ttl,
		},
	}
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing", time.Minute))
	require.NoError(t, err)
	require.NotNil(t, svc)

	userID := uuid.New()

	accessToken, err := svc.GenerateAccessToken(userID, "kiko")
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	claims, err := svc.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "kiko", claims.Username)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing", time.Minute))
	require.NoError(t, err)

	// Test invalid token - using clearly non-JWT format
	claims, err := svc.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token")
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("issuer_secret_key_very_long_for_testing", time.Minute))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("another_secret_key_very_long_for_testing", time.Minute))
	require.NoError(t, err)

	token, err := issuer.GenerateAccessToken(uuid.New(), "kiko")
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing", time.Minute))
	require.NoError(t, err)

	// Shorten the lifetime past zero so the token is already expired when issued.
	svc.(*jwtService).accessTTL = -time.Minute

	token, err := svc.GenerateAccessToken(uuid.New(), "kiko")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("", time.Minute))
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_AccessTokenDuration(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing", 0))
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, svc.AccessTokenDuration())
}
