package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidtube/config"
	"vidtube/internal/domain/service"
)

func testJWTConfig() *config.Config {
	return &config.Config{
		SecretKey: config.SecretKey{
			Access:  "test-access-secret",
			Refresh: "test-refresh-secret",
		},
	}
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)

	_, err = NewJWTService(&config.Config{
		SecretKey: config.SecretKey{Access: "only-access"},
	})
	assert.Error(t, err)

	svc, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	userID := uuid.New()
	access, refresh, err := svc.GenerateTokens(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	accessClaims, err := svc.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	refreshClaims, err := svc.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_RejectsCrossTypeTokens(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	access, refresh, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	// A refresh token must not pass access validation and vice versa.
	// Secrets differ, so parsing already fails before type checks.
	_, err = svc.ValidateAccessToken(refresh)
	assert.Error(t, err)

	_, err = svc.ValidateRefreshToken(access)
	assert.Error(t, err)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	access, _, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	tampered := access[:len(access)-2] + "xx"
	_, err = svc.ValidateAccessToken(tampered)
	assert.Error(t, err)
}

func TestJWTService_RejectsTokenSignedWithOtherSecret(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	other, err := NewJWTService(&config.Config{
		SecretKey: config.SecretKey{Access: "another-secret", Refresh: "another-refresh"},
	})
	require.NoError(t, err)

	access, _, err := other.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(access)
	assert.Error(t, err)
}

func TestJWTService_RefreshTokenDuration(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	assert.Equal(t, time.Hour*24*7, svc.RefreshTokenDuration())
}
