package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/shopease/core/internal/domain/entities"
	"github.com/shopease/core/internal/infrastructure/config"
	"github.com/shopease/core/internal/infrastructure/logger"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		AdminEmail:    "admin@shopease.com",
		AdminPassword: "admin123",
		AdminName:     "Admin User",
		APIToken:      "mock-admin-token",
		Secret:        "test-secret",
		ExpiresIn:     time.Hour,
		Issuer:        "shopease",
	}
}

func TestLoginSuccess(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), logger.NewNop())

	resp, err := svc.Login(LoginRequest{Email: "admin@shopease.com", Password: "admin123"})
	require.NoError(t, err)

	assert.Equal(t, "mock-admin-token", resp.Token)
	assert.Equal(t, "admin1", resp.Admin.ID)
	assert.Equal(t, "Admin User", resp.Admin.Name)
	assert.Equal(t, "admin@shopease.com", resp.Admin.Email)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), logger.NewNop())

	_, err := svc.Login(LoginRequest{Email: "admin@shopease.com", Password: "wrong"})
	assert.ErrorIs(t, err, entities.ErrInvalidCredentials)

	_, err = svc.Login(LoginRequest{Email: "intruder@example.com", Password: "admin123"})
	assert.ErrorIs(t, err, entities.ErrInvalidCredentials)
}

func TestLoginWithBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := testAuthConfig()
	cfg.AdminPassword = string(hash)
	svc := NewAuthService(cfg, logger.NewNop())

	_, err = svc.Login(LoginRequest{Email: "admin@shopease.com", Password: "admin123"})
	assert.NoError(t, err)

	_, err = svc.Login(LoginRequest{Email: "admin@shopease.com", Password: "wrong"})
	assert.ErrorIs(t, err, entities.ErrInvalidCredentials)
}

func TestValidateStaticToken(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), logger.NewNop())

	admin, err := svc.ValidateToken("mock-admin-token")
	require.NoError(t, err)
	assert.Equal(t, "admin1", admin.ID)

	_, err = svc.ValidateToken("forged")
	assert.Error(t, err)
}

func TestLoginIssuesVerifiableJWTWithoutStaticToken(t *testing.T) {
	cfg := testAuthConfig()
	cfg.APIToken = ""
	svc := NewAuthService(cfg, logger.NewNop())

	resp, err := svc.Login(LoginRequest{Email: "admin@shopease.com", Password: "admin123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	admin, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@shopease.com", admin.Email)

	_, err = svc.ValidateToken(resp.Token + "tampered")
	assert.Error(t, err)
}
