package auth

import (
	"context"
	"testing"

	"github.com/newera-construction/siteledger-backend-go/internal/config"
	"github.com/newera-construction/siteledger-backend-go/internal/domain/auth"
	"github.com/newera-construction/siteledger-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

func createTestAuthService(t *testing.T, username, password string) auth.Service {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	supervisor := config.SupervisorConfig{
		Username:     username,
		PasswordHash: string(hash),
	}
	jwtSvc := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(supervisor, jwtSvc)
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	svc := createTestAuthService(t, "supervisor", "password123")

	resp, err := svc.Login(ctx, auth.LoginRequest{Username: "supervisor", Password: "password123"})
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Greater(t, resp.AccessTokenExpiresIn, int64(0))
	assert.Greater(t, resp.RefreshTokenExpiresIn, int64(0))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := createTestAuthService(t, "supervisor", "password123")

	_, err := svc.Login(ctx, auth.LoginRequest{Username: "supervisor", Password: "wrongpassword"})
	assert.Equal(t, auth.ErrInvalidCredentials, err)
}

func TestAuthService_Login_WrongUsername(t *testing.T) {
	ctx := context.Background()
	svc := createTestAuthService(t, "supervisor", "password123")

	_, err := svc.Login(ctx, auth.LoginRequest{Username: "admin", Password: "password123"})
	assert.Equal(t, auth.ErrInvalidCredentials, err)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	ctx := context.Background()
	svc := createTestAuthService(t, "supervisor", "password123")

	_, err := svc.Login(ctx, auth.LoginRequest{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "username")
	assert.Contains(t, err.Error(), "password")
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	ctx := context.Background()
	svc := createTestAuthService(t, "supervisor", "password123")

	login, err := svc.Login(ctx, auth.LoginRequest{Username: "supervisor", Password: "password123"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, login.RefreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	// The exchanged token is revoked; replaying it must fail
	_, err = svc.Refresh(ctx, login.RefreshToken)
	assert.Equal(t, auth.ErrRefreshTokenRevoked, err)
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	ctx := context.Background()
	svc := createTestAuthService(t, "supervisor", "password123")

	login, err := svc.Login(ctx, auth.LoginRequest{Username: "supervisor", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, login.AccessToken)
	assert.Equal(t, auth.ErrInvalidToken, err)
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	ctx := context.Background()
	svc := createTestAuthService(t, "supervisor", "password123")

	login, err := svc.Login(ctx, auth.LoginRequest{Username: "supervisor", Password: "password123"})
	require.NoError(t, err)

	err = svc.Logout(ctx, login.RefreshToken)
	assert.NoError(t, err)

	_, err = svc.Refresh(ctx, login.RefreshToken)
	assert.Equal(t, auth.ErrRefreshTokenRevoked, err)
}

func TestAuthService_Logout_EmptyToken(t *testing.T) {
	ctx := context.Background()
	svc := createTestAuthService(t, "supervisor", "password123")

	err := svc.Logout(ctx, "")
	assert.Equal(t, auth.ErrInvalidToken, err)
}
