package auth

import (
	"context"
	"crypto/subtle"

	"github.com/newera-construction/siteledger-backend-go/internal/config"
	"github.com/newera-construction/siteledger-backend-go/internal/domain/auth"
	"github.com/newera-construction/siteledger-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	supervisor config.SupervisorConfig
	jwtService jwt.Service
}

func NewAuthService(supervisor config.SupervisorConfig, jwtService jwt.Service) auth.Service {
	return &AuthServiceImpl{
		supervisor: supervisor,
		jwtService: jwtService,
	}
}

// Login implements auth.Service.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	// Constant-time username compare; bcrypt already covers the password.
	if subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.supervisor.Username)) != 1 {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.supervisor.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(req.Username)
}

// Refresh implements auth.Service.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	if refreshToken == "" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	username, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	// Rotate: the presented refresh token is dead once exchanged.
	s.jwtService.RevokeToken(refreshToken)

	return s.issueTokens(username)
}

// Logout implements auth.Service.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return auth.ErrInvalidToken
	}

	if _, err := s.jwtService.ValidateRefreshToken(refreshToken); err != nil {
		return auth.ErrInvalidToken
	}

	s.jwtService.RevokeToken(refreshToken)
	return nil
}

func (s *AuthServiceImpl) issueTokens(username string) (auth.TokenResponse, error) {
	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(username)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(username)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExpiresAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresAt,
	}, nil
}
