package auth

import "context"

// Service defines the supervisor login flow. There is a single supervisor
// account configured from the environment; no user table exists.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	Logout(ctx context.Context, refreshToken string) error
}
