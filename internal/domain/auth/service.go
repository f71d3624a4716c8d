package auth

import (
	"context"
)

// AuthService defines authentication business logic
type AuthService interface {
	// Login verifies email/password credentials and issues a token pair
	Login(ctx context.Context, req LoginRequest, session SessionTrackingRequest) (TokenResponse, error)

	// LoginWithGoogle issues a token pair for a Google-verified email
	LoginWithGoogle(ctx context.Context, googleEmail string, session SessionTrackingRequest) (TokenResponse, error)

	// RefreshToken exchanges a valid refresh token for a new access token
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)

	// Logout revokes the given refresh token
	Logout(ctx context.Context, refreshToken string) error
}
