package auth

import (
	"context"
	"time"
)

// RefreshToken is a persisted refresh session. The raw token is never
// stored, only its SHA-256 hash.
type RefreshToken struct {
	ID        int64
	UserID    string
	TokenHash string
	IPAddress *string
	UserAgent *string
	Revoked   bool
	ExpiresAt time.Time
	CreatedAt time.Time
}

// RefreshTokenRepository defines persistence for refresh sessions.
type RefreshTokenRepository interface {
	// Store persists a new refresh session
	Store(ctx context.Context, token RefreshToken) error

	// GetByHash returns the session for a token hash, revoked or not
	GetByHash(ctx context.Context, tokenHash string) (RefreshToken, error)

	// Revoke marks the session for a token hash as revoked
	Revoke(ctx context.Context, tokenHash string) error

	// RevokeAllForUser revokes every active session of a user
	RevokeAllForUser(ctx context.Context, userID string) error
}
