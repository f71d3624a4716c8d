package user

import (
	"context"
)

// UserRepository defines data access for users. It also serves as the
// identity store: attendance listing resolves display names through GetByID.
type UserRepository interface {
	// Create inserts a new user
	Create(ctx context.Context, u User) (User, error)

	// GetByID returns a user; ErrUserNotFound when absent
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail returns a user by email; ErrUserNotFound when absent
	GetByEmail(ctx context.Context, email string) (User, error)

	// List returns all users with role names resolved, newest first
	List(ctx context.Context) ([]User, error)

	// Update persists profile changes and returns the stored user
	Update(ctx context.Context, u User) (User, error)

	// Delete removes a user; ErrUserNotFound when absent
	Delete(ctx context.Context, id string) error
}
