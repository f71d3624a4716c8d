package user

import (
	"context"

	"github.com/atlashr/attendance-backend-go/internal/domain/department"
	"github.com/atlashr/attendance-backend-go/internal/domain/role"
)

// UserService defines user-management business logic
type UserService interface {
	// CreateUser registers a new user with a hashed password
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)

	// ListUsers returns all users with role names resolved
	ListUsers(ctx context.Context) ([]UserResponse, error)

	// GetUser returns a single user
	GetUser(ctx context.Context, id string) (UserResponse, error)

	// UpdateUser applies profile changes
	UpdateUser(ctx context.Context, req UpdateUserRequest) (UserResponse, error)

	// DeleteUser removes a user
	DeleteUser(ctx context.Context, id string) error

	// ListRoles returns assignable roles, optionally scoped to a department
	ListRoles(ctx context.Context, departmentID *int64) ([]role.Role, error)

	// ListDepartments returns all departments
	ListDepartments(ctx context.Context) ([]department.Department, error)
}
