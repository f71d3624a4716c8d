package role

import (
	"context"
)

// RoleRepository defines read access to the roles table.
type RoleRepository interface {
	// List returns roles ordered by name, optionally filtered by department
	List(ctx context.Context, departmentID *int64) ([]Role, error)
}
