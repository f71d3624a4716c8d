package department

import (
	"context"
)

// DepartmentRepository defines read access to the departments table.
type DepartmentRepository interface {
	// List returns all departments ordered by name
	List(ctx context.Context) ([]Department, error)
}
