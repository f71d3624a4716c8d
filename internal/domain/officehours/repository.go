package officehours

import (
	"context"
)

// OfficeHoursRepository defines read access to department office hours.
type OfficeHoursRepository interface {
	// GetByDepartment returns the department's window; ErrOfficeHoursNotFound
	// when the department has no configured hours.
	GetByDepartment(ctx context.Context, departmentID int64) (OfficeHours, error)
}
