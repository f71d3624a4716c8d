package dashboard

import (
	"context"
	"time"
)

// DashboardRepository defines the counting queries behind dashboard stats.
type DashboardRepository interface {
	// CountUsers returns the total number of users
	CountUsers(ctx context.Context) (int64, error)

	// CountDepartments returns the total number of departments
	CountDepartments(ctx context.Context) (int64, error)

	// UserCreationTimes returns the created_at timestamps of all users,
	// used to bucket signups per month
	UserCreationTimes(ctx context.Context) ([]time.Time, error)
}

// DashboardService computes the admin dashboard aggregates.
type DashboardService interface {
	GetStats(ctx context.Context) (StatsResponse, error)
}
