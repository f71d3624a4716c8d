package attendance

import (
	"context"
)

// AttendanceRepository defines data access for attendance records. Writes
// are conditional single statements so that two submissions racing through
// the no-record check cannot produce a second row for the same day.
type AttendanceRepository interface {
	// GetByUserAndDate returns the record for (userID, date), or nil when
	// none exists.
	GetByUserAndDate(ctx context.Context, userID string, date string) (*Record, error)

	// CreateIfAbsent inserts the record unless one already exists for the
	// same (user_id, date). Returns nil when the insert lost that race.
	CreateIfAbsent(ctx context.Context, record Record) (*Record, error)

	// CloseOut sets time_out (and optionally remarks) on the user's open
	// record for the day. Returns nil when the record was already closed.
	CloseOut(ctx context.Context, id string, timeOut string, remarks *string) (*Record, error)

	// ListAll returns every record, date descending then time_in descending.
	ListAll(ctx context.Context) ([]Record, error)

	// ListByUser returns one user's records in the same order.
	ListByUser(ctx context.Context, userID string) ([]Record, error)

	// CountByDate returns the number of records on a "YYYY-MM-DD" date.
	CountByDate(ctx context.Context, date string) (int64, error)
}
