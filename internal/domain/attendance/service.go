package attendance

import (
	"context"

	"github.com/atlashr/attendance-backend-go/internal/domain/auth"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// SubmitTime records the caller's time-in or time-out for today,
	// depending on the state of today's record
	SubmitTime(ctx context.Context, identity auth.Identity, req SubmitTimeRequest) (TimeEntryResult, error)

	// ListAttendance returns the records visible to the caller's access
	// tier, enriched with the owning user's display name
	ListAttendance(ctx context.Context, identity auth.Identity) ([]RecordResponse, error)
}
