package attendance

import (
	"time"
)

// Status classifies the time-in moment against the department's office
// hours. It is derived once and never revisited at time-out.
type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
)

// Record is one user's attendance for one calendar day. At most one record
// exists per (user_id, date); the row is created at time-in, mutated exactly
// once to set time_out, and immutable after that.
//
// Date is "YYYY-MM-DD"; TimeIn/TimeOut are zero-padded "HH:MM:SS". Keeping
// them as strings preserves the lexical time comparisons of the system this
// replaces.
type Record struct {
	ID        string
	UserID    string
	Date      string
	TimeIn    string
	TimeOut   *string
	Status    Status
	Remarks   *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Join / enrichment
	UserName string
}

// Completed reports whether both halves of the day are recorded.
func (r *Record) Completed() bool {
	return r.TimeOut != nil
}
