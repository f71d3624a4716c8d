package attendance

import (
	"github.com/atlashr/attendance-backend-go/internal/pkg/validator"
)

// EntryType tells the caller which transition a submission performed.
type EntryType string

const (
	EntryTimeIn    EntryType = "time_in"
	EntryTimeOut   EntryType = "time_out"
	EntryCompleted EntryType = "completed"
	EntryError     EntryType = "error"
)

type SubmitTimeRequest struct {
	Time    string  `json:"time"`
	Remarks *string `json:"remarks,omitempty"`
}

func (r *SubmitTimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Time) {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time is required",
		})
	} else if !validator.IsValidTimeOfDay(r.Time) {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time must be in HH:MM or HH:MM:SS format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	r.Time = validator.NormalizeTimeOfDay(r.Time)
	return nil
}

type RecordResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	UserName  string  `json:"user_name,omitempty"`
	Date      string  `json:"date"`
	TimeIn    string  `json:"time_in"`
	TimeOut   *string `json:"time_out,omitempty"`
	Status    Status  `json:"status"`
	Remarks   *string `json:"remarks,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// TimeEntryResult is the submission envelope. Domain-expected failures
// (missing office hours, missing department) come back through it with
// Type=EntryError instead of an error return, so callers branch on the
// result rather than on transport failures.
type TimeEntryResult struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Type    EntryType       `json:"type"`
	Data    *RecordResponse `json:"data"`
}
