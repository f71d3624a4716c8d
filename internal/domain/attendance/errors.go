package attendance

import "errors"

// Attendance domain errors
var (
	// Submission errors
	ErrDepartmentNotSet = errors.New("user department not found")

	// Listing errors
	ErrUnauthorizedTier = errors.New("access control not found or unauthorized")

	ErrRecordNotFound = errors.New("attendance record not found")
)
