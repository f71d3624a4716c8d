package officehours

import "errors"

var (
	ErrOfficeHoursNotFound = errors.New("office hours not found for department")
)
