package user

import (
	"strings"
	"time"
)

type User struct {
	ID           string
	Email        string
	PasswordHash *string
	FirstName    string
	LastName     string
	Username     string
	RoleID       *int64
	DepartmentID *int64
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Join
	RoleName *string
}

// FullName is the display name attached to attendance rows.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
