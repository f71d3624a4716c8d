package sidebar

import (
	"time"
)

// Item is one navigation entry; UserAccess lists the role references allowed
// to see it.
type Item struct {
	ID         int64
	Name       string
	Icon       *string
	UserAccess []int64
	CreatedAt  time.Time
}
