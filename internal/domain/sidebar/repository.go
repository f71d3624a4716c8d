package sidebar

import (
	"context"

	"github.com/atlashr/attendance-backend-go/internal/domain/auth"
)

// SidebarRepository defines read access to sidebar items.
type SidebarRepository interface {
	// ListByRole returns items whose user_access contains roleID, id ascending
	ListByRole(ctx context.Context, roleID int64) ([]Item, error)
}

// SidebarService returns the navigation items visible to a caller.
type SidebarService interface {
	GetItems(ctx context.Context, identity auth.Identity) ([]ItemResponse, error)
}

type ItemResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Icon       *string `json:"icon"`
	UserAccess []int64 `json:"userAccess"`
	CreatedAt  string  `json:"createdAt"`
}
