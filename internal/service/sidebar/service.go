package sidebar

import (
	"context"
	"fmt"
	"time"

	"github.com/atlashr/attendance-backend-go/internal/domain/auth"
	"github.com/atlashr/attendance-backend-go/internal/domain/sidebar"
)

type sidebarService struct {
	sidebarRepository sidebar.SidebarRepository
}

func NewSidebarService(sidebarRepository sidebar.SidebarRepository) sidebar.SidebarService {
	return &sidebarService{sidebarRepository: sidebarRepository}
}

// GetItems implements sidebar.SidebarService.
func (s *sidebarService) GetItems(ctx context.Context, identity auth.Identity) ([]sidebar.ItemResponse, error) {
	if identity.RoleID == nil {
		return nil, sidebar.ErrUserRoleNotFound
	}

	items, err := s.sidebarRepository.ListByRole(ctx, *identity.RoleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sidebar items: %w", err)
	}

	responses := make([]sidebar.ItemResponse, 0, len(items))
	for _, it := range items {
		responses = append(responses, sidebar.ItemResponse{
			ID:         it.ID,
			Name:       it.Name,
			Icon:       it.Icon,
			UserAccess: it.UserAccess,
			CreatedAt:  it.CreatedAt.Format(time.RFC3339),
		})
	}
	return responses, nil
}
