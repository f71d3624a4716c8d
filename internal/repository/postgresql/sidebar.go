package postgresql

import (
	"context"
	"fmt"

	"github.com/atlashr/attendance-backend-go/internal/domain/sidebar"
	"github.com/atlashr/attendance-backend-go/internal/pkg/database"
)

type sidebarRepository struct {
	db *database.DB
}

func NewSidebarRepository(db *database.DB) sidebar.SidebarRepository {
	return &sidebarRepository{db: db}
}

// ListByRole implements sidebar.SidebarRepository.
func (r *sidebarRepository) ListByRole(ctx context.Context, roleID int64) ([]sidebar.Item, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, name, icon, user_access, created_at
		FROM sidebar_items
		WHERE user_access @> ARRAY[$1]::bigint[]
		ORDER BY id ASC
	`, roleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sidebar items: %w", err)
	}
	defer rows.Close()

	items := make([]sidebar.Item, 0)
	for rows.Next() {
		var it sidebar.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Icon, &it.UserAccess, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sidebar item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sidebar item rows: %w", err)
	}

	return items, nil
}
