package postgresql

import (
	"context"
	"fmt"

	"github.com/atlashr/attendance-backend-go/internal/domain/role"
	"github.com/atlashr/attendance-backend-go/internal/pkg/database"
)

type roleRepository struct {
	db *database.DB
}

func NewRoleRepository(db *database.DB) role.RoleRepository {
	return &roleRepository{db: db}
}

// List implements role.RoleRepository.
func (r *roleRepository) List(ctx context.Context, departmentID *int64) ([]role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, department_id FROM roles_tbl`
	args := []interface{}{}
	if departmentID != nil {
		query += ` WHERE department_id = $1`
		args = append(args, *departmentID)
	}
	query += ` ORDER BY id ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	defer rows.Close()

	roles := make([]role.Role, 0)
	for rows.Next() {
		var rl role.Role
		if err := rows.Scan(&rl.ID, &rl.Name, &rl.DepartmentID); err != nil {
			return nil, fmt.Errorf("failed to scan role row: %w", err)
		}
		roles = append(roles, rl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read role rows: %w", err)
	}

	return roles, nil
}
