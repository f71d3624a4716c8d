package postgresql

import (
	"context"
	"fmt"

	"github.com/atlashr/attendance-backend-go/internal/domain/accesspolicy"
	"github.com/atlashr/attendance-backend-go/internal/pkg/database"
)

type accessPolicyRepository struct {
	db *database.DB
}

func NewAccessPolicyRepository(db *database.DB) accesspolicy.AccessPolicyRepository {
	return &accessPolicyRepository{db: db}
}

// List implements accesspolicy.AccessPolicyRepository.
func (a *accessPolicyRepository) List(ctx context.Context) ([]accesspolicy.Policy, error) {
	q := GetQuerier(ctx, a.db)

	rows, err := q.Query(ctx, `
		SELECT id, name, allowed_to
		FROM access_control
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch access control data: %w", err)
	}
	defer rows.Close()

	policies := make([]accesspolicy.Policy, 0)
	for rows.Next() {
		var p accesspolicy.Policy
		if err := rows.Scan(&p.ID, &p.Name, &p.AllowedTo); err != nil {
			return nil, fmt.Errorf("failed to scan access control row: %w", err)
		}
		policies = append(policies, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read access control rows: %w", err)
	}

	return policies, nil
}
