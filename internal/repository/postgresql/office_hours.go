package postgresql

import (
	"context"
	"fmt"

	"github.com/atlashr/attendance-backend-go/internal/domain/officehours"
	"github.com/atlashr/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type officeHoursRepository struct {
	db *database.DB
}

func NewOfficeHoursRepository(db *database.DB) officehours.OfficeHoursRepository {
	return &officeHoursRepository{db: db}
}

// GetByDepartment implements officehours.OfficeHoursRepository.
func (o *officeHoursRepository) GetByDepartment(ctx context.Context, departmentID int64) (officehours.OfficeHours, error) {
	q := GetQuerier(ctx, o.db)

	var oh officehours.OfficeHours
	err := q.QueryRow(ctx, `
		SELECT id, department_id, time_start, time_end
		FROM office_hours
		WHERE department_id = $1
	`, departmentID).Scan(&oh.ID, &oh.DepartmentID, &oh.TimeStart, &oh.TimeEnd)

	if err != nil {
		if err == pgx.ErrNoRows {
			return officehours.OfficeHours{}, officehours.ErrOfficeHoursNotFound
		}
		return officehours.OfficeHours{}, fmt.Errorf("failed to get office hours: %w", err)
	}

	return oh, nil
}
