package postgresql

import (
	"context"
	"fmt"

	"github.com/atlashr/attendance-backend-go/internal/domain/attendance"
	"github.com/atlashr/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `id, user_id, date::text, time_in, time_out, status, remarks, created_at, updated_at`

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.Date, &rec.TimeIn, &rec.TimeOut,
		&rec.Status, &rec.Remarks, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date string) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendance_table
		WHERE user_id = $1 AND date = $2
		LIMIT 1
	`, attendanceColumns)

	rec, err := scanRecord(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by user and date: %w", err)
	}

	return &rec, nil
}

// CreateIfAbsent implements attendance.AttendanceRepository.
// The unique index on (user_id, date) plus ON CONFLICT DO NOTHING makes the
// insert a single atomic insert-if-absent; a concurrent winner yields no row.
func (a *attendanceRepository) CreateIfAbsent(ctx context.Context, record attendance.Record) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := fmt.Sprintf(`
		INSERT INTO attendance_table (user_id, date, time_in, status, remarks)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, date) DO NOTHING
		RETURNING %s
	`, attendanceColumns)

	rec, err := scanRecord(q.QueryRow(ctx, query,
		record.UserID, record.Date, record.TimeIn, record.Status, record.Remarks,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return &rec, nil
}

// CloseOut implements attendance.AttendanceRepository.
// The time_out IS NULL guard makes the update conditional: once the day is
// completed no further submission can mutate the row.
func (a *attendanceRepository) CloseOut(ctx context.Context, id string, timeOut string, remarks *string) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := fmt.Sprintf(`
		UPDATE attendance_table
		SET time_out = $2,
		    remarks = COALESCE($3, remarks),
		    updated_at = NOW()
		WHERE id = $1 AND time_out IS NULL
		RETURNING %s
	`, attendanceColumns)

	rec, err := scanRecord(q.QueryRow(ctx, query, id, timeOut, remarks))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to close out attendance record: %w", err)
	}

	return &rec, nil
}

func (a *attendanceRepository) list(ctx context.Context, where string, args ...interface{}) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendance_table
		%s
		ORDER BY date DESC, time_in DESC
	`, attendanceColumns, where)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	records := make([]attendance.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance rows: %w", err)
	}

	return records, nil
}

// ListAll implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListAll(ctx context.Context) ([]attendance.Record, error) {
	return a.list(ctx, "")
}

// ListByUser implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByUser(ctx context.Context, userID string) ([]attendance.Record, error) {
	return a.list(ctx, "WHERE user_id = $1", userID)
}

// CountByDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) CountByDate(ctx context.Context, date string) (int64, error) {
	q := GetQuerier(ctx, a.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendance_table WHERE date = $1`, date).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance by date: %w", err)
	}

	return count, nil
}
