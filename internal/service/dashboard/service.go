package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/atlashr/attendance-backend-go/internal/domain/attendance"
	"github.com/atlashr/attendance-backend-go/internal/domain/dashboard"
	"github.com/shopspring/decimal"
)

type dashboardService struct {
	dashboardRepository  dashboard.DashboardRepository
	attendanceRepository attendance.AttendanceRepository

	now func() time.Time
}

func NewDashboardService(
	dashboardRepository dashboard.DashboardRepository,
	attendanceRepository attendance.AttendanceRepository,
) dashboard.DashboardService {
	return &dashboardService{
		dashboardRepository:  dashboardRepository,
		attendanceRepository: attendanceRepository,
		now:                  time.Now,
	}
}

// GetStats implements dashboard.DashboardService.
func (s *dashboardService) GetStats(ctx context.Context) (dashboard.StatsResponse, error) {
	totalUsers, err := s.dashboardRepository.CountUsers(ctx)
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to count users: %w", err)
	}

	totalDepartments, err := s.dashboardRepository.CountDepartments(ctx)
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to count departments: %w", err)
	}

	today := s.now()

	byDay, err := s.attendanceByDay(ctx, today)
	if err != nil {
		return dashboard.StatsResponse{}, err
	}
	todayCount := byDay[len(byDay)-1].Count

	overview, err := s.employmentOverview(ctx, today)
	if err != nil {
		return dashboard.StatsResponse{}, err
	}

	return dashboard.StatsResponse{
		TotalUsers:         totalUsers,
		TotalDepartments:   totalDepartments,
		AttendanceByDay:    byDay,
		AttendanceRate:     attendanceRate(todayCount, totalUsers),
		TodayAttendance:    todayCount,
		EmploymentOverview: overview,
	}, nil
}

// attendanceByDay counts records for the last six days, today included,
// oldest first.
func (s *dashboardService) attendanceByDay(ctx context.Context, today time.Time) ([]dashboard.DayCount, error) {
	counts := make([]dashboard.DayCount, 0, 6)
	for offset := 5; offset >= 0; offset-- {
		date := today.AddDate(0, 0, -offset).Format("2006-01-02")
		count, err := s.attendanceRepository.CountByDate(ctx, date)
		if err != nil {
			return nil, fmt.Errorf("failed to count attendance for %s: %w", date, err)
		}
		counts = append(counts, dashboard.DayCount{Date: date, Count: count})
	}
	return counts, nil
}

// employmentOverview buckets user signups into the trailing twelve months.
func (s *dashboardService) employmentOverview(ctx context.Context, today time.Time) ([]dashboard.MonthCount, error) {
	created, err := s.dashboardRepository.UserCreationTimes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user creation times: %w", err)
	}

	byMonth := make(map[string]int64, len(created))
	for _, t := range created {
		byMonth[t.Format("Jan 2006")]++
	}

	overview := make([]dashboard.MonthCount, 0, 12)
	for offset := 11; offset >= 0; offset-- {
		month := today.AddDate(0, -offset, 0).Format("Jan 2006")
		overview = append(overview, dashboard.MonthCount{
			Month: month,
			Count: byMonth[month],
		})
	}
	return overview, nil
}

// attendanceRate is today's record count as a percentage of the user base,
// rounded to two decimal places.
func attendanceRate(todayCount, totalUsers int64) float64 {
	if totalUsers == 0 {
		return 0
	}
	rate := decimal.NewFromInt(todayCount).
		Div(decimal.NewFromInt(totalUsers)).
		Mul(decimal.NewFromInt(100)).
		Round(2)
	f, _ := rate.Float64()
	return f
}
