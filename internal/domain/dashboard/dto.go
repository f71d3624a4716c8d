package dashboard

type DayCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type MonthCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

type StatsResponse struct {
	TotalUsers         int64        `json:"total_users"`
	TotalDepartments   int64        `json:"total_departments"`
	AttendanceByDay    []DayCount   `json:"attendance_by_day"`
	AttendanceRate     float64      `json:"attendance_rate"`
	TodayAttendance    int64        `json:"today_attendance"`
	EmploymentOverview []MonthCount `json:"employment_overview"`
}
