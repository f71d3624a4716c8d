package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atlashr/attendance-backend-go/internal/domain/accesspolicy"
	"github.com/atlashr/attendance-backend-go/internal/domain/attendance"
	"github.com/atlashr/attendance-backend-go/internal/domain/auth"
	"github.com/atlashr/attendance-backend-go/internal/domain/officehours"
	"github.com/atlashr/attendance-backend-go/internal/domain/user"
)

type attendanceService struct {
	attendanceRepository  attendance.AttendanceRepository
	officeHoursRepository officehours.OfficeHoursRepository
	userRepository        user.UserRepository
	resolver              accesspolicy.Resolver

	now func() time.Time
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	officeHoursRepository officehours.OfficeHoursRepository,
	userRepository user.UserRepository,
	resolver accesspolicy.Resolver,
) attendance.AttendanceService {
	return &attendanceService{
		attendanceRepository:  attendanceRepository,
		officeHoursRepository: officeHoursRepository,
		userRepository:        userRepository,
		resolver:              resolver,
		now:                   time.Now,
	}
}

// SubmitTime implements attendance.AttendanceService. Which transition runs
// depends on the state of today's record: no record means time-in, an open
// record means time-out, a closed record is a no-op.
func (s *attendanceService) SubmitTime(ctx context.Context, identity auth.Identity, req attendance.SubmitTimeRequest) (attendance.TimeEntryResult, error) {
	date := s.now().Format("2006-01-02")

	record, err := s.attendanceRepository.GetByUserAndDate(ctx, identity.UserID, date)
	if err != nil {
		return attendance.TimeEntryResult{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}

	if record == nil {
		if identity.DepartmentID == nil {
			return failureResult(attendance.ErrDepartmentNotSet.Error()), nil
		}

		hours, err := s.officeHoursRepository.GetByDepartment(ctx, *identity.DepartmentID)
		if err != nil {
			if errors.Is(err, officehours.ErrOfficeHoursNotFound) {
				return failureResult(err.Error()), nil
			}
			return attendance.TimeEntryResult{}, fmt.Errorf("failed to get office hours: %w", err)
		}

		created, err := s.attendanceRepository.CreateIfAbsent(ctx, attendance.Record{
			UserID:  identity.UserID,
			Date:    date,
			TimeIn:  req.Time,
			Status:  deriveStatus(req.Time, hours.TimeStart, hours.TimeEnd),
			Remarks: req.Remarks,
		})
		if err != nil {
			return attendance.TimeEntryResult{}, fmt.Errorf("failed to create attendance record: %w", err)
		}
		if created != nil {
			return attendance.TimeEntryResult{
				Success: true,
				Message: "Time in recorded",
				Type:    attendance.EntryTimeIn,
				Data:    toResponse(*created),
			}, nil
		}

		// A concurrent submission won the insert; continue from the record
		// it created.
		record, err = s.attendanceRepository.GetByUserAndDate(ctx, identity.UserID, date)
		if err != nil {
			return attendance.TimeEntryResult{}, fmt.Errorf("failed to re-check today's attendance: %w", err)
		}
		if record == nil {
			return attendance.TimeEntryResult{}, fmt.Errorf("attendance record for %s vanished after insert conflict", date)
		}
	}

	if record.Completed() {
		return completedResult(*record), nil
	}

	closed, err := s.attendanceRepository.CloseOut(ctx, record.ID, req.Time, req.Remarks)
	if err != nil {
		return attendance.TimeEntryResult{}, fmt.Errorf("failed to record time out: %w", err)
	}
	if closed == nil {
		// A concurrent submission closed the record first.
		record, err = s.attendanceRepository.GetByUserAndDate(ctx, identity.UserID, date)
		if err != nil {
			return attendance.TimeEntryResult{}, fmt.Errorf("failed to re-check today's attendance: %w", err)
		}
		if record == nil {
			return attendance.TimeEntryResult{}, fmt.Errorf("attendance record for %s vanished after close conflict", date)
		}
		return completedResult(*record), nil
	}

	return attendance.TimeEntryResult{
		Success: true,
		Message: "Time out recorded",
		Type:    attendance.EntryTimeOut,
		Data:    toResponse(*closed),
	}, nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *attendanceService) ListAttendance(ctx context.Context, identity auth.Identity) ([]attendance.RecordResponse, error) {
	tier, ok, err := s.resolver.Resolve(ctx, identity.RoleID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve access tier: %w", err)
	}
	if !ok {
		return nil, attendance.ErrUnauthorizedTier
	}

	var records []attendance.Record
	switch {
	case tier == accesspolicy.TierUsers:
		records, err = s.attendanceRepository.ListByUser(ctx, identity.UserID)
	case tier.Elevated():
		records, err = s.attendanceRepository.ListAll(ctx)
	default:
		return nil, attendance.ErrUnauthorizedTier
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	names := make(map[string]string)
	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		name, cached := names[rec.UserID]
		if !cached {
			owner, err := s.userRepository.GetByID(ctx, rec.UserID)
			switch {
			case err == nil:
				name = owner.FullName()
			case errors.Is(err, user.ErrUserNotFound):
				name = "Unknown"
			default:
				return nil, fmt.Errorf("failed to look up record owner: %w", err)
			}
			names[rec.UserID] = name
		}

		resp := toResponse(rec)
		resp.UserName = name
		responses = append(responses, *resp)
	}

	return responses, nil
}

// deriveStatus classifies a time-in moment against office hours. All three
// values are zero-padded HH:MM:SS, so plain string comparison orders them
// chronologically.
func deriveStatus(t, start, end string) attendance.Status {
	switch {
	case t > end:
		return attendance.StatusAbsent
	case t > start:
		return attendance.StatusLate
	default:
		return attendance.StatusPresent
	}
}

func completedResult(record attendance.Record) attendance.TimeEntryResult {
	return attendance.TimeEntryResult{
		Success: true,
		Message: "Attendance already completed for today",
		Type:    attendance.EntryCompleted,
		Data:    toResponse(record),
	}
}

func failureResult(message string) attendance.TimeEntryResult {
	return attendance.TimeEntryResult{
		Success: false,
		Message: message,
		Type:    attendance.EntryError,
	}
}

func toResponse(record attendance.Record) *attendance.RecordResponse {
	return &attendance.RecordResponse{
		ID:        record.ID,
		UserID:    record.UserID,
		UserName:  record.UserName,
		Date:      record.Date,
		TimeIn:    record.TimeIn,
		TimeOut:   record.TimeOut,
		Status:    record.Status,
		Remarks:   record.Remarks,
		CreatedAt: record.CreatedAt.Format(time.RFC3339),
		UpdatedAt: record.UpdatedAt.Format(time.RFC3339),
	}
}
