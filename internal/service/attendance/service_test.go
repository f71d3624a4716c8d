package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/atlashr/attendance-backend-go/internal/domain/accesspolicy"
	"github.com/atlashr/attendance-backend-go/internal/domain/attendance"
	"github.com/atlashr/attendance-backend-go/internal/domain/auth"
	"github.com/atlashr/attendance-backend-go/internal/domain/officehours"
	"github.com/atlashr/attendance-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepository struct {
	records map[string]*attendance.Record // keyed by user_id|date
	nextID  int
}

func newFakeAttendanceRepository() *fakeAttendanceRepository {
	return &fakeAttendanceRepository{records: make(map[string]*attendance.Record)}
}

func (f *fakeAttendanceRepository) key(userID, date string) string {
	return userID + "|" + date
}

func (f *fakeAttendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date string) (*attendance.Record, error) {
	rec, ok := f.records[f.key(userID, date)]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeAttendanceRepository) CreateIfAbsent(ctx context.Context, record attendance.Record) (*attendance.Record, error) {
	k := f.key(record.UserID, record.Date)
	if _, ok := f.records[k]; ok {
		return nil, nil
	}
	f.nextID++
	record.ID = fmt.Sprintf("rec-%d", f.nextID)
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt
	f.records[k] = &record
	cp := record
	return &cp, nil
}

func (f *fakeAttendanceRepository) CloseOut(ctx context.Context, id string, timeOut string, remarks *string) (*attendance.Record, error) {
	for _, rec := range f.records {
		if rec.ID != id {
			continue
		}
		if rec.TimeOut != nil {
			return nil, nil
		}
		rec.TimeOut = &timeOut
		if remarks != nil {
			rec.Remarks = remarks
		}
		rec.UpdatedAt = time.Now()
		cp := *rec
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeAttendanceRepository) ListAll(ctx context.Context) ([]attendance.Record, error) {
	out := make([]attendance.Record, 0, len(f.records))
	for _, rec := range f.records {
		out = append(out, *rec)
	}
	return out, nil
}

func (f *fakeAttendanceRepository) ListByUser(ctx context.Context, userID string) ([]attendance.Record, error) {
	out := make([]attendance.Record, 0)
	for _, rec := range f.records {
		if rec.UserID == userID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepository) CountByDate(ctx context.Context, date string) (int64, error) {
	var n int64
	for _, rec := range f.records {
		if rec.Date == date {
			n++
		}
	}
	return n, nil
}

type fakeOfficeHoursRepository struct {
	hours map[int64]officehours.OfficeHours
}

func (f *fakeOfficeHoursRepository) GetByDepartment(ctx context.Context, departmentID int64) (officehours.OfficeHours, error) {
	h, ok := f.hours[departmentID]
	if !ok {
		return officehours.OfficeHours{}, officehours.ErrOfficeHoursNotFound
	}
	return h, nil
}

type fakeUserRepository struct {
	users map[string]user.User
}

func (f *fakeUserRepository) Create(ctx context.Context, u user.User) (user.User, error) { return u, nil }
func (f *fakeUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (f *fakeUserRepository) List(ctx context.Context) ([]user.User, error) { return nil, nil }
func (f *fakeUserRepository) Update(ctx context.Context, u user.User) (user.User, error) { return u, nil }
func (f *fakeUserRepository) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeUserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

type fakeResolver struct {
	tiers map[int64]accesspolicy.Tier
}

func (f *fakeResolver) Resolve(ctx context.Context, roleID *int64) (accesspolicy.Tier, bool, error) {
	if roleID == nil {
		return "", false, nil
	}
	tier, ok := f.tiers[*roleID]
	return tier, ok, nil
}

func int64Ptr(v int64) *int64 { return &v }
func strPtr(v string) *string { return &v }

func newTestService(repo *fakeAttendanceRepository, hours *fakeOfficeHoursRepository, users *fakeUserRepository, resolver *fakeResolver) *attendanceService {
	svc := NewAttendanceService(repo, hours, users, resolver).(*attendanceService)
	svc.now = func() time.Time {
		return time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	}
	return svc
}

func defaultOfficeHours() *fakeOfficeHoursRepository {
	return &fakeOfficeHoursRepository{hours: map[int64]officehours.OfficeHours{
		1: {ID: 1, DepartmentID: 1, TimeStart: "09:00:00", TimeEnd: "17:00:00"},
	}}
}

func memberIdentity() auth.Identity {
	return auth.Identity{
		UserID:       "user-1",
		Email:        "member@example.com",
		RoleID:       int64Ptr(1),
		DepartmentID: int64Ptr(1),
	}
}

func TestSubmitTimeFullDayCycle(t *testing.T) {
	repo := newFakeAttendanceRepository()
	svc := newTestService(repo, defaultOfficeHours(), &fakeUserRepository{}, &fakeResolver{})
	ctx := context.Background()
	identity := memberIdentity()

	// First submission of the day opens the record.
	result, err := svc.SubmitTime(ctx, identity, attendance.SubmitTimeRequest{Time: "09:05:00"})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, attendance.EntryTimeIn, result.Type)
	require.NotNil(t, result.Data)
	assert.Equal(t, "09:05:00", result.Data.TimeIn)
	assert.Equal(t, attendance.StatusLate, result.Data.Status)
	assert.Nil(t, result.Data.TimeOut)

	// Second submission closes it.
	result, err = svc.SubmitTime(ctx, identity, attendance.SubmitTimeRequest{Time: "17:30:00"})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, attendance.EntryTimeOut, result.Type)
	require.NotNil(t, result.Data)
	require.NotNil(t, result.Data.TimeOut)
	assert.Equal(t, "17:30:00", *result.Data.TimeOut)
	assert.Equal(t, attendance.StatusLate, result.Data.Status)

	// Any further submission is a no-op.
	result, err = svc.SubmitTime(ctx, identity, attendance.SubmitTimeRequest{Time: "18:00:00"})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, attendance.EntryCompleted, result.Type)
	require.NotNil(t, result.Data)
	assert.Equal(t, "17:30:00", *result.Data.TimeOut)
}

func TestSubmitTimeStatusBoundaries(t *testing.T) {
	tests := []struct {
		time string
		want attendance.Status
	}{
		{"08:59:00", attendance.StatusPresent},
		{"09:00:00", attendance.StatusPresent},
		{"09:01:00", attendance.StatusLate},
		{"17:00:00", attendance.StatusLate},
		{"17:01:00", attendance.StatusAbsent},
	}

	for _, tt := range tests {
		t.Run(tt.time, func(t *testing.T) {
			repo := newFakeAttendanceRepository()
			svc := newTestService(repo, defaultOfficeHours(), &fakeUserRepository{}, &fakeResolver{})

			result, err := svc.SubmitTime(context.Background(), memberIdentity(), attendance.SubmitTimeRequest{Time: tt.time})
			require.NoError(t, err)
			require.NotNil(t, result.Data)
			assert.Equal(t, tt.want, result.Data.Status)
		})
	}
}

func TestSubmitTimeStatusNotRevisitedAtTimeOut(t *testing.T) {
	repo := newFakeAttendanceRepository()
	svc := newTestService(repo, defaultOfficeHours(), &fakeUserRepository{}, &fakeResolver{})
	ctx := context.Background()
	identity := memberIdentity()

	result, err := svc.SubmitTime(ctx, identity, attendance.SubmitTimeRequest{Time: "08:30:00"})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, result.Data.Status)

	// A time-out past the end of the window keeps the time-in status.
	result, err = svc.SubmitTime(ctx, identity, attendance.SubmitTimeRequest{Time: "19:00:00"})
	require.NoError(t, err)
	assert.Equal(t, attendance.EntryTimeOut, result.Type)
	assert.Equal(t, attendance.StatusPresent, result.Data.Status)
}

func TestSubmitTimeRemarks(t *testing.T) {
	repo := newFakeAttendanceRepository()
	svc := newTestService(repo, defaultOfficeHours(), &fakeUserRepository{}, &fakeResolver{})
	ctx := context.Background()
	identity := memberIdentity()

	result, err := svc.SubmitTime(ctx, identity, attendance.SubmitTimeRequest{
		Time:    "09:00:00",
		Remarks: strPtr("on site"),
	})
	require.NoError(t, err)
	require.NotNil(t, result.Data.Remarks)
	assert.Equal(t, "on site", *result.Data.Remarks)

	// Time-out without remarks keeps the existing ones.
	result, err = svc.SubmitTime(ctx, identity, attendance.SubmitTimeRequest{Time: "17:00:00"})
	require.NoError(t, err)
	require.NotNil(t, result.Data.Remarks)
	assert.Equal(t, "on site", *result.Data.Remarks)
}

func TestSubmitTimeMissingDepartment(t *testing.T) {
	repo := newFakeAttendanceRepository()
	svc := newTestService(repo, defaultOfficeHours(), &fakeUserRepository{}, &fakeResolver{})

	identity := memberIdentity()
	identity.DepartmentID = nil

	result, err := svc.SubmitTime(context.Background(), identity, attendance.SubmitTimeRequest{Time: "09:00:00"})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, attendance.EntryError, result.Type)
	assert.Equal(t, "user department not found", result.Message)
	assert.Nil(t, result.Data)
}

func TestSubmitTimeMissingOfficeHours(t *testing.T) {
	repo := newFakeAttendanceRepository()
	hours := &fakeOfficeHoursRepository{hours: map[int64]officehours.OfficeHours{}}
	svc := newTestService(repo, hours, &fakeUserRepository{}, &fakeResolver{})

	result, err := svc.SubmitTime(context.Background(), memberIdentity(), attendance.SubmitTimeRequest{Time: "09:00:00"})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, attendance.EntryError, result.Type)
	assert.Equal(t, "office hours not found for department", result.Message)
	assert.Nil(t, result.Data)
}

func TestListAttendanceScopedByTier(t *testing.T) {
	repo := newFakeAttendanceRepository()
	svc := newTestService(repo, defaultOfficeHours(), &fakeUserRepository{users: map[string]user.User{
		"user-1": {ID: "user-1", FirstName: "Ari", LastName: "Wibowo"},
		"user-2": {ID: "user-2", FirstName: "Sinta", LastName: "Dewi"},
	}}, &fakeResolver{tiers: map[int64]accesspolicy.Tier{
		1: accesspolicy.TierUsers,
		2: accesspolicy.TierAdministrator,
	}})
	ctx := context.Background()

	_, err := repo.CreateIfAbsent(ctx, attendance.Record{UserID: "user-1", Date: "2025-03-10", TimeIn: "09:00:00", Status: attendance.StatusPresent})
	require.NoError(t, err)
	_, err = repo.CreateIfAbsent(ctx, attendance.Record{UserID: "user-2", Date: "2025-03-10", TimeIn: "09:10:00", Status: attendance.StatusLate})
	require.NoError(t, err)

	// Users tier sees only its own rows.
	member := memberIdentity()
	records, err := svc.ListAttendance(ctx, member)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "user-1", records[0].UserID)
	assert.Equal(t, "Ari Wibowo", records[0].UserName)

	// Elevated tiers see everything.
	admin := auth.Identity{UserID: "user-2", RoleID: int64Ptr(2)}
	records, err = svc.ListAttendance(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestListAttendanceUnauthorized(t *testing.T) {
	repo := newFakeAttendanceRepository()
	svc := newTestService(repo, defaultOfficeHours(), &fakeUserRepository{}, &fakeResolver{})

	// Role granted by no policy.
	_, err := svc.ListAttendance(context.Background(), memberIdentity())
	assert.ErrorIs(t, err, attendance.ErrUnauthorizedTier)

	// No role at all.
	identity := memberIdentity()
	identity.RoleID = nil
	_, err = svc.ListAttendance(context.Background(), identity)
	assert.ErrorIs(t, err, attendance.ErrUnauthorizedTier)
}

func TestListAttendanceUnknownOwner(t *testing.T) {
	repo := newFakeAttendanceRepository()
	svc := newTestService(repo, defaultOfficeHours(), &fakeUserRepository{users: map[string]user.User{}}, &fakeResolver{tiers: map[int64]accesspolicy.Tier{
		2: accesspolicy.TierModerator,
	}})
	ctx := context.Background()

	_, err := repo.CreateIfAbsent(ctx, attendance.Record{UserID: "ghost", Date: "2025-03-10", TimeIn: "09:00:00", Status: attendance.StatusPresent})
	require.NoError(t, err)

	records, err := svc.ListAttendance(ctx, auth.Identity{UserID: "user-2", RoleID: int64Ptr(2)})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Unknown", records[0].UserName)
}
