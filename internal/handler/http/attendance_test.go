package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atlashr/attendance-backend-go/internal/domain/attendance"
	"github.com/atlashr/attendance-backend-go/internal/domain/auth"
	"github.com/atlashr/attendance-backend-go/internal/handler/http/middleware"
	"github.com/atlashr/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceService struct {
	submitResult attendance.TimeEntryResult
	submitErr    error
	listErr      error
	records      []attendance.RecordResponse

	gotIdentity auth.Identity
	gotRequest  attendance.SubmitTimeRequest
}

func (f *fakeAttendanceService) SubmitTime(ctx context.Context, identity auth.Identity, req attendance.SubmitTimeRequest) (attendance.TimeEntryResult, error) {
	f.gotIdentity = identity
	f.gotRequest = req
	return f.submitResult, f.submitErr
}

func (f *fakeAttendanceService) ListAttendance(ctx context.Context, identity auth.Identity) ([]attendance.RecordResponse, error) {
	f.gotIdentity = identity
	return f.records, f.listErr
}

func newAttendanceTestRouter(svc attendance.AttendanceService) (*chi.Mux, jwt.Service) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	handler := NewAttendanceHandler(svc)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
		r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
		r.Get("/attendance", handler.List)
		r.Post("/attendance/submit-time", handler.SubmitTime)
	})
	return r, jwtService
}

func accessTokenFor(t *testing.T, jwtService jwt.Service, userID string, roleID, departmentID *int64) string {
	token, _, err := jwtService.GenerateAccessToken(userID, userID+"@example.com", roleID, departmentID)
	require.NoError(t, err)
	return token
}

func testInt64Ptr(v int64) *int64 { return &v }

func TestSubmitTimeHandler(t *testing.T) {
	svc := &fakeAttendanceService{
		submitResult: attendance.TimeEntryResult{
			Success: true,
			Message: "Time in recorded",
			Type:    attendance.EntryTimeIn,
			Data:    &attendance.RecordResponse{UserID: "user-1", TimeIn: "09:05:00", Status: attendance.StatusLate},
		},
	}
	router, jwtService := newAttendanceTestRouter(svc)
	token := accessTokenFor(t, jwtService, "user-1", testInt64Ptr(1), testInt64Ptr(1))

	body, _ := json.Marshal(map[string]string{"time": "09:05"})
	req := httptest.NewRequest(http.MethodPost, "/attendance/submit-time", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", svc.gotIdentity.UserID)
	// Validate() pads HH:MM before the service sees it.
	assert.Equal(t, "09:05:00", svc.gotRequest.Time)

	var resp struct {
		Success bool                       `json:"success"`
		Message string                     `json:"message"`
		Data    attendance.TimeEntryResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Time in recorded", resp.Message)
	assert.Equal(t, attendance.EntryTimeIn, resp.Data.Type)
}

func TestSubmitTimeHandlerValidation(t *testing.T) {
	svc := &fakeAttendanceService{}
	router, jwtService := newAttendanceTestRouter(svc)
	token := accessTokenFor(t, jwtService, "user-1", testInt64Ptr(1), testInt64Ptr(1))

	body, _ := json.Marshal(map[string]string{"time": "25:99"})
	req := httptest.NewRequest(http.MethodPost, "/attendance/submit-time", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestSubmitTimeHandlerConfigurationFailure(t *testing.T) {
	svc := &fakeAttendanceService{
		submitResult: attendance.TimeEntryResult{
			Success: false,
			Message: "office hours not found for department",
			Type:    attendance.EntryError,
		},
	}
	router, jwtService := newAttendanceTestRouter(svc)
	token := accessTokenFor(t, jwtService, "user-1", testInt64Ptr(1), testInt64Ptr(1))

	body, _ := json.Marshal(map[string]string{"time": "09:00:00"})
	req := httptest.NewRequest(http.MethodPost, "/attendance/submit-time", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListAttendanceHandlerForbidden(t *testing.T) {
	svc := &fakeAttendanceService{listErr: attendance.ErrUnauthorizedTier}
	router, jwtService := newAttendanceTestRouter(svc)
	token := accessTokenFor(t, jwtService, "user-1", nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/attendance", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAttendanceRequiresToken(t *testing.T) {
	router, _ := newAttendanceTestRouter(&fakeAttendanceService{})

	req := httptest.NewRequest(http.MethodGet, "/attendance", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
