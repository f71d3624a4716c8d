package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/atlashr/attendance-backend-go/internal/domain/attendance"
	"github.com/atlashr/attendance-backend-go/internal/domain/auth"
	"github.com/atlashr/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	SubmitTime(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// SubmitTime implements AttendanceHandler.
func (h *attendanceHandlerImpl) SubmitTime(w http.ResponseWriter, r *http.Request) {
	var req attendance.SubmitTimeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit time decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	identity, err := auth.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.attendanceService.SubmitTime(r.Context(), identity, req)
	if err != nil {
		slog.Error("Submit time service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Configuration failures come back through the result envelope.
	if !result.Success {
		response.BadRequest(w, result.Message, nil)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	identity, err := auth.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	records, err := h.attendanceService.ListAttendance(r.Context(), identity)
	if err != nil {
		slog.Error("List attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
