package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sebenza-hr/staffdesk-bff/internal/domain/attendance"
	"github.com/sebenza-hr/staffdesk-bff/internal/handler/http/response"
)

type AttendanceHandler interface {
	ActiveStaff(w http.ResponseWriter, r *http.Request)
	FlaggedShifts(w http.ResponseWriter, r *http.Request)
	FixShift(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// ActiveStaff implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ActiveStaff(w http.ResponseWriter, r *http.Request) {
	zoneID := r.URL.Query().Get("zone_id")
	date := r.URL.Query().Get("date")

	active, err := h.attendanceService.ActiveStaff(r.Context(), zoneID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, active)
}

// FlaggedShifts implements AttendanceHandler.
func (h *AttendanceHandlerImpl) FlaggedShifts(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.attendanceService.FlaggedShifts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, shifts)
}

// FixShift implements AttendanceHandler.
func (h *AttendanceHandlerImpl) FixShift(w http.ResponseWriter, r *http.Request) {
	var req attendance.FixShiftRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("FixShift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.FixShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
