package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sebenza-hr/staffdesk-bff/internal/domain/leave"
	"github.com/sebenza-hr/staffdesk-bff/internal/handler/http/response"
	"github.com/sebenza-hr/staffdesk-bff/internal/pkg/jwt"
)

type LeaveHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	jwtService   jwt.Service
	leaveService leave.LeaveService
}

func NewLeaveHandler(jwtService jwt.Service, leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{
		jwtService:   jwtService,
		leaveService: leaveService,
	}
}

// List implements LeaveHandler.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	status := leave.RequestStatus(r.URL.Query().Get("status"))
	if status == "" {
		status = leave.StatusPending
	}

	requests, err := h.leaveService.List(r.Context(), status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Approve implements LeaveHandler.
func (h *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.leaveService.Approve, "Leave request approved successfully")
}

// Reject implements LeaveHandler.
func (h *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.leaveService.Reject, "Leave request rejected successfully")
}

func (h *LeaveHandlerImpl) decide(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, id string, decidedBy string, req leave.DecideLeaveRequest) ([]leave.LeaveRequest, error),
	message string,
) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	scope, err := h.jwtService.ScopeFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	var req leave.DecideLeaveRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("Leave decision decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	requests, err := apply(r.Context(), id, scope.UserID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, requests)
}
