package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sebenza-hr/staffdesk-bff/internal/domain/staff"
	"github.com/sebenza-hr/staffdesk-bff/internal/handler/http/response"
)

type StaffHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type StaffHandlerImpl struct {
	staffService staff.StaffService
}

func NewStaffHandler(staffService staff.StaffService) StaffHandler {
	return &StaffHandlerImpl{staffService: staffService}
}

// List implements StaffHandler.
func (h *StaffHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	zoneID := r.URL.Query().Get("zone_id")

	members, err := h.staffService.List(r.Context(), zoneID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, members)
}

// GetByID implements StaffHandler.
func (h *StaffHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	member, err := h.staffService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, member)
}

// Create implements StaffHandler.
func (h *StaffHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req staff.CreateStaffRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create staff decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	member, err := h.staffService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Staff member created successfully", member)
}

// Update implements StaffHandler.
func (h *StaffHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	var req staff.UpdateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update staff decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	member, err := h.staffService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Staff member updated successfully", member)
}

// Delete implements StaffHandler.
func (h *StaffHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	if err := h.staffService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Staff member deleted successfully", nil)
}
