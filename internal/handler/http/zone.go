package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sebenza-hr/staffdesk-bff/internal/domain/zone"
	"github.com/sebenza-hr/staffdesk-bff/internal/handler/http/response"
)

type ZoneHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Occupancy(w http.ResponseWriter, r *http.Request)
}

type ZoneHandlerImpl struct {
	zoneService zone.ZoneService
}

func NewZoneHandler(zoneService zone.ZoneService) ZoneHandler {
	return &ZoneHandlerImpl{zoneService: zoneService}
}

// List implements ZoneHandler.
func (h *ZoneHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	zones, err := h.zoneService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, zones)
}

// Create implements ZoneHandler.
func (h *ZoneHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req zone.CreateZoneRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create zone decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.zoneService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Zone created successfully", created)
}

// Update implements ZoneHandler.
func (h *ZoneHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Zone ID is required", nil)
		return
	}

	var req zone.UpdateZoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update zone decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.zoneService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Zone updated successfully", updated)
}

// Occupancy implements ZoneHandler.
func (h *ZoneHandlerImpl) Occupancy(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	summaries, err := h.zoneService.Occupancy(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summaries)
}
