package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sebenza-hr/staffdesk-bff/internal/domain/payroll"
	"github.com/sebenza-hr/staffdesk-bff/internal/handler/http/response"
)

type PayrollHandler interface {
	ListRuns(w http.ResponseWriter, r *http.Request)
	GetRun(w http.ResponseWriter, r *http.Request)
	FinalizeRun(w http.ResponseWriter, r *http.Request)
	UpdateDailyEntry(w http.ResponseWriter, r *http.Request)
	DownloadPayslip(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// ListRuns implements PayrollHandler.
func (h *PayrollHandlerImpl) ListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := h.payrollService.Runs(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, runs)
}

// GetRun implements PayrollHandler.
func (h *PayrollHandlerImpl) GetRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Run ID is required", nil)
		return
	}

	detail, err := h.payrollService.Run(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, detail)
}

// FinalizeRun implements PayrollHandler.
func (h *PayrollHandlerImpl) FinalizeRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Run ID is required", nil)
		return
	}

	run, err := h.payrollService.Finalize(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pay run finalized successfully", run)
}

// UpdateDailyEntry implements PayrollHandler.
func (h *PayrollHandlerImpl) UpdateDailyEntry(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "id")
	staffID := chi.URLParam(r, "staffId")
	if runID == "" || staffID == "" {
		response.BadRequest(w, "Run ID and staff ID are required", nil)
		return
	}

	var req payroll.UpdateDailyEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateDailyEntry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	snapshot, err := h.payrollService.UpdateDailyEntry(r.Context(), runID, staffID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Daily entry updated successfully", snapshot)
}

// DownloadPayslip implements PayrollHandler.
func (h *PayrollHandlerImpl) DownloadPayslip(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "id")
	staffID := chi.URLParam(r, "staffId")
	if runID == "" || staffID == "" {
		response.BadRequest(w, "Run ID and staff ID are required", nil)
		return
	}

	export, err := h.payrollService.PayslipPDF(r.Context(), runID, staffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.PDFDownload(w, export.Filename, export.Content)
}
