package http

import (
	"net/http"
	"strconv"

	"github.com/sebenza-hr/staffdesk-bff/internal/domain/report"
	"github.com/sebenza-hr/staffdesk-bff/internal/handler/http/response"
)

type ReportHandler interface {
	GetEMP201(w http.ResponseWriter, r *http.Request)
	ExportEMP201(w http.ResponseWriter, r *http.Request)
	ExportEMP201SARS(w http.ResponseWriter, r *http.Request)
	GetEMP501(w http.ResponseWriter, r *http.Request)
	ExportEMP501(w http.ResponseWriter, r *http.Request)
	ExportEMP501SARS(w http.ResponseWriter, r *http.Request)
	GetSettlement(w http.ResponseWriter, r *http.Request)
	ExportSettlement(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

func emp201RequestFromQuery(r *http.Request) report.EMP201Request {
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	return report.EMP201Request{Year: year, Month: month}
}

func emp501RequestFromQuery(r *http.Request) report.EMP501Request {
	return report.EMP501Request{
		Type:    report.EMP501Type(r.URL.Query().Get("type")),
		TaxYear: r.URL.Query().Get("tax_year"),
	}
}

func settlementRequestFromQuery(r *http.Request) report.SettlementRequest {
	return report.SettlementRequest{TaxYear: r.URL.Query().Get("tax_year")}
}

// GetEMP201 implements ReportHandler.
func (h *ReportHandlerImpl) GetEMP201(w http.ResponseWriter, r *http.Request) {
	rep, err := h.reportService.EMP201(r.Context(), emp201RequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rep)
}

// ExportEMP201 implements ReportHandler.
func (h *ReportHandlerImpl) ExportEMP201(w http.ResponseWriter, r *http.Request) {
	export, err := h.reportService.ExportEMP201(r.Context(), emp201RequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.CSVDownload(w, export.Filename, export.Content)
}

// ExportEMP201SARS implements ReportHandler.
func (h *ReportHandlerImpl) ExportEMP201SARS(w http.ResponseWriter, r *http.Request) {
	export, err := h.reportService.ExportEMP201SARS(r.Context(), emp201RequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.CSVDownload(w, export.Filename, export.Content)
}

// GetEMP501 implements ReportHandler.
func (h *ReportHandlerImpl) GetEMP501(w http.ResponseWriter, r *http.Request) {
	rep, err := h.reportService.EMP501(r.Context(), emp501RequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rep)
}

// ExportEMP501 implements ReportHandler.
func (h *ReportHandlerImpl) ExportEMP501(w http.ResponseWriter, r *http.Request) {
	export, err := h.reportService.ExportEMP501(r.Context(), emp501RequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.CSVDownload(w, export.Filename, export.Content)
}

// ExportEMP501SARS implements ReportHandler.
func (h *ReportHandlerImpl) ExportEMP501SARS(w http.ResponseWriter, r *http.Request) {
	export, err := h.reportService.ExportEMP501SARS(r.Context(), emp501RequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.CSVDownload(w, export.Filename, export.Content)
}

// GetSettlement implements ReportHandler.
func (h *ReportHandlerImpl) GetSettlement(w http.ResponseWriter, r *http.Request) {
	rep, err := h.reportService.Settlement(r.Context(), settlementRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rep)
}

// ExportSettlement implements ReportHandler.
func (h *ReportHandlerImpl) ExportSettlement(w http.ResponseWriter, r *http.Request) {
	export, err := h.reportService.ExportSettlement(r.Context(), settlementRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.CSVDownload(w, export.Filename, export.Content)
}
