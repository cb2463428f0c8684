package payroll

import "context"

type PayrollService interface {
	Runs(ctx context.Context) ([]PayRun, error)
	Run(ctx context.Context, id string) (RunDetailResponse, error)
	Finalize(ctx context.Context, id string) (PayRun, error)
	// UpdateDailyEntry edits one breakdown row on a non-finalized run and
	// returns the refetched snapshot; totals are never recomputed locally.
	UpdateDailyEntry(ctx context.Context, runID, staffID string, req UpdateDailyEntryRequest) (PayslipSnapshot, error)
	// PayslipPDF renders the downloadable payslip document.
	PayslipPDF(ctx context.Context, runID, staffID string) (PayslipExport, error)
}
